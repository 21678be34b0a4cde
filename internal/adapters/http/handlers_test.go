package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/latinsq/internal/codec"
	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/generator"
	"svw.info/latinsq/internal/hint"
	"svw.info/latinsq/internal/infrastructure/storage"
	"svw.info/latinsq/internal/region"
	"svw.info/latinsq/internal/solver"
	"svw.info/latinsq/internal/usecase"
	"svw.info/latinsq/internal/validator"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewService(
		solver.NewEngine(),
		generator.New(),
		validator.New(),
		hint.New(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func post(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func testDesc(t *testing.T) string {
	t.Helper()
	p, err := codec.DecodeParams("2x2")
	require.NoError(t, err)
	clues := domain.Grid{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 0,
	}
	return codec.EncodeDesc(p, clues, region.Regular(2, 2), nil)
}

func TestSolveEndpoint(t *testing.T) {
	mux := testMux(t)
	w := post(t, mux, "/api/solve", solveReq{Params: "2x2", Desc: testDesc(t)})
	require.Equal(t, http.StatusOK, w.Code)

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "solved", resp.Outcome)
	assert.NotEmpty(t, resp.Move)

	grid, err := codec.DecodeMove(4, resp.Move)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), grid[15])
}

func TestSolveEndpointRejectsGarbage(t *testing.T) {
	mux := testMux(t)
	w := post(t, mux, "/api/solve", solveReq{Params: "2x2", Desc: "???"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/solve", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	mux := testMux(t)
	grid := []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	w := post(t, mux, "/api/validate", validateReq{Params: "2x2", Desc: testDesc(t), Grid: grid})
	require.Equal(t, http.StatusOK, w.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Conflicts)

	grid[15] = 4 // clashes with the 4 in its row, column and block
	w = post(t, mux, "/api/validate", validateReq{Params: "2x2", Desc: testDesc(t), Grid: grid})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	mux := testMux(t)

	w := post(t, mux, "/api/save", domain.Puzzle{Params: "2x2", Desc: testDesc(t), Name: "kept"})
	require.Equal(t, http.StatusOK, w.Code)
	var saved saveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	w = post(t, mux, "/api/load", loadReq{ID: saved.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var loaded loadResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, "kept", loaded.Puzzle.Name)

	req := httptest.NewRequest(http.MethodGet, "/api/list", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var list listResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, saved.ID, list.Puzzles[0].ID)
}

func TestHintEndpoint(t *testing.T) {
	mux := testMux(t)
	grid := []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 0,
	}
	w := post(t, mux, "/api/hint", hintReq{Params: "2x2", Desc: testDesc(t), Grid: grid})
	require.Equal(t, http.StatusOK, w.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	assert.Equal(t, 3, resp.Hint.Cell.Y)
	assert.Equal(t, 3, resp.Hint.Cell.X)
	assert.Equal(t, uint8(1), resp.Hint.Digit)
}
