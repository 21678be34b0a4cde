package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"svw.info/latinsq/internal/domain"
	"svw.info/latinsq/internal/usecase"
)

type Handler struct {
	UC *usecase.Service

	// GenTimeout bounds a single generate request; zero means no limit.
	GenTimeout time.Duration
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.instrument("generate", h.handleGenerate))
	mux.HandleFunc("/api/solve", h.instrument("solve", h.handleSolve))
	mux.HandleFunc("/api/validate", h.instrument("validate", h.handleValidate))
	mux.HandleFunc("/api/hint", h.instrument("hint", h.handleHint))
	mux.HandleFunc("/api/save", h.instrument("save", h.handleSave))
	mux.HandleFunc("/api/load", h.instrument("load", h.handleLoad))
	mux.HandleFunc("/api/list", h.instrument("list", h.handleList))
}

// instrument records the per-endpoint request counter and latency
// histogram around a handler.
func (h *Handler) instrument(name string, fn func(http.ResponseWriter, *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		status := fn(w, r)
		observe(name, status, time.Since(start).Seconds())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) int {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
	return status
}

// gridFromInts converts the JSON representation ([]int, so it serialises
// as a number array rather than base64) into a Grid.
func gridFromInts(in []int) domain.Grid {
	out := make(domain.Grid, len(in))
	for i, n := range in {
		if n < 0 || n > 255 {
			n = 255 // out of any grid's range, caught by validation
		}
		out[i] = uint8(n)
	}
	return out
}

// ---- Generate ----

type generateReq struct {
	Params string `json:"params,omitempty"`
	Seed   int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Params     string `json:"params,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Solution   string `json:"solution,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, generateResp{Error: "method not allowed"})
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		return writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
	}
	if req.Params == "" {
		req.Params = "3x3"
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctx := r.Context()
	if h.GenTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.GenTimeout)
		defer cancel()
	}
	p, st, err := h.UC.Generate(ctx, req.Params, seed)
	if err != nil {
		return writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
	}
	solverNodes.WithLabelValues("generate").Observe(float64(st.Nodes))
	return writeJSON(w, http.StatusOK, generateResp{
		Params:     p.Params,
		Desc:       p.Desc,
		Solution:   p.Solution,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Params string `json:"params"`
	Desc   string `json:"desc"`
}

type solveResp struct {
	Outcome    string `json:"outcome,omitempty"`
	Move       string `json:"move,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	// Cage-reasoning grade; only meaningful for killer puzzles and only
	// emitted when above the base level.
	KillerDifficulty string `json:"killerDifficulty,omitempty"`
	DurationMs       int64  `json:"durationMs,omitempty"`
	Nodes            int    `json:"nodes,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
	}
	res, move, st, err := h.UC.Solve(r.Context(), req.Params, req.Desc)
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
	}
	solverNodes.WithLabelValues("solve").Observe(float64(st.Nodes))
	resp := solveResp{
		Outcome:    res.Outcome.String(),
		Move:       move,
		Difficulty: res.Diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	}
	if res.KDiff > domain.CageSingles {
		resp.KillerDifficulty = res.KDiff.String()
	}
	return writeJSON(w, http.StatusOK, resp)
}

// ---- Validate ----

type validateReq struct {
	Params string `json:"params"`
	Desc   string `json:"desc"`
	Grid   []int  `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, validateResp{Error: "method not allowed"})
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Params, req.Desc, gridFromInts(req.Grid))
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, validateResp{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Params string `json:"params"`
	Desc   string `json:"desc"`
	Grid   []int  `json:"grid"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, hintResp{Error: "method not allowed"})
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
	}
	hh, ok, err := h.UC.Hint(r.Context(), req.Params, req.Desc, gridFromInts(req.Grid))
	if err != nil {
		return writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, saveResp{Error: "method not allowed"})
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
	}
	if p.Params == "" || p.Desc == "" {
		return writeJSON(w, http.StatusBadRequest, saveResp{Error: "missing params or desc"})
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		return writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		return writeJSON(w, http.StatusMethodNotAllowed, loadResp{Error: "method not allowed"})
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		return writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		return writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodGet {
		return writeJSON(w, http.StatusMethodNotAllowed, listResp{Error: "method not allowed"})
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		return writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
	}
	return writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
