package region

// DSF is an arena-backed disjoint set forest over the cell indices
// 0..n-1. Callers interact with it only through Find, Union, Size and
// Canonicalize; the parent array is never exposed.
type DSF struct {
	parent []int
	size   []int
}

// NewDSF returns a forest of n singleton sets.
func NewDSF(n int) *DSF {
	d := &DSF{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	d.Reset()
	return d
}

// Reset returns every element to its own singleton set.
func (d *DSF) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
}

// Find returns the canonical representative of x's set, with path
// compression.
func (d *DSF) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root
}

// Union merges the sets containing a and b and reports whether they were
// previously distinct. The lower-indexed root wins, so representatives are
// stable under merge order.
func (d *DSF) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	return true
}

// Size returns the number of elements in x's set.
func (d *DSF) Size(x int) int { return d.size[d.Find(x)] }

// Canonicalize maps each set to a dense id in 0..k-1, assigned in order of
// first appearance, and returns the per-element id slice and k.
func (d *DSF) Canonicalize() ([]int, int) {
	ids := make([]int, len(d.parent))
	next := 0
	seen := make(map[int]int, len(d.parent))
	for i := range d.parent {
		r := d.Find(i)
		id, ok := seen[r]
		if !ok {
			id = next
			next++
			seen[r] = id
		}
		ids[i] = id
	}
	return ids, next
}
