package phylo

import (
	"fmt"

	"github.com/phyloflow/phyloflow-go/internal/distance"
)

// Build constructs a phylogenetic tree from a distance matrix.
//
// The matrix is not modified; each build works on its own copy of the
// pairwise distances.
func Build(m *distance.Matrix, method Method) (*Tree, error) {
	n := m.Size()
	if n < 3 {
		return nil, fmt.Errorf("%w: need at least 3 sequences for %s, got %d",
			ErrInsufficientTaxa, method, n)
	}
	seen := make(map[string]bool, n)
	for _, id := range m.SequenceIDs {
		if seen[id] {
			return nil, fmt.Errorf("phylo: duplicate sequence id %q", id)
		}
		seen[id] = true
	}

	switch method {
	case UPGMA:
		return upgma(m), nil
	case NeighborJoining:
		return neighborJoining(m), nil
	default:
		return nil, fmt.Errorf("phylo: unsupported tree method %v", method)
	}
}

// workingMatrix is the mutable distance table a build iterates over.
// Rows are addressed by node id; the active slice preserves insertion
// order so pair scans are deterministic.
type workingMatrix struct {
	active []string
	dist   map[string]map[string]float64
}

func newWorkingMatrix(m *distance.Matrix) *workingMatrix {
	w := &workingMatrix{
		active: append([]string(nil), m.SequenceIDs...),
		dist:   make(map[string]map[string]float64, m.Size()),
	}
	for i, id := range m.SequenceIDs {
		row := make(map[string]float64, m.Size())
		for j, other := range m.SequenceIDs {
			row[other] = m.Values[i][j]
		}
		w.dist[id] = row
	}
	return w
}

func (w *workingMatrix) get(a, b string) float64 {
	return w.dist[a][b]
}

// merge removes a and b from the active set and registers the new node
// with the given distances to every remaining active node.
func (w *workingMatrix) merge(a, b, id string, toRest map[string]float64) {
	next := w.active[:0]
	for _, n := range w.active {
		if n != a && n != b {
			next = append(next, n)
		}
	}
	w.active = append(next, id)

	row := map[string]float64{id: 0}
	for _, k := range w.active[:len(w.active)-1] {
		d := toRest[k]
		row[k] = d
		w.dist[k][id] = d
	}
	w.dist[id] = row
	delete(w.dist, a)
	delete(w.dist, b)
}
