package phylo

import (
	"fmt"

	"github.com/phyloflow/phyloflow-go/internal/distance"
)

// neighborJoining agglomerates the taxa by the Saitou-Nei criterion:
// at each step the pair minimizing the Q value is joined under a new
// internal node until the tree closes at the final triple.
func neighborJoining(m *distance.Matrix) *Tree {
	t := newTree(NeighborJoining)
	for _, id := range m.SequenceIDs {
		t.addLeaf(id, id)
	}
	w := newWorkingMatrix(m)

	internal := 0
	for len(w.active) > 2 {
		r := len(w.active)

		rowSum := make(map[string]float64, r)
		for _, i := range w.active {
			sum := 0.0
			for _, k := range w.active {
				sum += w.get(i, k)
			}
			rowSum[i] = sum
		}

		// Minimum Q pair; ties keep the first hit in row-major order
		var bestI, bestJ string
		bestQ := 0.0
		first := true
		for a := 0; a < r; a++ {
			for b := a + 1; b < r; b++ {
				i, j := w.active[a], w.active[b]
				q := float64(r-2)*w.get(i, j) - rowSum[i] - rowSum[j]
				if first || q < bestQ {
					bestQ = q
					bestI, bestJ = i, j
					first = false
				}
			}
		}

		dij := w.get(bestI, bestJ)
		// Branch length to the first member; the pair total is dij
		bi := 0.5*dij + (rowSum[bestI]-rowSum[bestJ])/(2*float64(r-2))
		bj := dij - bi

		internal++
		id := fmt.Sprintf("node-%d", internal)
		t.addInternal(id, bestI, bestJ)
		// Negative branch lengths are clamped in the emitted node only;
		// the unclamped values never feed the distance updates below
		t.Nodes[bestI].BranchLength = clampBranch(bi)
		t.Nodes[bestJ].BranchLength = clampBranch(bj)

		toRest := make(map[string]float64, r-2)
		for _, k := range w.active {
			if k == bestI || k == bestJ {
				continue
			}
			toRest[k] = 0.5 * (w.get(bestI, k) + w.get(bestJ, k) - dij)
		}
		w.merge(bestI, bestJ, id, toRest)
	}

	// The last pair-merge leaves two active nodes, the newer of which is
	// always internal. That node becomes the root and the survivor folds
	// in as its third child with the full remaining distance, closing
	// the tree at a triple. Together with the r=3 merge step this yields
	// the standard three-point branch lengths of unrooted NJ.
	folded, rootID := w.active[0], w.active[1]
	root := t.Nodes[rootID]
	root.Children = append(root.Children, folded)
	t.Nodes[folded].ParentID = rootID
	t.Nodes[folded].BranchLength = clampBranch(w.get(folded, rootID))
	t.RootID = rootID

	return t
}

func clampBranch(b float64) float64 {
	if b < 0 {
		return 0
	}
	return b
}
