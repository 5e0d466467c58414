package phylo

import (
	"fmt"

	"github.com/phyloflow/phyloflow-go/internal/distance"
)

// upgma performs average-linkage clustering. Cluster heights grow
// monotonically, so within every cluster the leaves sit equidistant
// from its node (a molecular-clock tree).
func upgma(m *distance.Matrix) *Tree {
	t := newTree(UPGMA)
	height := make(map[string]float64, m.Size())
	size := make(map[string]int, m.Size())
	for _, id := range m.SequenceIDs {
		t.addLeaf(id, id)
		height[id] = 0
		size[id] = 1
	}
	w := newWorkingMatrix(m)

	internal := 0
	for len(w.active) > 2 {
		// Closest pair; ties keep the first hit in row-major order
		var bestI, bestJ string
		bestD := 0.0
		first := true
		for a := 0; a < len(w.active); a++ {
			for b := a + 1; b < len(w.active); b++ {
				i, j := w.active[a], w.active[b]
				if d := w.get(i, j); first || d < bestD {
					bestD = d
					bestI, bestJ = i, j
					first = false
				}
			}
		}

		internal++
		id := fmt.Sprintf("node-%d", internal)
		newHeight := bestD / 2
		t.addInternal(id, bestI, bestJ)
		t.Nodes[bestI].BranchLength = clampBranch(newHeight - height[bestI])
		t.Nodes[bestJ].BranchLength = clampBranch(newHeight - height[bestJ])
		height[id] = newHeight

		// Size-weighted average distance to the remaining clusters
		si, sj := size[bestI], size[bestJ]
		size[id] = si + sj
		toRest := make(map[string]float64)
		for _, k := range w.active {
			if k == bestI || k == bestJ {
				continue
			}
			toRest[k] = (w.get(bestI, k)*float64(si) + w.get(bestJ, k)*float64(sj)) /
				float64(si+sj)
		}
		w.merge(bestI, bestJ, id, toRest)
	}

	// Fold the surviving cluster into the last merge node instead of
	// midpoint-rooting the final pair. The folded branch spans the
	// remaining average distance above the root's height, so tree path
	// lengths through the root stay faithful to the matrix.
	folded, rootID := w.active[0], w.active[1]
	root := t.Nodes[rootID]
	root.Children = append(root.Children, folded)
	t.Nodes[folded].ParentID = rootID
	t.Nodes[folded].BranchLength = clampBranch(w.get(folded, rootID) - height[rootID])
	t.RootID = rootID

	return t
}
