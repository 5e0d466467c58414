package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/phyloflow/phyloflow-go/internal/phylo"
)

// ErrIncomparableTrees is returned when a tree has fewer than 3 leaves.
var ErrIncomparableTrees = errors.New("compare: incomparable trees")

// Comparison summarizes the agreement between two trees.
type Comparison struct {
	RobinsonFoulds        int
	NormalizedRF          float64
	SharedBipartitions    int
	TotalBipartitions     int
	TopologicalSimilarity float64

	// BranchLengths is set only when the topologies are identical and
	// the trees have the same node count.
	BranchLengths *BranchLengthStats
}

// BranchLengthStats compares branch lengths of two same-topology trees
// in node-creation order.
type BranchLengthStats struct {
	Correlation    float64
	RMSE           float64
	MeanSignedDiff float64
}

// Trees compares two phylogenetic trees by their bipartition sets.
func Trees(t1, t2 *phylo.Tree) (*Comparison, error) {
	l1, l2 := len(t1.Leaves()), len(t2.Leaves())
	if l1 < 3 {
		return nil, fmt.Errorf("%w: first tree has %d leaves", ErrIncomparableTrees, l1)
	}
	if l2 < 3 {
		return nil, fmt.Errorf("%w: second tree has %d leaves", ErrIncomparableTrees, l2)
	}

	index := leafIndex(t1, t2)
	width := uint(len(index))
	splits1 := bipartitions(t1, index, width)
	splits2 := bipartitions(t2, index, width)

	shared := countShared(splits1, splits2)
	rf := (len(splits1) - shared) + (len(splits2) - shared)

	c := &Comparison{
		RobinsonFoulds:     rf,
		SharedBipartitions: shared,
		TotalBipartitions:  len(splits1) + len(splits2) - shared,
	}

	maxLeaves := l1
	if l2 > maxLeaves {
		maxLeaves = l2
	}
	if maxRF := 2 * (maxLeaves - 3); maxRF > 0 {
		c.NormalizedRF = float64(rf) / float64(maxRF)
	}
	if total := len(splits1) + len(splits2); total > 0 {
		c.TopologicalSimilarity = 2 * float64(shared) / float64(total)
	} else {
		// Two 3-leaf stars have no non-trivial splits but agree exactly
		c.TopologicalSimilarity = 1.0
	}

	if rf == 0 && len(t1.Nodes) == len(t2.Nodes) {
		c.BranchLengths = branchLengthStats(t1.BranchLengths(), t2.BranchLengths())
	}
	return c, nil
}

func branchLengthStats(b1, b2 []float64) *BranchLengthStats {
	n := len(b1)
	if n == 0 || n != len(b2) {
		return nil
	}

	var sum1, sum2 float64
	for i := 0; i < n; i++ {
		sum1 += b1[i]
		sum2 += b2[i]
	}
	mean1, mean2 := sum1/float64(n), sum2/float64(n)

	var cov, var1, var2, sqDiff, signedDiff float64
	for i := 0; i < n; i++ {
		d1, d2 := b1[i]-mean1, b2[i]-mean2
		cov += d1 * d2
		var1 += d1 * d1
		var2 += d2 * d2
		diff := b1[i] - b2[i]
		sqDiff += diff * diff
		signedDiff += diff
	}

	stats := &BranchLengthStats{
		RMSE:           math.Sqrt(sqDiff / float64(n)),
		MeanSignedDiff: signedDiff / float64(n),
	}
	if var1 > 0 && var2 > 0 {
		stats.Correlation = cov / math.Sqrt(var1*var2)
	}
	return stats
}

func (c *Comparison) String() string {
	return fmt.Sprintf("Comparison { rf: %d, normalized: %.3f, shared: %d/%d, similarity: %.3f }",
		c.RobinsonFoulds, c.NormalizedRF, c.SharedBipartitions, c.TotalBipartitions,
		c.TopologicalSimilarity)
}
