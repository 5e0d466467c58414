package phylo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyloflow/phyloflow-go/internal/distance"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// matrixOf builds a symmetric distance matrix from its upper triangle.
func matrixOf(ids []string, upper ...float64) *distance.Matrix {
	n := len(ids)
	m := &distance.Matrix{
		SequenceIDs: ids,
		Values:      make([][]float64, n),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.Values[i][j] = upper[k]
			m.Values[j][i] = upper[k]
			k++
		}
	}
	return m
}

// rootDistance sums branch lengths from a node up to the root.
func rootDistance(t *testing.T, tree *Tree, id string) float64 {
	t.Helper()
	dist := 0.0
	for ; id != tree.RootID; id = tree.Node(id).ParentID {
		dist += tree.Node(id).BranchLength
	}
	return dist
}

func TestBuildErrors(t *testing.T) {
	t.Run("too few taxa", func(t *testing.T) {
		m := matrixOf([]string{"A", "B"}, 1.0)
		_, err := Build(m, NeighborJoining)
		assert.ErrorIs(t, err, ErrInsufficientTaxa)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		m := matrixOf([]string{"A", "A", "B"}, 1, 1, 1)
		_, err := Build(m, UPGMA)
		require.Error(t, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		m := matrixOf([]string{"A", "B", "C"}, 1, 1, 1)
		_, err := Build(m, UnknownMethod)
		require.Error(t, err)
	})
}

func TestNeighborJoiningAdditive(t *testing.T) {
	// Additive matrix for the unrooted tree with terminal branches
	// A:2, B:3, C:4, D:5 and a central edge of length 1
	m := matrixOf([]string{"A", "B", "C", "D"},
		5, 7, 8, // A-B, A-C, A-D
		8, 9, // B-C, B-D
		9) // C-D

	tree, err := Build(m, NeighborJoining)
	require.NoError(t, err)

	assert.Equal(t, NeighborJoining, tree.Method)
	assert.Len(t, tree.Nodes, 6) // 4 leaves + 1 internal + root
	assert.Len(t, tree.Leaves(), 4)

	root := tree.Root()
	require.NotNil(t, root)
	assert.Empty(t, root.ParentID)
	assert.Len(t, root.Children, 3)

	// A and B merge first; C and D sit directly under the root
	inner := tree.Node(tree.Node("A").ParentID)
	require.NotNil(t, inner)
	assert.NotEqual(t, tree.RootID, inner.ID)
	assert.Equal(t, []string{"A", "B"}, inner.Children)
	assert.Equal(t, tree.RootID, tree.Node("C").ParentID)
	assert.Equal(t, tree.RootID, tree.Node("D").ParentID)

	// Exact branch lengths for additive input
	assert.InDelta(t, 2.0, tree.Node("A").BranchLength, 1e-9)
	assert.InDelta(t, 3.0, tree.Node("B").BranchLength, 1e-9)
	assert.InDelta(t, 4.0, tree.Node("C").BranchLength, 1e-9)
	assert.InDelta(t, 5.0, tree.Node("D").BranchLength, 1e-9)
	assert.InDelta(t, 1.0, inner.BranchLength, 1e-9)

	assert.InDelta(t, 15.0, tree.TotalLength(), 1e-9)
	assert.InDelta(t, 5.0, tree.Depth(), 1e-9)
	assert.Equal(t, 1, tree.Polytomies())
}

func TestNeighborJoiningNegativeBranchClamped(t *testing.T) {
	// Strongly non-additive distances can push an NJ branch negative;
	// emitted lengths must never be
	m := matrixOf([]string{"A", "B", "C", "D"},
		0.1, 0.4, 0.45,
		0.35, 0.5,
		0.05)

	tree, err := Build(m, NeighborJoining)
	require.NoError(t, err)
	for _, id := range tree.Order {
		assert.GreaterOrEqual(t, tree.Node(id).BranchLength, 0.0, "node %s", id)
	}
}

func TestUPGMA(t *testing.T) {
	m := matrixOf([]string{"A", "B", "C", "D"},
		2, 6, 8,
		6, 8,
		8)

	tree, err := Build(m, UPGMA)
	require.NoError(t, err)

	assert.Equal(t, UPGMA, tree.Method)
	assert.Len(t, tree.Nodes, 6)
	assert.Len(t, tree.Root().Children, 3)

	// Merge order follows minimum distance: A joins B, then C joins
	// that cluster; D folds into the root with its remaining height
	inner := tree.Node(tree.Node("A").ParentID)
	require.NotNil(t, inner)
	assert.Equal(t, []string{"A", "B"}, inner.Children)
	assert.Equal(t, tree.RootID, tree.Node("C").ParentID)
	assert.Equal(t, tree.RootID, tree.Node("D").ParentID)

	assert.InDelta(t, 1.0, tree.Node("A").BranchLength, 1e-9)
	assert.InDelta(t, 2.0, inner.BranchLength, 1e-9)
	assert.InDelta(t, 3.0, tree.Node("C").BranchLength, 1e-9)
	assert.InDelta(t, 5.0, tree.Node("D").BranchLength, 1e-9)

	// Leaves below the root's own cluster stay equidistant from it
	assert.InDelta(t, 3.0, rootDistance(t, tree, "A"), 1e-9)
	assert.InDelta(t, 3.0, rootDistance(t, tree, "B"), 1e-9)
	assert.InDelta(t, 3.0, rootDistance(t, tree, "C"), 1e-9)

	// Path lengths through the root reproduce the matrix
	assert.InDelta(t, 8.0, rootDistance(t, tree, "D")+rootDistance(t, tree, "C"), 1e-9)
	assert.InDelta(t, 5.0, tree.Depth(), 1e-9)
}

func TestThreeTaxa(t *testing.T) {
	// A and B close, C saturated: both methods close the tree at a
	// four-node triple with A and B on the short branches
	for _, method := range []Method{NeighborJoining, UPGMA} {
		t.Run(method.String(), func(t *testing.T) {
			m := matrixOf([]string{"A", "B", "C"},
				0.1367, 3.0,
				3.0)

			tree, err := Build(m, method)
			require.NoError(t, err)

			assert.Len(t, tree.Nodes, 4) // 3 leaves + root
			root := tree.Root()
			assert.Len(t, root.Children, 3)
			for _, leaf := range tree.Leaves() {
				assert.Equal(t, tree.RootID, leaf.ParentID)
			}

			a := tree.Node("A").BranchLength
			b := tree.Node("B").BranchLength
			c := tree.Node("C").BranchLength
			assert.InDelta(t, 0.06835, a, 1e-9)
			assert.InDelta(t, 0.06835, b, 1e-9)
			assert.InDelta(t, 2.93165, c, 1e-9)
			assert.Less(t, a, c)
			assert.Less(t, b, c)
		})
	}
}

func TestBuildFromSequences(t *testing.T) {
	raw := map[string]string{
		"A": "ACGTACGT",
		"B": "ACGTACGA",
		"C": "TTTTTTTT",
	}
	var seqs []*sequence.Sequence
	for _, id := range []string{"A", "B", "C"} {
		s, err := sequence.New(id, raw[id])
		require.NoError(t, err)
		seqs = append(seqs, s)
	}
	m, err := distance.Build(seqs)
	require.NoError(t, err)

	for _, method := range []Method{NeighborJoining, UPGMA} {
		t.Run(method.String(), func(t *testing.T) {
			tree, err := Build(m, method)
			require.NoError(t, err)

			assert.Len(t, tree.Nodes, 4)
			children := tree.Root().Children
			assert.True(t, len(children) == 2 || len(children) == 3)

			// The close pair carries the short branches, the saturated
			// outgroup the long one
			assert.Less(t, tree.Node("A").BranchLength, tree.Node("C").BranchLength)
			assert.Less(t, tree.Node("B").BranchLength, tree.Node("C").BranchLength)
		})
	}
}

func TestBranchLengthsOrder(t *testing.T) {
	m := matrixOf([]string{"A", "B", "C", "D"},
		5, 7, 8,
		8, 9,
		9)
	tree, err := Build(m, NeighborJoining)
	require.NoError(t, err)

	lengths := tree.BranchLengths()
	assert.Len(t, lengths, len(tree.Nodes)-1)
	// Creation order: the four leaves, then the folded internal node
	assert.Equal(t, []float64{2, 3, 4, 5, 1}, lengths)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("nj")
	require.NoError(t, err)
	assert.Equal(t, NeighborJoining, m)

	m, err = ParseMethod("upgma")
	require.NoError(t, err)
	assert.Equal(t, UPGMA, m)

	_, err = ParseMethod("parsimony")
	require.Error(t, err)
}
