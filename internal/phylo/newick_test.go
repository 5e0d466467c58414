package phylo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNewick(t *testing.T) {
	m := matrixOf([]string{"A", "B", "C", "D"},
		5, 7, 8,
		8, 9,
		9)
	tree, err := Build(m, NeighborJoining)
	require.NoError(t, err)

	// The folded internal node comes last among the root's children
	assert.Equal(t, "(C:4,D:5,(A:2,B:3):1);", ToNewick(tree))
}

func TestToNewickUPGMA(t *testing.T) {
	m := matrixOf([]string{"A", "B", "C", "D"},
		2, 6, 8,
		6, 8,
		8)
	tree, err := Build(m, UPGMA)
	require.NoError(t, err)

	// The D branch spans its remaining average distance above the
	// root height of 3
	assert.Equal(t, "(C:3,(A:1,B:1):2,D:5);", ToNewick(tree))
}

func TestParseNewick(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text := "((A:2,B:3):0.5,(C:4,D:5):0.5);"
		tree, err := ParseNewick(text)
		require.NoError(t, err)

		assert.Equal(t, UnknownMethod, tree.Method)
		assert.Equal(t, []string{"A", "B", "C", "D"}, tree.LeafNames())
		assert.Len(t, tree.Nodes, 7)
		assert.InDelta(t, 3.0, tree.Node("B").BranchLength, 1e-9)
		assert.Equal(t, text, ToNewick(tree))
	})

	t.Run("support labels", func(t *testing.T) {
		tree, err := ParseNewick("((A:1,B:1)0.95:0.5,C:2);")
		require.NoError(t, err)

		inner := tree.Node(tree.Node("A").ParentID)
		require.NotNil(t, inner)
		assert.True(t, inner.HasSupport)
		assert.InDelta(t, 0.95, inner.Support, 1e-9)
		assert.False(t, tree.Root().HasSupport)

		assert.Equal(t, "((A:1,B:1)0.95:0.5,C:2);", ToNewick(tree))
	})

	t.Run("missing branch lengths default to zero", func(t *testing.T) {
		tree, err := ParseNewick("((A,B),C);")
		require.NoError(t, err)
		assert.Zero(t, tree.Node("A").BranchLength)
		assert.Equal(t, []string{"A", "B", "C"}, tree.LeafNames())
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		tree, err := ParseNewick("  ((A:1,B:1):1,C:2);\n")
		require.NoError(t, err)
		assert.Len(t, tree.Leaves(), 3)
	})

	t.Run("errors", func(t *testing.T) {
		for name, text := range map[string]string{
			"empty":             "",
			"unbalanced":        "((A:1,B:1):1,C:2",
			"missing semicolon": "(A:1,B:1)",
			"trailing garbage":  "(A:1,B:1);extra",
			"bad branch length": "(A:x,B:1);",
			"bad support":       "(A:1,B:1)high;",
			"duplicate leaf":    "(A:1,A:2);",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := ParseNewick(text)
				assert.Error(t, err, "input %q", text)
			})
		}
	})
}
