// Package compare measures topological agreement between two trees.
//
// Each internal edge of a tree splits the leaf set into two groups; the
// Robinson-Foulds distance counts the splits present in exactly one of
// the two trees. Splits are held as bit sets over a shared leaf index.
package compare

import (
	"sort"

	"github.com/fredericlemoine/bitset"

	"github.com/phyloflow/phyloflow-go/internal/phylo"
)

// leafIndex assigns a stable bit position to every leaf name across
// both trees.
func leafIndex(trees ...*phylo.Tree) map[string]uint {
	seen := make(map[string]bool)
	var names []string
	for _, t := range trees {
		for _, name := range t.LeafNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	index := make(map[string]uint, len(names))
	for i, name := range names {
		index[name] = uint(i)
	}
	return index
}

// bipartitions extracts the non-trivial splits of a tree as canonical
// bit sets over the shared index. The side recorded is the one not
// containing the tree's first leaf, so the two complementary views of a
// split always canonicalize identically.
func bipartitions(t *phylo.Tree, index map[string]uint, width uint) []*bitset.BitSet {
	leaves := t.LeafNames()
	total := len(leaves)
	ref := leaves[0]

	var splits []*bitset.BitSet
	for _, id := range t.Order {
		n := t.Node(id)
		if n.IsLeaf || id == t.RootID {
			continue
		}
		// Pendant-edge splits (a single leaf on either side) exist in
		// every tree over the same taxa and carry no signal
		names := descendants(t, id)
		if len(names) < 2 || len(names) > total-2 {
			continue
		}

		inside := make(map[string]bool, len(names))
		for _, name := range names {
			inside[name] = true
		}

		bs := bitset.New(width)
		if inside[ref] {
			for _, name := range leaves {
				if !inside[name] {
					bs.Set(index[name])
				}
			}
		} else {
			for _, name := range names {
				bs.Set(index[name])
			}
		}

		if !containsSplit(splits, bs) {
			splits = append(splits, bs)
		}
	}
	return splits
}

// descendants collects leaf names beneath a node by id-following.
func descendants(t *phylo.Tree, id string) []string {
	n := t.Node(id)
	if n.IsLeaf {
		return []string{n.Name}
	}
	var names []string
	for _, c := range n.Children {
		names = append(names, descendants(t, c)...)
	}
	return names
}

func containsSplit(splits []*bitset.BitSet, bs *bitset.BitSet) bool {
	for _, s := range splits {
		if s.Equal(bs) {
			return true
		}
	}
	return false
}

// countShared returns the number of splits present in both lists.
func countShared(a, b []*bitset.BitSet) int {
	shared := 0
	for _, s := range a {
		if containsSplit(b, s) {
			shared++
		}
	}
	return shared
}
