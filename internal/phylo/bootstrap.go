package phylo

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/phyloflow/phyloflow-go/internal/distance"
	"github.com/phyloflow/phyloflow-go/internal/sequence"
)

// BootstrapOptions controls support estimation.
type BootstrapOptions struct {
	Replicates int
	Seed       int64
}

// AddSupport estimates bootstrap support for the internal nodes of t.
//
// Each replicate resamples alignment columns with replacement over the
// shared leading length of the sequence set, rebuilds the distance
// matrix and the tree with the same method, and support is the fraction
// of replicates whose split set contains the node's split. The tree is
// modified in place; leaves and the root are left untouched.
func AddSupport(t *Tree, seqs []*sequence.Sequence, opts BootstrapOptions) error {
	if opts.Replicates <= 0 {
		return nil
	}
	if len(seqs) < 3 {
		return fmt.Errorf("%w: need at least 3 sequences for bootstrap, got %d",
			ErrInsufficientTaxa, len(seqs))
	}

	cols := seqs[0].Len()
	for _, s := range seqs {
		if s.Len() < cols {
			cols = s.Len()
		}
	}

	counts := make(map[string]int)
	rng := rand.New(rand.NewSource(opts.Seed))
	picked := make([]int, cols)

	for rep := 0; rep < opts.Replicates; rep++ {
		for i := range picked {
			picked[i] = rng.Intn(cols)
		}

		resampled := make([]*sequence.Sequence, len(seqs))
		for i, s := range seqs {
			var sb strings.Builder
			sb.Grow(cols)
			for _, c := range picked {
				sb.WriteByte(s.Residues[c])
			}
			// Residues were validated on the way in; resampling cannot
			// introduce new symbols
			resampled[i] = &sequence.Sequence{
				ID:       s.ID,
				Residues: sb.String(),
				Kind:     s.Kind,
			}
		}

		m, err := distance.Build(resampled)
		if err != nil {
			return fmt.Errorf("bootstrap replicate %d: %w", rep, err)
		}
		rt, err := Build(m, t.Method)
		if err != nil {
			return fmt.Errorf("bootstrap replicate %d: %w", rep, err)
		}
		for key := range rt.splitKeys() {
			counts[key]++
		}
	}

	ref := referenceLeaf(t)
	for _, id := range t.Order {
		n := t.Nodes[id]
		if n.IsLeaf || id == t.RootID {
			continue
		}
		key := t.splitKey(id, ref)
		n.Support = float64(counts[key]) / float64(opts.Replicates)
		n.HasSupport = true
	}
	return nil
}

// referenceLeaf returns the lexicographically smallest leaf name, used
// to canonicalize which side of a split is recorded.
func referenceLeaf(t *Tree) string {
	names := t.LeafNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// splitKey canonicalizes the bipartition induced by an internal node as
// a sorted name list of the side not containing the reference leaf.
func (t *Tree) splitKey(id, ref string) string {
	inside := make(map[string]bool)
	for _, name := range t.descendantLeafNames(id) {
		inside[name] = true
	}

	side := make([]string, 0, len(inside))
	if inside[ref] {
		for _, name := range t.LeafNames() {
			if !inside[name] {
				side = append(side, name)
			}
		}
	} else {
		for name := range inside {
			side = append(side, name)
		}
	}
	sort.Strings(side)
	return strings.Join(side, "|")
}

// splitKeys returns the set of non-trivial canonical splits of the tree.
func (t *Tree) splitKeys() map[string]bool {
	ref := referenceLeaf(t)
	total := len(t.Leaves())
	keys := make(map[string]bool)
	for _, id := range t.Order {
		n := t.Nodes[id]
		if n.IsLeaf || id == t.RootID {
			continue
		}
		under := len(t.descendantLeafNames(id))
		if under == 0 || under == total {
			continue
		}
		keys[t.splitKey(id, ref)] = true
	}
	return keys
}
