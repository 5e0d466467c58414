// Package phylo builds phylogenetic trees from distance matrices.
//
// Trees are stored as an arena: a flat table of nodes keyed by id, with
// parent and child links held as ids rather than pointers. Two distance
// methods are implemented, Neighbor-Joining and UPGMA, plus Newick
// serialization and optional bootstrap support estimation.
package phylo

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInsufficientTaxa is returned when fewer than 3 taxa are supplied.
var ErrInsufficientTaxa = errors.New("phylo: insufficient taxa")

// Method selects the tree construction algorithm.
type Method int

const (
	// UnknownMethod marks trees not built here (e.g. parsed from Newick)
	UnknownMethod Method = iota
	// NeighborJoining is the Saitou-Nei agglomerative method
	NeighborJoining
	// UPGMA is average-linkage clustering producing an ultrametric tree
	UPGMA
)

func (m Method) String() string {
	switch m {
	case NeighborJoining:
		return "nj"
	case UPGMA:
		return "upgma"
	default:
		return "unknown"
	}
}

// ParseMethod resolves a method name ("nj" or "upgma").
func ParseMethod(s string) (Method, error) {
	switch s {
	case "nj", "neighbor-joining":
		return NeighborJoining, nil
	case "upgma":
		return UPGMA, nil
	default:
		return UnknownMethod, fmt.Errorf("phylo: unknown tree method %q", s)
	}
}

// Node is one entry in the tree arena. Relations are held by id so the
// structure stays acyclic and serializable.
type Node struct {
	ID           string
	Name         string
	IsLeaf       bool
	ParentID     string
	Children     []string
	BranchLength float64
	Support      float64
	HasSupport   bool
}

// Tree owns all of its nodes; no node is shared between trees.
type Tree struct {
	Method Method
	Nodes  map[string]*Node
	RootID string

	// Order holds node ids in creation order; serialization and
	// branch-length comparisons depend on it being stable.
	Order []string
}

func newTree(method Method) *Tree {
	return &Tree{
		Method: method,
		Nodes:  make(map[string]*Node),
	}
}

func (t *Tree) add(n *Node) *Node {
	t.Nodes[n.ID] = n
	t.Order = append(t.Order, n.ID)
	return n
}

func (t *Tree) addLeaf(id, name string) *Node {
	return t.add(&Node{ID: id, Name: name, IsLeaf: true})
}

// addInternal creates an internal node over the given children and
// rewires their parent links.
func (t *Tree) addInternal(id string, children ...string) *Node {
	n := t.add(&Node{ID: id, Children: append([]string(nil), children...)})
	for _, c := range children {
		t.Nodes[c].ParentID = id
	}
	return n
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.Nodes[t.RootID]
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	return t.Nodes[id]
}

// Leaves returns the leaf nodes in creation order.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	for _, id := range t.Order {
		if n := t.Nodes[id]; n.IsLeaf {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// LeafNames returns the sorted set of leaf names.
func (t *Tree) LeafNames() []string {
	var names []string
	for _, n := range t.Leaves() {
		names = append(names, n.Name)
	}
	sort.Strings(names)
	return names
}

// TotalLength returns the sum of all branch lengths.
func (t *Tree) TotalLength() float64 {
	total := 0.0
	for _, id := range t.Order {
		total += t.Nodes[id].BranchLength
	}
	return total
}

// Depth returns the maximum cumulative root-to-leaf branch length.
func (t *Tree) Depth() float64 {
	var walk func(id string, acc float64) float64
	walk = func(id string, acc float64) float64 {
		n := t.Nodes[id]
		if n.IsLeaf {
			return acc
		}
		deepest := acc
		for _, c := range n.Children {
			if d := walk(c, acc+t.Nodes[c].BranchLength); d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	return walk(t.RootID, 0)
}

// Polytomies counts internal nodes with more than two children.
func (t *Tree) Polytomies() int {
	count := 0
	for _, id := range t.Order {
		if n := t.Nodes[id]; !n.IsLeaf && len(n.Children) > 2 {
			count++
		}
	}
	return count
}

// BranchLengths returns the branch lengths of all non-root nodes in
// creation order.
func (t *Tree) BranchLengths() []float64 {
	var lengths []float64
	for _, id := range t.Order {
		if id == t.RootID {
			continue
		}
		lengths = append(lengths, t.Nodes[id].BranchLength)
	}
	return lengths
}

// descendantLeafNames collects the leaf names beneath a node.
func (t *Tree) descendantLeafNames(id string) []string {
	var names []string
	var walk func(string)
	walk = func(id string) {
		n := t.Nodes[id]
		if n.IsLeaf {
			names = append(names, n.Name)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(id)
	return names
}

func (t *Tree) String() string {
	return fmt.Sprintf("Tree { method: %s, nodes: %d, leaves: %d, length: %.4f }",
		t.Method, len(t.Nodes), len(t.Leaves()), t.TotalLength())
}
