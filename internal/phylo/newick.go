package phylo

import (
	"fmt"
	"strconv"
	"strings"
)

// ToNewick renders the tree as Newick text.
//
// Children appear in merge order and floating-point formatting is
// shortest-exact, so the same tree always yields the same string.
// Internal nodes carry their bootstrap support as a label when present.
func ToNewick(t *Tree) string {
	var sb strings.Builder
	writeNewick(t, t.RootID, &sb, true)
	sb.WriteByte(';')
	return sb.String()
}

func writeNewick(t *Tree, id string, sb *strings.Builder, isRoot bool) {
	n := t.Nodes[id]
	if n.IsLeaf {
		sb.WriteString(n.Name)
	} else {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeNewick(t, c, sb, false)
		}
		sb.WriteByte(')')
		if n.HasSupport {
			sb.WriteString(formatFloat(n.Support))
		}
	}
	if !isRoot {
		sb.WriteByte(':')
		sb.WriteString(formatFloat(n.BranchLength))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseNewick reads a single Newick tree. Leaf names become both node
// id and name; internal node labels are interpreted as support values.
func ParseNewick(text string) (*Tree, error) {
	p := &newickParser{
		input: strings.TrimSpace(text),
		tree:  newTree(UnknownMethod),
	}
	rootID, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if !p.consume(';') {
		return nil, p.errorf("expected ';'")
	}
	if p.pos != len(p.input) {
		return nil, p.errorf("trailing characters after ';'")
	}
	p.tree.RootID = rootID
	return p.tree, nil
}

type newickParser struct {
	input    string
	pos      int
	internal int
	tree     *Tree
}

func (p *newickParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("newick: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *newickParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *newickParser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// parseNode parses a subtree and returns the id of its node.
func (p *newickParser) parseNode() (string, error) {
	var n *Node
	if p.consume('(') {
		var children []string
		for {
			child, err := p.parseNode()
			if err != nil {
				return "", err
			}
			children = append(children, child)
			if p.consume(',') {
				continue
			}
			break
		}
		if !p.consume(')') {
			return "", p.errorf("expected ')'")
		}
		p.internal++
		n = p.tree.addInternal(fmt.Sprintf("node-%d", p.internal), children...)
		if label := p.readLabel(); label != "" {
			support, err := strconv.ParseFloat(label, 64)
			if err != nil {
				return "", p.errorf("invalid support label %q", label)
			}
			n.Support = support
			n.HasSupport = true
		}
	} else {
		name := p.readLabel()
		if name == "" {
			return "", p.errorf("expected leaf name")
		}
		if p.tree.Nodes[name] != nil {
			return "", p.errorf("duplicate leaf name %q", name)
		}
		n = p.tree.addLeaf(name, name)
	}

	if p.consume(':') {
		length, err := p.readNumber()
		if err != nil {
			return "", err
		}
		n.BranchLength = length
	}
	return n.ID, nil
}

func (p *newickParser) readLabel() string {
	start := p.pos
	for p.pos < len(p.input) && !strings.ContainsRune("(),:;", rune(p.input[p.pos])) {
		p.pos++
	}
	return strings.TrimSpace(p.input[start:p.pos])
}

func (p *newickParser) readNumber() (float64, error) {
	label := p.readLabel()
	f, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q", label)
	}
	return f, nil
}
