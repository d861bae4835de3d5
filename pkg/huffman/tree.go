package huffman

import "strings"

// Node is a vertex of the code tree. A leaf has no children and carries a
// character; an internal node has exactly two children and its frequency is
// their sum.
type Node struct {
	Char        rune
	Freq        int
	Left, Right *Node

	seq int
}

func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// BuildTree assembles the code tree for ft by repeatedly merging the two
// lowest-frequency nodes. The first node popped becomes the left child.
//
// Ties on frequency go to the node created first: leaves in table order, then
// internal nodes in merge order. The same table therefore always yields the
// same tree.
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}
	h := &minHeap{arr: make([]*Node, 0, ft.Len())}
	for i, e := range ft.entries {
		h.push(&Node{Char: e.Char, Freq: e.Count, seq: i})
	}
	next := ft.Len()
	for h.size() > 1 {
		a := h.pop()
		b := h.pop()
		h.push(&Node{Freq: a.Freq + b.Freq, Left: a, Right: b, seq: next})
		next++
	}
	return h.pop(), nil
}

// InOrder lists the leaf characters met by an in-order walk of the tree.
func InOrder(root *Node) string {
	var sb strings.Builder
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		if n.IsLeaf() {
			sb.WriteRune(n.Char)
		}
		walk(n.Right)
	}
	walk(root)
	return sb.String()
}
