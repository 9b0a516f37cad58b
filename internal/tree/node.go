// Package tree defines the decision tree that holds everything the game
// knows: internal nodes carry a yes/no question, leaves carry a character
// name. The two variants are distinct types so a node can never be half
// question, half guess.
package tree

import "strings"

// Node is either a *Question or a *Guess.
type Node interface {
	node()
}

// Question is an internal node. Both children are always present in a
// well-formed tree.
type Question struct {
	Text string
	Yes  Node
	No   Node
}

// Guess is a leaf holding a single candidate character name.
type Guess struct {
	Name string
}

func (*Question) node() {}
func (*Guess) node()    {}

// Branch identifies which child of a Question an answer leads to.
type Branch int

const (
	BranchYes Branch = iota
	BranchNo
)

func (b Branch) String() string {
	if b == BranchYes {
		return "yes"
	}
	return "no"
}

// Child returns the child of q on the given branch.
func (q *Question) Child(b Branch) Node {
	if b == BranchYes {
		return q.Yes
	}
	return q.No
}

// SetChild replaces the child of q on the given branch.
func (q *Question) SetChild(b Branch, n Node) {
	if b == BranchYes {
		q.Yes = n
	} else {
		q.No = n
	}
}

// IsLeaf reports whether n is a guess leaf.
func IsLeaf(n Node) bool {
	_, ok := n.(*Guess)
	return ok
}

// NormalizeQuestion trims surrounding whitespace and appends a trailing
// "?" when missing. Applied only to newly authored questions, never to
// content already in the tree.
func NormalizeQuestion(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasSuffix(text, "?") {
		text += "?"
	}
	return text
}

// Equal reports whether two trees have identical structure and content.
func Equal(a, b Node) bool {
	switch an := a.(type) {
	case *Guess:
		bn, ok := b.(*Guess)
		return ok && an.Name == bn.Name
	case *Question:
		bn, ok := b.(*Question)
		return ok && an.Text == bn.Text && Equal(an.Yes, bn.Yes) && Equal(an.No, bn.No)
	}
	return a == nil && b == nil
}

// Count returns the number of question nodes and leaves in the tree.
func Count(n Node) (questions, leaves int) {
	switch t := n.(type) {
	case *Guess:
		return 0, 1
	case *Question:
		yq, yl := Count(t.Yes)
		nq, nl := Count(t.No)
		return yq + nq + 1, yl + nl
	}
	return 0, 0
}
