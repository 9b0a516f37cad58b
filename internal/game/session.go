// Package game implements the playthrough state machine and the learning
// mutation that grows the knowledge tree, plus the play statistics.
package game

import (
	"errors"
	"fmt"

	"github.com/abhisek/kinator/internal/tree"
)

// ErrCorruptTree is returned when a traversal hits a missing branch. A
// well-formed tree never produces this; it indicates corrupted storage.
var ErrCorruptTree = errors.New("decision tree is corrupt: question node with missing branch")

// TreeSaver persists the knowledge tree after a learning mutation.
type TreeSaver interface {
	SaveTree(root tree.Node) error
}

// step records one traversed question and the branch taken, so Learn can
// find the parent slot to rewrite.
type step struct {
	parent *tree.Question
	branch tree.Branch
}

// Session is one playthrough over the knowledge tree. It is either
// asking (positioned at a question) or guessing (positioned at a leaf);
// a session never ends on its own, callers restart or abandon it.
type Session struct {
	root    tree.Node
	path    []step
	current tree.Node
	saver   TreeSaver
}

// NewSession starts a session positioned at the root of the given tree.
func NewSession(root tree.Node, saver TreeSaver) *Session {
	return &Session{root: root, current: root, saver: saver}
}

// Root returns the session's knowledge tree.
func (s *Session) Root() tree.Node { return s.root }

// Guessing reports whether the session is positioned at a leaf.
func (s *Session) Guessing() bool { return tree.IsLeaf(s.current) }

// Depth returns the number of questions answered so far.
func (s *Session) Depth() int { return len(s.path) }

// CurrentText returns the question to ask, or the confirmation prompt
// for the current guess.
func (s *Session) CurrentText() string {
	switch n := s.current.(type) {
	case *tree.Guess:
		return fmt.Sprintf("¿Tu personaje es %s?", n.Name)
	case *tree.Question:
		return n.Text
	}
	return ""
}

// CurrentGuess returns the guessed name when guessing, else "".
func (s *Session) CurrentGuess() string {
	if n, ok := s.current.(*tree.Guess); ok {
		return n.Name
	}
	return ""
}

// Answer advances the session down the chosen branch. Ignored while
// guessing; callers are expected to check Guessing first.
func (s *Session) Answer(b tree.Branch) error {
	q, ok := s.current.(*tree.Question)
	if !ok {
		return nil
	}
	child := q.Child(b)
	if child == nil {
		return ErrCorruptTree
	}
	s.path = append(s.path, step{parent: q, branch: b})
	s.current = child
	return nil
}

// Restart clears the path and returns to the root. The tree itself is
// untouched.
func (s *Session) Restart() {
	s.path = s.path[:0]
	s.current = s.root
}

// Learn replaces the wrongly guessed leaf with a new question that
// discriminates trueName from the old guess, then persists the tree.
// The old name survives as the sibling leaf; duplicate names elsewhere
// in the tree are allowed. Ignored unless the session is guessing.
func (s *Session) Learn(trueName, newQuestion string, yesForTrueName bool) error {
	old, ok := s.current.(*tree.Guess)
	if !ok {
		return nil
	}

	node := &tree.Question{Text: tree.NormalizeQuestion(newQuestion)}
	if yesForTrueName {
		node.Yes = &tree.Guess{Name: trueName}
		node.No = &tree.Guess{Name: old.Name}
	} else {
		node.Yes = &tree.Guess{Name: old.Name}
		node.No = &tree.Guess{Name: trueName}
	}

	if len(s.path) == 0 {
		// The wrong guess was a one-node tree; the new question
		// becomes the whole tree.
		s.root = node
	} else {
		last := s.path[len(s.path)-1]
		last.parent.SetChild(last.branch, node)
	}
	s.current = node

	if s.saver != nil {
		if err := s.saver.SaveTree(s.root); err != nil {
			return fmt.Errorf("persist learned tree: %w", err)
		}
	}
	return nil
}
