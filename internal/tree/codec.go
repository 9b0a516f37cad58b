package tree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Serialized form uses stable keys: "q", "yes", "no" for question nodes
// and "guess" for leaves. Imported and exported documents share this
// shape.

// ErrMalformed is wrapped by all decode errors caused by a document that
// is not a well-formed tree (as opposed to one that is not JSON at all).
var ErrMalformed = errors.New("malformed tree document")

type encodedQuestion struct {
	Q   string `json:"q"`
	Yes Node   `json:"yes"`
	No  Node   `json:"no"`
}

type encodedGuess struct {
	Guess string `json:"guess"`
}

// MarshalJSON encodes the question node with its children.
func (q *Question) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedQuestion{Q: q.Text, Yes: q.Yes, No: q.No})
}

// MarshalJSON encodes the leaf.
func (g *Guess) MarshalJSON() ([]byte, error) {
	return json.Marshal(encodedGuess{Guess: g.Name})
}

// Marshal serializes a tree with human-readable indentation.
func Marshal(n Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil root", ErrMalformed)
	}
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return append(data, '\n'), nil
}

// rawNode mirrors the document shape with presence information, so a
// node that is neither variant, both variants, or missing a child can be
// rejected.
type rawNode struct {
	Q     *string          `json:"q"`
	Yes   *json.RawMessage `json:"yes"`
	No    *json.RawMessage `json:"no"`
	Guess *string          `json:"guess"`
}

// Unmarshal parses a serialized tree, rejecting documents that do not
// satisfy the node invariant at every level.
func Unmarshal(data []byte) (Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tree document: %w", err)
	}
	return decode(raw, "$")
}

func decode(raw rawNode, at string) (Node, error) {
	switch {
	case raw.Guess != nil && raw.Q != nil:
		return nil, fmt.Errorf("%w: node at %s has both question and guess", ErrMalformed, at)

	case raw.Guess != nil:
		if raw.Yes != nil || raw.No != nil {
			return nil, fmt.Errorf("%w: leaf at %s has children", ErrMalformed, at)
		}
		if *raw.Guess == "" {
			return nil, fmt.Errorf("%w: leaf at %s has empty name", ErrMalformed, at)
		}
		return &Guess{Name: *raw.Guess}, nil

	case raw.Q != nil:
		if *raw.Q == "" {
			return nil, fmt.Errorf("%w: question at %s is empty", ErrMalformed, at)
		}
		if raw.Yes == nil || raw.No == nil {
			return nil, fmt.Errorf("%w: question at %s is missing a branch", ErrMalformed, at)
		}
		yes, err := decodeChild(*raw.Yes, at+".yes")
		if err != nil {
			return nil, err
		}
		no, err := decodeChild(*raw.No, at+".no")
		if err != nil {
			return nil, err
		}
		return &Question{Text: *raw.Q, Yes: yes, No: no}, nil

	default:
		return nil, fmt.Errorf("%w: node at %s has neither question nor guess", ErrMalformed, at)
	}
}

func decodeChild(data json.RawMessage, at string) (Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: node at %s: %v", ErrMalformed, at, err)
	}
	return decode(raw, at)
}
