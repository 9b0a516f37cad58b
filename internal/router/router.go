// Package router keeps the stack of screens the app navigates between.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kinator/internal/ui/layout"
)

// Screen is one full-window view. Screens render only their content;
// the app draws the surrounding header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg asks the router to push a screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the router to pop the active screen.
type PopMsg struct{}

// Router is a stack of screens; the top one is active.
type Router struct {
	stack []Screen
}

// New creates a router showing the given screen.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Active returns the top screen, or nil for an empty stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the stack depth.
func (r *Router) Depth() int { return len(r.stack) }

// Push makes s the active screen and runs its Init.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the active screen. The last screen never pops.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Update routes navigation messages, forwarding everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.Push(msg.Screen)
	case PopMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
