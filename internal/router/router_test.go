package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushPop(t *testing.T) {
	first := &stubScreen{title: "first"}
	r := New(first)

	second := &stubScreen{title: "second"}
	r.Push(second)

	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("active = %q, want second", r.Active().Title())
	}
	if !second.initRan {
		t.Error("push did not run Init")
	}

	r.Pop()
	if r.Active().Title() != "first" {
		t.Errorf("active after pop = %q, want first", r.Active().Title())
	}

	// The last screen never pops.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping the last screen, want 1", r.Depth())
	}
}

func TestUpdateRoutesToActive(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	r := New(first)

	r.Update(PushMsg{Screen: second})
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if second.updates != 1 {
		t.Errorf("active screen saw %d updates, want 1", second.updates)
	}
	if first.updates != 0 {
		t.Errorf("inactive screen saw %d updates, want 0", first.updates)
	}

	r.Update(PopMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("active = %q after PopMsg, want first", r.Active().Title())
	}
}
