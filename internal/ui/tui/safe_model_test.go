package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSafeModel_ForwardsUpdates(t *testing.T) {
	s := wrapSafe(newModel(noWorkspace()), nil)
	if s.log == nil {
		t.Fatalf("expected a discard logger when none is given")
	}

	next, _ := s.Update(workspaceRefreshedMsg{cwd: "/ws", found: true, root: "/ws"})
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if !sm.m.workspaceFound || sm.m.workspaceRoot != "/ws" {
		t.Fatalf("expected inner model to be updated")
	}

	_, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
