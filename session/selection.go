package session

import (
	"fmt"

	"github.com/katalvlaran/streetpath/core"
)

// Select adds n to the selection. When two nodes are already selected the
// selection restarts with n. It returns the selection after the change.
func (s *Session) Select(n *core.Node) ([]*core.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.g == nil {
		return nil, ErrNoGraph
	}
	if !s.g.Contains(n) {
		return nil, fmt.Errorf("session: select: %w", core.ErrForeignNode)
	}
	if len(s.selection) >= maxSelection {
		s.selection = nil
	}
	s.selection = append(s.selection, n)

	return s.copySelection(), nil
}

// Unselect drops the most recent pick, if any, and returns the remaining
// selection.
func (s *Session) Unselect() []*core.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.selection); n > 0 {
		s.selection = s.selection[:n-1]
	}

	return s.copySelection()
}

// Reset clears the selection.
func (s *Session) Reset() {
	s.mu.Lock()
	s.selection = nil
	s.mu.Unlock()
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() []*core.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copySelection()
}

func (s *Session) copySelection() []*core.Node {
	out := make([]*core.Node, len(s.selection))
	copy(out, s.selection)

	return out
}
