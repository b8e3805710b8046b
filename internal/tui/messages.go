package tui

import "github.com/Veraticus/homeserve/internal/service"

// Data loading messages.
type catalogLoadedMsg struct {
	err      error
	snapshot *service.Snapshot
}
