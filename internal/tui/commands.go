package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/homeserve/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// catalogTimeout bounds the initial catalog load.
const catalogTimeout = 10 * time.Second

// loadCatalog reads every list the screens need.
func (m Model) loadCatalog() tea.Cmd {
	snapshot, catalog := m.config.Snapshot, m.config.Catalog
	return func() tea.Msg {
		if snapshot != nil {
			return catalogLoadedMsg{snapshot: snapshot}
		}
		if catalog == nil {
			return catalogLoadedMsg{err: fmt.Errorf("catalog not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		s, err := service.LoadSnapshot(ctx, catalog)
		if err != nil {
			return catalogLoadedMsg{err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return catalogLoadedMsg{snapshot: s}
	}
}
