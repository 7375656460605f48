// Package tui implements the terminal client: a Bubble Tea application
// with menu, login, register, persona list and persona detail pages.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/personalab/persona-board/internal/adapter"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	adapter adapter.ServerAdapter
	cache   *store.PersonaCache
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, cache *store.PersonaCache, log *logger.Logger) (*TUI, error) {
	return &TUI{adapter: serverAdapter, cache: cache, logger: log}, nil
}

// Run starts the interactive session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.adapter),
		"register": NewRegisterModel(ctx, t.adapter),
		"list":     newListModel(ctx, t.adapter, t.cache, t.logger),
		"detail":   newDetailModel(),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
