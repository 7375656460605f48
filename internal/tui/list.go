package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/personalab/persona-board/internal/adapter"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/models"
)

// listModel shows the persona catalogue. The list is fetched from the
// server on entry; on success the local SQLite snapshot is refreshed, and
// when the server is unreachable the snapshot is rendered instead.
type listModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	cache   *store.PersonaCache
	logger  *logger.Logger

	personas  []models.Persona
	idx       int
	loading   bool
	fromCache bool
	spinner   spinner.Model
	errMsg    string
}

func newListModel(ctx context.Context, serverAdapter adapter.ServerAdapter, cache *store.PersonaCache, log *logger.Logger) *listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &listModel{
		ctx:     ctx,
		adapter: serverAdapter,
		cache:   cache,
		logger:  log,
		spinner: s,
		loading: true,
	}
}

func (m *listModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoadPersonas())
}

func (m *listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		// arrives when the router opens the list after login; nothing to
		// keep, the reload happens in Init
		return m, nil

	case personasLoadedMsg:
		m.loading = false
		m.personas = msg.personas
		m.fromCache = msg.fromCache
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		if m.idx >= len(m.personas) {
			m.idx = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "up", "k":
			if m.idx > 0 {
				m.idx--
			}
		case "down", "j":
			if m.idx < len(m.personas)-1 {
				m.idx++
			}
		case "r":
			return m, m.Init()
		case "enter":
			if persona, ok := m.current(); ok {
				return m, func() tea.Msg {
					return NavigateTo{Page: "detail", Payload: showPersonaMsg{persona: persona}}
				}
			}
		}
	}

	return m, nil
}

func (m *listModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else if len(m.personas) == 0 {
		b.WriteString("No personas yet\n")
	} else {
		for i, persona := range m.personas {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-4d %s\n", cursor, persona.ID, fitText(persona.Name, 40)))
		}
	}

	if m.fromCache {
		b.WriteString("\nShowing cached snapshot (server unreachable)\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("PERSONAS", strings.TrimRight(b.String(), "\n"), "enter: open │ r: reload │ esc: menu")
}

func (m *listModel) current() (models.Persona, bool) {
	if len(m.personas) == 0 || m.idx < 0 || m.idx >= len(m.personas) {
		return models.Persona{}, false
	}
	return m.personas[m.idx], true
}

func (m *listModel) cmdLoadPersonas() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	cache := m.cache
	log := m.logger

	return func() tea.Msg {
		personas, err := serverAdapter.Personas(ctx)
		if err == nil {
			if cache != nil {
				if cacheErr := cache.Replace(ctx, personas); cacheErr != nil {
					log.Err(cacheErr).Msg("refreshing persona cache failed")
				}
			}
			return personasLoadedMsg{personas: personas}
		}

		log.Err(err).Msg("loading personas from server failed")

		if cache != nil {
			if cached, cacheErr := cache.List(ctx); cacheErr == nil && len(cached) > 0 {
				return personasLoadedMsg{personas: cached, fromCache: true, err: err}
			}
		}

		return personasLoadedMsg{err: err}
	}
}
