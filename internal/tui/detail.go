package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/personalab/persona-board/models"
)

// detailModel renders one persona card. The quote and avatar URL can be
// copied to the system clipboard.
type detailModel struct {
	persona models.Persona
	status  string
}

func newDetailModel() *detailModel {
	return &detailModel{}
}

func (m *detailModel) Init() tea.Cmd {
	return nil
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showPersonaMsg:
		m.persona = msg.persona
		m.status = ""
		return m, nil

	case statusMsg:
		m.status = msg.text
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "list"} }
		case "c":
			return m, cmdCopy("Quote", m.persona.Quote)
		case "u":
			return m, cmdCopy("Avatar URL", m.persona.AvatarURL)
		}
	}

	return m, nil
}

func (m *detailModel) View() string {
	p := m.persona

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  (id %d, owner %d)\n\n", p.Name, p.ID, p.UserID))
	b.WriteString(fmt.Sprintf("Quote:       %s\n", valueOrDash(p.Quote)))
	b.WriteString(fmt.Sprintf("Description: %s\n", valueOrDash(p.Description)))
	b.WriteString(fmt.Sprintf("Attitudes:   %s\n", valueOrDash(p.Attitudes)))
	b.WriteString(fmt.Sprintf("Pain points: %s\n", valueOrDash(p.PainPoints)))
	b.WriteString(fmt.Sprintf("Jobs/needs:  %s\n", valueOrDash(p.JobsNeeds)))
	b.WriteString(fmt.Sprintf("Activities:  %s\n", valueOrDash(p.Activities)))
	b.WriteString(fmt.Sprintf("Avatar URL:  %s\n", valueOrDash(p.AvatarURL)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Created:     %s\n", formatTimestamp(p.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated:     %s\n", formatTimestamp(p.LastUpdated)))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PERSONA", strings.TrimRight(b.String(), "\n"), "c: copy quote │ u: copy avatar URL │ esc: back")
}

func cmdCopy(what string, value *string) tea.Cmd {
	return func() tea.Msg {
		if value == nil || *value == "" {
			return statusMsg{text: "Nothing to copy"}
		}
		if err := clipboard.WriteAll(*value); err != nil {
			return statusMsg{text: "Clipboard unavailable"}
		}
		return statusMsg{text: what + " copied to clipboard"}
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
