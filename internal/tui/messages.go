package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/personalab/persona-board/models"
)

// NavigateTo switches the root router to another page. An optional
// Payload message is delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult reports the outcome of an async login or signup command.
type LoginResult struct {
	Err     error
	Payload models.AuthPayload
}

// RegisterSuccessNotice is shown on the menu after a completed signup.
type RegisterSuccessNotice struct {
	Email string
}

type personasLoadedMsg struct {
	personas  []models.Persona
	fromCache bool
	err       error
}

type showPersonaMsg struct {
	persona models.Persona
}

type statusMsg struct {
	text string
}
