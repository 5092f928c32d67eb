package calendar

import (
	"github.com/charmbracelet/lipgloss"

	"fieldagenda/internal/models"
)

// StyleToken identifies the presentation treatment for an event type.
type StyleToken string

const (
	TokenMeeting      StyleToken = "meeting"
	TokenFieldVisit   StyleToken = "field-visit"
	TokenMaintenance  StyleToken = "maintenance"
	TokenInstallation StyleToken = "installation"
	TokenTraining     StyleToken = "training"
	TokenOther        StyleToken = "other"
	TokenDefault      StyleToken = "default"
)

var tokenStyles = map[StyleToken]lipgloss.Style{
	TokenMeeting:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	TokenFieldVisit:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	TokenMaintenance:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	TokenInstallation: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	TokenTraining:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	TokenOther:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	TokenDefault:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// TokenFor maps an event type to its style token. The mapping is closed over
// the known types; anything else the backend sends resolves to the default
// token instead of failing.
func TokenFor(t models.EventType) StyleToken {
	switch t {
	case models.EventMeeting:
		return TokenMeeting
	case models.EventFieldVisit:
		return TokenFieldVisit
	case models.EventMaintenance:
		return TokenMaintenance
	case models.EventInstallation:
		return TokenInstallation
	case models.EventTraining:
		return TokenTraining
	case models.EventOther:
		return TokenOther
	default:
		return TokenDefault
	}
}

// StyleFor returns the lipgloss style for an event type.
func StyleFor(t models.EventType) lipgloss.Style {
	return tokenStyles[TokenFor(t)]
}
