package calendar

import (
	"testing"

	"fieldagenda/internal/models"
)

func TestTokenForKnownTypes(t *testing.T) {
	tests := []struct {
		eventType models.EventType
		want      StyleToken
	}{
		{models.EventMeeting, TokenMeeting},
		{models.EventFieldVisit, TokenFieldVisit},
		{models.EventMaintenance, TokenMaintenance},
		{models.EventInstallation, TokenInstallation},
		{models.EventTraining, TokenTraining},
		{models.EventOther, TokenOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			if got := TokenFor(tt.eventType); got != tt.want {
				t.Errorf("TokenFor(%s) = %s, want %s", tt.eventType, got, tt.want)
			}
		})
	}
}

func TestTokenForUnknownTypeFallsBack(t *testing.T) {
	// A type the backend starts sending before this client knows about it.
	if got := TokenFor(models.EventType("inspection")); got != TokenDefault {
		t.Errorf("TokenFor(unknown) = %s, want default", got)
	}
	if got := TokenFor(models.EventType("")); got != TokenDefault {
		t.Errorf("TokenFor(empty) = %s, want default", got)
	}
}

func TestStyleForAlwaysRenders(t *testing.T) {
	// Every token, known or not, must resolve to a usable style.
	for _, typ := range []models.EventType{models.EventMeeting, "inspection", ""} {
		st := StyleFor(typ)
		if st.Render("x") == "" {
			t.Errorf("StyleFor(%q) produced an empty render", typ)
		}
	}
}
