package validation

import (
	"strings"
	"testing"

	"fieldagenda/internal/models"
)

func validDraft() models.EventDraft {
	return models.EventDraft{
		Title:     "Pump inspection",
		Type:      models.EventMaintenance,
		Date:      "2024-03-15",
		StartTime: "09:00",
		EndTime:   "10:00",
		OwnerID:   "p1",
	}
}

func hasIssue(r Result, f Field) bool {
	for _, issue := range r.Issues {
		if issue.Field == f {
			return true
		}
	}
	return false
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.EventDraft)
		wantField Field
	}{
		{
			name:   "valid draft passes",
			mutate: func(d *models.EventDraft) {},
		},
		{
			name:      "empty title",
			mutate:    func(d *models.EventDraft) { d.Title = "  " },
			wantField: FieldTitle,
		},
		{
			name:      "missing date",
			mutate:    func(d *models.EventDraft) { d.Date = "" },
			wantField: FieldDate,
		},
		{
			name:      "malformed date",
			mutate:    func(d *models.EventDraft) { d.Date = "15/03/2024" },
			wantField: FieldDate,
		},
		{
			name:      "end before start",
			mutate:    func(d *models.EventDraft) { d.StartTime = "10:00"; d.EndTime = "09:00" },
			wantField: FieldEndTime,
		},
		{
			name:      "end equals start",
			mutate:    func(d *models.EventDraft) { d.StartTime = "10:00"; d.EndTime = "10:00" },
			wantField: FieldEndTime,
		},
		{
			name:      "unparseable start time",
			mutate:    func(d *models.EventDraft) { d.StartTime = "9am" },
			wantField: FieldStartTime,
		},
		{
			name: "invalid recurrence frequency",
			mutate: func(d *models.EventDraft) {
				d.Recurrence = &models.Recurrence{Frequency: "fortnightly"}
			},
			wantField: FieldRecurrence,
		},
		{
			name: "recurrence until before date",
			mutate: func(d *models.EventDraft) {
				d.Recurrence = &models.Recurrence{Frequency: models.FrequencyWeekly, Until: "2024-03-01"}
			},
			wantField: FieldRecurrence,
		},
		{
			name: "recurrence until equal to date is allowed",
			mutate: func(d *models.EventDraft) {
				d.Recurrence = &models.Recurrence{Frequency: models.FrequencyDaily, Until: "2024-03-15"}
			},
		},
		{
			name: "recurrence without until is allowed",
			mutate: func(d *models.EventDraft) {
				d.Recurrence = &models.Recurrence{Frequency: models.FrequencyMonthly}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			r := ValidateDraft(d)
			if tt.wantField == "" {
				if !r.OK() {
					t.Errorf("ValidateDraft() issues = %v, want none", r.Issues)
				}
				return
			}
			if !hasIssue(r, tt.wantField) {
				t.Errorf("ValidateDraft() issues = %v, want field %s flagged", r.Issues, tt.wantField)
			}
			if r.Err() == nil {
				t.Error("Err() = nil for failed validation")
			}
		})
	}
}

func TestValidateDraftCollectsAllIssues(t *testing.T) {
	d := models.EventDraft{StartTime: "bad", EndTime: "worse"}
	r := ValidateDraft(d)
	for _, f := range []Field{FieldTitle, FieldDate, FieldStartTime, FieldEndTime} {
		if !hasIssue(r, f) {
			t.Errorf("field %s not flagged", f)
		}
	}
}

func TestDraftErrorMessageNamesFields(t *testing.T) {
	d := validDraft()
	d.StartTime = "10:00"
	d.EndTime = "09:00"
	err := ValidateDraft(d).Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "end_time") {
		t.Errorf("error %q does not name the offending field", err.Error())
	}
}

func TestValidateTimeRange(t *testing.T) {
	if r := ValidateTimeRange("09:00", "17:00"); !r.OK() {
		t.Errorf("valid range flagged: %v", r.Issues)
	}
	if r := ValidateTimeRange("17:00", "09:00"); r.OK() {
		t.Error("inverted range passed validation")
	}
}
