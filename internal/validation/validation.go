package validation

import (
	"fmt"
	"strings"

	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

// Field identifies which part of a draft failed validation.
type Field string

const (
	FieldTitle      Field = "title"
	FieldDate       Field = "date"
	FieldStartTime  Field = "start_time"
	FieldEndTime    Field = "end_time"
	FieldRecurrence Field = "recurrence"
)

// Issue is a single validation failure tied to the offending field.
type Issue struct {
	Field   Field
	Message string
}

// Result collects all issues found in one validation pass.
type Result struct {
	Issues []Issue
}

// OK returns true if no issues were found.
func (r Result) OK() bool {
	return len(r.Issues) == 0
}

// Err converts the result into an error, or nil when the draft is valid.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &DraftError{Issues: r.Issues}
}

// DraftError is the error form of a failed validation; it keeps the
// field-level issues so callers can highlight the offending inputs.
type DraftError struct {
	Issues []Issue
}

func (e *DraftError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	}
	return "invalid event: " + strings.Join(parts, "; ")
}

// ValidateDraft checks an event draft before any persistence happens. All
// failures are collected in one pass so the caller can report every bad
// field at once.
func ValidateDraft(d models.EventDraft) Result {
	var r Result

	if strings.TrimSpace(d.Title) == "" {
		r.add(FieldTitle, "title must not be empty")
	}

	if d.Date == "" {
		r.add(FieldDate, "date is required")
	} else if _, err := utils.ParseDate(d.Date); err != nil {
		r.add(FieldDate, fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", d.Date))
	}

	r.checkTimes(d.StartTime, d.EndTime)

	if d.Recurrence != nil {
		r.checkRecurrence(*d.Recurrence, d.Date)
	}

	return r
}

// ValidateTimeRange checks a start/end pair on its own, for flows that take
// times without a full draft.
func ValidateTimeRange(start, end string) Result {
	var r Result
	r.checkTimes(start, end)
	return r
}

func (r *Result) add(f Field, msg string) {
	r.Issues = append(r.Issues, Issue{Field: f, Message: msg})
}

func (r *Result) checkTimes(start, end string) {
	startMin, startErr := utils.ClockToMinutes(start)
	if startErr != nil {
		r.add(FieldStartTime, fmt.Sprintf("invalid start time %q (expected HH:MM)", start))
	}
	endMin, endErr := utils.ClockToMinutes(end)
	if endErr != nil {
		r.add(FieldEndTime, fmt.Sprintf("invalid end time %q (expected HH:MM)", end))
	}
	if startErr == nil && endErr == nil && endMin <= startMin {
		r.add(FieldEndTime, fmt.Sprintf("end time %s must be after start time %s", end, start))
	}
}

func (r *Result) checkRecurrence(rec models.Recurrence, dateStr string) {
	switch rec.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
	default:
		r.add(FieldRecurrence, fmt.Sprintf("invalid recurrence frequency %q", rec.Frequency))
	}

	if rec.Until == "" {
		return
	}
	until, err := utils.ParseDate(rec.Until)
	if err != nil {
		r.add(FieldRecurrence, fmt.Sprintf("invalid recurrence end date %q", rec.Until))
		return
	}
	if start, err := utils.ParseDate(dateStr); err == nil && until.Before(start) {
		r.add(FieldRecurrence, fmt.Sprintf("recurrence end %s is before the event date %s", rec.Until, dateStr))
	}
}
