package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"fieldagenda/internal/constants"
	"fieldagenda/internal/models"
	"fieldagenda/internal/utils"
)

// ExpandOccurrences turns an event with a recurrence rule into the concrete
// occurrence rows to store: the base event first, then one standalone event
// per later occurrence, each with its own ID and the same times. An event
// without recurrence expands to just itself.
//
// Expansion happens here, on the persistence side, so the calendar engine
// only ever sees plain dated events. Rules without an end date are bounded
// to one year from the start and capped at MaxOccurrencesPerRule.
func ExpandOccurrences(ev models.Event) ([]models.Event, error) {
	if ev.Recurrence == nil {
		return []models.Event{ev}, nil
	}

	start, err := utils.ParseDate(ev.Date)
	if err != nil {
		return nil, fmt.Errorf("cannot expand recurrence: invalid date %q: %w", ev.Date, err)
	}

	freq, err := ruleFrequency(ev.Recurrence.Frequency)
	if err != nil {
		return nil, err
	}

	opt := rrule.ROption{
		Freq:    freq,
		Dtstart: start,
	}
	horizon := start.AddDate(1, 0, 0)
	if ev.Recurrence.Until != "" {
		until, err := utils.ParseDate(ev.Recurrence.Until)
		if err != nil {
			return nil, fmt.Errorf("cannot expand recurrence: invalid until date %q: %w", ev.Recurrence.Until, err)
		}
		opt.Until = until
		horizon = until
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("cannot build recurrence rule: %w", err)
	}

	times := rule.Between(start, horizon, true)
	if len(times) > constants.MaxOccurrencesPerRule {
		times = times[:constants.MaxOccurrencesPerRule]
	}

	out := make([]models.Event, 0, len(times))
	out = append(out, ev)
	for _, t := range times {
		if utils.SameDate(t, start) {
			continue // the base event covers the first occurrence
		}
		occ := ev
		occ.ID = uuid.New().String()
		occ.Date = utils.FormatDate(t)
		occ.Recurrence = nil // only the base row carries the rule
		out = append(out, occ)
	}
	return out, nil
}

func ruleFrequency(f models.RecurrenceFrequency) (rrule.Frequency, error) {
	switch f {
	case models.FrequencyDaily:
		return rrule.DAILY, nil
	case models.FrequencyWeekly:
		return rrule.WEEKLY, nil
	case models.FrequencyMonthly:
		return rrule.MONTHLY, nil
	case models.FrequencyYearly:
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("unknown recurrence frequency %q", f)
	}
}
