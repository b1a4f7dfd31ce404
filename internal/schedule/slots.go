// Package schedule computes the bookable time slots for a calendar date from
// the business's weekly availability.
package schedule

import (
	"fmt"
	"time"

	"github.com/bookmehq/bookme-server/internal/business"
)

// SlotStepMinutes is the fixed width of a booking slot. Not configurable.
const SlotStepMinutes = 30

// Slots returns the ordered "HH:MM" slots offerable on the given date. The
// day's row is resolved by weekday name; a missing or closed row yields an
// empty result. Slots start at the row's start time and advance in fixed
// steps while strictly before the end time, so no slot is ever emitted at or
// after closing.
func Slots(date time.Time, rules []business.DayAvailability) []string {
	dayName := date.Weekday().String()

	var row *business.DayAvailability
	for i := range rules {
		if rules[i].Day == dayName {
			row = &rules[i]
			break
		}
	}
	if row == nil || !row.IsOpen {
		return nil
	}

	var slots []string
	for current := row.StartTime; current < row.EndTime; current = advance(current) {
		slots = append(slots, current)
	}
	return slots
}

// advance adds the slot step to an "HH:MM" string, carrying minute overflow
// into the hour. Malformed input yields a value that compares above any valid
// end time, terminating slot generation.
func advance(hhmm string) string {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return "99:99"
	}
	m += SlotStepMinutes
	h += m / 60
	m %= 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
