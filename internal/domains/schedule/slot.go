// Package schedule holds the slot validation rules for the weekly calendar.
// Checks are pure and reentrant: the UI calls them speculatively on every
// pointer move during a drag, and only the final call on drop commits anything.
package schedule

import (
	"crew/internal/domains/booking/model"
)

const (
	// FirstBookableHour and LastBookableHour bound the bookable start hours;
	// the work day itself ends at DayEndHour, so a booking must satisfy
	// start+duration <= DayEndHour.
	FirstBookableHour = 7
	LastBookableHour  = 17
	DayEndHour        = 18

	MinDurationHours = 1
)

const (
	ReasonOutsideWorkHours = "extends beyond work hours"
	ReasonSlotOccupied     = "slot already occupied"
)

// Result is the outcome of a slot check. On rejection, SuggestedDuration (when
// non-zero) is a shorter duration that would fit, which the caller may offer
// as a one-click fix; it is never applied automatically.
type Result struct {
	Valid             bool   `json:"valid"`
	Reason            string `json:"error,omitempty"`
	SuggestedDuration int    `json:"suggested_duration,omitempty"`
}

// ClampDuration enforces the one-hour minimum applied everywhere a duration is
// edited.
func ClampDuration(durationHours int) int {
	if durationHours < MinDurationHours {
		return MinDurationHours
	}

	return durationHours
}

// Check decides whether a booking of durationHours starting at startHour may
// occupy the day without leaving work hours or colliding with another
// scheduled booking. sameDay must contain the bookings scheduled on the target
// day; excludeID skips the booking being moved so it never conflicts with its
// own current slot. Unplanned bookings carry no slot and are ignored.
func Check(startHour, durationHours int, sameDay []model.Booking, excludeID string) Result {
	if startHour < FirstBookableHour || startHour > LastBookableHour {
		return Result{Reason: ReasonOutsideWorkHours}
	}

	if startHour+durationHours > DayEndHour {
		return Result{
			Reason:            ReasonOutsideWorkHours,
			SuggestedDuration: ClampDuration(DayEndHour - startHour),
		}
	}

	// Intervals are half-open, so back-to-back bookings touch without
	// overlapping. On conflict, suggest the duration that reaches the nearest
	// conflicting start, taking the tightest bound across all conflicts.
	suggested := 0

	for _, other := range sameDay {
		if other.ID == excludeID || other.Status == model.StatusUnplanned || !other.Scheduled() {
			continue
		}

		if !overlaps(startHour, durationHours, other.ScheduledStartHour, other.DurationHours) {
			continue
		}

		fit := ClampDuration(other.ScheduledStartHour - startHour)
		if suggested == 0 || fit < suggested {
			suggested = fit
		}
	}

	if suggested != 0 {
		return Result{
			Reason:            ReasonSlotOccupied,
			SuggestedDuration: suggested,
		}
	}

	return Result{Valid: true}
}

func overlaps(aStart, aDuration, bStart, bDuration int) bool {
	return aStart < bStart+bDuration && bStart < aStart+aDuration
}
