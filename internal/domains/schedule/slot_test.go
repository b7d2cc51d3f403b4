package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crew/internal/domains/booking/model"
	"crew/internal/domains/schedule"
)

func scheduled(id string, startHour, durationHours int) model.Booking {
	return model.Booking{
		ID:                 id,
		Status:             model.StatusPlanned,
		ScheduledDate:      "2026-09-01",
		ScheduledStartHour: startHour,
		DurationHours:      durationHours,
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		startHour     int
		durationHours int
		sameDay       []model.Booking
		excludeID     string
		want          schedule.Result
	}{
		{
			name:          "empty day accepts any slot",
			startHour:     7,
			durationHours: 11,
			want:          schedule.Result{Valid: true},
		},
		{
			name:          "start before first bookable hour",
			startHour:     6,
			durationHours: 1,
			want:          schedule.Result{Reason: schedule.ReasonOutsideWorkHours},
		},
		{
			name:          "start after last bookable hour",
			startHour:     18,
			durationHours: 1,
			want:          schedule.Result{Reason: schedule.ReasonOutsideWorkHours},
		},
		{
			name:          "last bookable hour fits one hour exactly",
			startHour:     17,
			durationHours: 1,
			want:          schedule.Result{Valid: true},
		},
		{
			name:          "overflow past day end suggests what remains",
			startHour:     16,
			durationHours: 3,
			want: schedule.Result{
				Reason:            schedule.ReasonOutsideWorkHours,
				SuggestedDuration: 2,
			},
		},
		{
			name:          "overflow at day edge still suggests the one hour minimum",
			startHour:     17,
			durationHours: 2,
			want: schedule.Result{
				Reason:            schedule.ReasonOutsideWorkHours,
				SuggestedDuration: 1,
			},
		},
		{
			name:          "conflict suggests duration up to the occupied slot",
			startHour:     10,
			durationHours: 2,
			sameDay:       []model.Booking{scheduled("other", 11, 1)},
			want: schedule.Result{
				Reason:            schedule.ReasonSlotOccupied,
				SuggestedDuration: 1,
			},
		},
		{
			name:          "conflict with multiple bookings takes the tightest bound",
			startHour:     9,
			durationHours: 5,
			sameDay: []model.Booking{
				scheduled("late", 13, 2),
				scheduled("early", 11, 1),
			},
			want: schedule.Result{
				Reason:            schedule.ReasonSlotOccupied,
				SuggestedDuration: 2,
			},
		},
		{
			name:          "start inside an occupied slot keeps the one hour minimum",
			startHour:     11,
			durationHours: 2,
			sameDay:       []model.Booking{scheduled("other", 10, 3)},
			want: schedule.Result{
				Reason:            schedule.ReasonSlotOccupied,
				SuggestedDuration: 1,
			},
		},
		{
			name:          "back to back bookings touch without overlapping",
			startHour:     12,
			durationHours: 2,
			sameDay: []model.Booking{
				scheduled("before", 10, 2),
				scheduled("after", 14, 1),
			},
			want: schedule.Result{Valid: true},
		},
		{
			name:          "moved booking never conflicts with its own slot",
			startHour:     10,
			durationHours: 2,
			sameDay:       []model.Booking{scheduled("self", 11, 1)},
			excludeID:     "self",
			want:          schedule.Result{Valid: true},
		},
		{
			name:          "unplanned bookings on the day are ignored",
			startHour:     10,
			durationHours: 2,
			sameDay: []model.Booking{
				{ID: "backlog", Status: model.StatusUnplanned, DurationHours: 2},
			},
			want: schedule.Result{Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.Check(tt.startHour, tt.durationHours, tt.sameDay, tt.excludeID)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The validator is called speculatively during drags, so running the same
// check twice against the same day must give the same verdict.
func TestCheck_Reentrant(t *testing.T) {
	sameDay := []model.Booking{scheduled("other", 11, 2)}

	first := schedule.Check(10, 3, sameDay, "")
	second := schedule.Check(10, 3, sameDay, "")

	assert.Equal(t, first, second)
	assert.False(t, first.Valid)
}

func TestClampDuration(t *testing.T) {
	assert.Equal(t, 1, schedule.ClampDuration(0))
	assert.Equal(t, 1, schedule.ClampDuration(-3))
	assert.Equal(t, 1, schedule.ClampDuration(1))
	assert.Equal(t, 5, schedule.ClampDuration(5))
}
