package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from EventStatus
		to   EventStatus
		want bool
	}{
		{"upcoming to active", EventUpcoming, EventActive, true},
		{"active to completed", EventActive, EventCompleted, true},
		{"upcoming to cancelled", EventUpcoming, EventCancelled, true},
		{"active to cancelled", EventActive, EventCancelled, true},
		{"completed to cancelled", EventCompleted, EventCancelled, true},
		{"upcoming to completed skips active", EventUpcoming, EventCompleted, false},
		{"completed to active", EventCompleted, EventActive, false},
		{"cancelled to active", EventCancelled, EventActive, false},
		{"active to upcoming", EventActive, EventUpcoming, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestEvent_DisplayStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, 0, -10)
	after := now.AddDate(0, 0, 10)

	tests := []struct {
		name   string
		status EventStatus
		start  time.Time
		end    time.Time
		want   string
	}{
		{"cancelled wins over dates", EventCancelled, before, after, "cancelled"},
		{"completed passes through", EventCompleted, before, after, "completed"},
		{"upcoming passes through", EventUpcoming, after, after, "upcoming"},
		{"active before start", EventActive, after, after.AddDate(0, 0, 1), "upcoming"},
		{"active within dates", EventActive, before, after, "started"},
		{"active after end", EventActive, before.AddDate(0, 0, -1), before, "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{
				Status:    tt.status,
				StartDate: tt.start,
				EndDate:   tt.end,
			}

			assert.Equal(t, tt.want, event.DisplayStatus(now))
		})
	}
}
