package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to pending", AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{"cancelled to pending", AppointmentStatusCancelled, AppointmentStatusPending, false},
		{"cancelled to confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"pending to pending", AppointmentStatusPending, AppointmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, a.CanTransition(tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(AppointmentStatusPending))
	assert.True(t, ValidStatus(AppointmentStatusConfirmed))
	assert.True(t, ValidStatus(AppointmentStatusCancelled))
	assert.False(t, ValidStatus("rescheduled"))
	assert.False(t, ValidStatus(""))
}

func TestStartAt(t *testing.T) {
	a := &Appointment{
		AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:30",
	}

	start := a.StartAt()
	assert.Equal(t, time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC), start)
}
