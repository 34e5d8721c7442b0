package service

import (
	"fmt"
	"strings"
	"time"

	"pharmacenter-api/internal/domain/entity"

	ics "github.com/arran4/golang-ical"
)

// ICalService turns appointment sets into iCalendar documents for the
// subscription feeds. Event identifiers derive from the appointment id and
// never change between fetches, so calendar clients deduplicate correctly;
// DTSTAMP and LAST-MODIFIED come from the appointment's own update time,
// which keeps repeated fetches over unchanged data byte-identical.
type ICalService struct {
	host               string
	defaultSlotMinutes int
}

func NewICalService(host string, defaultSlotMinutes int) *ICalService {
	return &ICalService{
		host:               host,
		defaultSlotMinutes: defaultSlotMinutes,
	}
}

// EventUID returns the stable identifier for an appointment's event.
func (s *ICalService) EventUID(appointment *entity.Appointment) string {
	return fmt.Sprintf("%s@%s", appointment.ID, s.host)
}

// BuildCalendar renders the given appointments as a VCALENDAR document.
// Cancelled appointments must be filtered out by the caller; the feed is a
// pure projection of whatever it is handed.
func (s *ICalService) BuildCalendar(appointments []entity.Appointment) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//PharmaCenter//Booking//EN")

	for i := range appointments {
		appointment := &appointments[i]

		event := cal.AddEvent(s.EventUID(appointment))

		stamp := appointment.UpdatedAt.UTC()
		event.SetDtStampTime(stamp)
		event.SetModifiedAt(stamp)

		start := appointment.StartAt().UTC()
		event.SetStartAt(start)
		event.SetEndAt(start.Add(s.eventDuration(appointment)))

		event.SetSummary(s.eventSummary(appointment))
		if appointment.Reason != "" {
			event.SetDescription(appointment.Reason)
		}

		switch appointment.Status {
		case entity.AppointmentStatusConfirmed:
			event.SetStatus(ics.ObjectStatusConfirmed)
		case entity.AppointmentStatusCancelled:
			event.SetStatus(ics.ObjectStatusCancelled)
		default:
			event.SetStatus(ics.ObjectStatusTentative)
		}
	}

	return cal.Serialize()
}

func (s *ICalService) eventDuration(appointment *entity.Appointment) time.Duration {
	minutes := appointment.Doctor.DurationMinutes(s.defaultSlotMinutes)
	return time.Duration(minutes) * time.Minute
}

func (s *ICalService) eventSummary(appointment *entity.Appointment) string {
	parts := []string{appointment.PatientName}
	if appointment.Doctor.FullName != "" {
		parts = append(parts, "Dr. "+appointment.Doctor.FullName)
	}
	if appointment.Doctor.Specialty.Name != "" {
		parts = append(parts, appointment.Doctor.Specialty.Name)
	} else if appointment.Specialty != nil && appointment.Specialty.Name != "" {
		parts = append(parts, appointment.Specialty.Name)
	}
	return strings.Join(parts, " / ")
}
