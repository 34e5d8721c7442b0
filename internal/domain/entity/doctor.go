package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a directory record shown on the public site and referenced by
// appointments. Archiving (IsActive=false) removes the doctor from future
// availability but keeps historical appointments renderable.
type Doctor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	SpecialtyID int       `gorm:"not null;index" json:"specialty_id"`
	Biography   string    `gorm:"type:text" json:"biography,omitempty"`
	// SlotMinutes overrides the default appointment duration for this doctor.
	SlotMinutes *int `gorm:"column:slot_minutes" json:"slot_minutes,omitempty"`
	// WorkingHours overrides the center's default week template when set.
	WorkingHours WeekTemplate `gorm:"type:jsonb" json:"working_hours,omitempty"`
	IsActive     *bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty    Specialty     `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) Active() bool {
	return d.IsActive == nil || *d.IsActive
}

// TemplateOr returns the doctor's working-hours override, or the given
// fallback when the doctor has none.
func (d *Doctor) TemplateOr(fallback WeekTemplate) WeekTemplate {
	if len(d.WorkingHours) > 0 {
		return d.WorkingHours
	}
	return fallback
}

// DurationMinutes resolves the appointment duration for this doctor:
// doctor override, then specialty default, then the center default.
func (d *Doctor) DurationMinutes(centerDefault int) int {
	if d.SlotMinutes != nil && *d.SlotMinutes > 0 {
		return *d.SlotMinutes
	}
	if d.Specialty.DefaultSlotMinutes != nil && *d.Specialty.DefaultSlotMinutes > 0 {
		return *d.Specialty.DefaultSlotMinutes
	}
	return centerDefault
}
