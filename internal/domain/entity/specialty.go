package entity

import "time"

// Specialty is reference data used for filtering and display. It never
// drives scheduling beyond an optional default appointment duration.
type Specialty struct {
	ID                 int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description        string    `gorm:"type:text" json:"description,omitempty"`
	DefaultSlotMinutes *int      `gorm:"column:default_slot_minutes" json:"default_slot_minutes,omitempty"`
	IsActive           *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:SpecialtyID" json:"doctors,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}

func (s *Specialty) Active() bool {
	return s.IsActive == nil || *s.IsActive
}
