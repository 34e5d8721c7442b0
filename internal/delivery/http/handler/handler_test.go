package handler

import (
	"io"
	"testing"
	"time"

	"pharmacenter-api/config"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testBookingConfig() config.BookingConfig {
	return config.BookingConfig{
		SlotMinutes: 30,
		DayStart:    "09:00",
		DayEnd:      "17:00",
		ICalHost:    "pharmacenter",
	}
}

func newTestSlotCache() *service.SlotCacheService {
	return service.NewSlotCacheService(nil, newTestLogger(), time.Second, time.Second)
}

func nextMonday() time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// stubDoctorRepo serves a fixed doctor set.

type stubDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newStubDoctorRepo(doctors ...*entity.Doctor) *stubDoctorRepo {
	repo := &stubDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
	for _, d := range doctors {
		repo.doctors[d.ID] = d
	}
	return repo
}

func (r *stubDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error { return nil }

func (r *stubDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *stubDoctorRepo) FindAll(db *gorm.DB, activeOnly bool, specialtyID *int) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range r.doctors {
		if activeOnly && !d.Active() {
			continue
		}
		if specialtyID != nil && d.SpecialtyID != *specialtyID {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error { return nil }

func (r *stubDoctorRepo) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	return 1, nil
}

// stubAppointmentRepo serves fixed appointment data.

type stubAppointmentRepo struct {
	activeTimes  []string
	filterResult []entity.Appointment
}

func (r *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error { return nil }

func (r *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	var out []entity.Appointment
	for _, a := range r.filterResult {
		if filter != nil && filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAppointmentRepo) FindActiveTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	return r.activeTimes, nil
}

func (r *stubAppointmentRepo) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, notes *string) (int64, error) {
	return 1, nil
}
