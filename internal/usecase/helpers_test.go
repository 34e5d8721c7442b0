package usecase

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

// newTestDB returns a gorm handle backed by sqlmock. The fakes below never
// touch it; it only satisfies the WithContext plumbing.
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
		SlotMinutes:          30,
		DayStart:             "09:00",
		DayEnd:               "17:00",
		AvailabilityCacheTTL: time.Second,
		FeedCacheTTL:         time.Second,
		ICalHost:             "pharmacenter",
	}
}

// newTestSlotCache returns a cache that degrades to always-miss.
func newTestSlotCache() *service.SlotCacheService {
	return service.NewSlotCacheService(nil, newTestLogger(), time.Second, time.Second)
}

// nextMonday returns the first Monday strictly after today, so bookings in
// tests are never rejected as past.
func nextMonday() time.Time {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// fakeDoctorRepo

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo(doctors ...*entity.Doctor) *fakeDoctorRepo {
	repo := &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
	for _, d := range doctors {
		repo.doctors[d.ID] = d
	}
	return repo
}

func (r *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return r.doctors[id], nil
}

func (r *fakeDoctorRepo) FindAll(db *gorm.DB, activeOnly bool, specialtyID *int) ([]entity.Doctor, error) {
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

func (r *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeDoctorRepo) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	d, ok := r.doctors[id]
	if !ok {
		return 0, nil
	}
	d.IsActive = &active
	return 1, nil
}

// fakeAppointmentRepo

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	activeTimes  []string
	createErr    error
	forceNoRows  bool
	lastFilter   *entity.AppointmentFilter
	filterResult []entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uuid.UUID]*entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	r.lastFilter = filter
	return r.filterResult, int64(len(r.filterResult)), nil
}

func (r *fakeAppointmentRepo) FindActiveTimes(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]string, error) {
	return r.activeTimes, nil
}

func (r *fakeAppointmentRepo) UpdateStatusFrom(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, notes *string) (int64, error) {
	if r.forceNoRows {
		return 0, nil
	}
	a, ok := r.appointments[id]
	if !ok {
		return 0, nil
	}
	matched := false
	for _, s := range from {
		if a.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return 0, nil
	}
	a.Status = to
	if notes != nil {
		a.Notes = *notes
	}
	return 1, nil
}

// fakeUserRepo

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(db *gorm.DB, limit, offset int) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) SetActive(db *gorm.DB, id uuid.UUID, active bool) (int64, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.IsActive = &active
	return 1, nil
}

// fakeRoleRepo

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: map[int]*entity.Role{
		entity.RoleIDAdmin:   {ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		entity.RoleIDStaff:   {ID: entity.RoleIDStaff, RoleName: entity.RoleStaff},
		entity.RoleIDPatient: {ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
	}}
}

func (r *fakeRoleRepo) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	return r.roles[id], nil
}

// fakeAuditService

type fakeAuditService struct {
	actions []string
}

func (s *fakeAuditService) Record(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) {
	s.actions = append(s.actions, action)
}
