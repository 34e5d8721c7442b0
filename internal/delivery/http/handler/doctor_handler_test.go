package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorHandler(t *testing.T, repo *stubDoctorRepo) *DoctorHandler {
	t.Helper()

	uc := usecase.NewDoctorUsecase(newTestDB(t), newTestLogger(), repo, nil, nil)
	return NewDoctorHandler(newTestLogger(), validator.NewValidator(), uc)
}

func directoryFixture() *stubDoctorRepo {
	archived := false
	return newStubDoctorRepo(
		&entity.Doctor{ID: uuid.New(), FullName: "Dr. Alice Moreau", SpecialtyID: 1},
		&entity.Doctor{ID: uuid.New(), FullName: "Dr. Rene Blanc", SpecialtyID: 2, IsActive: &archived},
	)
}

func TestListDoctorsHidesArchived(t *testing.T) {
	h := newDoctorHandler(t, directoryFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Alice Moreau")
	assert.NotContains(t, rec.Body.String(), "Dr. Rene Blanc")
}

func TestListDoctorsIncludeArchivedAnonymous(t *testing.T) {
	// The flag is a back-office affordance; an unauthenticated caller asking
	// for archived doctors still gets the active-only directory.
	h := newDoctorHandler(t, directoryFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?include_archived=true", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Dr. Rene Blanc")
}

func TestListDoctorsIncludeArchivedStaff(t *testing.T) {
	h := newDoctorHandler(t, directoryFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/doctors?include_archived=true", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RoleIDKey, entity.RoleIDStaff))
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Alice Moreau")
	assert.Contains(t, rec.Body.String(), "Dr. Rene Blanc")
}

func TestListDoctorsIncludeArchivedPatient(t *testing.T) {
	h := newDoctorHandler(t, directoryFixture())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors?include_archived=true", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RoleIDKey, entity.RoleIDPatient))
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Dr. Rene Blanc")
}
