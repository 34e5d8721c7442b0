package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacenter-api/config"
	"pharmacenter-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactInfo(t *testing.T) {
	h := NewContactMessageHandler(newTestLogger(), validator.NewValidator(), nil, config.ContactConfig{
		Email: "contact@pharmacenter.example",
		Phone: "+33 1 23 45 67 89",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
	rec := httptest.NewRecorder()

	h.Info(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Email string `json:"email"`
			Phone string `json:"phone"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "contact@pharmacenter.example", body.Data.Email)
	assert.Equal(t, "+33 1 23 45 67 89", body.Data.Phone)
}
