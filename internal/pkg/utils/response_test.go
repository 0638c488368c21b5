package utils

import (
	"errors"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorBody struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message"`
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrStorageUnavailable(errors.New("no primary"), "appointment find"))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientStorageUnavailable, body.Message)
		assert.Contains(t, body.DevMessage, "appointment find")
	})

	t.Run("Dev Message Hidden In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrStorageUnavailable(errors.New("no primary"), "profile upsert"))

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.DevMessage)
	})

	t.Run("Plain Error Is Internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("unexpected"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})
}

func TestBuildSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponse(rec, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
	assert.JSONEq(t, `{"success":true,"message":"Appointment added"}`, rec.Body.String())
}

func TestBuildListResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildListResponse(rec, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"`+constvars.GetAppointmentsSuccessMessage+`","data":[]}`, rec.Body.String())
}
