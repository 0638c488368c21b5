package appointments

import (
	"context"
	"errors"
	"fmt"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
	"healthrecord-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAppointmentUsecase struct {
	list     []responses.Appointment
	err      error
	received *requests.Appointment
}

func (s *stubAppointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	return s.list, s.err
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, request *requests.Appointment) error {
	s.received = request
	return s.err
}

type appointmentListBody struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    []responses.Appointment `json:"data"`
}

func TestAppointmentController_FindAll(t *testing.T) {
	t.Run("Empty List Encodes As Array", func(t *testing.T) {
		controller := NewAppointmentController(zap.NewNop(), &stubAppointmentUsecase{list: []responses.Appointment{}}, time.Second)

		rec := httptest.NewRecorder()
		controller.FindAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("Returns Records", func(t *testing.T) {
		list := []responses.Appointment{{Date: "2025-11-02", Doctor: "Dr. Rao"}}
		controller := NewAppointmentController(zap.NewNop(), &stubAppointmentUsecase{list: list}, time.Second)

		rec := httptest.NewRecorder()
		controller.FindAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		var body appointmentListBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, list, body.Data)
	})

	t.Run("Storage Unavailable", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrStorageUnavailable(errors.New("timeout"), "appointment find")}
		controller := NewAppointmentController(zap.NewNop(), usecase, time.Second)

		rec := httptest.NewRecorder()
		controller.FindAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body appointmentListBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientStorageUnavailable, body.Message)
	})
}

func TestAppointmentController_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}
		controller := NewAppointmentController(zap.NewNop(), usecase, time.Second)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"date":"2025-11-02","doctor":"Dr. Rao"}`))
		controller.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.CreateAppointmentSuccessMessage)
		require.NotNil(t, usecase.received)
		assert.Equal(t, "Dr. Rao", usecase.received.Doctor)
	})

	t.Run("Malformed JSON Never Reaches Usecase", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{}
		controller := NewAppointmentController(zap.NewNop(), usecase, time.Second)

		rec := httptest.NewRecorder()
		controller.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`[`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, usecase.received)
	})

	t.Run("Storage Unavailable", func(t *testing.T) {
		usecase := &stubAppointmentUsecase{err: exceptions.ErrStorageUnavailable(errors.New("no primary"), "appointment insert")}
		controller := NewAppointmentController(zap.NewNop(), usecase, time.Second)

		rec := httptest.NewRecorder()
		controller.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"date":"2025-11-02","doctor":"Dr. Rao"}`)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestAppointmentController_DeadlineExceeded(t *testing.T) {
	timeout := exceptions.ErrStorageUnavailable(fmt.Errorf("server selection: %w", context.DeadlineExceeded), "appointment")

	t.Run("FindAll", func(t *testing.T) {
		controller := NewAppointmentController(zap.NewNop(), &stubAppointmentUsecase{err: timeout}, time.Second)

		rec := httptest.NewRecorder()
		controller.FindAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientServerLongRespond)
	})

	t.Run("Create", func(t *testing.T) {
		controller := NewAppointmentController(zap.NewNop(), &stubAppointmentUsecase{err: timeout}, time.Second)

		rec := httptest.NewRecorder()
		controller.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(`{"date":"2025-11-02","doctor":"Dr. Rao"}`)))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}
