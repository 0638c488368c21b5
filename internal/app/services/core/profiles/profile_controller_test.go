package profiles

import (
	"context"
	"errors"
	"fmt"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
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

type stubProfileUsecase struct {
	received *requests.Profile
	err      error
}

func (s *stubProfileUsecase) SaveProfile(ctx context.Context, request *requests.Profile) error {
	s.received = request
	return s.err
}

func TestProfileController_SaveProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		usecaseErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Saved",
			body:           `{"name":"Ann","age":"34","conditions":"asthma"}`,
			expectedStatus: http.StatusOK,
			expectedMsg:    constvars.SaveProfileSuccessMessage,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    constvars.ErrClientCannotProcessRequest,
		},
		{
			name:           "Storage Unavailable",
			body:           `{"name":"Ann","age":"34"}`,
			usecaseErr:     exceptions.ErrStorageUnavailable(errors.New("no primary"), "profile upsert"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    constvars.ErrClientStorageUnavailable,
		},
		{
			name:           "Deadline Exceeded",
			body:           `{"name":"Ann","age":"34"}`,
			usecaseErr:     context.DeadlineExceeded,
			expectedStatus: http.StatusGatewayTimeout,
			expectedMsg:    constvars.ErrClientServerLongRespond,
		},
		{
			name:           "Storage Timeout",
			body:           `{"name":"Ann","age":"34"}`,
			usecaseErr:     exceptions.ErrStorageUnavailable(fmt.Errorf("replace: %w", context.DeadlineExceeded), "profile upsert"),
			expectedStatus: http.StatusGatewayTimeout,
			expectedMsg:    constvars.ErrClientServerLongRespond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase := &stubProfileUsecase{err: tt.usecaseErr}
			controller := NewProfileController(zap.NewNop(), usecase, time.Second)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/profile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			controller.SaveProfile(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedStatus == http.StatusOK, body.Success)
			assert.Equal(t, tt.expectedMsg, body.Message)
		})
	}

	t.Run("Body Is Passed Through", func(t *testing.T) {
		usecase := &stubProfileUsecase{}
		controller := NewProfileController(zap.NewNop(), usecase, time.Second)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profile", strings.NewReader(`{"name":"Ann","age":"34","conditions":"asthma"}`))
		controller.SaveProfile(httptest.NewRecorder(), req)

		require.NotNil(t, usecase.received)
		assert.Equal(t, requests.Profile{Name: "Ann", Age: "34", Conditions: "asthma"}, *usecase.received)
	})
}
