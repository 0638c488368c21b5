package health

import (
	"context"
	"errors"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func TestHealthController_Check(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Storage Reachable",
			expectedStatus: http.StatusOK,
			expectedMsg:    constvars.HealthySuccessMessage,
		},
		{
			name:           "Storage Unreachable",
			pingErr:        exceptions.ErrStorageUnavailable(errors.New("server selection timeout"), "ping"),
			expectedStatus: http.StatusServiceUnavailable,
			expectedMsg:    constvars.ErrClientStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := NewHealthController(zap.NewNop(), stubPinger{err: tt.pingErr}, time.Second)

			rec := httptest.NewRecorder()
			controller.Check(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedMsg)
		})
	}
}
