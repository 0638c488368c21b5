package utils

import (
	"context"
	"errors"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// ParseJSONBody decodes the request body into dst. Unknown fields are
// accepted, the record store trusts its client.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	err = json.Unmarshal(body, dst)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
