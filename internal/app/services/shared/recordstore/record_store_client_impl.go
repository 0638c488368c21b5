package recordstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const (
	OperationSaveProfile        = "save profile"
	OperationListAppointments   = "list appointments"
	OperationCreateAppointment  = "create appointment"
	OperationListPrescriptions  = "list prescriptions"
	OperationCreatePrescription = "create prescription"
)

var (
	errNotSuccessful = errors.New("2xx response without success flag")
	errMissingData   = errors.New("response carries no data")
)

type recordStoreClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        logrus.FieldLogger
}

func NewRecordStoreClient(baseUrl string, timeout time.Duration, logger logrus.FieldLogger) contracts.RecordStore {
	return &recordStoreClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

func (c *recordStoreClient) SaveProfile(ctx context.Context, profile requests.Profile) error {
	return c.do(ctx, OperationSaveProfile, constvars.MethodPost, constvars.ResourceProfile, profile, nil)
}

func (c *recordStoreClient) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	appointments := make([]responses.Appointment, 0)
	err := c.do(ctx, OperationListAppointments, constvars.MethodGet, constvars.ResourceAppointments, nil, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *recordStoreClient) CreateAppointment(ctx context.Context, appointment requests.Appointment) error {
	return c.do(ctx, OperationCreateAppointment, constvars.MethodPost, constvars.ResourceAppointments, appointment, nil)
}

func (c *recordStoreClient) ListPrescriptions(ctx context.Context) ([]responses.Prescription, error) {
	prescriptions := make([]responses.Prescription, 0)
	err := c.do(ctx, OperationListPrescriptions, constvars.MethodGet, constvars.ResourcePrescriptions, nil, &prescriptions)
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (c *recordStoreClient) CreatePrescription(ctx context.Context, prescription requests.Prescription) error {
	return c.do(ctx, OperationCreatePrescription, constvars.MethodPost, constvars.ResourcePrescriptions, prescription, nil)
}

// envelope mirrors the server's response body. Data is decoded lazily so a
// list operation can decode it into the right slice type.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *recordStoreClient) do(ctx context.Context, operation, method, resource string, payload interface{}, out interface{}) error {
	url := fmt.Sprintf("%s/%s", c.BaseUrl, resource)
	log := c.Log.WithFields(logrus.Fields{
		"operation": operation,
		"url":       url,
	})
	log.Debug("record store request")

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &TransportError{Operation: operation, Message: "cannot encode request", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &TransportError{Operation: operation, Message: "cannot build request", Err: err}
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.WithError(err).Warn("record store unreachable")
		return &TransportError{Operation: operation, Message: "record store unreachable", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: "cannot read response", Err: err}
	}

	var decoded envelope
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := http.StatusText(resp.StatusCode)
		if decodeErr == nil && decoded.Message != "" {
			message = decoded.Message
		}
		log.WithField("status_code", resp.StatusCode).Warn("record store rejected request")
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: "malformed response", Err: decodeErr}
	}

	if !decoded.Success {
		return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: "malformed response", Err: errNotSuccessful}
	}

	if out != nil {
		if len(decoded.Data) == 0 || bytes.Equal(decoded.Data, []byte("null")) {
			return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: "malformed response", Err: errMissingData}
		}
		err = json.Unmarshal(decoded.Data, out)
		if err != nil {
			return &TransportError{Operation: operation, StatusCode: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}

	log.WithField("status_code", resp.StatusCode).Debug("record store acknowledged")
	return nil
}
