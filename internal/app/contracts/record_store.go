package contracts

import (
	"context"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
)

// RecordStore is the client side view of the record store API.
type RecordStore interface {
	SaveProfile(ctx context.Context, profile requests.Profile) error
	ListAppointments(ctx context.Context) ([]responses.Appointment, error)
	CreateAppointment(ctx context.Context, appointment requests.Appointment) error
	ListPrescriptions(ctx context.Context) ([]responses.Prescription, error)
	CreatePrescription(ctx context.Context, prescription requests.Prescription) error
}

// ImagePicker produces a URI for a locally selected image. canceled is true
// when the user backed out without choosing one.
type ImagePicker interface {
	PickImage(ctx context.Context) (uri string, canceled bool, err error)
}

type Notifier interface {
	Notify(title, message string)
}
