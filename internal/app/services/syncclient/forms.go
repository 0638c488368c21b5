package syncclient

import (
	"healthrecord-service/internal/pkg/dto/requests"
)

type FormStatus int

const (
	FormEditing FormStatus = iota
	FormSubmitting
)

func (s FormStatus) String() string {
	switch s {
	case FormEditing:
		return "editing"
	case FormSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type ProfileForm struct {
	Values requests.Profile
	Status FormStatus
}

type AppointmentForm struct {
	Values requests.Appointment
	Status FormStatus
}

type PrescriptionForm struct {
	Values requests.Prescription
	Status FormStatus
}
