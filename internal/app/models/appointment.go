package models

import (
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Date   string             `bson:"date"`
	Doctor string             `bson:"doctor"`
}

func NewAppointmentFromRequest(request *requests.Appointment) *Appointment {
	return &Appointment{
		Date:   request.Date,
		Doctor: request.Doctor,
	}
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		Date:   a.Date,
		Doctor: a.Doctor,
	}
}
