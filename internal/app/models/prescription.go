package models

import (
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Prescription struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Image string             `bson:"image"`
}

func NewPrescriptionFromRequest(request *requests.Prescription) *Prescription {
	return &Prescription{
		Name:  request.Name,
		Image: request.Image,
	}
}

func (p Prescription) ConvertIntoResponse() responses.Prescription {
	return responses.Prescription{
		Name:  p.Name,
		Image: p.Image,
	}
}
