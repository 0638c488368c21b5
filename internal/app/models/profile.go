package models

import "healthrecord-service/internal/pkg/dto/requests"

type Profile struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Age        string `bson:"age"`
	Conditions string `bson:"conditions"`
}

func NewProfileFromRequest(id string, request *requests.Profile) *Profile {
	return &Profile{
		ID:         id,
		Name:       request.Name,
		Age:        request.Age,
		Conditions: request.Conditions,
	}
}
