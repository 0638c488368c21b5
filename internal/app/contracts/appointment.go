package contracts

import (
	"context"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]responses.Appointment, error)
	Create(ctx context.Context, request *requests.Appointment) error
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
}
