package contracts

import (
	"context"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	FindAll(ctx context.Context) ([]responses.Prescription, error)
	Create(ctx context.Context, request *requests.Prescription) error
}

type PrescriptionRepository interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	Create(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
}
