package contracts

import (
	"context"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/pkg/dto/requests"
)

type ProfileUsecase interface {
	SaveProfile(ctx context.Context, request *requests.Profile) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
}
