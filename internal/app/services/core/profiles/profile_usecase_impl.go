package profiles

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/app/services/shared/events"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	EventPublisher    contracts.RecordEventPublisher
	Log               *zap.Logger
}

func NewProfileUsecase(
	profileRepository contracts.ProfileRepository,
	eventPublisher contracts.RecordEventPublisher,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		ProfileRepository: profileRepository,
		EventPublisher:    eventPublisher,
		Log:               logger,
	}
}

func (uc *profileUsecase) SaveProfile(ctx context.Context, request *requests.Profile) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("profileUsecase.SaveProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile := models.NewProfileFromRequest(constvars.MongoProfileSingletonID, request)
	err := uc.ProfileRepository.Upsert(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.SaveProfile error upserting profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	events.PublishAfterWrite(ctx, uc.EventPublisher, uc.Log, constvars.EventTypeProfileSaved, request)

	uc.Log.Info("profileUsecase.SaveProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
