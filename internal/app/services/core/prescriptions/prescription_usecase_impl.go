package prescriptions

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/app/models"
	"healthrecord-service/internal/app/services/shared/events"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/dto/responses"
	"healthrecord-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	RedisRepository        contracts.RedisRepository
	EventPublisher         contracts.RecordEventPublisher
	CacheTTL               time.Duration
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.RecordEventPublisher,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		RedisRepository:        redisRepository,
		EventPublisher:         eventPublisher,
		CacheTTL:               cacheTTL,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) cacheEnabled() bool {
	return uc.RedisRepository != nil && uc.CacheTTL > 0
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context) ([]responses.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cacheable := false
	var generation int64
	if uc.cacheEnabled() {
		cached, ok := uc.findAllFromCache(ctx, requestID)
		if ok {
			return cached, nil
		}
		generation, cacheable = uc.cacheGeneration(ctx, requestID)
	}

	prescriptions, err := uc.PrescriptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		result = append(result, prescription.ConvertIntoResponse())
	}

	if cacheable {
		stored, err := uc.RedisRepository.SetIfGeneration(ctx, constvars.RedisKeyPrescriptionList, result, uc.CacheTTL, constvars.RedisKeyPrescriptionGeneration, generation)
		if err != nil {
			uc.Log.Warn("prescriptionUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !stored {
			uc.Log.Debug("prescriptionUsecase.FindAll skipped caching, list changed during read",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
		}
	}

	uc.Log.Info("prescriptionUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	return result, nil
}

// cacheGeneration must be read before the repository so a create racing
// the read changes it and the stale result is not cached.
func (uc *prescriptionUsecase) cacheGeneration(ctx context.Context, requestID string) (int64, bool) {
	generation, err := uc.RedisRepository.Generation(ctx, constvars.RedisKeyPrescriptionGeneration)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.FindAll error reading cache generation from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, false
	}
	return generation, true
}

func (uc *prescriptionUsecase) findAllFromCache(ctx context.Context, requestID string) ([]responses.Prescription, bool) {
	data, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPrescriptionList)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	result := make([]responses.Prescription, 0)
	err = json.Unmarshal([]byte(data), &result)
	if err != nil {
		uc.Log.Warn("prescriptionUsecase.FindAll error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}

	uc.Log.Debug("prescriptionUsecase.FindAll served from Redis",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, constvars.RedisKeyPrescriptionList),
	)
	return result, true
}

func (uc *prescriptionUsecase) Create(ctx context.Context, request *requests.Prescription) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescription := models.NewPrescriptionFromRequest(request)
	prescriptionID, err := uc.PrescriptionRepository.Create(ctx, prescription)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if uc.cacheEnabled() {
		err = uc.RedisRepository.Invalidate(ctx, constvars.RedisKeyPrescriptionList, constvars.RedisKeyPrescriptionGeneration)
		if err != nil {
			uc.Log.Warn("prescriptionUsecase.Create error invalidating Redis cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	events.PublishAfterWrite(ctx, uc.EventPublisher, uc.Log, constvars.EventTypePrescriptionCreated, prescription.ConvertIntoResponse())

	uc.Log.Info("prescriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prescription_id", prescriptionID),
	)
	return nil
}
