package appointments

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	RedisRepository       contracts.RedisRepository
	EventPublisher        contracts.RecordEventPublisher
	CacheTTL              time.Duration
	Log                   *zap.Logger
}

// NewAppointmentUsecase wires the usecase. redisRepository and eventPublisher
// may be nil, which disables the list cache and record events respectively.
func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	eventPublisher contracts.RecordEventPublisher,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		RedisRepository:       redisRepository,
		EventPublisher:        eventPublisher,
		CacheTTL:              cacheTTL,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) cacheEnabled() bool {
	return uc.RedisRepository != nil && uc.CacheTTL > 0
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.FindAll called",
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

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, appointment.ConvertIntoResponse())
	}

	if cacheable {
		stored, err := uc.RedisRepository.SetIfGeneration(ctx, constvars.RedisKeyAppointmentList, result, uc.CacheTTL, constvars.RedisKeyAppointmentGeneration, generation)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !stored {
			uc.Log.Debug("appointmentUsecase.FindAll skipped caching, list changed during read",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
		}
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)),
	)
	return result, nil
}

// cacheGeneration must be read before the repository so a create racing
// the read changes it and the stale result is not cached.
func (uc *appointmentUsecase) cacheGeneration(ctx context.Context, requestID string) (int64, bool) {
	generation, err := uc.RedisRepository.Generation(ctx, constvars.RedisKeyAppointmentGeneration)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.FindAll error reading cache generation from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, false
	}
	return generation, true
}

func (uc *appointmentUsecase) findAllFromCache(ctx context.Context, requestID string) ([]responses.Appointment, bool) {
	data, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyAppointmentList)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if data == "" {
		return nil, false
	}

	result := make([]responses.Appointment, 0)
	err = json.Unmarshal([]byte(data), &result)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.FindAll error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}

	uc.Log.Debug("appointmentUsecase.FindAll served from Redis",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKey, constvars.RedisKeyAppointmentList),
	)
	return result, true
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.Appointment) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointment := models.NewAppointmentFromRequest(request)
	appointmentID, err := uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if uc.cacheEnabled() {
		err = uc.RedisRepository.Invalidate(ctx, constvars.RedisKeyAppointmentList, constvars.RedisKeyAppointmentGeneration)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.Create error invalidating Redis cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	events.PublishAfterWrite(ctx, uc.EventPublisher, uc.Log, constvars.EventTypeAppointmentCreated, appointment.ConvertIntoResponse())

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)
	return nil
}
