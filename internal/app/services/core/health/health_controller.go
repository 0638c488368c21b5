package health

import (
	"context"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	StoragePinger  contracts.StoragePinger
	RequestTimeout time.Duration
}

func NewHealthController(logger *zap.Logger, storagePinger contracts.StoragePinger, requestTimeout time.Duration) *HealthController {
	return &HealthController{
		Log:            logger,
		StoragePinger:  storagePinger,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.StoragePinger.Ping(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, nil)
}
