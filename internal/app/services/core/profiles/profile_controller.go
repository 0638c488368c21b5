package profiles

import (
	"context"
	"errors"
	"healthrecord-service/internal/app/contracts"
	"healthrecord-service/internal/pkg/constvars"
	"healthrecord-service/internal/pkg/dto/requests"
	"healthrecord-service/internal/pkg/exceptions"
	"healthrecord-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	RequestTimeout time.Duration
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, requestTimeout time.Duration) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *ProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var request requests.Profile
	err := utils.ParseJSONBody(r, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.ProfileUsecase.SaveProfile(ctx, &request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveProfileSuccessMessage, nil)
}
