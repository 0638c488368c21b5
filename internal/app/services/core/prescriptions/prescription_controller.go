package prescriptions

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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	RequestTimeout      time.Duration
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, requestTimeout time.Duration) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		RequestTimeout:      requestTimeout,
	}
}

func (ctrl *PrescriptionController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.FindAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildListResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, result)
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.Prescription
	err := utils.ParseJSONBody(r, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.PrescriptionUsecase.Create(ctx, &request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMessage, nil)
}
