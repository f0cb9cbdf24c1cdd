package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/report/usecases"
	"agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type seasonReportUseCase interface {
	Execute(ctx context.Context, query usecases.SeasonReportQuery) (*usecases.SeasonReport, error)
}

type ReportHandler struct {
	seasonReportUC seasonReportUseCase
	logger         logger.Interface
}

func NewReportHandler(seasonReportUC *usecases.SeasonReportUseCase, logger logger.Interface) *ReportHandler {
	return &ReportHandler{seasonReportUC: seasonReportUC, logger: logger}
}

func (h *ReportHandler) SeasonProgramming(c *gin.Context) {
	seasonID, err := queryUintOrZero(c, "safra_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if seasonID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("safra_id is required"))
		return
	}
	producerID, err := queryUintOrZero(c, "produtor_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	epochID, err := utils.QueryUint(c, "epoca_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.seasonReportUC.Execute(c.Request.Context(), usecases.SeasonReportQuery{
		SeasonID:   seasonID,
		ProducerID: producerID,
		EpochID:    epochID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", report)
}
