package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/farm/dto"
	"agroplan/internal/application/farm/usecases"
	"agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type listProducersUseCase interface {
	Execute(ctx context.Context, search string) ([]*dto.ProducerDTO, error)
}

type listFarmsUseCase interface {
	Execute(ctx context.Context, producerID uint) ([]*dto.FarmDTO, error)
}

type listPlotsUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlotsQuery) ([]*dto.PlotDTO, error)
}

type createPlotUseCase interface {
	Execute(ctx context.Context, in dto.CreatePlotInput) (*dto.PlotDTO, error)
}

type listSeasonsUseCase interface {
	Execute(ctx context.Context) ([]*dto.SeasonDTO, error)
}

type listEpochsUseCase interface {
	Execute(ctx context.Context) ([]*dto.EpochDTO, error)
}

// ReferenceHandler serves producers, farms, plots, seasons and epochs.
type ReferenceHandler struct {
	producersUC  listProducersUseCase
	farmsUC      listFarmsUseCase
	plotsUC      listPlotsUseCase
	createPlotUC createPlotUseCase
	seasonsUC    listSeasonsUseCase
	epochsUC     listEpochsUseCase
	logger       logger.Interface
}

func NewReferenceHandler(
	producersUC *usecases.ListProducersUseCase,
	farmsUC *usecases.ListFarmsUseCase,
	plotsUC *usecases.ListPlotsUseCase,
	createPlotUC *usecases.CreatePlotUseCase,
	seasonsUC *usecases.ListSeasonsUseCase,
	epochsUC *usecases.ListEpochsUseCase,
	logger logger.Interface,
) *ReferenceHandler {
	return &ReferenceHandler{
		producersUC:  producersUC,
		farmsUC:      farmsUC,
		plotsUC:      plotsUC,
		createPlotUC: createPlotUC,
		seasonsUC:    seasonsUC,
		epochsUC:     epochsUC,
		logger:       logger,
	}
}

func (h *ReferenceHandler) ListProducers(c *gin.Context) {
	result, err := h.producersUC.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ReferenceHandler) ListFarms(c *gin.Context) {
	producerID, err := queryUintOrZero(c, "produtor_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.farmsUC.Execute(c.Request.Context(), producerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlots flags plots already claimed for the season and epoch. The
// record being edited is passed as exclude_id so its own plots stay free.
func (h *ReferenceHandler) ListPlots(c *gin.Context) {
	farmID, err := queryUintOrZero(c, "fazenda_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if farmID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("fazenda_id is required"))
		return
	}
	seasonID, err := queryUintOrZero(c, "safra_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	epochID, err := utils.QueryUint(c, "epoca_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.plotsUC.Execute(c.Request.Context(), usecases.ListPlotsQuery{
		FarmID:     farmID,
		SeasonID:   seasonID,
		EpochID:    epochID,
		ExcludeSID: c.Query("exclude_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ReferenceHandler) CreatePlot(c *gin.Context) {
	var req dto.CreatePlotInput
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlotUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Plot created successfully")
}

func (h *ReferenceHandler) ListSeasons(c *gin.Context) {
	result, err := h.seasonsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ReferenceHandler) ListEpochs(c *gin.Context) {
	result, err := h.epochsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
