package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/application/programming/usecases"
	"agroplan/internal/shared/id"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

// ApplicationHandler serves pesticide applications.
type ApplicationHandler struct {
	createUC    createApplicationUseCase
	updateUC    updateApplicationUseCase
	getUC       getApplicationUseCase
	listUC      listApplicationsUseCase
	deleteUC    deleteByIDUseCase
	replicateUC replicateUseCase
	logger      logger.Interface
}

func NewApplicationHandler(
	createUC *usecases.CreateApplicationUseCase,
	updateUC *usecases.UpdateApplicationUseCase,
	getUC *usecases.GetApplicationUseCase,
	listUC *usecases.ListApplicationsUseCase,
	deleteUC *usecases.DeleteApplicationUseCase,
	replicateUC *usecases.ReplicateApplicationUseCase,
	logger logger.Interface,
) *ApplicationHandler {
	return &ApplicationHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		getUC:       getUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		replicateUC: replicateUC,
		logger:      logger,
	}
}

func parseApplicationSID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixApplication, "pesticide application")
}

func (h *ApplicationHandler) List(c *gin.Context) {
	query := usecases.ListApplicationsQuery{RecordSID: c.Query("programacao_id")}
	var err error
	if query.ProducerID, err = queryUintOrZero(c, "produtor_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.FarmID, err = queryUintOrZero(c, "fazenda_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if query.SeasonID, err = queryUintOrZero(c, "safra_id"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)
	query.Page, query.PageSize = p.Page, p.PageSize

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Applications, result.Total, result.Page, result.PageSize)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.ApplicationInput
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create pesticide application", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateApplicationCommand{
		OwnerID: currentUserID(c),
		Input:   req,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pesticide application created successfully")
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	sid, err := parseApplicationSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	sid, err := parseApplicationSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ApplicationInput
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update pesticide application", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateApplicationCommand{SID: sid, Input: req})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pesticide application updated successfully", result)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	sid, err := parseApplicationSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ApplicationHandler) Replicate(c *gin.Context) {
	sid, err := parseApplicationSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplicateRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	report, err := h.replicateUC.Execute(c.Request.Context(), usecases.ReplicateCommand{
		SID:     sid,
		UserID:  currentUserID(c),
		Targets: req.Targets,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, report.Summary(), report)
}
