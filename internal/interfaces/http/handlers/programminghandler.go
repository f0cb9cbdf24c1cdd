package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/application/programming/usecases"
	"agroplan/internal/domain/planning"
	"agroplan/internal/shared/id"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type ProgrammingHandler struct {
	createUC    createRecordUseCase
	updateUC    updateRecordUseCase
	getUC       getRecordUseCase
	listUC      listRecordsUseCase
	deleteUC    deleteByIDUseCase
	childrenUC  getRecordChildrenUseCase
	replicateUC replicateUseCase
	conflictsUC checkConflictsUseCase
	logger      logger.Interface
}

func NewProgrammingHandler(
	createUC *usecases.CreateRecordUseCase,
	updateUC *usecases.UpdateRecordUseCase,
	getUC *usecases.GetRecordUseCase,
	listUC *usecases.ListRecordsUseCase,
	deleteUC *usecases.DeleteRecordUseCase,
	childrenUC *usecases.GetRecordChildrenUseCase,
	replicateUC *usecases.ReplicateRecordUseCase,
	conflictsUC *usecases.CheckConflictsUseCase,
	logger logger.Interface,
) *ProgrammingHandler {
	return &ProgrammingHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		getUC:       getUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		childrenUC:  childrenUC,
		replicateUC: replicateUC,
		conflictsUC: conflictsUC,
		logger:      logger,
	}
}

type ReplicateRequest struct {
	Targets []planning.Target `json:"targets" binding:"required,min=1,dive"`
}

type CheckConflictsRequest struct {
	PlotIDs   []uint `json:"talhao_ids"`
	SeasonID  uint   `json:"safra_id" binding:"required"`
	EpochID   *uint  `json:"epoca_id"`
	ExcludeID string `json:"exclude_id"`
}

type CheckConflictsResponse struct {
	Conflict  bool     `json:"conflito"`
	Plots     []uint   `json:"talhoes"`
	PlotNames []string `json:"talhoes_nomes"`
}

func parseRecordSID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixProgramming, "programming record")
}

func (h *ProgrammingHandler) List(c *gin.Context) {
	query := usecases.ListRecordsQuery{Type: c.Query("tipo")}
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
	if query.EpochID, err = utils.QueryUint(c, "epoca_id"); err != nil {
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

	utils.ListSuccessResponse(c, result.Records, result.Total, result.Page, result.PageSize)
}

func (h *ProgrammingHandler) Create(c *gin.Context) {
	var req dto.RecordInput
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create programming record", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateRecordCommand{
		OwnerID: currentUserID(c),
		Input:   req,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Programming record created successfully")
}

func (h *ProgrammingHandler) Get(c *gin.Context) {
	sid, err := parseRecordSID(c)
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

// Update replaces the whole record, lines included.
func (h *ProgrammingHandler) Update(c *gin.Context) {
	sid, err := parseRecordSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RecordInput
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update programming record", "sid", sid, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateRecordCommand{
		SID:     sid,
		OwnerID: currentUserID(c),
		Input:   req,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Programming record updated successfully", result)
}

func (h *ProgrammingHandler) Delete(c *gin.Context) {
	sid, err := parseRecordSID(c)
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

func (h *ProgrammingHandler) Children(c *gin.Context) {
	sid, err := parseRecordSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.childrenUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ProgrammingHandler) Replicate(c *gin.Context) {
	sid, err := parseRecordSID(c)
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

	// per-target failures still answer 200
	utils.SuccessResponse(c, http.StatusOK, report.Summary(), report)
}

// CheckConflicts is the pre-flight the forms call before saving.
func (h *ProgrammingHandler) CheckConflicts(c *gin.Context) {
	var req CheckConflictsRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.conflictsUC.Execute(c.Request.Context(), usecases.CheckConflictsQuery{
		PlotIDs:   req.PlotIDs,
		SeasonID:  req.SeasonID,
		EpochID:   req.EpochID,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", CheckConflictsResponse{
		Conflict:  len(result.Conflicts) > 0,
		Plots:     result.PlotIDs(),
		PlotNames: result.PlotNames(),
	})
}
