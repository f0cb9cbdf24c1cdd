package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/application/catalog/usecases"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
	"agroplan/internal/shared/utils"
)

type CatalogHandler struct {
	listPesticidesUC     listPesticidesUseCase
	createPesticideUC    createPesticideUseCase
	updatePesticideUC    updatePesticideUseCase
	importUC             importCatalogUseCase
	syncUC               syncPesticidesUseCase
	listFertilizersUC    listFertilizersUseCase
	listCultivarsUC      listCultivarsUseCase
	listTreatmentsUC     listTreatmentsUseCase
	calendarUC           getCalendarUseCase
	listJustificationsUC listJustificationsUseCase
	matchClassUC         matchClassUseCase
	logger               logger.Interface
}

func NewCatalogHandler(
	listPesticidesUC *usecases.ListPesticidesUseCase,
	createPesticideUC *usecases.CreatePesticideUseCase,
	updatePesticideUC *usecases.UpdatePesticideUseCase,
	importUC *usecases.ImportCatalogUseCase,
	syncUC *usecases.SyncPesticidesUseCase,
	listFertilizersUC *usecases.ListFertilizersUseCase,
	listCultivarsUC *usecases.ListCultivarsUseCase,
	listTreatmentsUC *usecases.ListTreatmentsUseCase,
	calendarUC *usecases.GetCalendarUseCase,
	listJustificationsUC *usecases.ListJustificationsUseCase,
	matchClassUC *usecases.MatchClassUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		listPesticidesUC:     listPesticidesUC,
		createPesticideUC:    createPesticideUC,
		updatePesticideUC:    updatePesticideUC,
		importUC:             importUC,
		syncUC:               syncUC,
		listFertilizersUC:    listFertilizersUC,
		listCultivarsUC:      listCultivarsUC,
		listTreatmentsUC:     listTreatmentsUC,
		calendarUC:           calendarUC,
		listJustificationsUC: listJustificationsUC,
		matchClassUC:         matchClassUC,
		logger:               logger,
	}
}

// BulkImportRequest carries spreadsheet rows keyed by column header.
type BulkImportRequest struct {
	Items []catalog.Row `json:"items" binding:"required,min=1"`
}

type MatchClassRequest struct {
	Candidate string   `json:"candidate" binding:"required"`
	Groups    []string `json:"groups"`
}

type PesticideListResponse struct {
	utils.ListResponse
	Class string `json:"classe,omitempty"`
}

func (h *CatalogHandler) ListPesticides(c *gin.Context) {
	p := utils.ParsePaginationWithLimits(c, constants.CatalogDefaultPageSize, constants.CatalogMaxPageSize)
	query := usecases.ListPesticidesQuery{
		Search:      c.Query("search"),
		Class:       c.Query("classe"),
		Application: c.Query("aplicacao"),
		Exclude:     trimList(c.QueryArray("excluir")),
		Page:        p.Page,
		PageSize:    p.PageSize,
	}

	result, err := h.listPesticidesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", PesticideListResponse{
		ListResponse: utils.ListResponse{
			Items:      result.Items,
			Total:      result.Total,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalPages: utils.TotalPages(result.Total, result.PageSize),
		},
		Class: result.Class,
	})
}

// trimList drops blank entries. Product names may contain commas ("2,4-D"),
// so exclusions come as repeated parameters.
func trimList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (h *CatalogHandler) CreatePesticide(c *gin.Context) {
	var req dto.PesticideInput
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPesticideUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Pesticide created successfully")
}

func (h *CatalogHandler) UpdatePesticide(c *gin.Context) {
	code := strings.TrimSpace(c.Param("cod_item"))
	if code == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("cod_item is required"))
		return
	}

	var req dto.PesticideInput
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePesticideUC.Execute(c.Request.Context(), code, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pesticide updated successfully", result)
}

func (h *CatalogHandler) importRows(c *gin.Context, kind catalog.ImportKind) {
	var req BulkImportRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.importUC.Execute(c.Request.Context(), usecases.ImportCatalogCommand{
		Kind:   kind,
		Source: "upload",
		Rows:   req.Items,
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Import completed", result)
}

func (h *CatalogHandler) ImportPesticides(c *gin.Context) {
	h.importRows(c, catalog.ImportPesticides)
}

func (h *CatalogHandler) ImportFertilizers(c *gin.Context) {
	h.importRows(c, catalog.ImportFertilizers)
}

func (h *CatalogHandler) ImportCalendar(c *gin.Context) {
	h.importRows(c, catalog.ImportCalendar)
}

func (h *CatalogHandler) SyncPesticides(c *gin.Context) {
	result, err := h.syncUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sync completed", result)
}

func (h *CatalogHandler) ListFertilizers(c *gin.Context) {
	p := utils.ParsePaginationWithLimits(c, constants.CatalogDefaultPageSize, constants.CatalogMaxPageSize)

	result, err := h.listFertilizersUC.Execute(c.Request.Context(), usecases.ListFertilizersQuery{
		Search:   c.Query("search"),
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *CatalogHandler) ListCultivars(c *gin.Context) {
	result, err := h.listCultivarsUC.Execute(c.Request.Context(), c.Query("cultura"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListTreatments(c *gin.Context) {
	result, err := h.listTreatmentsUC.Execute(c.Request.Context(), usecases.ListTreatmentsQuery{
		Crop:     c.Query("cultura"),
		Cultivar: c.Query("cultivar"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) GetCalendar(c *gin.Context) {
	result, err := h.calendarUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) ListJustifications(c *gin.Context) {
	result, err := h.listJustificationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) MatchClass(c *gin.Context) {
	var req MatchClassRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.matchClassUC.Execute(c.Request.Context(), usecases.MatchClassQuery{
		Candidate: req.Candidate,
		Groups:    req.Groups,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
