package http

import (
	"agroplan/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler        *handlers.AuthHandler
	programmingHandler *handlers.ProgrammingHandler
	applicationHandler *handlers.ApplicationHandler
	referenceHandler   *handlers.ReferenceHandler
	catalogHandler     *handlers.CatalogHandler
	reportHandler      *handlers.ReportHandler
	healthHandler      *handlers.HealthHandler
}

func newHandlers(c *Container) *allHandlers {
	u := c.ucs
	log := c.log

	h := &allHandlers{
		authHandler: handlers.NewAuthHandler(u.loginUC, u.refreshUC, u.currentUser, log),
		programmingHandler: handlers.NewProgrammingHandler(
			u.createRecordUC, u.updateRecordUC, u.getRecordUC, u.listRecordsUC,
			u.deleteRecordUC, u.recordChildrenUC, u.replicateRecordUC, u.checkConflictsUC, log,
		),
		applicationHandler: handlers.NewApplicationHandler(
			u.createApplicationUC, u.updateApplicationUC, u.getApplicationUC,
			u.listApplicationsUC, u.deleteApplicationUC, u.replicateApplicationUC, log,
		),
		referenceHandler: handlers.NewReferenceHandler(
			u.listProducersUC, u.listFarmsUC, u.listPlotsUC, u.createPlotUC,
			u.listSeasonsUC, u.listEpochsUC, log,
		),
		catalogHandler: handlers.NewCatalogHandler(
			u.listPesticidesUC, u.createPesticideUC, u.updatePesticideUC, u.importCatalogUC,
			u.syncPesticidesUC, u.listFertilizersUC, u.listCultivarsUC, u.listTreatmentsUC,
			u.getCalendarUC, u.listJustificationsUC, u.matchClassUC, log,
		),
		reportHandler: handlers.NewReportHandler(u.seasonReportUC, log),
	}

	if sqlDB, err := c.db.DB(); err == nil {
		h.healthHandler = handlers.NewHealthHandler(sqlDB)
	} else {
		log.Warnw("database handle unavailable for health checks", "error", err)
		h.healthHandler = handlers.NewHealthHandler(nil)
	}

	return h
}
