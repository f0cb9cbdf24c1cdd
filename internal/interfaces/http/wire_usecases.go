package http

import (
	catalogUsecases "agroplan/internal/application/catalog/usecases"
	farmUsecases "agroplan/internal/application/farm/usecases"
	programmingUsecases "agroplan/internal/application/programming/usecases"
	reportUsecases "agroplan/internal/application/report/usecases"
	userUsecases "agroplan/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	loginUC      *userUsecases.LoginWithPasswordUseCase
	refreshUC    *userUsecases.RefreshTokenUseCase
	currentUser  *userUsecases.GetCurrentUserUseCase

	// Programming records
	createRecordUC    *programmingUsecases.CreateRecordUseCase
	updateRecordUC    *programmingUsecases.UpdateRecordUseCase
	getRecordUC       *programmingUsecases.GetRecordUseCase
	listRecordsUC     *programmingUsecases.ListRecordsUseCase
	deleteRecordUC    *programmingUsecases.DeleteRecordUseCase
	recordChildrenUC  *programmingUsecases.GetRecordChildrenUseCase
	replicateRecordUC *programmingUsecases.ReplicateRecordUseCase
	checkConflictsUC  *programmingUsecases.CheckConflictsUseCase

	// Pesticide applications
	createApplicationUC    *programmingUsecases.CreateApplicationUseCase
	updateApplicationUC    *programmingUsecases.UpdateApplicationUseCase
	getApplicationUC       *programmingUsecases.GetApplicationUseCase
	listApplicationsUC     *programmingUsecases.ListApplicationsUseCase
	deleteApplicationUC    *programmingUsecases.DeleteApplicationUseCase
	replicateApplicationUC *programmingUsecases.ReplicateApplicationUseCase

	// Reference data
	listProducersUC *farmUsecases.ListProducersUseCase
	listFarmsUC     *farmUsecases.ListFarmsUseCase
	listPlotsUC     *farmUsecases.ListPlotsUseCase
	createPlotUC    *farmUsecases.CreatePlotUseCase
	listSeasonsUC   *farmUsecases.ListSeasonsUseCase
	listEpochsUC    *farmUsecases.ListEpochsUseCase

	// Catalog
	listPesticidesUC     *catalogUsecases.ListPesticidesUseCase
	createPesticideUC    *catalogUsecases.CreatePesticideUseCase
	updatePesticideUC    *catalogUsecases.UpdatePesticideUseCase
	importCatalogUC      *catalogUsecases.ImportCatalogUseCase
	syncPesticidesUC     *catalogUsecases.SyncPesticidesUseCase
	listFertilizersUC    *catalogUsecases.ListFertilizersUseCase
	listCultivarsUC      *catalogUsecases.ListCultivarsUseCase
	listTreatmentsUC     *catalogUsecases.ListTreatmentsUseCase
	getCalendarUC        *catalogUsecases.GetCalendarUseCase
	listJustificationsUC *catalogUsecases.ListJustificationsUseCase
	matchClassUC         *catalogUsecases.MatchClassUseCase

	// Reports
	seasonReportUC *reportUsecases.SeasonReportUseCase
}

func newUseCases(c *Container) *allUseCases {
	r := c.repos
	log := c.log
	resolver := newTargetResolver(r)

	ucs := &allUseCases{
		loginUC:      userUsecases.NewLoginWithPasswordUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		refreshUC:    userUsecases.NewRefreshTokenUseCase(r.userRepo, c.jwtSvc, log),
		currentUser:  userUsecases.NewGetCurrentUserUseCase(r.userRepo, log),

		createRecordUC:    programmingUsecases.NewCreateRecordUseCase(r.recordRepo, resolver, r.justificationRepo, log),
		updateRecordUC:    programmingUsecases.NewUpdateRecordUseCase(r.recordRepo, resolver, r.justificationRepo, log),
		getRecordUC:       programmingUsecases.NewGetRecordUseCase(r.recordRepo, log),
		listRecordsUC:     programmingUsecases.NewListRecordsUseCase(r.recordRepo, log),
		deleteRecordUC:    programmingUsecases.NewDeleteRecordUseCase(r.recordRepo, log),
		recordChildrenUC:  programmingUsecases.NewGetRecordChildrenUseCase(r.recordRepo, r.applicationRepo, r.plotRepo, log),
		replicateRecordUC: programmingUsecases.NewReplicateRecordUseCase(r.recordRepo, c.planner, log),
		checkConflictsUC:  programmingUsecases.NewCheckConflictsUseCase(r.recordRepo, c.detector, log),

		createApplicationUC:    programmingUsecases.NewCreateApplicationUseCase(r.applicationRepo, r.recordRepo, resolver, log),
		updateApplicationUC:    programmingUsecases.NewUpdateApplicationUseCase(r.applicationRepo, r.recordRepo, resolver, log),
		getApplicationUC:       programmingUsecases.NewGetApplicationUseCase(r.applicationRepo, r.recordRepo, log),
		listApplicationsUC:     programmingUsecases.NewListApplicationsUseCase(r.applicationRepo, r.recordRepo, log),
		deleteApplicationUC:    programmingUsecases.NewDeleteApplicationUseCase(r.applicationRepo, log),
		replicateApplicationUC: programmingUsecases.NewReplicateApplicationUseCase(r.applicationRepo, c.planner, log),

		listProducersUC: farmUsecases.NewListProducersUseCase(r.producerRepo, log),
		listFarmsUC:     farmUsecases.NewListFarmsUseCase(r.farmRepo, log),
		listPlotsUC:     farmUsecases.NewListPlotsUseCase(r.plotRepo, r.recordRepo, c.detector, log),
		createPlotUC:    farmUsecases.NewCreatePlotUseCase(r.farmRepo, r.plotRepo, log),
		listSeasonsUC:   farmUsecases.NewListSeasonsUseCase(r.seasonRepo, log),
		listEpochsUC:    farmUsecases.NewListEpochsUseCase(r.epochRepo, log),

		listPesticidesUC:     catalogUsecases.NewListPesticidesUseCase(r.pesticideRepo, r.calendarRepo, c.catalogCache, c.matcher, log),
		createPesticideUC:    catalogUsecases.NewCreatePesticideUseCase(r.pesticideRepo, c.catalogCache, log),
		updatePesticideUC:    catalogUsecases.NewUpdatePesticideUseCase(r.pesticideRepo, c.catalogCache, log),
		listFertilizersUC:    catalogUsecases.NewListFertilizersUseCase(r.fertilizerRepo, log),
		listCultivarsUC:      catalogUsecases.NewListCultivarsUseCase(r.cultivarRepo, log),
		listTreatmentsUC:     catalogUsecases.NewListTreatmentsUseCase(r.treatmentRepo, log),
		getCalendarUC:        catalogUsecases.NewGetCalendarUseCase(r.calendarRepo, c.catalogCache, log),
		listJustificationsUC: catalogUsecases.NewListJustificationsUseCase(r.justificationRepo, log),
		matchClassUC:         catalogUsecases.NewMatchClassUseCase(r.calendarRepo, c.catalogCache, c.matcher, log),

		seasonReportUC: reportUsecases.NewSeasonReportUseCase(r.recordRepo, r.applicationRepo, r.farmRepo, r.producerRepo, log),
	}

	ucs.importCatalogUC = catalogUsecases.NewImportCatalogUseCase(
		r.pesticideRepo, r.fertilizerRepo, r.calendarRepo, r.importHistoryRepo, c.catalogCache, log,
	)
	ucs.syncPesticidesUC = catalogUsecases.NewSyncPesticidesUseCase(c.erpClient, ucs.importCatalogUC, log)

	return ucs
}
