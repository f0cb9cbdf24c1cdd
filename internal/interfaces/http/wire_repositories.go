package http

import (
	"gorm.io/gorm"

	programmingUsecases "agroplan/internal/application/programming/usecases"
	"agroplan/internal/domain/user"
	"agroplan/internal/infrastructure/repository"
	"agroplan/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	userRepo user.Repository

	producerRepo *repository.ProducerRepository
	farmRepo     *repository.FarmRepository
	plotRepo     *repository.PlotRepository
	seasonRepo   *repository.SeasonRepository
	epochRepo    *repository.EpochRepository

	recordRepo      *repository.ProgrammingRecordRepository
	applicationRepo *repository.PesticideApplicationRepository

	pesticideRepo     *repository.PesticideCatalogRepository
	fertilizerRepo    *repository.FertilizerCatalogRepository
	cultivarRepo      *repository.CultivarCatalogRepository
	treatmentRepo     *repository.SeedTreatmentRepository
	calendarRepo      *repository.CalendarRepository
	justificationRepo *repository.JustificationRepository
	importHistoryRepo *repository.ImportHistoryRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo: repository.NewUserRepository(db, log),

		producerRepo: repository.NewProducerRepository(db, log),
		farmRepo:     repository.NewFarmRepository(db, log),
		plotRepo:     repository.NewPlotRepository(db, log),
		seasonRepo:   repository.NewSeasonRepository(db, log),
		epochRepo:    repository.NewEpochRepository(db, log),

		recordRepo:      repository.NewProgrammingRecordRepository(db, log),
		applicationRepo: repository.NewPesticideApplicationRepository(db, log),

		pesticideRepo:     repository.NewPesticideCatalogRepository(db, log),
		fertilizerRepo:    repository.NewFertilizerCatalogRepository(db, log),
		cultivarRepo:      repository.NewCultivarCatalogRepository(db),
		treatmentRepo:     repository.NewSeedTreatmentRepository(db, log),
		calendarRepo:      repository.NewCalendarRepository(db, log),
		justificationRepo: repository.NewJustificationRepository(db),
		importHistoryRepo: repository.NewImportHistoryRepository(db),
	}
}

func newTargetResolver(repos *repositories) *programmingUsecases.FarmTargetResolver {
	return programmingUsecases.NewFarmTargetResolver(repos.farmRepo, repos.plotRepo)
}
