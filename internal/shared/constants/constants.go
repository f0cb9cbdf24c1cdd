package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Catalog listings feed dropdowns and are allowed to be larger.
	CatalogDefaultPageSize = 200
	CatalogMaxPageSize     = 2000

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	TableUsers                 = "users"
	TableProducers             = "producers"
	TableFarms                 = "farms"
	TablePlots                 = "plots"
	TableSeasons               = "seasons"
	TableEpochs                = "epochs"
	TableProgrammingRecords    = "programming_records"
	TableCultivarLines         = "programming_cultivar_lines"
	TableFertilizationLines    = "programming_fertilization_lines"
	TablePlotClaims            = "plot_claims"
	TablePesticideApplications = "pesticide_applications"
	TablePesticideLines        = "pesticide_application_lines"
	TablePesticideCatalog      = "catalog_pesticides"
	TableFertilizerCatalog     = "catalog_fertilizers"
	TableCultivarCatalog       = "catalog_cultivars"
	TableSeedTreatments        = "catalog_seed_treatments"
	TableCalendarApplications  = "catalog_calendar_applications"
	TableJustifications        = "catalog_fertilization_justifications"
	TableImportHistory         = "catalog_import_history"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgPlotConflict        = "talhao já possui programação nesta safra"
)
