package programming

import "errors"

var (
	ErrRecordNotFound      = errors.New("programming record not found")
	ErrApplicationNotFound = errors.New("pesticide application not found")
	ErrVersionConflict     = errors.New("version conflict: record was modified")
	ErrRecordHasDependents = errors.New("programming record is referenced by pesticide applications")

	ErrInvalidRecordType = errors.New("record type must be PREVIA or PROGRAMACAO")
	ErrProducerRequired  = errors.New("producer is required")
	ErrFarmRequired      = errors.New("farm is required")
	ErrSeasonRequired    = errors.New("season is required")
	ErrDuplicatePlot     = errors.New("plot listed more than once")

	ErrCultivarRequired             = errors.New("cultivar name is required")
	ErrLineCoverageOutOfRange       = errors.New("line coverage must be between 0 and 100")
	ErrInvalidDose                  = errors.New("dose must be a positive number")
	ErrInvalidSavedPercent          = errors.New("saved percentage must be between 0 and 100")
	ErrTreatmentRequired            = errors.New("seed treatment type is required")
	ErrInvalidTreatmentKind         = errors.New("unknown seed treatment type")
	ErrOnFarmWithoutPesticides      = errors.New("on-farm seed treatment needs at least one pesticide")
	ErrIndustrialWithoutTreatments  = errors.New("industrial seed treatment needs at least one treatment")
	ErrFormulationRequired          = errors.New("fertilizer formulation is required")
	ErrFormulationWithJustification = errors.New("a justified no-fertilization line cannot name a formulation")
	ErrProductRequired              = errors.New("pesticide product is required")
	ErrDuplicateProduct             = errors.New("product already chosen for this class and application")
)
