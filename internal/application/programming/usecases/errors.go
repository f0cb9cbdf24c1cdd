package usecases

import (
	"errors"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
)

var validationErrors = []error{
	planning.ErrCoverageNot100,
	planning.ErrNoLines,
	planning.ErrJustificationWithLines,
	planning.ErrMissingArea,
	planning.ErrFarmNotFound,
	planning.ErrPlotNotInFarm,
	programming.ErrInvalidRecordType,
	programming.ErrProducerRequired,
	programming.ErrFarmRequired,
	programming.ErrSeasonRequired,
	programming.ErrDuplicatePlot,
	programming.ErrCultivarRequired,
	programming.ErrLineCoverageOutOfRange,
	programming.ErrInvalidDose,
	programming.ErrInvalidSavedPercent,
	programming.ErrTreatmentRequired,
	programming.ErrInvalidTreatmentKind,
	programming.ErrOnFarmWithoutPesticides,
	programming.ErrIndustrialWithoutTreatments,
	programming.ErrFormulationRequired,
	programming.ErrFormulationWithJustification,
	programming.ErrProductRequired,
	programming.ErrDuplicateProduct,
}

// toAppError maps domain sentinels to AppErrors. Plot conflicts pass
// through untouched so the handler can render the plot list.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, planning.ErrPlotConflict) || apperrors.GetAppError(err) != nil {
		return err
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return apperrors.NewValidationError(err.Error())
		}
	}

	switch {
	case errors.Is(err, programming.ErrRecordNotFound), errors.Is(err, programming.ErrApplicationNotFound):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, programming.ErrVersionConflict), errors.Is(err, programming.ErrRecordHasDependents):
		return apperrors.NewConflictError(err.Error())
	}
	return err
}

func isPlotConflict(err error) bool {
	return errors.Is(err, planning.ErrPlotConflict)
}
