package planning

import "errors"

var (
	ErrCoverageNot100         = errors.New("coverage percentages must total 100%")
	ErrNoLines                = errors.New("at least one line is required")
	ErrJustificationWithLines = errors.New("a no-fertilization justification cannot be combined with other lines")
	ErrPlotConflict           = errors.New("plot already has a programming record for this season and epoch")
	ErrMissingArea            = errors.New("target farm has no cultivable area")
	ErrFarmNotFound           = errors.New("target farm not found for producer")
	ErrPlotNotInFarm          = errors.New("plot does not belong to the target farm")
)
