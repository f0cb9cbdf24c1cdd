package farm

import "errors"

var (
	ErrProducerNotFound = errors.New("producer not found")
	ErrFarmNotFound     = errors.New("farm not found")
	ErrPlotNotFound     = errors.New("plot not found")
	ErrSeasonNotFound   = errors.New("season not found")
	ErrEpochNotFound    = errors.New("epoch not found")

	ErrNameRequired     = errors.New("name is required")
	ErrProducerRequired = errors.New("producer is required")
	ErrFarmRequired     = errors.New("farm is required")
	ErrInvalidArea      = errors.New("area must be a positive number of hectares")
	ErrInvalidDateRange = errors.New("season end must be after its start")
	ErrDuplicatePlot    = errors.New("farm already has a plot with this name")
)
