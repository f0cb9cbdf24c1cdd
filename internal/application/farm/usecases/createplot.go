package usecases

import (
	"context"
	"errors"
	"fmt"

	"agroplan/internal/application/farm/dto"
	"agroplan/internal/domain/farm"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type CreatePlotUseCase struct {
	farms  farm.FarmRepository
	plots  farm.PlotRepository
	logger logger.Interface
}

func NewCreatePlotUseCase(farms farm.FarmRepository, plots farm.PlotRepository, logger logger.Interface) *CreatePlotUseCase {
	return &CreatePlotUseCase{farms: farms, plots: plots, logger: logger}
}

func (uc *CreatePlotUseCase) Execute(ctx context.Context, in dto.CreatePlotInput) (*dto.PlotDTO, error) {
	plot, err := farm.NewPlot(in.FarmID, in.Name, in.AreaHectares)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	f, err := uc.farms.GetByID(ctx, in.FarmID)
	if err != nil {
		uc.logger.Errorw("failed to get farm", "error", err, "farm_id", in.FarmID)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}
	if f == nil {
		return nil, apperrors.NewNotFoundError(farm.ErrFarmNotFound.Error())
	}

	exists, err := uc.plots.ExistsByName(ctx, in.FarmID, plot.Name())
	if err != nil {
		uc.logger.Errorw("failed to check plot name", "error", err, "farm_id", in.FarmID)
		return nil, fmt.Errorf("failed to check plot name: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(farm.ErrDuplicatePlot.Error(), plot.Name())
	}

	if err := uc.plots.Create(ctx, plot); err != nil {
		if errors.Is(err, farm.ErrDuplicatePlot) {
			return nil, apperrors.NewConflictError(err.Error(), plot.Name())
		}
		uc.logger.Errorw("failed to create plot", "error", err, "farm_id", in.FarmID)
		return nil, fmt.Errorf("failed to create plot: %w", err)
	}

	uc.logger.Infow("plot created", "plot_id", plot.ID(), "farm_id", in.FarmID, "area", plot.AreaHectares())
	return dto.ToPlotDTO(plot), nil
}
