package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/planning"
)

// FarmTargetResolver resolves targets against the farm and plot registry.
// The area is the sum of the chosen plots, or the farm's cultivable area
// when no plots are given.
type FarmTargetResolver struct {
	farms farm.FarmRepository
	plots farm.PlotRepository
}

func NewFarmTargetResolver(farms farm.FarmRepository, plots farm.PlotRepository) *FarmTargetResolver {
	return &FarmTargetResolver{farms: farms, plots: plots}
}

func (r *FarmTargetResolver) ResolveTarget(ctx context.Context, t planning.Target) (planning.ResolvedTarget, error) {
	f, err := r.farms.GetByID(ctx, t.FarmID)
	if err != nil {
		return planning.ResolvedTarget{}, fmt.Errorf("failed to get farm: %w", err)
	}
	if f == nil || !f.BelongsTo(t.ProducerID) {
		return planning.ResolvedTarget{}, fmt.Errorf("%w: farm %d", planning.ErrFarmNotFound, t.FarmID)
	}

	resolved := planning.ResolvedTarget{
		ProducerID:   t.ProducerID,
		FarmID:       f.ID(),
		FarmName:     f.Name(),
		AreaName:     t.AreaName,
		PlotIDs:      append([]uint(nil), t.PlotIDs...),
		AreaHectares: f.CultivableArea(),
	}
	if resolved.AreaName == "" {
		resolved.AreaName = f.Name()
	}

	if len(t.PlotIDs) == 0 {
		return resolved, nil
	}

	plots, err := r.plots.GetByIDs(ctx, t.PlotIDs)
	if err != nil {
		return planning.ResolvedTarget{}, fmt.Errorf("failed to get plots: %w", err)
	}
	found := make(map[uint]bool, len(plots))
	for _, p := range plots {
		if p.FarmID() != f.ID() {
			return planning.ResolvedTarget{}, fmt.Errorf("%w: plot %d", planning.ErrPlotNotInFarm, p.ID())
		}
		found[p.ID()] = true
	}
	for _, id := range t.PlotIDs {
		if !found[id] {
			return planning.ResolvedTarget{}, fmt.Errorf("%w: plot %d", planning.ErrPlotNotInFarm, id)
		}
	}

	resolved.AreaHectares = planning.RecordArea(farm.PlotAreas(plots)...)
	return resolved, nil
}
