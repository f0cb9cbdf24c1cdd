package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/farm/dto"
	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

// RecordLookup resolves public record ids.
type RecordLookup interface {
	GetBySID(ctx context.Context, sid string) (*programming.Record, error)
	GetByID(ctx context.Context, id uint) (*programming.Record, error)
}

type ListPlotsQuery struct {
	FarmID   uint
	SeasonID uint
	EpochID  *uint
	// ExcludeSID is the record being edited; its own plots stay available.
	ExcludeSID string
}

// ListPlotsUseCase lists a farm's plots. With a season it also flags the
// plots already claimed by another record for that season and epoch.
type ListPlotsUseCase struct {
	plots    farm.PlotRepository
	records  RecordLookup
	detector *planning.Detector
	logger   logger.Interface
}

func NewListPlotsUseCase(
	plots farm.PlotRepository,
	records RecordLookup,
	detector *planning.Detector,
	logger logger.Interface,
) *ListPlotsUseCase {
	return &ListPlotsUseCase{plots: plots, records: records, detector: detector, logger: logger}
}

func (uc *ListPlotsUseCase) Execute(ctx context.Context, query ListPlotsQuery) ([]*dto.PlotDTO, error) {
	if query.FarmID == 0 {
		return nil, apperrors.NewValidationError("fazenda_id is required")
	}

	plots, err := uc.plots.ListByFarm(ctx, query.FarmID)
	if err != nil {
		uc.logger.Errorw("failed to list plots", "error", err, "farm_id", query.FarmID)
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}

	out := make([]*dto.PlotDTO, len(plots))
	ids := make([]uint, len(plots))
	for i, p := range plots {
		out[i] = dto.ToPlotDTO(p)
		ids[i] = p.ID()
	}
	if query.SeasonID == 0 || len(plots) == 0 {
		return out, nil
	}

	var excludeID uint
	if query.ExcludeSID != "" {
		record, err := uc.records.GetBySID(ctx, query.ExcludeSID)
		if err != nil {
			uc.logger.Errorw("failed to get programming record", "error", err, "record_id", query.ExcludeSID)
			return nil, fmt.Errorf("failed to get programming record: %w", err)
		}
		if record != nil {
			excludeID = record.ID()
		}
	}

	conflicts, err := uc.detector.FindConflicts(ctx, ids, query.SeasonID, query.EpochID, excludeID)
	if err != nil {
		uc.logger.Errorw("failed to check plot conflicts", "error", err, "farm_id", query.FarmID)
		return nil, fmt.Errorf("failed to check plot conflicts: %w", err)
	}

	claimedBy := make(map[uint]uint, len(conflicts))
	for _, c := range conflicts {
		claimedBy[c.PlotID] = c.RecordID
	}
	sids := make(map[uint]string)
	for _, p := range out {
		recordID, ok := claimedBy[p.ID]
		if !ok {
			continue
		}
		p.Conflict = true
		if _, done := sids[recordID]; !done {
			sids[recordID] = uc.recordSID(ctx, recordID)
		}
		p.ClaimedBy = sids[recordID]
	}
	return out, nil
}

// recordSID is best effort: a missing record only hides the link.
func (uc *ListPlotsUseCase) recordSID(ctx context.Context, id uint) string {
	record, err := uc.records.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warnw("failed to resolve claiming record", "error", err, "record_id", id)
		return ""
	}
	if record == nil {
		return ""
	}
	return record.SID()
}
