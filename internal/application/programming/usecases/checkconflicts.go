package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type CheckConflictsQuery struct {
	PlotIDs   []uint
	SeasonID  uint
	EpochID   *uint
	ExcludeID string
}

type CheckConflictsResult struct {
	Conflicts []planning.Conflict
}

func (r *CheckConflictsResult) PlotIDs() []uint {
	return (&planning.PlotConflictError{Conflicts: r.Conflicts}).PlotIDs()
}

func (r *CheckConflictsResult) PlotNames() []string {
	return (&planning.PlotConflictError{Conflicts: r.Conflicts}).PlotNames()
}

// CheckConflictsUseCase is the pre-flight the forms run before saving.
// It never claims anything.
type CheckConflictsUseCase struct {
	records  programming.RecordRepository
	detector *planning.Detector
	logger   logger.Interface
}

func NewCheckConflictsUseCase(
	records programming.RecordRepository,
	detector *planning.Detector,
	logger logger.Interface,
) *CheckConflictsUseCase {
	return &CheckConflictsUseCase{records: records, detector: detector, logger: logger}
}

func (uc *CheckConflictsUseCase) Execute(ctx context.Context, query CheckConflictsQuery) (*CheckConflictsResult, error) {
	if query.SeasonID == 0 {
		return nil, apperrors.NewValidationError("safra_id is required")
	}

	excludeID, err := resolveRecordID(ctx, uc.records, query.ExcludeID)
	if err != nil {
		uc.logger.Errorw("failed to resolve excluded record", "error", err, "record_id", query.ExcludeID)
		return nil, err
	}

	conflicts, err := uc.detector.FindConflicts(ctx, query.PlotIDs, query.SeasonID, query.EpochID, excludeID)
	if err != nil {
		uc.logger.Errorw("failed to check plot conflicts", "error", err, "season_id", query.SeasonID)
		return nil, fmt.Errorf("failed to check plot conflicts: %w", err)
	}
	if conflicts == nil {
		conflicts = []planning.Conflict{}
	}
	return &CheckConflictsResult{Conflicts: conflicts}, nil
}

// resolveRecordID maps a public record id to its row id. An empty sid is 0.
// An unknown sid is a validation error.
func resolveRecordID(ctx context.Context, records programming.RecordRepository, sid string) (uint, error) {
	if sid == "" {
		return 0, nil
	}
	record, err := records.GetBySID(ctx, sid)
	if err != nil {
		return 0, fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return 0, apperrors.NewValidationError("unknown programming record", sid)
	}
	return record.ID(), nil
}
