package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

// MaxReplicationTargets bounds a single batch.
const MaxReplicationTargets = 200

type ReplicateCommand struct {
	SID     string
	UserID  uint
	Targets []planning.Target
}

type ReplicateRecordUseCase struct {
	records programming.RecordRepository
	planner *planning.Planner
	logger  logger.Interface
}

func NewReplicateRecordUseCase(
	records programming.RecordRepository,
	planner *planning.Planner,
	logger logger.Interface,
) *ReplicateRecordUseCase {
	return &ReplicateRecordUseCase{records: records, planner: planner, logger: logger}
}

// Execute copies the record to every target. Per-target failures are part
// of the report, never an error.
func (uc *ReplicateRecordUseCase) Execute(ctx context.Context, cmd ReplicateCommand) (*planning.Report, error) {
	if err := validateTargets(cmd.Targets); err != nil {
		return nil, err
	}

	record, err := uc.records.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get programming record", "error", err, "record_id", cmd.SID)
		return nil, fmt.Errorf("failed to get programming record: %w", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFoundError("programming record not found", cmd.SID)
	}

	report := uc.planner.Replicate(ctx, record, recordStore{records: uc.records}, cmd.Targets)
	logReport(uc.logger, "programming record replicated", cmd.SID, cmd.UserID, report)
	return &report, nil
}

func validateTargets(targets []planning.Target) error {
	if len(targets) == 0 {
		return apperrors.NewValidationError("at least one target is required")
	}
	if len(targets) > MaxReplicationTargets {
		return apperrors.NewValidationError(fmt.Sprintf("at most %d targets per replication", MaxReplicationTargets))
	}
	for i, t := range targets {
		if t.ProducerID == 0 || t.FarmID == 0 {
			return apperrors.NewValidationError(fmt.Sprintf("target %d needs produtor_id and fazenda_id", i+1))
		}
	}
	return nil
}

func logReport(log logger.Interface, msg, sourceID string, userID uint, report planning.Report) {
	log.Infow(msg,
		"source_id", sourceID,
		"batch_id", report.BatchID,
		"user_id", userID,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)
	for _, r := range report.Results {
		if r.Status == planning.StatusFailed {
			log.Warnw("replication target failed",
				"batch_id", report.BatchID,
				"producer_id", r.Target.ProducerID,
				"farm_id", r.Target.FarmID,
				"code", r.Code,
				"message", r.Message,
			)
		}
	}
}
