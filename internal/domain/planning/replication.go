package planning

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultReplicationConcurrency bounds how many targets are created at once.
const DefaultReplicationConcurrency = 4

// Target is a destination for a replicated record. When PlotIDs is empty
// the whole farm area is used and the copy has no plots assigned.
type Target struct {
	ProducerID uint   `json:"produtor_id"`
	FarmID     uint   `json:"fazenda_id"`
	AreaName   string `json:"area"`
	PlotIDs    []uint `json:"talhao_ids,omitempty"`
}

// ResolvedTarget is a Target with its farm looked up.
type ResolvedTarget struct {
	ProducerID   uint
	FarmID       uint
	FarmName     string
	AreaName     string
	PlotIDs      []uint
	AreaHectares float64
}

// TargetResolver looks up the farm behind a target and computes its area.
// It returns ErrFarmNotFound or ErrPlotNotInFarm for bad targets.
type TargetResolver interface {
	ResolveTarget(ctx context.Context, t Target) (ResolvedTarget, error)
}

// Replica is an unsaved copy of a record bound to one target.
type Replica interface {
	Validate() error
	PlotIDs() []uint
}

// PlotHolder is implemented by replicas that claim plots and may be saved
// without any, leaving the user to pick them later.
type PlotHolder interface {
	NeedsPlots() bool
}

// Source is a record that can be copied to other producers and farms.
type Source interface {
	SeasonID() uint
	EpochID() *uint
	ReplicaFor(t ResolvedTarget) (Replica, error)
}

// ReplicaStore persists a replica and returns its public id. Stores claim
// plots atomically and return *PlotConflictError when they lose a race.
type ReplicaStore interface {
	CreateReplica(ctx context.Context, r Replica) (string, error)
}

type ErrorCode string

const (
	CodeMissingArea    ErrorCode = "MISSING_AREA"
	CodeCoverageNot100 ErrorCode = "COVERAGE_NOT_100"
	CodePlotConflict   ErrorCode = "PLOT_CONFLICT"
	CodeFarmNotFound   ErrorCode = "FARM_NOT_FOUND"
	CodeInvalidRecord  ErrorCode = "INVALID_RECORD"
	CodeCreateFailed   ErrorCode = "CREATE_FAILED"
	CodeCanceled       ErrorCode = "CANCELED"
)

type TargetStatus string

const (
	StatusSuccess TargetStatus = "success"
	StatusFailed  TargetStatus = "failed"
)

// TargetResult is the outcome for one target, at the target's input position.
type TargetResult struct {
	Target           Target       `json:"target"`
	Status           TargetStatus `json:"status"`
	RecordID         string       `json:"record_id,omitempty"`
	Code             ErrorCode    `json:"code,omitempty"`
	Message          string       `json:"message,omitempty"`
	ConflictingPlots []string     `json:"talhoes_nomes,omitempty"`
	NeedsPlots       bool         `json:"needs_plots,omitempty"`
}

// Report is the per-target outcome of one replication batch.
type Report struct {
	BatchID   string         `json:"batch_id"`
	Results   []TargetResult `json:"results"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}

func (r Report) Summary() string {
	return fmt.Sprintf("%d successes, %d failures", r.Succeeded, r.Failed)
}

// Planner replicates a source record to many targets. Targets are isolated:
// a failing target never cancels, blocks or rolls back another.
type Planner struct {
	resolver    TargetResolver
	detector    *Detector
	concurrency int
}

func NewPlanner(resolver TargetResolver, detector *Detector, concurrency int) *Planner {
	if concurrency <= 0 {
		concurrency = DefaultReplicationConcurrency
	}
	return &Planner{resolver: resolver, detector: detector, concurrency: concurrency}
}

// Replicate runs every target and returns results in target order.
func (p *Planner) Replicate(ctx context.Context, source Source, store ReplicaStore, targets []Target) Report {
	report := Report{
		BatchID: uuid.NewString(),
		Results: make([]TargetResult, len(targets)),
	}

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, t := range targets {
		g.Go(func() error {
			report.Results[i] = p.replicateOne(ctx, source, store, t)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range report.Results {
		if r.Status == StatusSuccess {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	return report
}

func (p *Planner) replicateOne(ctx context.Context, source Source, store ReplicaStore, t Target) TargetResult {
	result := TargetResult{Target: t}

	if err := ctx.Err(); err != nil {
		return fail(result, CodeCanceled, err)
	}

	resolved, err := p.resolver.ResolveTarget(ctx, t)
	if err != nil {
		return fail(result, classify(err), err)
	}
	if !(resolved.AreaHectares > 0) {
		return fail(result, CodeMissingArea, ErrMissingArea)
	}

	replica, err := source.ReplicaFor(resolved)
	if err != nil {
		return fail(result, classifyValidation(err), err)
	}
	if err := replica.Validate(); err != nil {
		return fail(result, classifyValidation(err), err)
	}

	if p.detector != nil {
		if err := p.detector.Check(ctx, replica.PlotIDs(), source.SeasonID(), source.EpochID(), 0); err != nil {
			return failWithConflicts(result, err)
		}
	}

	recordID, err := store.CreateReplica(ctx, replica)
	if err != nil {
		return failWithConflicts(result, err)
	}

	result.Status = StatusSuccess
	result.RecordID = recordID
	if holder, ok := replica.(PlotHolder); ok {
		result.NeedsPlots = holder.NeedsPlots()
	}
	return result
}

func fail(r TargetResult, code ErrorCode, err error) TargetResult {
	r.Status = StatusFailed
	r.Code = code
	r.Message = err.Error()
	return r
}

func failWithConflicts(r TargetResult, err error) TargetResult {
	r = fail(r, classify(err), err)
	var conflictErr *PlotConflictError
	if errors.As(err, &conflictErr) {
		r.ConflictingPlots = conflictErr.PlotNames()
	}
	return r
}

func classify(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrMissingArea):
		return CodeMissingArea
	case errors.Is(err, ErrPlotConflict):
		return CodePlotConflict
	case errors.Is(err, ErrFarmNotFound), errors.Is(err, ErrPlotNotInFarm):
		return CodeFarmNotFound
	case errors.Is(err, ErrCoverageNot100):
		return CodeCoverageNot100
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCanceled
	default:
		return CodeCreateFailed
	}
}

func classifyValidation(err error) ErrorCode {
	if errors.Is(err, ErrCoverageNot100) {
		return CodeCoverageNot100
	}
	if errors.Is(err, ErrMissingArea) {
		return CodeMissingArea
	}
	return CodeInvalidRecord
}
