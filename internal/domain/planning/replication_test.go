package planning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeResolver struct {
	farms map[uint]ResolvedTarget
}

func (f *fakeResolver) ResolveTarget(_ context.Context, t Target) (ResolvedTarget, error) {
	farm, ok := f.farms[t.FarmID]
	if !ok || farm.ProducerID != t.ProducerID {
		return ResolvedTarget{}, ErrFarmNotFound
	}
	farm.AreaName = t.AreaName
	farm.PlotIDs = t.PlotIDs
	return farm, nil
}

type fakeReplica struct {
	target    ResolvedTarget
	coverages []pct
}

func (r *fakeReplica) Validate() error  { return ValidateCoverage(r.coverages) }
func (r *fakeReplica) PlotIDs() []uint { return r.target.PlotIDs }
func (r *fakeReplica) NeedsPlots() bool { return len(r.target.PlotIDs) == 0 }

// plotlessReplica never claims plots, like a pesticide application.
type plotlessReplica struct{}

func (plotlessReplica) Validate() error  { return nil }
func (plotlessReplica) PlotIDs() []uint { return nil }

type plotlessSource struct{}

func (plotlessSource) SeasonID() uint                           { return 1 }
func (plotlessSource) EpochID() *uint                           { return nil }
func (plotlessSource) ReplicaFor(ResolvedTarget) (Replica, error) { return plotlessReplica{}, nil }

type plotlessStore struct{}

func (plotlessStore) CreateReplica(context.Context, Replica) (string, error) { return "apl_1", nil }

type fakeSource struct {
	season    uint
	epoch     *uint
	coverages []pct
}

func (s *fakeSource) SeasonID() uint { return s.season }
func (s *fakeSource) EpochID() *uint { return s.epoch }
func (s *fakeSource) ReplicaFor(t ResolvedTarget) (Replica, error) {
	return &fakeReplica{target: t, coverages: append([]pct(nil), s.coverages...)}, nil
}

type fakeStore struct {
	mu      sync.Mutex
	created []ResolvedTarget
	failFor map[uint]error
	seq     atomic.Int64
}

func (s *fakeStore) CreateReplica(_ context.Context, r Replica) (string, error) {
	rep := r.(*fakeReplica)
	if err := s.failFor[rep.target.FarmID]; err != nil {
		return "", err
	}
	s.mu.Lock()
	s.created = append(s.created, rep.target)
	s.mu.Unlock()
	return fmt.Sprintf("prg_%d", s.seq.Add(1)), nil
}

func newFarms() *fakeResolver {
	return &fakeResolver{farms: map[uint]ResolvedTarget{
		1: {ProducerID: 10, FarmID: 1, FarmName: "Santa Rita", AreaHectares: 120},
		2: {ProducerID: 20, FarmID: 2, FarmName: "Boa Vista", AreaHectares: 0},
		3: {ProducerID: 30, FarmID: 3, FarmName: "Esperança", AreaHectares: 80.5},
	}}
}

func TestPlanner_PerTargetIsolation(t *testing.T) {
	planner := NewPlanner(newFarms(), nil, 2)
	store := &fakeStore{}
	source := &fakeSource{season: 1, coverages: pcts(60, 40)}

	report := planner.Replicate(context.Background(), source, store, []Target{
		{ProducerID: 10, FarmID: 1, AreaName: "Santa Rita"},
		{ProducerID: 20, FarmID: 2, AreaName: "Boa Vista"},
		{ProducerID: 30, FarmID: 3, AreaName: "Esperança"},
	})

	require.Len(t, report.Results, 3)
	assert.Equal(t, StatusSuccess, report.Results[0].Status)
	assert.Equal(t, StatusFailed, report.Results[1].Status)
	assert.Equal(t, CodeMissingArea, report.Results[1].Code)
	assert.Equal(t, StatusSuccess, report.Results[2].Status)
	assert.Equal(t, "Esperança", report.Results[2].Target.AreaName)
	assert.True(t, report.Results[0].NeedsPlots)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "2 successes, 1 failures", report.Summary())
	assert.NotEmpty(t, report.BatchID)
	assert.Len(t, store.created, 2)
}

func TestPlanner_PlotlessReplicaNeverNeedsPlots(t *testing.T) {
	planner := NewPlanner(newFarms(), nil, 1)

	report := planner.Replicate(context.Background(), plotlessSource{}, plotlessStore{}, []Target{
		{ProducerID: 10, FarmID: 1},
	})

	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusSuccess, report.Results[0].Status)
	assert.False(t, report.Results[0].NeedsPlots)
}

func TestPlanner_ErrorCodes(t *testing.T) {
	claims := &memoryClaims{claims: []Claim{{PlotID: 42, SeasonID: 1, EpochID: epochE1, RecordID: recordA}}}
	detector := NewDetector(claims, memoryPlots{42: "T-42"})

	store := &fakeStore{failFor: map[uint]error{
		3: &PlotConflictError{Conflicts: []Conflict{{PlotID: 77, PlotName: "T-77"}}},
	}}
	planner := NewPlanner(newFarms(), detector, 0)

	t.Run("coverage and unknown farm", func(t *testing.T) {
		report := planner.Replicate(context.Background(), &fakeSource{season: 1, coverages: pcts(60, 30)}, store, []Target{
			{ProducerID: 10, FarmID: 1},
			{ProducerID: 99, FarmID: 1},
		})
		assert.Equal(t, CodeCoverageNot100, report.Results[0].Code)
		assert.Equal(t, CodeFarmNotFound, report.Results[1].Code)
		assert.Equal(t, 0, report.Succeeded)
	})

	t.Run("pre-flight conflict", func(t *testing.T) {
		report := planner.Replicate(context.Background(), &fakeSource{season: 1, epoch: epochE1, coverages: pcts(100)}, store, []Target{
			{ProducerID: 10, FarmID: 1, PlotIDs: []uint{42, 43}},
			{ProducerID: 10, FarmID: 1, PlotIDs: []uint{43}},
		})
		assert.Equal(t, CodePlotConflict, report.Results[0].Code)
		assert.Equal(t, []string{"T-42"}, report.Results[0].ConflictingPlots)
		assert.Equal(t, StatusSuccess, report.Results[1].Status)
		assert.False(t, report.Results[1].NeedsPlots)
	})

	t.Run("store lost the claim race", func(t *testing.T) {
		report := planner.Replicate(context.Background(), &fakeSource{season: 1, coverages: pcts(100)}, store, []Target{
			{ProducerID: 30, FarmID: 3, PlotIDs: []uint{77}},
		})
		assert.Equal(t, CodePlotConflict, report.Results[0].Code)
		assert.Equal(t, []string{"T-77"}, report.Results[0].ConflictingPlots)
	})

	t.Run("generic store failure", func(t *testing.T) {
		failing := &fakeStore{failFor: map[uint]error{1: errors.New("insert failed")}}
		report := planner.Replicate(context.Background(), &fakeSource{season: 1, coverages: pcts(100)}, failing, []Target{
			{ProducerID: 10, FarmID: 1},
		})
		assert.Equal(t, CodeCreateFailed, report.Results[0].Code)
		assert.Equal(t, "insert failed", report.Results[0].Message)
	})
}

func TestPlanner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewPlanner(newFarms(), nil, 1).Replicate(ctx, &fakeSource{season: 1, coverages: pcts(100)}, &fakeStore{}, []Target{
		{ProducerID: 10, FarmID: 1},
	})
	assert.Equal(t, CodeCanceled, report.Results[0].Code)
}

func TestPlanner_ManyTargetsKeepOrder(t *testing.T) {
	resolver := &fakeResolver{farms: map[uint]ResolvedTarget{}}
	targets := make([]Target, 25)
	for i := range targets {
		id := uint(i + 1)
		resolver.farms[id] = ResolvedTarget{ProducerID: id, FarmID: id, AreaHectares: float64(i)}
		targets[i] = Target{ProducerID: id, FarmID: id, AreaName: fmt.Sprintf("area-%d", i)}
	}

	report := NewPlanner(resolver, nil, 3).Replicate(context.Background(), &fakeSource{season: 1, coverages: pcts(100)}, &fakeStore{}, targets)

	require.Len(t, report.Results, 25)
	for i, r := range report.Results {
		assert.Equal(t, fmt.Sprintf("area-%d", i), r.Target.AreaName)
	}
	assert.Equal(t, CodeMissingArea, report.Results[0].Code)
	assert.Equal(t, 24, report.Succeeded)
}
