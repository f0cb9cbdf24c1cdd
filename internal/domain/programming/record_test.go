package programming

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/planning"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func uintPtr(v uint) *uint { return &v }

func cultivar(name string, coverage float64) CultivarLine {
	return CultivarLine{
		Cultivar:       name,
		Crop:           "SOJA",
		CoveragePct:    coverage,
		PackageType:    PackageBag5000K,
		SeedPopulation: 300000,
		SeedsPerBag:    5000000,
		Treatment:      NoTreatment{},
	}
}

func fertilizer(formulation string, dose, coverage float64) FertilizationLine {
	return FertilizationLine{Formulation: formulation, Dose: dose, CoveragePct: coverage}
}

func validParams() RecordParams {
	return RecordParams{
		OwnerID:      7,
		ProducerID:   1,
		FarmID:       2,
		AreaName:     "Sede",
		AreaHectares: 120,
		SeasonID:     3,
		EpochID:      uintPtr(1),
		Type:         RecordTypeProgramming,
		PlotIDs:      []uint{10, 11},
		Cultivars: []CultivarLine{
			cultivar("BRS 1010", 60),
			cultivar("TMG 7062", 40),
		},
		Fertilizations: []FertilizationLine{
			fertilizer("MAP 11-52-00", 150, 100),
		},
	}
}

func newValidRecord(t *testing.T) *Record {
	t.Helper()
	r, err := NewRecord(validParams())
	require.NoError(t, err)
	return r
}

// ---------------------------------------------------------------------------
// Constructor Tests
// ---------------------------------------------------------------------------

func TestNewRecord_Valid(t *testing.T) {
	r := newValidRecord(t)

	assert.True(t, len(r.SID()) > 4)
	assert.Equal(t, "prg_", r.SID()[:4])
	assert.Equal(t, 1, r.Version())
	assert.Equal(t, []uint{10, 11}, r.PlotIDs())
	assert.False(t, r.NeedsPlots())
	assert.Equal(t, uint(0), r.ID())
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *RecordParams)
		wantErr error
	}{
		{"bad type", func(p *RecordParams) { p.Type = "RASCUNHO" }, ErrInvalidRecordType},
		{"no producer", func(p *RecordParams) { p.ProducerID = 0 }, ErrProducerRequired},
		{"no farm", func(p *RecordParams) { p.FarmID = 0 }, ErrFarmRequired},
		{"no season", func(p *RecordParams) { p.SeasonID = 0 }, ErrSeasonRequired},
		{"zero area", func(p *RecordParams) { p.AreaHectares = 0 }, planning.ErrMissingArea},
		{"duplicate plot", func(p *RecordParams) { p.PlotIDs = []uint{10, 10} }, ErrDuplicatePlot},
		{"cultivars under 100", func(p *RecordParams) { p.Cultivars[1].CoveragePct = 30 }, planning.ErrCoverageNot100},
		{"no cultivars", func(p *RecordParams) { p.Cultivars = nil }, planning.ErrNoLines},
		{"fertilization over 100", func(p *RecordParams) {
			p.Fertilizations = append(p.Fertilizations, fertilizer("KCL", 80, 20))
		}, planning.ErrCoverageNot100},
		{"justification mixed with lines", func(p *RecordParams) {
			p.Fertilizations = append(p.Fertilizations, NewFertilizationOptOut(1))
		}, planning.ErrJustificationWithLines},
		{"missing treatment", func(p *RecordParams) { p.Cultivars[0].Treatment = nil }, ErrTreatmentRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)

			r, err := NewRecord(p)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewRecord_FertilizationOptOut(t *testing.T) {
	p := validParams()
	p.Fertilizations = []FertilizationLine{NewFertilizationOptOut(4)}

	r, err := NewRecord(p)
	require.NoError(t, err)
	require.Len(t, r.Fertilizations(), 1)
	assert.Equal(t, uint(4), *r.Fertilizations()[0].JustificationID())
}

func TestNewRecord_WithoutPlotsNeedsPlots(t *testing.T) {
	p := validParams()
	p.PlotIDs = nil

	r, err := NewRecord(p)
	require.NoError(t, err)
	assert.True(t, r.NeedsPlots())
	assert.Empty(t, r.Claims())
}

func TestReconstructRecord(t *testing.T) {
	now := time.Now()

	r, err := ReconstructRecord(5, "prg_abc", validParams(), false, 3, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), r.ID())
	assert.Equal(t, 3, r.Version())

	_, err = ReconstructRecord(0, "prg_abc", validParams(), false, 1, now, now)
	assert.Error(t, err)

	_, err = ReconstructRecord(5, "", validParams(), false, 1, now, now)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Mutation Tests
// ---------------------------------------------------------------------------

func TestRecord_Replace(t *testing.T) {
	r := newValidRecord(t)
	sid := r.SID()

	p := validParams()
	p.OwnerID = 99
	p.PlotIDs = []uint{12}
	p.Cultivars = []CultivarLine{cultivar("BRS 1010", 100)}
	require.NoError(t, r.Replace(p))

	assert.Equal(t, sid, r.SID())
	assert.Equal(t, uint(7), r.OwnerID(), "owner is not editable")
	assert.Equal(t, []uint{12}, r.PlotIDs())
	assert.Equal(t, 2, r.Version())
}

func TestRecord_ReplaceInvalidKeepsState(t *testing.T) {
	r := newValidRecord(t)

	p := validParams()
	p.Cultivars = []CultivarLine{cultivar("BRS 1010", 90)}
	err := r.Replace(p)

	require.ErrorIs(t, err, planning.ErrCoverageNot100)
	assert.Len(t, r.Cultivars(), 2)
	assert.Equal(t, 1, r.Version())
}

func TestRecord_GettersReturnCopies(t *testing.T) {
	r := newValidRecord(t)

	plots := r.PlotIDs()
	plots[0] = 999
	lines := r.Cultivars()
	lines[0].Cultivar = "changed"
	epoch := r.EpochID()
	*epoch = 42

	assert.Equal(t, uint(10), r.PlotIDs()[0])
	assert.Equal(t, "BRS 1010", r.Cultivars()[0].Cultivar)
	assert.Equal(t, uint(1), *r.EpochID())
}

func TestRecord_SetID(t *testing.T) {
	r := newValidRecord(t)

	require.Error(t, r.SetID(0))
	require.NoError(t, r.SetID(8))
	assert.Error(t, r.SetID(9))
	assert.Equal(t, uint(8), r.ID())
}

// ---------------------------------------------------------------------------
// Claims and Replication
// ---------------------------------------------------------------------------

func TestRecord_Claims(t *testing.T) {
	r := newValidRecord(t)
	require.NoError(t, r.SetID(8))

	claims := r.Claims()
	require.Len(t, claims, 2)
	for _, c := range claims {
		assert.Equal(t, uint(8), c.RecordID)
		assert.True(t, c.Occupies(3, uintPtr(1)))
		assert.False(t, c.Occupies(3, nil))
	}
}

func TestRecord_ReplicaFor(t *testing.T) {
	r := newValidRecord(t)
	require.NoError(t, r.SetID(8))

	replica, err := r.ReplicaFor(planning.ResolvedTarget{
		ProducerID:   20,
		FarmID:       21,
		AreaName:     "Retiro",
		AreaHectares: 55.5,
	})
	require.NoError(t, err)

	c, ok := replica.(*Record)
	require.True(t, ok)
	assert.NotEqual(t, r.SID(), c.SID())
	assert.Equal(t, uint(0), c.ID())
	assert.Equal(t, uint(20), c.ProducerID())
	assert.Equal(t, uint(21), c.FarmID())
	assert.Equal(t, "Retiro", c.AreaName())
	assert.Equal(t, 55.5, c.AreaHectares())
	assert.Equal(t, r.SeasonID(), c.SeasonID())
	assert.Equal(t, r.EpochID(), c.EpochID())
	assert.Equal(t, r.OwnerID(), c.OwnerID())
	assert.True(t, c.NeedsPlots())
	assert.Empty(t, c.PlotIDs())
	assert.Equal(t, r.Cultivars(), c.Cultivars())
	assert.NoError(t, c.Validate())
}

func TestRecord_ReplicaForWithPlots(t *testing.T) {
	r := newValidRecord(t)

	replica, err := r.ReplicaFor(planning.ResolvedTarget{
		ProducerID: 20, FarmID: 21, AreaHectares: 30, PlotIDs: []uint{70, 71},
	})
	require.NoError(t, err)

	assert.Equal(t, []uint{70, 71}, replica.PlotIDs())
	assert.False(t, replica.(*Record).NeedsPlots())
}

func TestRecord_ReplicaIsIndependent(t *testing.T) {
	r := newValidRecord(t)

	replica, err := r.ReplicaFor(planning.ResolvedTarget{ProducerID: 20, FarmID: 21, AreaHectares: 30})
	require.NoError(t, err)

	c := replica.(*Record)
	p := c.Params()
	p.Cultivars = []CultivarLine{cultivar("NS 5959", 100)}
	require.NoError(t, c.Replace(p))

	assert.Len(t, r.Cultivars(), 2)
}

func TestParseRecordType(t *testing.T) {
	tests := []struct {
		in      string
		want    RecordType
		wantErr bool
	}{
		{"", RecordTypeProgramming, false},
		{"previa", RecordTypePreview, false},
		{" PROGRAMACAO ", RecordTypeProgramming, false},
		{"rascunho", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRecordType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecordType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
