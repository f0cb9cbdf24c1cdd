package planning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

type memoryClaims struct {
	claims []Claim
	err    error
}

func (m *memoryClaims) ListClaims(_ context.Context, plotIDs []uint, seasonID uint) ([]Claim, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Claim
	for _, c := range m.claims {
		if c.SeasonID == seasonID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memoryPlots map[uint]string

func (m memoryPlots) PlotNames(_ context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	for _, id := range ids {
		if name, ok := m[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

const (
	seasonS1 uint = 1
	seasonS2 uint = 2
	recordA  uint = 100
	recordB  uint = 200
)

var (
	epochE1 = uintPtr(10)
	epochE2 = uintPtr(20)
)

func TestFindConflictsIn_SeasonEpochPairs(t *testing.T) {
	claims := []Claim{{PlotID: 7, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordA}}

	tests := []struct {
		name    string
		season  uint
		epoch   *uint
		exclude uint
		want    []uint
	}{
		{"same season and epoch", seasonS1, epochE1, 0, []uint{7}},
		{"other epoch", seasonS1, epochE2, 0, nil},
		{"other season", seasonS2, epochE1, 0, nil},
		{"no epoch differs from concrete epoch", seasonS1, nil, 0, nil},
		{"editing the owner", seasonS1, epochE1, recordA, nil},
		{"editing another record", seasonS1, epochE1, recordB, []uint{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflictsIn(claims, []uint{7, 8}, tt.season, tt.epoch, tt.exclude)
			var ids []uint
			for _, c := range got {
				ids = append(ids, c.PlotID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFindConflictsIn_NilEpochMatchesNilEpoch(t *testing.T) {
	claims := []Claim{{PlotID: 3, SeasonID: seasonS1, EpochID: nil, RecordID: recordA}}

	assert.Len(t, FindConflictsIn(claims, []uint{3}, seasonS1, nil, 0), 1)
	assert.Empty(t, FindConflictsIn(claims, []uint{3}, seasonS1, epochE1, 0))
}

func TestFindConflictsIn_OnePerPlotSorted(t *testing.T) {
	claims := []Claim{
		{PlotID: 9, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordB},
		{PlotID: 2, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordA},
		{PlotID: 9, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordA},
	}

	got := FindConflictsIn(claims, []uint{2, 9}, seasonS1, epochE1, 0)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].PlotID)
	assert.Equal(t, uint(9), got[1].PlotID)
}

func TestDetector_Check(t *testing.T) {
	store := &memoryClaims{claims: []Claim{
		{PlotID: 1, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordA},
		{PlotID: 2, SeasonID: seasonS1, EpochID: epochE1, RecordID: recordA},
	}}
	d := NewDetector(store, memoryPlots{1: "T-01", 2: "T-02"})
	ctx := context.Background()

	err := d.Check(ctx, []uint{1, 2, 3}, seasonS1, epochE1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPlotConflict)

	var conflictErr *PlotConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []uint{1, 2}, conflictErr.PlotIDs())
	assert.Equal(t, []string{"T-01", "T-02"}, conflictErr.PlotNames())
	assert.Contains(t, err.Error(), "T-01, T-02")

	assert.NoError(t, d.Check(ctx, []uint{1, 2}, seasonS1, epochE1, recordA))
	assert.NoError(t, d.Check(ctx, []uint{1, 2}, seasonS1, epochE2, 0))
	assert.NoError(t, d.Check(ctx, nil, seasonS1, epochE1, 0))
}

func TestDetector_UnnamedPlotAndStoreError(t *testing.T) {
	ctx := context.Background()
	d := NewDetector(&memoryClaims{claims: []Claim{{PlotID: 5, SeasonID: seasonS1, RecordID: recordA}}}, memoryPlots{})

	conflicts, err := d.FindConflicts(ctx, []uint{5}, seasonS1, nil, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "#5", conflicts[0].PlotName)
	assert.Equal(t, recordA, conflicts[0].RecordID)

	failing := NewDetector(&memoryClaims{err: errors.New("db down")}, memoryPlots{})
	_, err = failing.FindConflicts(ctx, []uint{5}, seasonS1, nil, 0)
	assert.ErrorContains(t, err, "db down")
}
