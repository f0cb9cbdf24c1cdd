package usecases

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

func newCreateRecord(records *mockRecordRepository, justifications *mockJustificationRepository) *CreateRecordUseCase {
	farms := newMemoryFarms()
	if justifications == nil {
		justifications = &mockJustificationRepository{}
	}
	return NewCreateRecordUseCase(records, NewFarmTargetResolver(farms, memoryPlots{farms}), justifications, logger.NewNop())
}

func TestCreateRecordUseCase_Execute_Success(t *testing.T) {
	var saved *programming.Record
	records := &mockRecordRepository{
		CreateFunc: func(ctx context.Context, r *programming.Record) error {
			saved = r
			return r.SetID(1)
		},
	}

	result, err := newCreateRecord(records, nil).Execute(context.Background(), CreateRecordCommand{
		OwnerID: 5,
		Input:   validRecordInput(),
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.SID(), result.ID)
	assert.InDelta(t, 80.5, result.AreaHectares, 1e-9)
	assert.Equal(t, "Fazenda Boa Vista", result.AreaName)
	assert.Equal(t, uint(5), result.OwnerID)
	assert.False(t, result.NeedsPlots)
	assert.InDelta(t, 48.3, result.Cultivars[0].PlantedArea, 1e-9)
	assert.InDelta(t, 12075, result.Fertilizations[0].Total, 1e-9)
}

func TestCreateRecordUseCase_Execute_WithoutPlotsUsesSentArea(t *testing.T) {
	in := validRecordInput()
	in.PlotIDs = nil
	in.AreaHectares = 120

	result, err := newCreateRecord(&mockRecordRepository{}, nil).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: in})

	require.NoError(t, err)
	assert.Equal(t, 120.0, result.AreaHectares)
	assert.True(t, result.NeedsPlots)
}

func TestCreateRecordUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *recordInput)
	}{
		{
			name: "cultivar coverage below 100",
			mutate: func(in *recordInput) {
				in.Cultivars[1].CoveragePct = 39
			},
		},
		{
			name: "fertilization coverage above 100",
			mutate: func(in *recordInput) {
				in.Fertilizations = append(in.Fertilizations, in.Fertilizations[0])
				in.Fertilizations[1].CoveragePct = 50
			},
		},
		{
			name: "unknown treatment kind",
			mutate: func(in *recordInput) {
				in.Cultivars[0].TreatmentKind = "LIQUIDO"
			},
		},
		{
			name: "invalid record type",
			mutate: func(in *recordInput) {
				in.Type = "RASCUNHO"
			},
		},
		{
			name: "plot of another farm",
			mutate: func(in *recordInput) {
				in.PlotIDs = []uint{301}
			},
		},
		{
			name: "farm without area and no plots",
			mutate: func(in *recordInput) {
				in.ProducerID = 20
				in.FarmID = 2
				in.PlotIDs = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecordInput()
			tt.mutate(&in)

			records := &mockRecordRepository{
				CreateFunc: func(ctx context.Context, r *programming.Record) error {
					t.Fatal("create must not be called for invalid input")
					return nil
				},
			}

			_, err := newCreateRecord(records, nil).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: in})
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestCreateRecordUseCase_Execute_PlotConflictPassesThrough(t *testing.T) {
	records := &mockRecordRepository{
		CreateFunc: func(ctx context.Context, r *programming.Record) error {
			return &planning.PlotConflictError{Conflicts: []planning.Conflict{{PlotID: 101, PlotName: "T01", RecordID: 3}}}
		},
	}

	_, err := newCreateRecord(records, nil).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: validRecordInput()})

	var conflict *planning.PlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"T01"}, conflict.PlotNames())
}

func TestCreateRecordUseCase_Execute_Justification(t *testing.T) {
	in := validRecordInput()
	in.Fertilizations = []fertilizationInput{{Justification: uintPtr(2)}}

	justifications := &mockJustificationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*catalog.FertilizationJustification, error) {
			if id == 2 {
				return &catalog.FertilizationJustification{ID: 2, Description: "Solo corrigido", Active: true}, nil
			}
			return nil, nil
		},
	}

	result, err := newCreateRecord(&mockRecordRepository{}, justifications).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: in})
	require.NoError(t, err)
	assert.Equal(t, uintPtr(2), result.Fertilizations[0].Justification)

	in.Fertilizations = []fertilizationInput{{Justification: uintPtr(8)}}
	_, err = newCreateRecord(&mockRecordRepository{}, justifications).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: in})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateRecordUseCase_Execute_StoreError(t *testing.T) {
	records := &mockRecordRepository{
		CreateFunc: func(ctx context.Context, r *programming.Record) error {
			return errors.New("connection refused")
		},
	}

	_, err := newCreateRecord(records, nil).Execute(context.Background(), CreateRecordCommand{OwnerID: 5, Input: validRecordInput()})
	require.Error(t, err)
	assert.Nil(t, apperrors.GetAppError(err))
}

func TestUpdateRecordUseCase_Execute(t *testing.T) {
	farms := newMemoryFarms()
	resolver := NewFarmTargetResolver(farms, memoryPlots{farms})

	t.Run("not found", func(t *testing.T) {
		uc := NewUpdateRecordUseCase(&mockRecordRepository{}, resolver, &mockJustificationRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateRecordCommand{SID: "prg_missing", Input: validRecordInput()})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("stale version", func(t *testing.T) {
		existing := storedRecord(t, 1, validRecordInput(), 80.5)
		records := &mockRecordRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*programming.Record, error) { return existing, nil },
		}
		in := validRecordInput()
		stale := 0
		in.Version = &stale

		uc := NewUpdateRecordUseCase(records, resolver, &mockJustificationRepository{}, logger.NewNop())
		_, err := uc.Execute(context.Background(), UpdateRecordCommand{SID: existing.SID(), Input: in})
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("replaces content and keeps owner", func(t *testing.T) {
		existing := storedRecord(t, 1, validRecordInput(), 80.5)
		var updated *programming.Record
		records := &mockRecordRepository{
			GetBySIDFunc: func(ctx context.Context, sid string) (*programming.Record, error) { return existing, nil },
			UpdateFunc: func(ctx context.Context, r *programming.Record) error {
				updated = r
				return nil
			},
		}
		in := validRecordInput()
		in.PlotIDs = []uint{101}
		in.Cultivars = in.Cultivars[:1]
		in.Cultivars[0].CoveragePct = 100

		uc := NewUpdateRecordUseCase(records, resolver, &mockJustificationRepository{}, logger.NewNop())
		result, err := uc.Execute(context.Background(), UpdateRecordCommand{SID: existing.SID(), OwnerID: 5, Input: in})

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 2, result.Version)
		assert.Equal(t, uint(99), result.OwnerID)
		assert.Equal(t, []uint{101}, result.PlotIDs)
		assert.Equal(t, 40.0, result.AreaHectares)
	})
}

func TestDeleteRecordUseCase_Execute(t *testing.T) {
	existing := storedRecord(t, 4, validRecordInput(), 80.5)
	records := &mockRecordRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*programming.Record, error) {
			if sid == existing.SID() {
				return existing, nil
			}
			return nil, nil
		},
	}

	t.Run("blocked by applications", func(t *testing.T) {
		records.DeleteFunc = func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(4), id)
			return fmt.Errorf("%w: 2 pesticide applications", programming.ErrRecordHasDependents)
		}

		err := NewDeleteRecordUseCase(records, logger.NewNop()).Execute(context.Background(), existing.SID())
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("deletes", func(t *testing.T) {
		var deleted uint
		records.DeleteFunc = func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		}

		err := NewDeleteRecordUseCase(records, logger.NewNop()).Execute(context.Background(), existing.SID())
		require.NoError(t, err)
		assert.Equal(t, uint(4), deleted)
	})

	t.Run("unknown", func(t *testing.T) {
		err := NewDeleteRecordUseCase(records, logger.NewNop()).Execute(context.Background(), "prg_nope")
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestListRecordsUseCase_Execute(t *testing.T) {
	var got programming.RecordFilter
	records := &mockRecordRepository{
		ListFunc: func(ctx context.Context, filter programming.RecordFilter) ([]*programming.Record, int64, error) {
			got = filter
			return []*programming.Record{storedRecord(t, 1, validRecordInput(), 80.5)}, 1, nil
		},
	}

	uc := NewListRecordsUseCase(records, logger.NewNop())
	result, err := uc.Execute(context.Background(), ListRecordsQuery{SeasonID: 7, EpochID: uintPtr(2), Type: "previa"})

	require.NoError(t, err)
	assert.Equal(t, programming.RecordTypePreview, got.Type)
	assert.Equal(t, uintPtr(2), got.EpochID)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Records, 1)

	_, err = uc.Execute(context.Background(), ListRecordsQuery{Type: "outro"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetRecordChildrenUseCase_Execute(t *testing.T) {
	record := storedRecord(t, 1, validRecordInput(), 80.5)
	farms := newMemoryFarms()
	records := &mockRecordRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*programming.Record, error) { return record, nil },
	}
	applications := &mockApplicationRepository{
		ListByRecordFunc: func(ctx context.Context, recordID uint) ([]*programming.PesticideApplication, error) {
			return []*programming.PesticideApplication{storedApplication(t, 3, validApplicationInput(), uintPtr(1))}, nil
		},
	}

	children, err := NewGetRecordChildrenUseCase(records, applications, memoryPlots{farms}, logger.NewNop()).
		Execute(context.Background(), record.SID())

	require.NoError(t, err)
	assert.Len(t, children.Cultivars, 2)
	assert.Len(t, children.Fertilizations, 1)
	require.Len(t, children.Applications, 1)
	assert.Equal(t, record.SID(), children.Applications[0].RecordSID)
	assert.Equal(t, []uint{101, 102}, children.PlotIDs)
	assert.Equal(t, []string{"T01", "T02"}, children.PlotNames)
}

func TestCheckConflictsUseCase_Execute(t *testing.T) {
	farms := newMemoryFarms()
	self := storedRecord(t, 1, validRecordInput(), 80.5)
	records := &mockRecordRepository{
		GetBySIDFunc: func(ctx context.Context, sid string) (*programming.Record, error) {
			if sid == self.SID() {
				return self, nil
			}
			return nil, nil
		},
		ListClaimsFunc: func(ctx context.Context, plotIDs []uint, seasonID uint) ([]planning.Claim, error) {
			return []planning.Claim{
				{PlotID: 101, SeasonID: 7, EpochID: nil, RecordID: 1},
				{PlotID: 102, SeasonID: 7, EpochID: nil, RecordID: 2},
			}, nil
		},
	}
	uc := NewCheckConflictsUseCase(records, planning.NewDetector(records, memoryPlots{farms}), logger.NewNop())

	result, err := uc.Execute(context.Background(), CheckConflictsQuery{PlotIDs: []uint{101, 102}, SeasonID: 7})
	require.NoError(t, err)
	assert.Equal(t, []uint{101, 102}, result.PlotIDs())

	result, err = uc.Execute(context.Background(), CheckConflictsQuery{PlotIDs: []uint{101, 102}, SeasonID: 7, ExcludeID: self.SID()})
	require.NoError(t, err)
	assert.Equal(t, []string{"T02"}, result.PlotNames())

	result, err = uc.Execute(context.Background(), CheckConflictsQuery{PlotIDs: []uint{101, 102}, SeasonID: 7, EpochID: uintPtr(3)})
	require.NoError(t, err)
	assert.Empty(t, result.Conflicts)

	_, err = uc.Execute(context.Background(), CheckConflictsQuery{PlotIDs: []uint{101}})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CheckConflictsQuery{PlotIDs: []uint{101}, SeasonID: 7, ExcludeID: "prg_unknown"})
	assert.True(t, apperrors.IsValidationError(err))
}
