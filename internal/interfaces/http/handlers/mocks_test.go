package handlers

import (
	"context"

	catdto "agroplan/internal/application/catalog/dto"
	catusecases "agroplan/internal/application/catalog/usecases"
	farmdto "agroplan/internal/application/farm/dto"
	farmusecases "agroplan/internal/application/farm/usecases"
	"agroplan/internal/application/programming/dto"
	"agroplan/internal/application/programming/usecases"
	userusecases "agroplan/internal/application/user/usecases"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/user"
)

type mockCreateRecordUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateRecordCommand) (*dto.RecordDTO, error)
}

func (m *mockCreateRecordUC) Execute(ctx context.Context, cmd usecases.CreateRecordCommand) (*dto.RecordDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateRecordUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateRecordCommand) (*dto.RecordDTO, error)
}

func (m *mockUpdateRecordUC) Execute(ctx context.Context, cmd usecases.UpdateRecordCommand) (*dto.RecordDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListRecordsUC struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListRecordsQuery) (*usecases.ListRecordsResult, error)
}

func (m *mockListRecordsUC) Execute(ctx context.Context, query usecases.ListRecordsQuery) (*usecases.ListRecordsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockDeleteUC struct {
	err  error
	sids []string
}

func (m *mockDeleteUC) Execute(_ context.Context, sid string) error {
	m.sids = append(m.sids, sid)
	return m.err
}

type mockReplicateUC struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.ReplicateCommand) (*planning.Report, error)
}

func (m *mockReplicateUC) Execute(ctx context.Context, cmd usecases.ReplicateCommand) (*planning.Report, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockCheckConflictsUC struct {
	result *usecases.CheckConflictsResult
	err    error
	last   usecases.CheckConflictsQuery
}

func (m *mockCheckConflictsUC) Execute(_ context.Context, query usecases.CheckConflictsQuery) (*usecases.CheckConflictsResult, error) {
	m.last = query
	return m.result, m.err
}

type mockListPesticidesUC struct {
	result *catusecases.ListPesticidesResult
	last   catusecases.ListPesticidesQuery
}

func (m *mockListPesticidesUC) Execute(_ context.Context, query catusecases.ListPesticidesQuery) (*catusecases.ListPesticidesResult, error) {
	m.last = query
	return m.result, nil
}

type mockImportCatalogUC struct {
	ExecuteFunc func(ctx context.Context, cmd catusecases.ImportCatalogCommand) (*catdto.ImportResultDTO, error)
}

func (m *mockImportCatalogUC) Execute(ctx context.Context, cmd catusecases.ImportCatalogCommand) (*catdto.ImportResultDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockSyncUC struct {
	err error
}

func (m *mockSyncUC) Execute(context.Context, uint) (*catdto.ImportResultDTO, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &catdto.ImportResultDTO{Kind: catalog.ImportPesticides, Received: 2, Inserted: 2}, nil
}

type mockListPlotsUC struct {
	result []*farmdto.PlotDTO
	last   farmusecases.ListPlotsQuery
}

func (m *mockListPlotsUC) Execute(_ context.Context, query farmusecases.ListPlotsQuery) ([]*farmdto.PlotDTO, error) {
	m.last = query
	return m.result, nil
}

type mockLoginUC struct {
	ExecuteFunc func(ctx context.Context, cmd userusecases.LoginWithPasswordCommand) (*userusecases.LoginWithPasswordResult, error)
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd userusecases.LoginWithPasswordCommand) (*userusecases.LoginWithPasswordResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetCurrentUserUC struct {
	user *user.User
	err  error
}

func (m *mockGetCurrentUserUC) Execute(context.Context, uint) (*user.User, error) {
	return m.user, m.err
}
