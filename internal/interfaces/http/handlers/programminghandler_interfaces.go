package handlers

import (
	"context"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/application/programming/usecases"
	"agroplan/internal/domain/planning"
)

type createRecordUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateRecordCommand) (*dto.RecordDTO, error)
}

type updateRecordUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateRecordCommand) (*dto.RecordDTO, error)
}

type getRecordUseCase interface {
	Execute(ctx context.Context, sid string) (*dto.RecordDTO, error)
}

type listRecordsUseCase interface {
	Execute(ctx context.Context, query usecases.ListRecordsQuery) (*usecases.ListRecordsResult, error)
}

type deleteByIDUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type getRecordChildrenUseCase interface {
	Execute(ctx context.Context, sid string) (*dto.ChildrenDTO, error)
}

type replicateUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReplicateCommand) (*planning.Report, error)
}

type checkConflictsUseCase interface {
	Execute(ctx context.Context, query usecases.CheckConflictsQuery) (*usecases.CheckConflictsResult, error)
}

type createApplicationUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateApplicationCommand) (*dto.ApplicationDTO, error)
}

type updateApplicationUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateApplicationCommand) (*dto.ApplicationDTO, error)
}

type getApplicationUseCase interface {
	Execute(ctx context.Context, sid string) (*dto.ApplicationDTO, error)
}

type listApplicationsUseCase interface {
	Execute(ctx context.Context, query usecases.ListApplicationsQuery) (*usecases.ListApplicationsResult, error)
}
