package handlers

import (
	"context"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/application/catalog/usecases"
	"agroplan/internal/domain/catalog"
)

type listPesticidesUseCase interface {
	Execute(ctx context.Context, query usecases.ListPesticidesQuery) (*usecases.ListPesticidesResult, error)
}

type createPesticideUseCase interface {
	Execute(ctx context.Context, in dto.PesticideInput) (*dto.PesticideDTO, error)
}

type updatePesticideUseCase interface {
	Execute(ctx context.Context, code string, in dto.PesticideInput) (*dto.PesticideDTO, error)
}

type importCatalogUseCase interface {
	Execute(ctx context.Context, cmd usecases.ImportCatalogCommand) (*dto.ImportResultDTO, error)
}

type syncPesticidesUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.ImportResultDTO, error)
}

type listFertilizersUseCase interface {
	Execute(ctx context.Context, query usecases.ListFertilizersQuery) (*usecases.ListFertilizersResult, error)
}

type listCultivarsUseCase interface {
	Execute(ctx context.Context, crop string) ([]*dto.CultivarDTO, error)
}

type listTreatmentsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTreatmentsQuery) ([]*dto.SeedTreatmentDTO, error)
}

type getCalendarUseCase interface {
	Execute(ctx context.Context) (*catalog.Calendar, error)
}

type listJustificationsUseCase interface {
	Execute(ctx context.Context) ([]*dto.JustificationDTO, error)
}

type matchClassUseCase interface {
	Execute(ctx context.Context, query usecases.MatchClassQuery) (catalog.MatchResult, error)
}
