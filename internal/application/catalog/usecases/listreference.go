package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
)

type ListFertilizersQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListFertilizersResult struct {
	Items    []*dto.FertilizerDTO
	Total    int64
	Page     int
	PageSize int
}

type ListFertilizersUseCase struct {
	fertilizers catalog.FertilizerRepository
	logger      logger.Interface
}

func NewListFertilizersUseCase(fertilizers catalog.FertilizerRepository, logger logger.Interface) *ListFertilizersUseCase {
	return &ListFertilizersUseCase{fertilizers: fertilizers, logger: logger}
}

func (uc *ListFertilizersUseCase) Execute(ctx context.Context, query ListFertilizersQuery) (*ListFertilizersResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.CatalogDefaultPageSize
	}

	items, total, err := uc.fertilizers.List(ctx, catalog.ListFilter{Search: query.Search, Page: query.Page, PageSize: query.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list fertilizers", "error", err)
		return nil, fmt.Errorf("failed to list fertilizers: %w", err)
	}
	return &ListFertilizersResult{
		Items:    dto.ToFertilizerDTOs(items),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

type ListCultivarsUseCase struct {
	cultivars catalog.CultivarRepository
	logger    logger.Interface
}

func NewListCultivarsUseCase(cultivars catalog.CultivarRepository, logger logger.Interface) *ListCultivarsUseCase {
	return &ListCultivarsUseCase{cultivars: cultivars, logger: logger}
}

func (uc *ListCultivarsUseCase) Execute(ctx context.Context, crop string) ([]*dto.CultivarDTO, error) {
	items, err := uc.cultivars.List(ctx, crop)
	if err != nil {
		uc.logger.Errorw("failed to list cultivars", "error", err, "crop", crop)
		return nil, fmt.Errorf("failed to list cultivars: %w", err)
	}
	return dto.ToCultivarDTOs(items), nil
}

type ListTreatmentsQuery struct {
	Crop     string
	Cultivar string
}

// ListTreatmentsUseCase lists the industrial seed treatments offered for a
// cultivar.
type ListTreatmentsUseCase struct {
	treatments catalog.SeedTreatmentRepository
	logger     logger.Interface
}

func NewListTreatmentsUseCase(treatments catalog.SeedTreatmentRepository, logger logger.Interface) *ListTreatmentsUseCase {
	return &ListTreatmentsUseCase{treatments: treatments, logger: logger}
}

func (uc *ListTreatmentsUseCase) Execute(ctx context.Context, query ListTreatmentsQuery) ([]*dto.SeedTreatmentDTO, error) {
	items, err := uc.treatments.ListActive(ctx, query.Crop)
	if err != nil {
		uc.logger.Errorw("failed to list seed treatments", "error", err, "crop", query.Crop)
		return nil, fmt.Errorf("failed to list seed treatments: %w", err)
	}

	if query.Cultivar != "" {
		kept := items[:0:0]
		for _, t := range items {
			if t.AppliesTo(query.Cultivar) {
				kept = append(kept, t)
			}
		}
		items = kept
	}
	return dto.ToSeedTreatmentDTOs(items), nil
}

type ListJustificationsUseCase struct {
	justifications catalog.JustificationRepository
	logger         logger.Interface
}

func NewListJustificationsUseCase(justifications catalog.JustificationRepository, logger logger.Interface) *ListJustificationsUseCase {
	return &ListJustificationsUseCase{justifications: justifications, logger: logger}
}

func (uc *ListJustificationsUseCase) Execute(ctx context.Context) ([]*dto.JustificationDTO, error) {
	items, err := uc.justifications.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list justifications", "error", err)
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	return dto.ToJustificationDTOs(items), nil
}
