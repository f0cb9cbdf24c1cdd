package usecases

import (
	"context"
	"fmt"
	"strings"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/domain/catalog"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

type CreatePesticideUseCase struct {
	source catalogSource
	logger logger.Interface
}

func NewCreatePesticideUseCase(pesticides catalog.PesticideRepository, cache CatalogCache, logger logger.Interface) *CreatePesticideUseCase {
	return &CreatePesticideUseCase{
		source: catalogSource{pesticides: pesticides, cache: cache, logger: logger},
		logger: logger,
	}
}

func (uc *CreatePesticideUseCase) Execute(ctx context.Context, in dto.PesticideInput) (*dto.PesticideDTO, error) {
	code := strings.TrimSpace(in.Code)
	p := in.ToEntity(code)
	if err := p.Validate(); err != nil {
		return nil, toAppError(err)
	}

	existing, err := uc.source.pesticides.GetByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get pesticide: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("pesticide code already exists", code)
	}

	if err := uc.source.pesticides.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save pesticide", "error", err, "code", code)
		return nil, fmt.Errorf("failed to save pesticide: %w", err)
	}
	uc.source.invalidate(ctx)

	uc.logger.Infow("pesticide created", "code", code, "item", p.Item)
	return dto.ToPesticideDTO(p), nil
}

type UpdatePesticideUseCase struct {
	source catalogSource
	logger logger.Interface
}

func NewUpdatePesticideUseCase(pesticides catalog.PesticideRepository, cache CatalogCache, logger logger.Interface) *UpdatePesticideUseCase {
	return &UpdatePesticideUseCase{
		source: catalogSource{pesticides: pesticides, cache: cache, logger: logger},
		logger: logger,
	}
}

// Execute overwrites the catalog entry at code. The code itself never changes.
func (uc *UpdatePesticideUseCase) Execute(ctx context.Context, code string, in dto.PesticideInput) (*dto.PesticideDTO, error) {
	existing, err := uc.source.pesticides.GetByCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("failed to get pesticide", "error", err, "code", code)
		return nil, fmt.Errorf("failed to get pesticide: %w", err)
	}
	if existing == nil {
		return nil, toAppError(catalog.ErrPesticideNotFound)
	}

	p := in.ToEntity(existing.Code)
	p.ID = existing.ID
	if err := p.Validate(); err != nil {
		return nil, toAppError(err)
	}

	if err := uc.source.pesticides.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save pesticide", "error", err, "code", code)
		return nil, fmt.Errorf("failed to save pesticide: %w", err)
	}
	uc.source.invalidate(ctx)

	uc.logger.Infow("pesticide updated", "code", code)
	return dto.ToPesticideDTO(p), nil
}
