package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
)

// recordPreparer turns form input into record params: it resolves the
// farm area and checks no-fertilization justifications against the catalog.
type recordPreparer struct {
	resolver       planning.TargetResolver
	justifications catalog.JustificationRepository
}

func (p recordPreparer) prepare(ctx context.Context, in dto.RecordInput, ownerID uint) (programming.RecordParams, error) {
	params, err := in.ToParams(ownerID)
	if err != nil {
		return programming.RecordParams{}, toAppError(err)
	}

	resolved, err := p.resolver.ResolveTarget(ctx, in.Target())
	if err != nil {
		return programming.RecordParams{}, toAppError(err)
	}
	params.AreaName = resolved.AreaName
	params.AreaHectares = resolved.AreaHectares
	if len(in.PlotIDs) == 0 && in.AreaHectares > 0 {
		params.AreaHectares = in.AreaHectares
	}

	for _, f := range params.Fertilizations {
		if f.Justification == nil {
			continue
		}
		j, err := p.justifications.GetByID(ctx, *f.Justification)
		if err != nil {
			return programming.RecordParams{}, fmt.Errorf("failed to get justification: %w", err)
		}
		if j == nil || !j.Active {
			return programming.RecordParams{}, apperrors.NewValidationError(
				fmt.Sprintf("unknown no-fertilization justification %d", *f.Justification))
		}
	}
	return params, nil
}
