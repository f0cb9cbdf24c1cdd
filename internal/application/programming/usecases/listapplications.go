package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/programming"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
)

type ListApplicationsQuery struct {
	ProducerID uint
	FarmID     uint
	SeasonID   uint
	RecordSID  string
	Page       int
	PageSize   int
}

type ListApplicationsResult struct {
	Applications []*dto.ApplicationDTO
	Total        int64
	Page         int
	PageSize     int
}

type ListApplicationsUseCase struct {
	applications programming.ApplicationRepository
	records      programming.RecordRepository
	logger       logger.Interface
}

func NewListApplicationsUseCase(
	applications programming.ApplicationRepository,
	records programming.RecordRepository,
	logger logger.Interface,
) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{applications: applications, records: records, logger: logger}
}

func (uc *ListApplicationsUseCase) Execute(ctx context.Context, query ListApplicationsQuery) (*ListApplicationsResult, error) {
	filter := programming.ApplicationFilter{
		ProducerID: query.ProducerID,
		FarmID:     query.FarmID,
		SeasonID:   query.SeasonID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}

	recordID, err := resolveRecordID(ctx, uc.records, query.RecordSID)
	if err != nil {
		return nil, err
	}
	filter.RecordID = recordID

	applications, total, err := uc.applications.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list pesticide applications", "error", err)
		return nil, fmt.Errorf("failed to list pesticide applications: %w", err)
	}

	sids, err := recordSIDs(ctx, uc.records, applications)
	if err != nil {
		uc.logger.Errorw("failed to resolve linked records", "error", err)
		return nil, fmt.Errorf("failed to resolve linked records: %w", err)
	}

	out := make([]*dto.ApplicationDTO, 0, len(applications))
	for _, a := range applications {
		out = append(out, applicationDTO(a, sids))
	}
	return &ListApplicationsResult{
		Applications: out,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}
