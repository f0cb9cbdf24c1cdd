package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/application/programming/dto"
	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
)

// applicationPreparer resolves the linked record and the treated area.
// The area is the one sent, else the linked record's, else the farm's.
type applicationPreparer struct {
	records  programming.RecordRepository
	resolver planning.TargetResolver
}

func (p applicationPreparer) prepare(ctx context.Context, in dto.ApplicationInput, ownerID uint) (programming.ApplicationParams, error) {
	var linked *programming.Record
	var recordID *uint
	if in.RecordSID != "" {
		record, err := p.records.GetBySID(ctx, in.RecordSID)
		if err != nil {
			return programming.ApplicationParams{}, fmt.Errorf("failed to get programming record: %w", err)
		}
		if record == nil {
			return programming.ApplicationParams{}, apperrors.NewValidationError("unknown programming record", in.RecordSID)
		}
		if record.FarmID() != in.FarmID {
			return programming.ApplicationParams{}, apperrors.NewValidationError("programming record belongs to another farm", in.RecordSID)
		}
		id := record.ID()
		recordID = &id
		linked = record
	}

	params, err := in.ToParams(ownerID, recordID)
	if err != nil {
		return programming.ApplicationParams{}, toAppError(err)
	}

	resolved, err := p.resolver.ResolveTarget(ctx, planning.Target{
		ProducerID: in.ProducerID,
		FarmID:     in.FarmID,
		AreaName:   in.AreaName,
	})
	if err != nil {
		return programming.ApplicationParams{}, toAppError(err)
	}
	params.AreaName = resolved.AreaName

	switch {
	case in.AreaHectares > 0:
		params.AreaHectares = in.AreaHectares
	case linked != nil:
		params.AreaHectares = linked.AreaHectares()
		if in.AreaName == "" {
			params.AreaName = linked.AreaName()
		}
	default:
		params.AreaHectares = resolved.AreaHectares
	}
	return params, nil
}

// recordSIDs maps record row ids back to public ids for rendering.
func recordSIDs(ctx context.Context, records programming.RecordRepository, applications []*programming.PesticideApplication) (map[uint]string, error) {
	out := make(map[uint]string)
	for _, a := range applications {
		rid := a.RecordID()
		if rid == nil {
			continue
		}
		if _, done := out[*rid]; done {
			continue
		}
		record, err := records.GetByID(ctx, *rid)
		if err != nil {
			return nil, err
		}
		if record != nil {
			out[*rid] = record.SID()
		}
	}
	return out, nil
}

func applicationDTO(a *programming.PesticideApplication, sids map[uint]string) *dto.ApplicationDTO {
	var sid string
	if rid := a.RecordID(); rid != nil {
		sid = sids[*rid]
	}
	return dto.ToApplicationDTO(a, sid)
}
