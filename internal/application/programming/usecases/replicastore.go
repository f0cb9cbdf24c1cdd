package usecases

import (
	"context"
	"fmt"

	"agroplan/internal/domain/planning"
	"agroplan/internal/domain/programming"
)

type recordStore struct {
	records programming.RecordRepository
}

func (s recordStore) CreateReplica(ctx context.Context, r planning.Replica) (string, error) {
	record, ok := r.(*programming.Record)
	if !ok {
		return "", fmt.Errorf("unexpected replica type %T", r)
	}
	if err := s.records.Create(ctx, record); err != nil {
		return "", err
	}
	return record.SID(), nil
}

type applicationStore struct {
	applications programming.ApplicationRepository
}

func (s applicationStore) CreateReplica(ctx context.Context, r planning.Replica) (string, error) {
	application, ok := r.(*programming.PesticideApplication)
	if !ok {
		return "", fmt.Errorf("unexpected replica type %T", r)
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return "", err
	}
	return application.SID(), nil
}
