package usecases

import (
	"context"
	"errors"
	"fmt"

	"agroplan/internal/domain/catalog"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

// CatalogCache caches the full pesticide list and the calendar. A miss
// returns ok == false.
type CatalogCache interface {
	GetPesticides(ctx context.Context) (items []*catalog.Pesticide, ok bool, err error)
	SetPesticides(ctx context.Context, items []*catalog.Pesticide) error
	GetCalendar(ctx context.Context) (entries []catalog.CalendarApplication, ok bool, err error)
	SetCalendar(ctx context.Context, entries []catalog.CalendarApplication) error
	Invalidate(ctx context.Context) error
}

// catalogSource reads through the cache. Cache failures are logged and the
// repository answers instead.
type catalogSource struct {
	pesticides catalog.PesticideRepository
	calendar   catalog.CalendarRepository
	cache      CatalogCache
	logger     logger.Interface
}

func (s catalogSource) allPesticides(ctx context.Context) ([]*catalog.Pesticide, error) {
	if s.cache != nil {
		items, ok, err := s.cache.GetPesticides(ctx)
		if err != nil {
			s.logger.Warnw("catalog cache read failed", "error", err, "key", "pesticides")
		} else if ok {
			return items, nil
		}
	}

	items, err := s.pesticides.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pesticides: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.SetPesticides(ctx, items); err != nil {
			s.logger.Warnw("catalog cache write failed", "error", err, "key", "pesticides")
		}
	}
	return items, nil
}

func (s catalogSource) calendarEntries(ctx context.Context) ([]catalog.CalendarApplication, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.GetCalendar(ctx)
		if err != nil {
			s.logger.Warnw("catalog cache read failed", "error", err, "key", "calendar")
		} else if ok {
			return entries, nil
		}
	}

	entries, err := s.calendar.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.SetCalendar(ctx, entries); err != nil {
			s.logger.Warnw("catalog cache write failed", "error", err, "key", "calendar")
		}
	}
	return entries, nil
}

func (s catalogSource) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnw("failed to invalidate catalog cache", "error", err)
	}
}

func toAppError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.GetAppError(err) != nil:
		return err
	case errors.Is(err, catalog.ErrCodeRequired), errors.Is(err, catalog.ErrItemRequired), errors.Is(err, catalog.ErrEmptyImport):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, catalog.ErrPesticideNotFound):
		return apperrors.NewNotFoundError(err.Error())
	case errors.Is(err, catalog.ErrSyncNotConfigured):
		return apperrors.NewBadRequestError(err.Error())
	}
	return err
}
