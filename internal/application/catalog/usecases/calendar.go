package usecases

import (
	"context"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/logger"
)

type GetCalendarUseCase struct {
	source catalogSource
	logger logger.Interface
}

func NewGetCalendarUseCase(calendar catalog.CalendarRepository, cache CatalogCache, logger logger.Interface) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		source: catalogSource{calendar: calendar, cache: cache, logger: logger},
		logger: logger,
	}
}

func (uc *GetCalendarUseCase) Execute(ctx context.Context) (*catalog.Calendar, error) {
	entries, err := uc.source.calendarEntries(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load calendar", "error", err)
		return nil, err
	}
	cal := catalog.BuildCalendar(entries)
	if cal.Classes == nil {
		cal.Classes = []string{}
	}
	return &cal, nil
}

type MatchClassQuery struct {
	Candidate string
	// Groups defaults to the calendar classes when empty.
	Groups []string
}

// MatchClassUseCase resolves free-text classes (from spreadsheets or older
// records) against the calendar.
type MatchClassUseCase struct {
	source  catalogSource
	matcher catalog.ClassMatcher
	logger  logger.Interface
}

func NewMatchClassUseCase(calendar catalog.CalendarRepository, cache CatalogCache, matcher catalog.ClassMatcher, logger logger.Interface) *MatchClassUseCase {
	return &MatchClassUseCase{
		source:  catalogSource{calendar: calendar, cache: cache, logger: logger},
		matcher: matcher,
		logger:  logger,
	}
}

func (uc *MatchClassUseCase) Execute(ctx context.Context, query MatchClassQuery) (catalog.MatchResult, error) {
	groups := query.Groups
	if len(groups) == 0 {
		entries, err := uc.source.calendarEntries(ctx)
		if err != nil {
			uc.logger.Errorw("failed to load calendar", "error", err)
			return catalog.MatchResult{}, err
		}
		groups = catalog.BuildCalendar(entries).Classes
	}

	result := uc.matcher.MatchClass(query.Candidate, groups)
	uc.logger.Debugw("class matched", "candidate", query.Candidate, "group", result.Group, "confidence", result.Confidence)
	return result, nil
}
