package usecases

import (
	"context"
	"fmt"
	"strings"

	"agroplan/internal/application/catalog/dto"
	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/constants"
	"agroplan/internal/shared/logger"
)

type ListPesticidesQuery struct {
	Search      string
	Class       string
	Application string
	// Exclude holds products already chosen for the same target and application.
	Exclude  []string
	Page     int
	PageSize int
}

type ListPesticidesResult struct {
	Items    []*dto.PesticideDTO
	Total    int64
	Page     int
	PageSize int
	// Class is the class the list was filtered by, inferred from the
	// application when none was sent.
	Class string
}

type ListPesticidesUseCase struct {
	source  catalogSource
	matcher *catalog.Matcher
	logger  logger.Interface
}

func NewListPesticidesUseCase(
	pesticides catalog.PesticideRepository,
	calendar catalog.CalendarRepository,
	cache CatalogCache,
	matcher *catalog.Matcher,
	logger logger.Interface,
) *ListPesticidesUseCase {
	return &ListPesticidesUseCase{
		source:  catalogSource{pesticides: pesticides, calendar: calendar, cache: cache, logger: logger},
		matcher: matcher,
		logger:  logger,
	}
}

func (uc *ListPesticidesUseCase) Execute(ctx context.Context, query ListPesticidesQuery) (*ListPesticidesResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.CatalogDefaultPageSize
	}
	if query.PageSize > constants.CatalogMaxPageSize {
		query.PageSize = constants.CatalogMaxPageSize
	}

	if query.Class == "" && query.Application == "" && len(query.Exclude) == 0 {
		items, total, err := uc.source.pesticides.List(ctx, catalog.ListFilter{
			Search:   query.Search,
			Page:     query.Page,
			PageSize: query.PageSize,
		})
		if err != nil {
			uc.logger.Errorw("failed to list pesticides", "error", err)
			return nil, fmt.Errorf("failed to list pesticides: %w", err)
		}
		return &ListPesticidesResult{
			Items:    dto.ToPesticideDTOs(items),
			Total:    total,
			Page:     query.Page,
			PageSize: query.PageSize,
		}, nil
	}

	class := query.Class
	if class == "" && query.Application != "" {
		inferred, err := uc.classOfApplication(ctx, query.Application)
		if err != nil {
			uc.logger.Errorw("failed to infer class from application", "error", err, "application", query.Application)
			return nil, err
		}
		class = inferred
	}

	all, err := uc.source.allPesticides(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load pesticide catalog", "error", err)
		return nil, err
	}

	products := make([]catalog.Pesticide, len(all))
	for i, p := range all {
		products[i] = *p
	}
	filtered := uc.matcher.FilterProducts(products, class, query.Exclude)
	filtered = search(filtered, query.Search)

	total := len(filtered)
	start := (query.Page - 1) * query.PageSize
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	items := make([]*dto.PesticideDTO, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, dto.ToPesticideDTO(&filtered[i]))
	}
	return &ListPesticidesResult{
		Items:    items,
		Total:    int64(total),
		Page:     query.Page,
		PageSize: query.PageSize,
		Class:    class,
	}, nil
}

// classOfApplication finds the calendar class of an application
// description. An unknown application yields no class.
func (uc *ListPesticidesUseCase) classOfApplication(ctx context.Context, application string) (string, error) {
	entries, err := uc.source.calendarEntries(ctx)
	if err != nil {
		return "", err
	}
	want := catalog.Normalize(application)
	for _, e := range entries {
		if catalog.Normalize(e.ApplicationDescription) == want || catalog.Normalize(e.ApplicationCode) == want {
			return e.ClassDescription, nil
		}
	}
	return "", nil
}

func search(products []catalog.Pesticide, term string) []catalog.Pesticide {
	n := catalog.Normalize(term)
	if n == "" {
		return products
	}
	out := products[:0:0]
	for _, p := range products {
		if strings.Contains(catalog.Normalize(p.Item), n) ||
			strings.Contains(catalog.Normalize(p.Brand), n) ||
			strings.Contains(catalog.Normalize(p.ActiveIngredient), n) ||
			strings.Contains(strings.ToUpper(p.Code), n) {
			out = append(out, p)
		}
	}
	return out
}
