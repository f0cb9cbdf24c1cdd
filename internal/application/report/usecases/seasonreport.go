package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/farm"
	"agroplan/internal/domain/programming"
	apperrors "agroplan/internal/shared/errors"
	"agroplan/internal/shared/logger"
)

const (
	areaPlaces     = 2
	quantityPlaces = 3
)

type SeasonReportQuery struct {
	SeasonID   uint
	ProducerID uint
	EpochID    *uint
}

// Quantity is a planned amount of one input. Unit is empty for areas.
type Quantity struct {
	Name   string  `json:"nome"`
	Unit   string  `json:"unidade,omitempty"`
	Amount float64 `json:"quantidade"`
}

type FarmReport struct {
	ProducerID   uint       `json:"produtor_id"`
	ProducerName string     `json:"produtor"`
	FarmID       uint       `json:"fazenda_id"`
	FarmName     string     `json:"fazenda"`
	Records      int        `json:"programacoes"`
	AreaHectares float64    `json:"area_total"`
	Cultivars    []Quantity `json:"cultivares"`
	Fertilizers  []Quantity `json:"fertilizantes"`
	Pesticides   []Quantity `json:"defensivos"`
}

type SeasonReport struct {
	SeasonID     uint          `json:"safra_id"`
	EpochID      *uint         `json:"epoca_id,omitempty"`
	Farms        []*FarmReport `json:"fazendas"`
	AreaHectares float64       `json:"area_total"`
}

// SeasonReportUseCase totals the planned inputs of a season per producer
// and farm. Sums run on decimals so many small doses do not drift.
type SeasonReportUseCase struct {
	records      programming.RecordRepository
	applications programming.ApplicationRepository
	farms        farm.FarmRepository
	producers    farm.ProducerRepository
	logger       logger.Interface
}

func NewSeasonReportUseCase(
	records programming.RecordRepository,
	applications programming.ApplicationRepository,
	farms farm.FarmRepository,
	producers farm.ProducerRepository,
	logger logger.Interface,
) *SeasonReportUseCase {
	return &SeasonReportUseCase{
		records:      records,
		applications: applications,
		farms:        farms,
		producers:    producers,
		logger:       logger,
	}
}

type farmKey struct {
	producerID uint
	farmID     uint
}

// accumulator sums one farm. Maps are keyed by the normalized product
// name; the first spelling seen is displayed.
type accumulator struct {
	records     int
	area        decimal.Decimal
	cultivars   *totals
	fertilizers *totals
	pesticides  *totals
}

type totals struct {
	display map[string]Quantity
	amounts map[string]decimal.Decimal
}

func newTotals() *totals {
	return &totals{display: make(map[string]Quantity), amounts: make(map[string]decimal.Decimal)}
}

func (t *totals) add(name, unit string, amount float64) {
	key := catalog.ProductKey(name) + "|" + catalog.Normalize(unit)
	if _, ok := t.display[key]; !ok {
		t.display[key] = Quantity{Name: name, Unit: unit}
	}
	t.amounts[key] = t.amounts[key].Add(decimal.NewFromFloat(amount))
}

func (t *totals) list(places int32) []Quantity {
	out := make([]Quantity, 0, len(t.display))
	for key, q := range t.display {
		q.Amount = t.amounts[key].Round(places).InexactFloat64()
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Unit < out[j].Unit
	})
	return out
}

func (uc *SeasonReportUseCase) Execute(ctx context.Context, query SeasonReportQuery) (*SeasonReport, error) {
	if query.SeasonID == 0 {
		return nil, apperrors.NewValidationError("safra_id is required")
	}

	records, err := uc.records.ListBySeason(ctx, query.SeasonID, query.EpochID)
	if err != nil {
		uc.logger.Errorw("failed to list season records", "error", err, "season_id", query.SeasonID)
		return nil, fmt.Errorf("failed to list season records: %w", err)
	}
	applications, err := uc.applications.ListBySeason(ctx, query.SeasonID, query.EpochID)
	if err != nil {
		uc.logger.Errorw("failed to list season applications", "error", err, "season_id", query.SeasonID)
		return nil, fmt.Errorf("failed to list season applications: %w", err)
	}

	byFarm := make(map[farmKey]*accumulator)
	get := func(producerID, farmID uint) *accumulator {
		k := farmKey{producerID, farmID}
		acc, ok := byFarm[k]
		if !ok {
			acc = &accumulator{cultivars: newTotals(), fertilizers: newTotals(), pesticides: newTotals()}
			byFarm[k] = acc
		}
		return acc
	}

	for _, r := range records {
		if query.ProducerID != 0 && r.ProducerID() != query.ProducerID {
			continue
		}
		acc := get(r.ProducerID(), r.FarmID())
		acc.records++
		area := r.AreaHectares()
		acc.area = acc.area.Add(decimal.NewFromFloat(area))
		for _, c := range r.Cultivars() {
			acc.cultivars.add(c.Cultivar, "", c.PlantedArea(area))
		}
		for _, f := range r.Fertilizations() {
			if f.Justification != nil {
				continue
			}
			acc.fertilizers.add(f.Formulation, "kg", f.Total(area))
		}
	}

	for _, a := range applications {
		if query.ProducerID != 0 && a.ProducerID() != query.ProducerID {
			continue
		}
		acc := get(a.ProducerID(), a.FarmID())
		for _, l := range a.Lines() {
			acc.pesticides.add(l.Product, l.Unit, l.Total(a.AreaHectares()))
		}
	}

	report := &SeasonReport{SeasonID: query.SeasonID, EpochID: query.EpochID, Farms: make([]*FarmReport, 0, len(byFarm))}
	var grand decimal.Decimal
	names := newNameCache(uc.farms, uc.producers)
	for k, acc := range byFarm {
		producerName, farmName, err := names.lookup(ctx, k.producerID, k.farmID)
		if err != nil {
			uc.logger.Errorw("failed to resolve report names", "error", err, "farm_id", k.farmID)
			return nil, err
		}
		grand = grand.Add(acc.area)
		report.Farms = append(report.Farms, &FarmReport{
			ProducerID:   k.producerID,
			ProducerName: producerName,
			FarmID:       k.farmID,
			FarmName:     farmName,
			Records:      acc.records,
			AreaHectares: acc.area.Round(areaPlaces).InexactFloat64(),
			Cultivars:    acc.cultivars.list(areaPlaces),
			Fertilizers:  acc.fertilizers.list(areaPlaces),
			Pesticides:   acc.pesticides.list(quantityPlaces),
		})
	}
	sort.Slice(report.Farms, func(i, j int) bool {
		a, b := report.Farms[i], report.Farms[j]
		if a.ProducerName != b.ProducerName {
			return a.ProducerName < b.ProducerName
		}
		return a.FarmName < b.FarmName
	})
	report.AreaHectares = grand.Round(areaPlaces).InexactFloat64()

	uc.logger.Debugw("season report built", "season_id", query.SeasonID, "farms", len(report.Farms))
	return report, nil
}

type nameCache struct {
	farms     farm.FarmRepository
	producers farm.ProducerRepository
	farmNames map[uint]string
	prodNames map[uint]string
}

func newNameCache(farms farm.FarmRepository, producers farm.ProducerRepository) *nameCache {
	return &nameCache{farms: farms, producers: producers, farmNames: map[uint]string{}, prodNames: map[uint]string{}}
}

// lookup falls back to "#id" for rows that no longer exist.
func (c *nameCache) lookup(ctx context.Context, producerID, farmID uint) (string, string, error) {
	if _, ok := c.prodNames[producerID]; !ok {
		p, err := c.producers.GetByID(ctx, producerID)
		if err != nil {
			return "", "", fmt.Errorf("failed to get producer: %w", err)
		}
		c.prodNames[producerID] = fmt.Sprintf("#%d", producerID)
		if p != nil {
			c.prodNames[producerID] = p.Name()
		}
	}
	if _, ok := c.farmNames[farmID]; !ok {
		f, err := c.farms.GetByID(ctx, farmID)
		if err != nil {
			return "", "", fmt.Errorf("failed to get farm: %w", err)
		}
		c.farmNames[farmID] = fmt.Sprintf("#%d", farmID)
		if f != nil {
			c.farmNames[farmID] = f.Name()
		}
	}
	return c.prodNames[producerID], c.farmNames[farmID], nil
}
