package programming

import (
	"math"
	"strings"
	"time"

	"agroplan/internal/domain/planning"
)

// Seed package types offered in the cultivar form.
const (
	PackageBag5000K  = "BAG 5000K"
	PackageSacks200K = "SACAS 200K"
)

// PesticideLine is one product of a pesticide application or an on-farm
// seed treatment.
type PesticideLine struct {
	Class        string
	Application  string
	Product      string
	ProductCode  string
	Dose         float64
	Unit         string
	CoveragePct  float64
	OwnProduct   bool
	Billable     bool
	SavedPercent float64
}

func (l PesticideLine) Coverage() float64 { return l.CoveragePct }

// Total is the product quantity for an area in hectares.
func (l PesticideLine) Total(areaHectares float64) float64 {
	return planning.ComputeTotal(l.Dose, areaHectares, l.CoveragePct)
}

func (l PesticideLine) Validate() error {
	if strings.TrimSpace(l.Product) == "" {
		return ErrProductRequired
	}
	if !positive(l.Dose) {
		return ErrInvalidDose
	}
	if !inPercentRange(l.CoveragePct) {
		return ErrLineCoverageOutOfRange
	}
	if !inPercentRange(l.SavedPercent) {
		return ErrInvalidSavedPercent
	}
	return nil
}

// CultivarLine is the share of the record area planted with one cultivar.
type CultivarLine struct {
	Cultivar       string
	Crop           string
	CoveragePct    float64
	PackageType    string
	PlantingDate   *time.Time
	SeedPopulation float64
	OwnSeed        bool
	RNCReference   string
	SeedsPerBag    float64
	Treatment      Treatment
}

func (l CultivarLine) Coverage() float64 { return l.CoveragePct }

// PlantedArea is the hectares this line covers.
func (l CultivarLine) PlantedArea(areaHectares float64) float64 {
	return planning.ComputeTotal(1, areaHectares, l.CoveragePct)
}

// SeedBags is the number of bags needed for the planted area, or 0 when
// the population or bag size is unknown.
func (l CultivarLine) SeedBags(areaHectares float64) float64 {
	if !positive(l.SeedsPerBag) {
		return 0
	}
	return planning.ComputeTotal(l.SeedPopulation, areaHectares, l.CoveragePct) / l.SeedsPerBag
}

func (l CultivarLine) Validate() error {
	if strings.TrimSpace(l.Cultivar) == "" {
		return ErrCultivarRequired
	}
	if !(l.CoveragePct >= 1) || l.CoveragePct > 100 {
		return ErrLineCoverageOutOfRange
	}
	if l.Treatment == nil {
		return ErrTreatmentRequired
	}
	return l.Treatment.Validate()
}

func (l CultivarLine) clone() CultivarLine {
	c := l
	if l.PlantingDate != nil {
		d := *l.PlantingDate
		c.PlantingDate = &d
	}
	if l.Treatment != nil {
		c.Treatment = l.Treatment.clone()
	}
	return c
}

// FertilizationLine is one fertilizer of the record, or the justification
// for not fertilizing.
type FertilizationLine struct {
	Formulation     string
	Dose            float64
	CoveragePct     float64
	ApplicationDate *time.Time
	Package         string
	OwnFertilizer   bool
	Billable        bool
	SavedPercent    float64
	Justification   *uint
}

// NewFertilizationOptOut builds the single line that records a justified
// decision not to fertilize.
func NewFertilizationOptOut(justificationID uint) FertilizationLine {
	return FertilizationLine{Justification: &justificationID}
}

func (l FertilizationLine) Coverage() float64      { return l.CoveragePct }
func (l FertilizationLine) JustificationID() *uint { return l.Justification }

// Total is the fertilizer quantity (kg) for an area in hectares.
func (l FertilizationLine) Total(areaHectares float64) float64 {
	return planning.ComputeTotal(l.Dose, areaHectares, l.CoveragePct)
}

func (l FertilizationLine) Validate() error {
	if l.Justification != nil {
		if strings.TrimSpace(l.Formulation) != "" {
			return ErrFormulationWithJustification
		}
		return nil
	}
	if strings.TrimSpace(l.Formulation) == "" {
		return ErrFormulationRequired
	}
	if !positive(l.Dose) {
		return ErrInvalidDose
	}
	if !(l.CoveragePct >= 1) || l.CoveragePct > 100 {
		return ErrLineCoverageOutOfRange
	}
	if !inPercentRange(l.SavedPercent) {
		return ErrInvalidSavedPercent
	}
	return nil
}

func (l FertilizationLine) clone() FertilizationLine {
	c := l
	if l.ApplicationDate != nil {
		d := *l.ApplicationDate
		c.ApplicationDate = &d
	}
	if l.Justification != nil {
		j := *l.Justification
		c.Justification = &j
	}
	return c
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func inPercentRange(x float64) bool {
	return x >= 0 && x <= 100
}
