package farm

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Plot ("talhão") is a subdivision of a farm and the unit of conflict checking.
type Plot struct {
	id           uint
	farmID       uint
	name         string
	areaHectares float64
	active       bool
	createdAt    time.Time
}

func NewPlot(farmID uint, name string, areaHectares float64) (*Plot, error) {
	if farmID == 0 {
		return nil, ErrFarmRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !(areaHectares > 0) || math.IsInf(areaHectares, 0) {
		return nil, ErrInvalidArea
	}
	return &Plot{
		farmID:       farmID,
		name:         name,
		areaHectares: areaHectares,
		active:       true,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructPlot(id, farmID uint, name string, areaHectares float64, active bool, createdAt time.Time) *Plot {
	return &Plot{
		id:           id,
		farmID:       farmID,
		name:         name,
		areaHectares: areaHectares,
		active:       active,
		createdAt:    createdAt,
	}
}

func (p *Plot) ID() uint              { return p.id }
func (p *Plot) FarmID() uint          { return p.farmID }
func (p *Plot) Name() string          { return p.name }
func (p *Plot) AreaHectares() float64 { return p.areaHectares }
func (p *Plot) IsActive() bool        { return p.active }
func (p *Plot) CreatedAt() time.Time  { return p.createdAt }

func (p *Plot) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plot ID is already set")
	}
	p.id = id
	return nil
}

// PlotAreas returns the area of each plot, in order.
func PlotAreas(plots []*Plot) []float64 {
	areas := make([]float64, len(plots))
	for i, p := range plots {
		areas[i] = p.areaHectares
	}
	return areas
}
