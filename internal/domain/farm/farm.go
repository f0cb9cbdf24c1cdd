package farm

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Farm belongs to one producer. CultivableArea is used as the record area
// when a record names no plots.
type Farm struct {
	id             uint
	producerID     uint
	name           string
	city           string
	state          string
	cultivableArea float64
	createdAt      time.Time
}

func NewFarm(producerID uint, name, city, state string, cultivableArea float64) (*Farm, error) {
	if producerID == 0 {
		return nil, ErrProducerRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if cultivableArea < 0 || math.IsNaN(cultivableArea) || math.IsInf(cultivableArea, 0) {
		return nil, ErrInvalidArea
	}
	return &Farm{
		producerID:     producerID,
		name:           name,
		city:           strings.TrimSpace(city),
		state:          strings.ToUpper(strings.TrimSpace(state)),
		cultivableArea: cultivableArea,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructFarm(id, producerID uint, name, city, state string, cultivableArea float64, createdAt time.Time) *Farm {
	return &Farm{
		id:             id,
		producerID:     producerID,
		name:           name,
		city:           city,
		state:          state,
		cultivableArea: cultivableArea,
		createdAt:      createdAt,
	}
}

func (f *Farm) ID() uint                { return f.id }
func (f *Farm) ProducerID() uint        { return f.producerID }
func (f *Farm) Name() string            { return f.name }
func (f *Farm) City() string            { return f.city }
func (f *Farm) State() string           { return f.state }
func (f *Farm) CultivableArea() float64 { return f.cultivableArea }
func (f *Farm) CreatedAt() time.Time    { return f.createdAt }

// BelongsTo reports whether the farm is owned by producerID.
func (f *Farm) BelongsTo(producerID uint) bool {
	return f.producerID == producerID
}

func (f *Farm) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("farm ID is already set")
	}
	f.id = id
	return nil
}
