package farm

import (
	"fmt"
	"strings"
	"time"
)

// Season ("safra") is a crop year such as "2024/25".
type Season struct {
	id        uint
	name      string
	startDate *time.Time
	endDate   *time.Time
	current   bool
}

func NewSeason(name string, startDate, endDate *time.Time, current bool) (*Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if startDate != nil && endDate != nil && !endDate.After(*startDate) {
		return nil, ErrInvalidDateRange
	}
	return &Season{name: name, startDate: startDate, endDate: endDate, current: current}, nil
}

func ReconstructSeason(id uint, name string, startDate, endDate *time.Time, current bool) *Season {
	return &Season{id: id, name: name, startDate: startDate, endDate: endDate, current: current}
}

func (s *Season) ID() uint              { return s.id }
func (s *Season) Name() string          { return s.name }
func (s *Season) StartDate() *time.Time { return s.startDate }
func (s *Season) EndDate() *time.Time   { return s.endDate }
func (s *Season) IsCurrent() bool       { return s.current }

func (s *Season) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("season ID is already set")
	}
	s.id = id
	return nil
}

// Epoch ("época") is a planting window within a season, e.g. "SAFRINHA".
type Epoch struct {
	id   uint
	name string
}

func NewEpoch(name string) (*Epoch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Epoch{name: strings.ToUpper(name)}, nil
}

func ReconstructEpoch(id uint, name string) *Epoch {
	return &Epoch{id: id, name: name}
}

func (e *Epoch) ID() uint     { return e.id }
func (e *Epoch) Name() string { return e.name }

func (e *Epoch) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("epoch ID is already set")
	}
	e.id = id
	return nil
}
