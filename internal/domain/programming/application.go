package programming

import (
	"fmt"
	"strings"
	"time"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/domain/planning"
	"agroplan/internal/shared/id"
)

// ApplicationParams carries the user-editable content of a pesticide application.
type ApplicationParams struct {
	OwnerID      uint
	ProducerID   uint
	FarmID       uint
	AreaName     string
	AreaHectares float64
	SeasonID     uint
	EpochID      *uint
	Type         RecordType
	Crop         string
	RecordID     *uint
	Lines        []PesticideLine
}

// PesticideApplication plans the crop-protection products for an area. It may
// point at the programming record whose area it treats.
type PesticideApplication struct {
	id           uint
	sid          string
	ownerID      uint
	producerID   uint
	farmID       uint
	areaName     string
	areaHectares float64
	seasonID     uint
	epochID      *uint
	recordType   RecordType
	crop         string
	recordID     *uint
	lines        []PesticideLine
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPesticideApplication(p ApplicationParams) (*PesticideApplication, error) {
	sid, err := id.NewApplicationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application id: %w", err)
	}

	now := time.Now()
	a := &PesticideApplication{
		sid:       sid,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	a.apply(p)

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructPesticideApplication(
	applicationID uint,
	sid string,
	p ApplicationParams,
	version int,
	createdAt, updatedAt time.Time,
) (*PesticideApplication, error) {
	if applicationID == 0 {
		return nil, fmt.Errorf("application ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("application SID is required")
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidRecordType
	}

	a := &PesticideApplication{
		id:        applicationID,
		sid:       sid,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	a.apply(p)
	return a, nil
}

func (a *PesticideApplication) apply(p ApplicationParams) {
	a.ownerID = p.OwnerID
	a.producerID = p.ProducerID
	a.farmID = p.FarmID
	a.areaName = strings.TrimSpace(p.AreaName)
	a.areaHectares = p.AreaHectares
	a.seasonID = p.SeasonID
	a.epochID = copyUintPtr(p.EpochID)
	a.recordType = p.Type
	a.crop = strings.TrimSpace(p.Crop)
	a.recordID = copyUintPtr(p.RecordID)
	a.lines = append([]PesticideLine(nil), p.Lines...)
}

func (a *PesticideApplication) Replace(p ApplicationParams) error {
	next := *a
	p.OwnerID = a.ownerID
	next.apply(p)
	if err := next.Validate(); err != nil {
		return err
	}

	next.version++
	next.updatedAt = time.Now()
	*a = next
	return nil
}

func (a *PesticideApplication) Validate() error {
	if !a.recordType.IsValid() {
		return ErrInvalidRecordType
	}
	if a.producerID == 0 {
		return ErrProducerRequired
	}
	if a.farmID == 0 {
		return ErrFarmRequired
	}
	if a.seasonID == 0 {
		return ErrSeasonRequired
	}
	if !(a.areaHectares > 0) {
		return planning.ErrMissingArea
	}
	if len(a.lines) == 0 {
		return planning.ErrNoLines
	}

	for i, l := range a.lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("pesticide line %d: %w", i+1, err)
		}
		for _, prev := range a.lines[:i] {
			if sameSlot(prev, l) && catalog.SameProduct(prev.Product, l.Product) {
				return fmt.Errorf("pesticide line %d: %w: %s", i+1, ErrDuplicateProduct, l.Product)
			}
		}
	}
	return nil
}

func sameSlot(a, b PesticideLine) bool {
	return catalog.Normalize(a.Class) == catalog.Normalize(b.Class) &&
		catalog.Normalize(a.Application) == catalog.Normalize(b.Application)
}

// ReplicaFor copies the application onto another farm area. The link to a
// programming record is dropped since it belongs to the source farm.
func (a *PesticideApplication) ReplicaFor(t planning.ResolvedTarget) (planning.Replica, error) {
	sid, err := id.NewApplicationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate application id: %w", err)
	}

	now := time.Now()
	c := &PesticideApplication{
		sid:       sid,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	c.apply(ApplicationParams{
		OwnerID:      a.ownerID,
		ProducerID:   t.ProducerID,
		FarmID:       t.FarmID,
		AreaName:     t.AreaName,
		AreaHectares: t.AreaHectares,
		SeasonID:     a.seasonID,
		EpochID:      a.epochID,
		Type:         a.recordType,
		Crop:         a.crop,
		Lines:        a.lines,
	})
	return c, nil
}

// PlotIDs is always empty: applications do not claim plots.
func (a *PesticideApplication) PlotIDs() []uint { return nil }

func (a *PesticideApplication) Params() ApplicationParams {
	return ApplicationParams{
		OwnerID:      a.ownerID,
		ProducerID:   a.producerID,
		FarmID:       a.farmID,
		AreaName:     a.areaName,
		AreaHectares: a.areaHectares,
		SeasonID:     a.seasonID,
		EpochID:      copyUintPtr(a.epochID),
		Type:         a.recordType,
		Crop:         a.crop,
		RecordID:     copyUintPtr(a.recordID),
		Lines:        a.Lines(),
	}
}

func (a *PesticideApplication) ID() uint              { return a.id }
func (a *PesticideApplication) SID() string           { return a.sid }
func (a *PesticideApplication) OwnerID() uint         { return a.ownerID }
func (a *PesticideApplication) ProducerID() uint      { return a.producerID }
func (a *PesticideApplication) FarmID() uint          { return a.farmID }
func (a *PesticideApplication) AreaName() string      { return a.areaName }
func (a *PesticideApplication) AreaHectares() float64 { return a.areaHectares }
func (a *PesticideApplication) SeasonID() uint        { return a.seasonID }
func (a *PesticideApplication) EpochID() *uint        { return copyUintPtr(a.epochID) }
func (a *PesticideApplication) Type() RecordType      { return a.recordType }
func (a *PesticideApplication) Crop() string          { return a.crop }
func (a *PesticideApplication) RecordID() *uint       { return copyUintPtr(a.recordID) }
func (a *PesticideApplication) Version() int          { return a.version }
func (a *PesticideApplication) CreatedAt() time.Time  { return a.createdAt }
func (a *PesticideApplication) UpdatedAt() time.Time  { return a.updatedAt }

func (a *PesticideApplication) Lines() []PesticideLine {
	return append([]PesticideLine(nil), a.lines...)
}

func (a *PesticideApplication) SetID(applicationID uint) error {
	if a.id != 0 {
		return fmt.Errorf("application ID already set")
	}
	if applicationID == 0 {
		return fmt.Errorf("application ID cannot be zero")
	}
	a.id = applicationID
	return nil
}
