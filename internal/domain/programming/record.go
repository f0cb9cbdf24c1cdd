package programming

import (
	"fmt"
	"strings"
	"time"

	"agroplan/internal/domain/planning"
	"agroplan/internal/shared/id"
)

type RecordType string

const (
	RecordTypePreview     RecordType = "PREVIA"
	RecordTypeProgramming RecordType = "PROGRAMACAO"
)

func (t RecordType) IsValid() bool {
	return t == RecordTypePreview || t == RecordTypeProgramming
}

// ParseRecordType defaults to PROGRAMACAO when s is empty.
func ParseRecordType(s string) (RecordType, error) {
	if strings.TrimSpace(s) == "" {
		return RecordTypeProgramming, nil
	}
	t := RecordType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidRecordType
	}
	return t, nil
}

// RecordParams carries the user-editable content of a programming record.
type RecordParams struct {
	OwnerID        uint
	ProducerID     uint
	FarmID         uint
	AreaName       string
	AreaHectares   float64
	SeasonID       uint
	EpochID        *uint
	Type           RecordType
	PlotIDs        []uint
	Cultivars      []CultivarLine
	Fertilizations []FertilizationLine
}

// Record is a seeding and fertilization plan for one area of a farm in a
// season. Its plots are exclusive per season and epoch.
type Record struct {
	id             uint
	sid            string
	ownerID        uint
	producerID     uint
	farmID         uint
	areaName       string
	areaHectares   float64
	seasonID       uint
	epochID        *uint
	recordType     RecordType
	plotIDs        []uint
	cultivars      []CultivarLine
	fertilizations []FertilizationLine
	needsPlots     bool
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRecord(p RecordParams) (*Record, error) {
	sid, err := id.NewProgrammingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record id: %w", err)
	}

	now := time.Now()
	r := &Record{
		sid:       sid,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	r.apply(p)

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ReconstructRecord rebuilds a persisted record without re-validating its lines.
func ReconstructRecord(
	recordID uint,
	sid string,
	p RecordParams,
	needsPlots bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Record, error) {
	if recordID == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("record SID is required")
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidRecordType
	}

	r := &Record{
		id:        recordID,
		sid:       sid,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	r.apply(p)
	r.needsPlots = needsPlots
	return r, nil
}

func (r *Record) apply(p RecordParams) {
	r.ownerID = p.OwnerID
	r.producerID = p.ProducerID
	r.farmID = p.FarmID
	r.areaName = strings.TrimSpace(p.AreaName)
	r.areaHectares = p.AreaHectares
	r.seasonID = p.SeasonID
	r.epochID = copyUintPtr(p.EpochID)
	r.recordType = p.Type
	r.plotIDs = append([]uint(nil), p.PlotIDs...)
	r.cultivars = cloneCultivars(p.Cultivars)
	r.fertilizations = cloneFertilizations(p.Fertilizations)
	r.needsPlots = len(r.plotIDs) == 0
}

// Replace swaps the whole content of the record. Owner and identity are kept.
func (r *Record) Replace(p RecordParams) error {
	next := *r
	p.OwnerID = r.ownerID
	next.apply(p)
	if err := next.Validate(); err != nil {
		return err
	}

	next.version++
	next.updatedAt = time.Now()
	*r = next
	return nil
}

// Validate checks identity fields, line contents and both coverage rules.
func (r *Record) Validate() error {
	if !r.recordType.IsValid() {
		return ErrInvalidRecordType
	}
	if r.producerID == 0 {
		return ErrProducerRequired
	}
	if r.farmID == 0 {
		return ErrFarmRequired
	}
	if r.seasonID == 0 {
		return ErrSeasonRequired
	}
	if !(r.areaHectares > 0) {
		return planning.ErrMissingArea
	}

	seen := make(map[uint]struct{}, len(r.plotIDs))
	for _, pid := range r.plotIDs {
		if _, dup := seen[pid]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicatePlot, pid)
		}
		seen[pid] = struct{}{}
	}

	for i, l := range r.cultivars {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("cultivar line %d: %w", i+1, err)
		}
	}
	for i, l := range r.fertilizations {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("fertilization line %d: %w", i+1, err)
		}
	}

	if err := planning.ValidateCoverage(r.cultivars); err != nil {
		return fmt.Errorf("cultivars: %w", err)
	}
	if err := planning.ValidateFertilization(r.fertilizations); err != nil {
		return fmt.Errorf("fertilizations: %w", err)
	}
	return nil
}

// Claims lists the plot claims this record holds.
func (r *Record) Claims() []planning.Claim {
	claims := make([]planning.Claim, 0, len(r.plotIDs))
	for _, pid := range r.plotIDs {
		claims = append(claims, planning.Claim{
			PlotID:   pid,
			SeasonID: r.seasonID,
			EpochID:  copyUintPtr(r.epochID),
			RecordID: r.id,
		})
	}
	return claims
}

// ReplicaFor copies the record onto another farm area. The copy gets a new
// identity and is flagged as needing plots when the target names none.
func (r *Record) ReplicaFor(t planning.ResolvedTarget) (planning.Replica, error) {
	sid, err := id.NewProgrammingID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record id: %w", err)
	}

	now := time.Now()
	c := &Record{
		sid:       sid,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	c.apply(RecordParams{
		OwnerID:        r.ownerID,
		ProducerID:     t.ProducerID,
		FarmID:         t.FarmID,
		AreaName:       t.AreaName,
		AreaHectares:   t.AreaHectares,
		SeasonID:       r.seasonID,
		EpochID:        r.epochID,
		Type:           r.recordType,
		PlotIDs:        t.PlotIDs,
		Cultivars:      r.cultivars,
		Fertilizations: r.fertilizations,
	})
	return c, nil
}

// Params returns the editable content, suitable for Replace.
func (r *Record) Params() RecordParams {
	return RecordParams{
		OwnerID:        r.ownerID,
		ProducerID:     r.producerID,
		FarmID:         r.farmID,
		AreaName:       r.areaName,
		AreaHectares:   r.areaHectares,
		SeasonID:       r.seasonID,
		EpochID:        copyUintPtr(r.epochID),
		Type:           r.recordType,
		PlotIDs:        r.PlotIDs(),
		Cultivars:      r.Cultivars(),
		Fertilizations: r.Fertilizations(),
	}
}

func (r *Record) ID() uint              { return r.id }
func (r *Record) SID() string           { return r.sid }
func (r *Record) OwnerID() uint         { return r.ownerID }
func (r *Record) ProducerID() uint      { return r.producerID }
func (r *Record) FarmID() uint          { return r.farmID }
func (r *Record) AreaName() string      { return r.areaName }
func (r *Record) AreaHectares() float64 { return r.areaHectares }
func (r *Record) SeasonID() uint        { return r.seasonID }
func (r *Record) EpochID() *uint        { return copyUintPtr(r.epochID) }
func (r *Record) Type() RecordType      { return r.recordType }
func (r *Record) NeedsPlots() bool      { return r.needsPlots }
func (r *Record) Version() int          { return r.version }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }
func (r *Record) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Record) PlotIDs() []uint       { return append([]uint(nil), r.plotIDs...) }

func (r *Record) Cultivars() []CultivarLine {
	return cloneCultivars(r.cultivars)
}

func (r *Record) Fertilizations() []FertilizationLine {
	return cloneFertilizations(r.fertilizations)
}

// SetID is called by the repository after insert.
func (r *Record) SetID(recordID uint) error {
	if r.id != 0 {
		return fmt.Errorf("record ID already set")
	}
	if recordID == 0 {
		return fmt.Errorf("record ID cannot be zero")
	}
	r.id = recordID
	return nil
}

func cloneCultivars(in []CultivarLine) []CultivarLine {
	if in == nil {
		return nil
	}
	out := make([]CultivarLine, len(in))
	for i, l := range in {
		out[i] = l.clone()
	}
	return out
}

func cloneFertilizations(in []FertilizationLine) []FertilizationLine {
	if in == nil {
		return nil
	}
	out := make([]FertilizationLine, len(in))
	for i, l := range in {
		out[i] = l.clone()
	}
	return out
}

func copyUintPtr(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
