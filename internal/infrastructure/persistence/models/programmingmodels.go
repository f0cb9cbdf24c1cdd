package models

import (
	"time"

	"gorm.io/datatypes"

	"agroplan/internal/shared/constants"
)

// ProgrammingRecordModel is the header row. Plots live in plot_claims and
// lines in their own tables, keyed by RecordID.
type ProgrammingRecordModel struct {
	ID           uint    `gorm:"primarykey"`
	SID          string  `gorm:"column:sid;uniqueIndex;not null;size:32"`
	OwnerID      uint    `gorm:"not null;index"`
	ProducerID   uint    `gorm:"not null;index"`
	FarmID       uint    `gorm:"not null;index"`
	AreaName     string  `gorm:"size:100"`
	AreaHectares float64 `gorm:"not null"`
	SeasonID     uint    `gorm:"not null;index:idx_record_season_epoch,priority:1"`
	EpochID      *uint   `gorm:"index:idx_record_season_epoch,priority:2"`
	Type         string  `gorm:"not null;size:20"`
	NeedsPlots   bool    `gorm:"not null;default:false"`
	Version      int     `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProgrammingRecordModel) TableName() string {
	return constants.TableProgrammingRecords
}

type CultivarLineModel struct {
	ID             uint    `gorm:"primarykey"`
	RecordID       uint    `gorm:"not null;index"`
	Position       int     `gorm:"not null"`
	Cultivar       string  `gorm:"not null;size:200"`
	Crop           string  `gorm:"size:50"`
	CoveragePct    float64 `gorm:"not null"`
	PackageType    string  `gorm:"size:30"`
	PlantingDate   *time.Time
	SeedPopulation float64
	OwnSeed        bool
	RNCReference   string `gorm:"column:rnc_reference;size:50"`
	SeedsPerBag    float64
	TreatmentKind  string         `gorm:"not null;size:20"`
	TreatmentLines datatypes.JSON // on-farm pesticide lines
	TreatmentIDs   datatypes.JSON `gorm:"column:treatment_ids"` // industrial treatment ids
}

func (CultivarLineModel) TableName() string {
	return constants.TableCultivarLines
}

type FertilizationLineModel struct {
	ID              uint    `gorm:"primarykey"`
	RecordID        uint    `gorm:"not null;index"`
	Position        int     `gorm:"not null"`
	Formulation     string  `gorm:"size:200"`
	Dose            float64 `gorm:"not null;default:0"`
	CoveragePct     float64 `gorm:"not null;default:0"`
	ApplicationDate *time.Time
	Package         string `gorm:"size:50"`
	OwnFertilizer   bool
	Billable        bool
	SavedPercent    float64
	JustificationID *uint
}

func (FertilizationLineModel) TableName() string {
	return constants.TableFertilizationLines
}

// PlotClaimModel makes "one record per plot, season and epoch" a database
// invariant. EpochKey is EpochID or 0 when the record has no epoch, since
// NULLs never collide in a unique index.
type PlotClaimModel struct {
	ID       uint `gorm:"primarykey"`
	PlotID   uint `gorm:"not null;uniqueIndex:idx_plot_claim,priority:1"`
	SeasonID uint `gorm:"not null;uniqueIndex:idx_plot_claim,priority:2"`
	EpochKey uint `gorm:"not null;default:0;uniqueIndex:idx_plot_claim,priority:3"`
	EpochID  *uint
	RecordID uint `gorm:"not null;index"`
}

func (PlotClaimModel) TableName() string {
	return constants.TablePlotClaims
}

type PesticideApplicationModel struct {
	ID           uint    `gorm:"primarykey"`
	SID          string  `gorm:"column:sid;uniqueIndex;not null;size:32"`
	OwnerID      uint    `gorm:"not null;index"`
	ProducerID   uint    `gorm:"not null;index"`
	FarmID       uint    `gorm:"not null;index"`
	AreaName     string  `gorm:"size:100"`
	AreaHectares float64 `gorm:"not null"`
	SeasonID     uint    `gorm:"not null;index"`
	EpochID      *uint
	Type         string `gorm:"not null;size:20"`
	Crop         string `gorm:"size:50"`
	RecordID     *uint  `gorm:"index"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PesticideApplicationModel) TableName() string {
	return constants.TablePesticideApplications
}

type PesticideLineModel struct {
	ID            uint    `gorm:"primarykey"`
	ApplicationID uint    `gorm:"not null;index"`
	Position      int     `gorm:"not null"`
	Class         string  `gorm:"size:100"`
	Application   string  `gorm:"size:100"`
	Product       string  `gorm:"not null;size:200"`
	ProductCode   string  `gorm:"size:50"`
	Dose          float64 `gorm:"not null"`
	Unit          string  `gorm:"size:20"`
	CoveragePct   float64 `gorm:"not null"`
	OwnProduct    bool
	Billable      bool
	SavedPercent  float64
}

func (PesticideLineModel) TableName() string {
	return constants.TablePesticideLines
}
