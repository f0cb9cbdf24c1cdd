package models

import (
	"time"

	"gorm.io/datatypes"

	"agroplan/internal/shared/constants"
)

type CatalogPesticideModel struct {
	ID               uint   `gorm:"primarykey"`
	Code             string `gorm:"uniqueIndex;not null;size:50"`
	Item             string `gorm:"not null;size:255;index"`
	Group            string `gorm:"column:group_name;size:100;index"`
	Brand            string `gorm:"size:100"`
	ActiveIngredient string `gorm:"size:255"`
	Balance          float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CatalogPesticideModel) TableName() string {
	return constants.TablePesticideCatalog
}

type CatalogFertilizerModel struct {
	ID               uint   `gorm:"primarykey"`
	Code             string `gorm:"uniqueIndex;not null;size:50"`
	Item             string `gorm:"not null;size:255;index"`
	Brand            string `gorm:"size:100"`
	ActiveIngredient string `gorm:"size:255"`
	Balance          float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CatalogFertilizerModel) TableName() string {
	return constants.TableFertilizerCatalog
}

type CatalogCultivarModel struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"not null;size:200"`
	Crop           string `gorm:"size:50;index"`
	ScientificName string `gorm:"size:200"`
}

func (CatalogCultivarModel) TableName() string {
	return constants.TableCultivarCatalog
}

type SeedTreatmentModel struct {
	ID        uint           `gorm:"primarykey"`
	Name      string         `gorm:"not null;size:200"`
	Crop      string         `gorm:"size:50;index"`
	Active    bool           `gorm:"not null;default:true"`
	Cultivars datatypes.JSON // cultivar names, empty for every cultivar
}

func (SeedTreatmentModel) TableName() string {
	return constants.TableSeedTreatments
}

type CalendarApplicationModel struct {
	ID                     uint   `gorm:"primarykey"`
	ApplicationCode        string `gorm:"size:50"`
	ApplicationDescription string `gorm:"size:200"`
	ClassCode              string `gorm:"size:50"`
	ClassDescription       string `gorm:"not null;size:200;index"`
}

func (CalendarApplicationModel) TableName() string {
	return constants.TableCalendarApplications
}

type JustificationModel struct {
	ID          uint   `gorm:"primarykey"`
	Description string `gorm:"not null;size:255"`
	Active      bool   `gorm:"not null;default:true"`
}

func (JustificationModel) TableName() string {
	return constants.TableJustifications
}

type ImportHistoryModel struct {
	ID         uint   `gorm:"primarykey"`
	Kind       string `gorm:"not null;size:30;index"`
	Source     string `gorm:"size:50"`
	Received   int
	Inserted   int
	Updated    int
	Skipped    int
	ImportedBy uint
	CreatedAt  time.Time
}

func (ImportHistoryModel) TableName() string {
	return constants.TableImportHistory
}

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProducerModel{},
		&FarmModel{},
		&PlotModel{},
		&SeasonModel{},
		&EpochModel{},
		&ProgrammingRecordModel{},
		&CultivarLineModel{},
		&FertilizationLineModel{},
		&PlotClaimModel{},
		&PesticideApplicationModel{},
		&PesticideLineModel{},
		&CatalogPesticideModel{},
		&CatalogFertilizerModel{},
		&CatalogCultivarModel{},
		&SeedTreatmentModel{},
		&CalendarApplicationModel{},
		&JustificationModel{},
		&ImportHistoryModel{},
	}
}
