package models

import (
	"time"

	"agroplan/internal/shared/constants"
)

type ProducerModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:200;index"`
	Document  string `gorm:"size:20"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProducerModel) TableName() string {
	return constants.TableProducers
}

type FarmModel struct {
	ID             uint    `gorm:"primarykey"`
	ProducerID     uint    `gorm:"not null;index"`
	Name           string  `gorm:"not null;size:200"`
	City           string  `gorm:"size:100"`
	State          string  `gorm:"size:2"`
	CultivableArea float64 `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (FarmModel) TableName() string {
	return constants.TableFarms
}

type PlotModel struct {
	ID           uint    `gorm:"primarykey"`
	FarmID       uint    `gorm:"not null;uniqueIndex:idx_plot_farm_name,priority:1"`
	Name         string  `gorm:"not null;size:100;uniqueIndex:idx_plot_farm_name,priority:2"`
	AreaHectares float64 `gorm:"not null"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PlotModel) TableName() string {
	return constants.TablePlots
}

type SeasonModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:50;uniqueIndex"`
	StartDate *time.Time
	EndDate   *time.Time
	Current   bool `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (SeasonModel) TableName() string {
	return constants.TableSeasons
}

type EpochModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:50;uniqueIndex"`
	CreatedAt time.Time
}

func (EpochModel) TableName() string {
	return constants.TableEpochs
}
