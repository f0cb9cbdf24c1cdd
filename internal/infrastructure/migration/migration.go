package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"agroplan/internal/shared/logger"
)

// Manager runs one migration Strategy and logs around it.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose scripts for every environment except a
// development sqlite database, which uses AutoMigrate.
func NewManager(environment, driver string) (*Manager, error) {
	var strategy Strategy
	if strings.EqualFold(environment, "development") && driver == "sqlite" {
		strategy = NewGormAutoMigrateStrategy()
	} else {
		goose, err := NewGooseStrategy(driver)
		if err != nil {
			return nil, err
		}
		strategy = goose
	}
	return NewManagerWithStrategy(strategy), nil
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
