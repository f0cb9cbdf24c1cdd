package migration

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"agroplan/internal/infrastructure/persistence/models"
	"agroplan/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/sqlite/*.sql
var scriptsFS embed.FS

// Strategy brings a database schema up to date.
type Strategy interface {
	Migrate(db *gorm.DB) error
	GetName() string
}

// GormAutoMigrateStrategy creates tables straight from the gorm models and
// seeds reference rows. It is meant for local sqlite databases.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm automigrate", "models", len(all))

	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to automigrate: %w", err)
	}
	return SeedJustifications(db)
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GooseStrategy runs the versioned SQL scripts embedded in the binary. The
// script set is picked by the gorm dialector name.
type GooseStrategy struct {
	dialect string
	dir     string
	logger  logger.Interface
}

// NewGooseStrategy returns a strategy for driver "mysql" or "sqlite".
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	s := &GooseStrategy{
		logger: logger.NewLogger().With("component", "migration.goose"),
	}
	switch driver {
	case "mysql":
		s.dialect, s.dir = "mysql", "scripts/mysql"
	case "sqlite":
		s.dialect, s.dir = "sqlite3", "scripts/sqlite"
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}
	return s, nil
}

func (s *GooseStrategy) prepare() error {
	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.dir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.dir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := s.prepare(); err != nil {
		return err
	}

	if err := goose.Status(sqlDB, s.dir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Scripts lists the embedded script names for driver, in version order.
func Scripts(driver string) ([]string, error) {
	s, err := NewGooseStrategy(driver)
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(scriptsFS, s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
