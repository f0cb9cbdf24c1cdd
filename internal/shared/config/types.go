package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BasePath       string   `mapstructure:"base_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the gorm dialector through Driver ("mysql" or "sqlite").
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type PlanningConfig struct {
	ReplicationConcurrency int    `mapstructure:"replication_concurrency"`
	SubmitDebounceSeconds  int    `mapstructure:"submit_debounce_seconds"`
	SynonymsFile           string `mapstructure:"synonyms_file"`
}

func (p *PlanningConfig) SubmitDebounce() time.Duration {
	return time.Duration(p.SubmitDebounceSeconds) * time.Second
}

type CatalogConfig struct {
	SyncURL            string `mapstructure:"sync_url"`
	SyncToken          string `mapstructure:"sync_token"`
	SyncTimeoutSeconds int    `mapstructure:"sync_timeout_seconds"`
	CacheTTLSeconds    int    `mapstructure:"cache_ttl_seconds"`
	// SyncIntervalMinutes schedules the ERP pull; 0 disables it.
	SyncIntervalMinutes int `mapstructure:"sync_interval_minutes"`
}

func (c *CatalogConfig) SyncTimeout() time.Duration {
	return time.Duration(c.SyncTimeoutSeconds) * time.Second
}

func (c *CatalogConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *CatalogConfig) SyncInterval() time.Duration {
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}
