package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	ProviderService ProviderServiceConfig `toml:"provider_service"`
	Engine          EngineConfig          `toml:"engine"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ProviderServiceConfig настройки клиента каталога провайдеров
type ProviderServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// EngineConfig настройки движка календаря
type EngineConfig struct {
	SlotStepMinutes int    `toml:"slot_step_minutes"` // шаг сетки слотов по умолчанию
	ChunkDays       int    `toml:"chunk_days"`        // размер страницы календаря
	FallbackEnabled bool   `toml:"fallback_enabled"`  // глобальный флаг синтеза fallback
	SessionTTL      int    `toml:"session_ttl"`       // время жизни сессии, секунды
	MaxSessions     int    `toml:"max_sessions"`      // верхняя граница живых сессий
	RequestTTLDays  int    `toml:"request_ttl_days"`  // возраст pending-заявки до expired
	ExpireCronSpec  string `toml:"expire_cron_spec"`  // расписание уборки заявок
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Engine.SlotStepMinutes <= 0 {
		c.Engine.SlotStepMinutes = 30
	}
	if c.Engine.ChunkDays <= 0 {
		c.Engine.ChunkDays = 7
	}
	if c.Engine.SessionTTL <= 0 {
		c.Engine.SessionTTL = 1800
	}
	if c.Engine.MaxSessions <= 0 {
		c.Engine.MaxSessions = 10000
	}
	if c.Engine.RequestTTLDays <= 0 {
		c.Engine.RequestTTLDays = 14
	}
	if c.Engine.ExpireCronSpec == "" {
		c.Engine.ExpireCronSpec = "0 4 * * *"
	}
}
