package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Profile   ProfileConfig   `yaml:"profile"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// SimulatorConfig controla el comportamiento del loop de eventos.
type SimulatorConfig struct {
	TickIntervalSeconds int `yaml:"tick_interval_seconds"`
}

// ProfileConfig controla las reglas del perfil y las misiones.
type ProfileConfig struct {
	DailyQuota       int `yaml:"daily_quota"`        // mini-game plays per type per day
	ResetWindowHours int `yaml:"reset_window_hours"` // mission epoch length
}

// StorageConfig controla dónde se persisten los snapshots.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// TickInterval devuelve el intervalo de tick como time.Duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Simulator.TickIntervalSeconds) * time.Second
}

// ResetWindow devuelve la duración del epoch de misiones.
func (c *Config) ResetWindow() time.Duration {
	return time.Duration(c.Profile.ResetWindowHours) * time.Hour
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("BETPLAY_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Simulator.TickIntervalSeconds <= 0 {
		cfg.Simulator.TickIntervalSeconds = 1
	}
	if cfg.Profile.DailyQuota <= 0 {
		cfg.Profile.DailyQuota = 3
	}
	if cfg.Profile.ResetWindowHours <= 0 {
		cfg.Profile.ResetWindowHours = 24
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "betplay.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
