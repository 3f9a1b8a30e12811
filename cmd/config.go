package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"vendorflow/internal/core/domain/model/purchaseorder"
	"vendorflow/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"vendorflow"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	RatingBaseValue             float64 `envconfig:"RATING_BASE_VALUE" default:"5"`
	ResponseTimeScope           string  `envconfig:"RESPONSE_TIME_SCOPE" default:"global"`
	PerformanceSnapshotSchedule string  `envconfig:"PERFORMANCE_SNAPSHOT_SCHEDULE" default:"0 0 0 * * *"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"false"`
}

// LoadConfig reads the environment, after loading envFile if it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Scope(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.RatingScale(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Scope parses RESPONSE_TIME_SCOPE.
func (c Config) Scope() (ports.ResponseTimeScope, error) {
	switch strings.ToLower(strings.TrimSpace(c.ResponseTimeScope)) {
	case "global":
		return ports.ResponseTimeGlobal, nil
	case "vendor":
		return ports.ResponseTimeVendor, nil
	}
	return 0, fmt.Errorf("RESPONSE_TIME_SCOPE must be global or vendor, got %q", c.ResponseTimeScope)
}

func (c Config) RatingScale() (purchaseorder.RatingScale, error) {
	return purchaseorder.NewRatingScale(c.RatingBaseValue)
}
