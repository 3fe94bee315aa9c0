package config

import (
	"errors"
	"hearts-client/internal/util"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hearts client
type Config struct {
	loaded bool
	Player struct {
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"player"`
	Server struct {
		Host          string        `yaml:"host"`
		PollInterval  time.Duration `yaml:"pollInterval" envconfig:"poll_interval"`
		RetryInterval time.Duration `yaml:"retryInterval" envconfig:"retry_interval"`
	} `yaml:"server"`
	Strategy string `yaml:"strategy"`
	Repeat   bool   `yaml:"repeat"`
	Log      struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		AccessLogs bool   `yaml:"accessLogs" envconfig:"access_logs"`
	} `yaml:"log"`
	GameLog struct {
		Dir string `yaml:"dir"`
	} `yaml:"gameLog" envconfig:"game_log"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Status         struct {
		Addr string `yaml:"addr"`
	} `yaml:"status"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Server.Host = "localhost"
	cfg.Server.PollInterval = time.Second
	cfg.Server.RetryInterval = time.Second * 5
	cfg.Strategy = "defensive"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.GameLog.Dir = "game_log"
	cfg.MigrationsPath = "./sql"
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A .env file and the config file are both optional
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("HEARTS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("hearts", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
