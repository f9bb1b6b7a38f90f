package configs

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Application configs
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`
	FileStoragePath string        `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string        `env:"DATABASE_DSN"`
	UploadsDir      string        `env:"UPLOADS_DIR"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogEncoding     string        `env:"LOG_ENCODING"`
	CompactInterval time.Duration `env:"COMPACT_INTERVAL"`
}

type fileConfig struct {
	ServerAddress   *string `json:"server_address"`
	FileStoragePath *string `json:"file_storage_path"`
	DatabaseDSN     *string `json:"database_dsn"`
	UploadsDir      *string `json:"uploads_dir"`
	LogLevel        *string `json:"log_level"`
	LogEncoding     *string `json:"log_encoding"`
	CompactInterval *string `json:"compact_interval"`
}

// Default configs
func Default() Config {
	return Config{
		ServerAddress:   "localhost:3000",
		FileStoragePath: "urls.db",
		UploadsDir:      "uploads",
		LogLevel:        "info",
		LogEncoding:     "json",
		CompactInterval: time.Minute,
	}
}

// Parse configs from command line, config file, .env file and environment
func Parse() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %s\n", err.Error())
	}

	config, err := ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to parse configs: %s\n", err.Error())
	}

	return config
}

// ParseArgs applies config file, args and environment on top of defaults
func ParseArgs(args []string) (Config, error) {
	var (
		flagServerAddress   string
		flagFileStoragePath string
		flagDatabaseDSN     string
		flagUploadsDir      string
		flagLogLevel        string
		flagLogEncoding     string
		flagCompactInterval time.Duration
		configFilePath      string
	)
	flags := flag.NewFlagSet("utilapi", flag.ContinueOnError)
	flags.StringVar(&flagServerAddress, "a", "", "server's address")
	flags.StringVar(&flagFileStoragePath, "f", "", "file storage path, empty for in-memory storage")
	flags.StringVar(&flagDatabaseDSN, "d", "", "database URL")
	flags.StringVar(&flagUploadsDir, "u", "", "directory for uploaded files")
	flags.StringVar(&flagLogLevel, "l", "", "log level")
	flags.StringVar(&flagLogEncoding, "e", "", "log encoding, json or console")
	flags.DurationVar(&flagCompactInterval, "i", 0, "file storage compaction interval, 0 disables compaction")
	flags.StringVar(&configFilePath, "c", "", "file path with json application configs")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if envConfigFilePath := os.Getenv("CONFIG"); envConfigFilePath != "" {
		configFilePath = envConfigFilePath
	}

	config := Default()
	if configFilePath != "" {
		if err := config.applyFile(configFilePath); err != nil {
			return Config{}, err
		}
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			config.ServerAddress = flagServerAddress
		case "f":
			config.FileStoragePath = flagFileStoragePath
		case "d":
			config.DatabaseDSN = flagDatabaseDSN
		case "u":
			config.UploadsDir = flagUploadsDir
		case "l":
			config.LogLevel = flagLogLevel
		case "e":
			config.LogEncoding = flagLogEncoding
		case "i":
			config.CompactInterval = flagCompactInterval
		}
	})

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return config, nil
}

func (c *Config) applyFile(path string) error {
	configData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configs: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(configData, &fc); err != nil {
		return fmt.Errorf("failed to parse configs: %w", err)
	}

	if fc.ServerAddress != nil {
		c.ServerAddress = *fc.ServerAddress
	}
	if fc.FileStoragePath != nil {
		c.FileStoragePath = *fc.FileStoragePath
	}
	if fc.DatabaseDSN != nil {
		c.DatabaseDSN = *fc.DatabaseDSN
	}
	if fc.UploadsDir != nil {
		c.UploadsDir = *fc.UploadsDir
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogEncoding != nil {
		c.LogEncoding = *fc.LogEncoding
	}
	if fc.CompactInterval != nil {
		interval, err := time.ParseDuration(*fc.CompactInterval)
		if err != nil {
			return fmt.Errorf("failed to parse compact_interval: %w", err)
		}
		c.CompactInterval = interval
	}

	return nil
}

// Use database storage
func (c Config) UseDBStorage() bool {
	return c.DatabaseDSN != ""
}

// Use file storage
func (c Config) UseFileStorage() bool {
	return c.FileStoragePath != ""
}
