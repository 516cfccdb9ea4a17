package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend names accepted by storage.backend.
const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendTiered = "tiered"
)

// Config defines application configuration.
type Config struct {
	User    UserConfig    `yaml:"user"`
	Storage StorageConfig `yaml:"storage"`
	Report  ReportConfig  `yaml:"report"`
	Export  ExportConfig  `yaml:"export"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

type UserConfig struct {
	ID          string `yaml:"id" validate:"required"`
	DisplayName string `yaml:"display_name"`
}

type StorageConfig struct {
	Backend        string        `yaml:"backend" validate:"oneof=sqlite mongo redis tiered"`
	Remote         string        `yaml:"remote" validate:"omitempty,oneof=mongo redis"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" validate:"gte=0"`
	SaveTimeout    time.Duration `yaml:"save_timeout" validate:"gte=0"`
	SQLite         SQLiteConfig  `yaml:"sqlite"`
	Mongo          MongoConfig   `yaml:"mongo"`
	Redis          RedisConfig   `yaml:"redis"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db" validate:"gte=0"`
	KeyPrefix string `yaml:"key_prefix"`
}

type ReportConfig struct {
	Greeting   string  `yaml:"greeting"`
	Company    string  `yaml:"company"`
	HourlyRate float64 `yaml:"hourly_rate" validate:"gt=0"`
	Currency   string  `yaml:"currency" validate:"required"`
}

type ExportConfig struct {
	Dir   string      `yaml:"dir"`
	Minio MinioConfig `yaml:"minio"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Enabled reports whether report uploads are configured.
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != "" && m.Bucket != ""
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gte=1,lte=65535"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		User: UserConfig{
			ID: "local",
		},
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			ConnectTimeout: 10 * time.Second,
			SaveTimeout:    30 * time.Second,
			SQLite:         SQLiteConfig{Path: "timesheet.db"},
			Mongo:          MongoConfig{Database: "timesheet", Collection: "user_sessions"},
			Redis:          RedisConfig{Addr: "localhost:6379", KeyPrefix: "timesheet:weekly:"},
		},
		Report: ReportConfig{
			Greeting:   "Hi Rita, Simone,",
			Company:    "QanovaTech",
			HourlyRate: 22.5,
			Currency:   "CHF",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from an optional .env file, an optional YAML file
// and environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	envFile := os.Getenv("TIMESHEET_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("TIMESHEET_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	overrides := map[string]*string{
		"TIMESHEET_USER_ID":          &cfg.User.ID,
		"TIMESHEET_DISPLAY_NAME":     &cfg.User.DisplayName,
		"TIMESHEET_BACKEND":          &cfg.Storage.Backend,
		"TIMESHEET_REMOTE":           &cfg.Storage.Remote,
		"TIMESHEET_DB_PATH":          &cfg.Storage.SQLite.Path,
		"TIMESHEET_MONGO_URI":        &cfg.Storage.Mongo.URI,
		"TIMESHEET_MONGO_DATABASE":   &cfg.Storage.Mongo.Database,
		"TIMESHEET_MONGO_COLLECTION": &cfg.Storage.Mongo.Collection,
		"TIMESHEET_REDIS_ADDR":       &cfg.Storage.Redis.Addr,
		"TIMESHEET_REDIS_PASSWORD":   &cfg.Storage.Redis.Password,
		"TIMESHEET_REDIS_KEY_PREFIX": &cfg.Storage.Redis.KeyPrefix,
		"TIMESHEET_REPORT_GREETING":  &cfg.Report.Greeting,
		"TIMESHEET_REPORT_COMPANY":   &cfg.Report.Company,
		"TIMESHEET_CURRENCY":         &cfg.Report.Currency,
		"TIMESHEET_EXPORT_DIR":       &cfg.Export.Dir,
		"TIMESHEET_MINIO_ENDPOINT":   &cfg.Export.Minio.Endpoint,
		"TIMESHEET_MINIO_ACCESS_KEY": &cfg.Export.Minio.AccessKey,
		"TIMESHEET_MINIO_SECRET_KEY": &cfg.Export.Minio.SecretKey,
		"TIMESHEET_MINIO_BUCKET":     &cfg.Export.Minio.Bucket,
		"TIMESHEET_SERVER_HOST":      &cfg.Server.Host,
		"TIMESHEET_LOG_LEVEL":        &cfg.Log.Level,
		"TIMESHEET_LOG_FILE":         &cfg.Log.File,
	}
	for name, dst := range overrides {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv("TIMESHEET_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("TIMESHEET_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_REDIS_DB: %w", err)
		}
		cfg.Storage.Redis.DB = db
	}
	if v := os.Getenv("TIMESHEET_HOURLY_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_HOURLY_RATE: %w", err)
		}
		cfg.Report.HourlyRate = rate
	}
	if v := os.Getenv("TIMESHEET_CONNECT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_CONNECT_TIMEOUT: %w", err)
		}
		cfg.Storage.ConnectTimeout = d
	}
	if v := os.Getenv("TIMESHEET_SAVE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_SAVE_TIMEOUT: %w", err)
		}
		cfg.Storage.SaveTimeout = d
	}
	if v := os.Getenv("TIMESHEET_MINIO_USE_SSL"); v != "" {
		ssl, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TIMESHEET_MINIO_USE_SSL: %w", err)
		}
		cfg.Export.Minio.UseSSL = ssl
	}
	return nil
}

var validate = validator.New()

// Validate checks field constraints and the settings each backend needs.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	remote := c.Storage.Backend
	if remote == BackendTiered {
		remote = c.Storage.Remote
		if remote == "" {
			return errors.New("invalid config: storage.remote is required for the tiered backend")
		}
	}
	switch remote {
	case BackendMongo:
		if c.Storage.Mongo.URI == "" || c.Storage.Mongo.Database == "" {
			return errors.New("invalid config: storage.mongo.uri and storage.mongo.database are required")
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("invalid config: storage.redis.addr is required")
		}
	}
	return nil
}
