package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	SeatMap  SeatMapConfig  `yaml:"seat_map"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig selects the key-value backend the ledgers are persisted in.
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	UsersKey    string `yaml:"users_key"`
	BookingsKey string `yaml:"bookings_key"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// SeatMapConfig describes the cabin template every flight shares.
type SeatMapConfig struct {
	Rows            int `yaml:"rows"`
	PremiumRowFirst int `yaml:"premium_row_first"`
	PremiumRowLast  int `yaml:"premium_row_last"`
}

type WorkerConfig struct {
	StatsIntervalMinutes int `yaml:"stats_interval_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	// .env is optional and only feeds the overrides below.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// run on defaults and env only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.SeatMap.Rows <= 0 {
		return fmt.Errorf("seat_map.rows must be positive, got %d", c.SeatMap.Rows)
	}
	if c.Worker.StatsIntervalMinutes <= 0 {
		return fmt.Errorf("worker.stats_interval_minutes must be positive, got %d", c.Worker.StatsIntervalMinutes)
	}
	if c.SeatMap.PremiumRowFirst > c.SeatMap.PremiumRowLast {
		return fmt.Errorf("seat_map premium rows %d-%d are reversed", c.SeatMap.PremiumRowFirst, c.SeatMap.PremiumRowLast)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DATABASE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DATABASE_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageMemory
	}
	if cfg.Storage.UsersKey == "" {
		cfg.Storage.UsersKey = "@users"
	}
	if cfg.Storage.BookingsKey == "" {
		cfg.Storage.BookingsKey = "@myBookings"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.SeatMap.Rows == 0 {
		cfg.SeatMap.Rows = 21
	}
	if cfg.SeatMap.PremiumRowFirst == 0 && cfg.SeatMap.PremiumRowLast == 0 {
		cfg.SeatMap.PremiumRowFirst = 10
		cfg.SeatMap.PremiumRowLast = 14
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "flightbooking-worker"
	}
	if cfg.Worker.StatsIntervalMinutes == 0 {
		cfg.Worker.StatsIntervalMinutes = 10
	}
}
