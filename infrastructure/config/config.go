package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Storage configuration
	StorageDriver string `yaml:"storage_driver"` // sqlite | dynamodb | memory
	SQLitePath    string `yaml:"sqlite_path"`

	// AWS configuration
	AWSRegion     string `yaml:"aws_region"`
	DynamoDBTable string `yaml:"dynamodb_table"`
	EventBusName  string `yaml:"event_bus_name"`

	// Completion API proxy
	AIAPIKey  string        `yaml:"ai_api_key"`
	AIAPIURL  string        `yaml:"ai_api_url"`
	AIModel   string        `yaml:"ai_model"`
	AITimeout time.Duration `yaml:"ai_timeout"`

	// Rate limiting
	RateLimitPerHour int `yaml:"rate_limit_per_hour"`

	// Logging and features
	LogLevel   string `yaml:"log_level"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// LoadConfig loads configuration from the environment. A local .env file
// is honored when present, and CONFIG_FILE may point at a YAML file whose
// values act as defaults under the environment.
func LoadConfig() (*Config, error) {
	// Ignore a missing .env; it only exists in local development.
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:    ":8080",
		Environment:      "development",
		StorageDriver:    "sqlite",
		SQLitePath:       "colorboard.db",
		AWSRegion:        "us-west-2",
		DynamoDBTable:    "colorboard",
		EventBusName:     "",
		AIAPIURL:         "https://api.openai.com/v1/chat/completions",
		AIModel:          "gpt-4o-mini",
		AITimeout:        12 * time.Second,
		RateLimitPerHour: 30,
		LogLevel:         "info",
		EnableCORS:       true,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.StorageDriver = getEnv("STORAGE_DRIVER", cfg.StorageDriver)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.DynamoDBTable = getEnv("TABLE_NAME", cfg.DynamoDBTable)
	cfg.EventBusName = getEnv("EVENT_BUS_NAME", cfg.EventBusName)
	cfg.AIAPIKey = getEnv("AI_API_KEY", cfg.AIAPIKey)
	cfg.AIAPIURL = getEnv("AI_API_URL", cfg.AIAPIURL)
	cfg.AIModel = getEnv("AI_MODEL", cfg.AIModel)
	cfg.AITimeout = getEnvDuration("AI_TIMEOUT", cfg.AITimeout)
	cfg.RateLimitPerHour = getEnvInt("RATE_LIMIT_PER_HOUR", cfg.RateLimitPerHour)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case "sqlite", "dynamodb", "memory":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageDriver == "dynamodb" && c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required with the dynamodb driver")
	}
	if c.RateLimitPerHour <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_HOUR must be positive")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
