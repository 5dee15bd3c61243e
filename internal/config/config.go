package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contains all configuration for the report generator
type Config struct {
	Groq     GroqConfig     `json:"groq" mapstructure:"groq" validate:"required"`
	Tavily   TavilyConfig   `json:"tavily" mapstructure:"tavily" validate:"required"`
	Storage  StorageConfig  `json:"storage" mapstructure:"storage" validate:"required"`
	Server   ServerConfig   `json:"server" mapstructure:"server"`
	Workflow WorkflowConfig `json:"workflow" mapstructure:"workflow"`

	// Logging
	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogPretty bool   `json:"log_pretty" mapstructure:"log_pretty"`
}

// GroqConfig configuration for the Groq inference API
type GroqConfig struct {
	APIKey      string  `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string  `json:"base_url" mapstructure:"base_url" validate:"required,url"`
	Model       string  `json:"model" mapstructure:"model" validate:"required"`
	Temperature float32 `json:"temperature" mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int     `json:"max_tokens" mapstructure:"max_tokens" validate:"min=1,max=32768"`
	Timeout     float64 `json:"timeout" mapstructure:"timeout" validate:"min=1,max=3600"`
}

// TavilyConfig configuration for the Tavily search API
type TavilyConfig struct {
	APIKey      string `json:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL     string `json:"base_url" mapstructure:"base_url" validate:"required,url"`
	SearchDepth string `json:"search_depth" mapstructure:"search_depth" validate:"oneof=basic advanced"`
	MaxResults  int    `json:"max_results" mapstructure:"max_results" validate:"min=1,max=20"`
}

// StorageConfig configuration for workflow session storage
type StorageConfig struct {
	DBFile string `json:"db_file" mapstructure:"db_file" validate:"required"`
	Table  string `json:"table" mapstructure:"table" validate:"required"`
}

// ServerConfig configuration for the HTTP server
type ServerConfig struct {
	Address         string  `json:"address" mapstructure:"address"`
	ShutdownTimeout float64 `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// WorkflowConfig configuration for the report workflow
type WorkflowConfig struct {
	MaxSearchAttempts int  `json:"max_search_attempts" mapstructure:"max_search_attempts" validate:"min=1,max=10"`
	UseCache          bool `json:"use_cache" mapstructure:"use_cache"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Groq: GroqConfig{
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama3-8b-8192",
			Temperature: 0.3,
			MaxTokens:   2048,
			Timeout:     300.0,
		},
		Tavily: TavilyConfig{
			BaseURL:     "https://api.tavily.com",
			SearchDepth: "advanced",
			MaxResults:  10,
		},
		Storage: StorageConfig{
			DBFile: "tmp/workflows.db",
			Table:  "report_workflows",
		},
		Server: ServerConfig{
			Address:         ":8080",
			ShutdownTimeout: 10.0,
		},
		Workflow: WorkflowConfig{
			MaxSearchAttempts: 3,
			UseCache:          true,
		},
		LogLevel:  "info",
		LogPretty: true,
	}
}

// Load loads configuration from an optional file, then applies environment
// overrides. A missing path loads defaults plus environment only.
func Load(path string) (*Config, error) {
	// .env is optional; real environments export directly
	_ = godotenv.Load()

	config := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := viper.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %v", err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return config, nil
}

// applyEnv applies credential overrides from the environment. Keys in the
// environment always win over keys in the config file.
func (c *Config) applyEnv() {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		c.Groq.APIKey = key
	}
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		c.Tavily.APIKey = key
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New()

	if c.Groq.APIKey == "" {
		return fmt.Errorf("groq api key is required (set GROQ_API_KEY)")
	}
	if c.Tavily.APIKey == "" {
		return fmt.Errorf("tavily api key is required (set TAVILY_API_KEY)")
	}

	if dir := filepath.Dir(c.Storage.DBFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create storage directory: %v", err)
		}
	}

	return validate.Struct(c)
}

// GroqTimeout returns the Groq request timeout as a duration
func (c *Config) GroqTimeout() time.Duration {
	return time.Duration(c.Groq.Timeout * float64(time.Second))
}

// ShutdownTimeout returns the server shutdown grace period as a duration
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout * float64(time.Second))
}

// SaveToFile saves the configuration to a file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// String returns a string representation of the config (with sensitive data masked)
func (c *Config) String() string {
	configCopy := *c

	if configCopy.Groq.APIKey != "" {
		configCopy.Groq.APIKey = strings.Repeat("*", 8)
	}
	if configCopy.Tavily.APIKey != "" {
		configCopy.Tavily.APIKey = strings.Repeat("*", 8)
	}

	data, err := json.MarshalIndent(configCopy, "", "  ")
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
