package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the resolved tool configuration.
type Config struct {
	LogLevel  string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format"`
}

// ConfigManager handles configuration loading and management
type ConfigManager struct {
	config *Config
	viper  *viper.Viper
	logger *Logger
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		config: &Config{},
		viper:  viper.New(),
		logger: NewDefaultLogger(),
	}
}

// LoadConfig loads configuration from file and environment variables.
// Settings resolve in order: defaults, then config file, then ELFHDR_*
// environment variables.
func (c *ConfigManager) LoadConfig(configFile string) error {
	// Set defaults
	c.setDefaults()

	// Configure viper
	c.viper.SetConfigType("yaml")
	c.viper.SetEnvPrefix("ELFHDR")
	c.viper.AutomaticEnv()
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Load from file if specified
	if configFile != "" {
		c.viper.SetConfigFile(configFile)
		if err := c.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
	} else {
		// Look for config in standard locations
		c.viper.SetConfigName("config")
		c.viper.AddConfigPath(".")
		c.viper.AddConfigPath("$HOME/.elfhdr")
		c.viper.AddConfigPath("/etc/elfhdr")

		if err := c.viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			c.logger.WithComponent("config").Debug("No config file found, using defaults and environment variables")
		} else {
			c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
		}
	}

	// Unmarshal into config struct
	if err := c.viper.Unmarshal(c.config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := c.validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func (c *ConfigManager) setDefaults() {
	c.viper.SetDefault("log_level", "info")
	c.viper.SetDefault("log_format", "text")
}

// validateConfig validates the loaded configuration
func (c *ConfigManager) validateConfig() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if c.config.LogLevel != "" && !contains(validLogLevels, strings.ToLower(c.config.LogLevel)) {
		return fmt.Errorf("invalid log_level: %s (valid: %v)", c.config.LogLevel, validLogLevels)
	}

	validLogFormats := []string{"text", "json"}
	if c.config.LogFormat != "" && !contains(validLogFormats, strings.ToLower(c.config.LogFormat)) {
		return fmt.Errorf("invalid log_format: %s (valid: %v)", c.config.LogFormat, validLogFormats)
	}

	return nil
}

// GetConfig returns the loaded configuration
func (c *ConfigManager) GetConfig() *Config {
	return c.config
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// LoadDefaultConfig loads configuration from the standard locations
func LoadDefaultConfig() (*Config, error) {
	manager := NewConfigManager()
	if err := manager.LoadConfig(""); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}

// LoadConfigFromFile loads configuration from a specific file
func LoadConfigFromFile(filename string) (*Config, error) {
	manager := NewConfigManager()
	if err := manager.LoadConfig(filename); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}
