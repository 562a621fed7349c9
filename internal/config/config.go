package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the kiosk
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig selects and configures the durable storage backend
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// RedisConfig holds connection settings for the redis storage backend
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LoggingConfig holds log output configuration
type LoggingConfig struct {
	File string `yaml:"file"`
}

// UIConfig holds presentation-level timing settings
type UIConfig struct {
	NotificationDelayMS int `yaml:"notification_delay_ms"`
}

// Load reads configuration from a YAML file
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := defaults()
	scanner := bufio.NewScanner(file)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check for section headers
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			currentSection = strings.TrimSuffix(line, ":")
			continue
		}

		// Parse key-value pairs
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), `"`)

			if err := config.setValue(currentSection, key, value); err != nil {
				return nil, fmt.Errorf("failed to set config value %s.%s: %w", currentSection, key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Storage: StorageConfig{Backend: "bolt", Path: "kiosk.db"},
		Redis:   RedisConfig{Host: "localhost", Port: 6379},
		UI:      UIConfig{NotificationDelayMS: 1500},
	}
}

// setValue sets a configuration value based on section and key
func (c *Config) setValue(section, key, value string) error {
	switch section {
	case "storage":
		return c.setStorageValue(key, value)
	case "redis":
		return c.setRedisValue(key, value)
	case "logging":
		return c.setLoggingValue(key, value)
	case "ui":
		return c.setUIValue(key, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

// setStorageValue sets storage configuration values
func (c *Config) setStorageValue(key, value string) error {
	switch key {
	case "backend":
		switch value {
		case "bolt", "redis", "memory":
			c.Storage.Backend = value
		default:
			return fmt.Errorf("unknown storage backend: %s", value)
		}
	case "path":
		c.Storage.Path = value
	default:
		return fmt.Errorf("unknown storage key: %s", key)
	}
	return nil
}

// setRedisValue sets redis configuration values
func (c *Config) setRedisValue(key, value string) error {
	switch key {
	case "host":
		c.Redis.Host = value
	case "port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port value: %w", err)
		}
		c.Redis.Port = port
	case "password":
		c.Redis.Password = value
	case "db":
		db, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid db value: %w", err)
		}
		c.Redis.DB = db
	default:
		return fmt.Errorf("unknown redis key: %s", key)
	}
	return nil
}

// setLoggingValue sets logging configuration values
func (c *Config) setLoggingValue(key, value string) error {
	switch key {
	case "file":
		c.Logging.File = value
	default:
		return fmt.Errorf("unknown logging key: %s", key)
	}
	return nil
}

// setUIValue sets UI configuration values
func (c *Config) setUIValue(key, value string) error {
	switch key {
	case "notification_delay_ms":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid notification_delay_ms value: %w", err)
		}
		if ms < 0 {
			return fmt.Errorf("notification_delay_ms must not be negative")
		}
		c.UI.NotificationDelayMS = ms
	default:
		return fmt.Errorf("unknown ui key: %s", key)
	}
	return nil
}

// RedisAddr returns a host:port address for the redis backend
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// NotificationDelay returns the configured notification delay as a Duration
func (c *Config) NotificationDelay() time.Duration {
	return time.Duration(c.UI.NotificationDelayMS) * time.Millisecond
}
