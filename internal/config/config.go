package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPort is the listening port used when PORT is not set.
const DefaultPort = "3000"

// Config aggregates every setting of the service.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Search  SearchConfig
	SysInfo SysInfoConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	search, err := loadSearchConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Log:     logCfg,
		Search:  search,
		SysInfo: loadSysInfoConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// loadServerConfig parses the listen address and timeouts.
func loadServerConfig() (ServerConfig, error) {
	addr, err := ParseAddr(os.Getenv("PORT"))
	if err != nil {
		return ServerConfig{}, err
	}

	readHeader, err := parseDurationEnv("SERVER_READ_HEADER_TIMEOUT", 5*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}

	idle, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}

	shutdown, err := parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{
		Addr:              addr,
		ReadHeaderTimeout: readHeader,
		IdleTimeout:       idle,
		ShutdownTimeout:   shutdown,
	}, nil
}

// ParseAddr turns a PORT style value into a listen address.
func ParseAddr(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		port = DefaultPort
	}

	if strings.Contains(port, ":") {
		// Accept ":3000" or "127.0.0.1:3000" as given.
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	if _, err := strconv.Atoi(port); err != nil {
		return "", fmt.Errorf("invalid PORT value %q: %w", port, err)
	}

	return ":" + port, nil
}

// LogConfig describes log output.
type LogConfig struct {
	Level  zapcore.Level
	Format string
}

func loadLogConfig() (LogConfig, error) {
	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q: %w", raw, err)
		}
	}

	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "console" {
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q: want json or console", format)
	}

	return LogConfig{Level: level, Format: format}, nil
}

// Build creates a zap logger from the configuration.
func (c LogConfig) Build() (*zap.Logger, error) {
	var zc zap.Config
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.Level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// SearchConfig toggles optional search features.
type SearchConfig struct {
	LiveEnabled bool
}

func loadSearchConfig() (SearchConfig, error) {
	live, err := parseBoolEnv("SEARCH_LIVE_ENABLED", false)
	if err != nil {
		return SearchConfig{}, err
	}
	return SearchConfig{LiveEnabled: live}, nil
}

// SysInfoConfig locates the system info log.
type SysInfoConfig struct {
	LogPath string
}

func loadSysInfoConfig() SysInfoConfig {
	return SysInfoConfig{LogPath: getEnvOrDefault("SYSINFO_LOG_PATH", "system-log.txt")}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return defaultValue, nil
	}

	// Bare integers are seconds.
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}

	val, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return val, nil
}
