package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	DataPath         string
	AgentBaseURL     string
	AgentAPIKey      string
	ManagerAgentID   string
	VisualAgentID    string
	SchedulerBaseURL string
	SchedulerAPIKey  string
	ScheduleID       string
	AllowedOrigins   string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DataPath:         getEnv("DATA_PATH", "studio.db"),
		AgentBaseURL:     os.Getenv("AGENT_BASE_URL"),
		AgentAPIKey:      os.Getenv("AGENT_API_KEY"),
		ManagerAgentID:   os.Getenv("MANAGER_AGENT_ID"),
		VisualAgentID:    os.Getenv("VISUAL_AGENT_ID"),
		SchedulerBaseURL: os.Getenv("SCHEDULER_BASE_URL"),
		SchedulerAPIKey:  os.Getenv("SCHEDULER_API_KEY"),
		ScheduleID:       os.Getenv("SCHEDULE_ID"),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "*"),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	if cfg.AgentBaseURL == "" {
		return nil, fmt.Errorf("AGENT_BASE_URL is required")
	}

	if cfg.ManagerAgentID == "" {
		return nil, fmt.Errorf("MANAGER_AGENT_ID is required")
	}

	if cfg.VisualAgentID == "" {
		return nil, fmt.Errorf("VISUAL_AGENT_ID is required")
	}

	if cfg.SchedulerBaseURL == "" {
		return nil, fmt.Errorf("SCHEDULER_BASE_URL is required")
	}

	if cfg.ScheduleID == "" {
		return nil, fmt.Errorf("SCHEDULE_ID is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
