package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Schedule ScheduleConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration, including the bounds of
// the shared connection pool. A request blocks up to PoolTimeout for a free
// connection before failing with a store-unavailable error.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	PoolTimeout time.Duration
}

// ScheduleConfig holds the weekly-cycle configuration
type ScheduleConfig struct {
	// Timezone is the reference timezone the weekly cadence is anchored to
	Timezone string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			Addr:        getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password:    os.Getenv("REDIS_PASSWORD"),
			DB:          getEnvAsIntOrDefault("REDIS_DB", 0),
			PoolSize:    getEnvAsIntOrDefault("REDIS_POOL_SIZE", 10),
			PoolTimeout: time.Duration(getEnvAsIntOrDefault("REDIS_POOL_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Schedule: ScheduleConfig{
			Timezone: getEnvOrDefault("SCHEDULE_TIMEZONE", "America/Los_Angeles"),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if _, err := time.LoadLocation(cfg.Schedule.Timezone); err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", cfg.Schedule.Timezone, err)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
