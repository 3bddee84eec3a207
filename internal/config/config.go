package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Planner  PlannerConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type CatalogConfig struct {
	// File is an optional JSON catalog path; empty means the built-in
	// seed catalog.
	File string
}

// PlannerConfig exposes the allocation heuristics a deployment is most
// likely to tune.
type PlannerConfig struct {
	SurvivalCostPerMeal float64
	InfantBudgetReserve float64
	MaxLineQuantity     int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", ""),
		},
		Planner: PlannerConfig{
			SurvivalCostPerMeal: getEnvAsFloat("SURVIVAL_COST_PER_MEAL", 1.50),
			InfantBudgetReserve: getEnvAsFloat("INFANT_BUDGET_RESERVE", 20.0),
			MaxLineQuantity:     getEnvAsInt("MAX_LINE_QUANTITY", 6),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Planner.SurvivalCostPerMeal <= 0 {
		return fmt.Errorf("SURVIVAL_COST_PER_MEAL must be positive")
	}

	if c.Planner.MaxLineQuantity < 1 {
		return fmt.Errorf("MAX_LINE_QUANTITY must be at least 1")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
