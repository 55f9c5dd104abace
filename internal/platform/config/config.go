package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config agrupa los ajustes de runtime del servidor.
type Config struct {
	Port string

	// DBDSN vacío => repos in-memory (modo dev / desktop).
	DBDSN string

	// RolloverTime es la hora HH:MM a la que corre el rollover de recurrencia.
	RolloverTime string
}

// Load lee la configuración desde env con defaults razonables.
func Load() (Config, error) {
	cfg := Config{
		Port:         strings.TrimSpace(os.Getenv("PORT")),
		DBDSN:        strings.TrimSpace(os.Getenv("DB_DSN")),
		RolloverTime: strings.TrimSpace(os.Getenv("ROLLOVER_TIME")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return cfg, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	if cfg.RolloverTime == "" {
		cfg.RolloverTime = "00:05"
	}
	if err := validateHHMM(cfg.RolloverTime); err != nil {
		return cfg, fmt.Errorf("ROLLOVER_TIME: %w", err)
	}

	return cfg, nil
}

func validateHHMM(s string) error {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in %q", s)
	}
	return nil
}

// CronSpec convierte la hora HH:MM a una spec de cron estándar (min hour * * *).
func (c Config) CronSpec() string {
	parts := strings.Split(c.RolloverTime, ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return fmt.Sprintf("%d %d * * *", minute, hour)
}
