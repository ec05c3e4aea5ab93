package core

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port          int
	UpdatesPerSec int
	WorldWidth    float64
	WorldHeight   float64
}

// DefaultConfig matches the client's local development address.
func DefaultConfig() Config {
	return Config{
		Port:          8081,
		UpdatesPerSec: 20,
		WorldWidth:    800,
		WorldHeight:   600,
	}
}

// LoadConfig reads CORE_* variables, loading the given .env files first.
// A missing .env file is not an error; unset variables keep their defaults.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[server] no .env loaded: %v", err)
	}

	c := DefaultConfig()
	if err := envInt("CORE_PORT", &c.Port); err != nil {
		return c, err
	}
	if err := envInt("CORE_UPDATES_PER_SEC", &c.UpdatesPerSec); err != nil {
		return c, err
	}
	if err := envFloat("CORE_WORLD_WIDTH", &c.WorldWidth); err != nil {
		return c, err
	}
	if err := envFloat("CORE_WORLD_HEIGHT", &c.WorldHeight); err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Validate rejects settings the game loop cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.UpdatesPerSec <= 0 {
		return fmt.Errorf("invalid updates per second %d", c.UpdatesPerSec)
	}
	if c.WorldWidth <= 4*wallThickness || c.WorldHeight <= 4*wallThickness {
		return fmt.Errorf("world %vx%v is too small", c.WorldWidth, c.WorldHeight)
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s is not a valid number: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s is not a valid number: %w", key, err)
	}
	*dst = f
	return nil
}
