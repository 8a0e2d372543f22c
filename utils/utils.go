package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"zombies/world"

	"github.com/pelletier/go-toml/v2"
)

type ResolutionConfig struct {
	X, Y int
}

type UIConfig struct {
	Resolution ResolutionConfig
}

type GameConfig struct {
	// Seed drives blood bursts. Zero picks a seed from the clock.
	Seed     int64
	LogLevel string
}

type MathConfig struct {
	Float64EqualityThreshold float64
}

type ServerConfig struct {
	Address  string
	TickRate int
	// AutopilotInterval is the number of seconds between autopilot shots.
	AutopilotInterval float64
	// History is how many recent states a new spectator is replayed.
	History int
	// OriginPatterns lists the browser origins allowed to spectate.
	OriginPatterns []string
}

type Config struct {
	UI     UIConfig
	Game   GameConfig
	Math   MathConfig
	Server ServerConfig
	World  world.Config
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Resolution: ResolutionConfig{X: 1280, Y: 720},
		},
		Game: GameConfig{
			LogLevel: "info",
		},
		Math: MathConfig{
			Float64EqualityThreshold: 1e-9,
		},
		Server: ServerConfig{
			Address:           "localhost:4242",
			TickRate:          60,
			AutopilotInterval: 0.5,
			History:           30,
			OriginPatterns:    []string{"localhost:*", "127.0.0.1:*"},
		},
		World: world.DefaultConfig(),
	}
}

// ReadTOML loads fileName over the defaults. Keys the config does not know
// about are an error.
func ReadTOML(fileName string) (*Config, error) {
	file, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	decoder := toml.NewDecoder(bytes.NewReader(file)).DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", fileName, err)
	}
	if err := config.World.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config in %s: %w", fileName, err)
	}
	if config.Server.TickRate <= 0 {
		return nil, fmt.Errorf("server tick rate must be positive, got %d", config.Server.TickRate)
	}
	if config.Server.History < 1 {
		return nil, fmt.Errorf("server history must hold at least one state, got %d", config.Server.History)
	}
	return config, nil
}

// LoadTOML is ReadTOML, except that a missing file yields the defaults.
func LoadTOML(fileName string) (*Config, error) {
	config, err := ReadTOML(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("%s not found, using defaults", fileName)
		return DefaultConfig(), nil
	}
	return config, err
}

func AlmostEqual(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}
