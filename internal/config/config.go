// Package config holds the yaml configuration and named presets for the
// randomart CLI.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/drunken-bishop/randomart/internal/bishop"
)

const (
	DefaultWidth  = 17
	DefaultHeight = 9
	DefaultHash   = "sha256"
)

type Config struct {
	Room  RoomConfig  `yaml:"room"`
	Start StartConfig `yaml:"start"`
	Label string      `yaml:"label"`
	Hash  string      `yaml:"hash"`
}

type RoomConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig overrides the bishop's starting cell; -1 on an axis keeps
// the room-center default for that axis.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		Room:  RoomConfig{Width: DefaultWidth, Height: DefaultHeight},
		Start: StartConfig{X: -1, Y: -1},
		Hash:  DefaultHash,
	}
}

// Load reads a yaml config, filling unset fields from DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StartPosition resolves the configured start, substituting the room
// center for each -1 axis.
func (c *Config) StartPosition() bishop.Position {
	p := bishop.Position{X: c.Start.X, Y: c.Start.Y}
	if p.X < 0 {
		p.X = c.Room.Width / 2
	}
	if p.Y < 0 {
		p.Y = c.Room.Height / 2
	}
	return p
}

// Validate checks the room and start against the walk's construction
// rules, returning the core's configuration error on violation.
func (c *Config) Validate() error {
	_, err := bishop.NewBoardAt(c.Room.Width, c.Room.Height, c.StartPosition())
	return err
}
