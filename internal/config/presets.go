package config

import "sort"

// Presets are named room/hash combinations. "ssh" is the geometry OpenSSH
// uses for key randomart; "poster" is the large sha3 layout the SVG
// pipeline was tuned for.
var Presets = map[string]*Config{
	"ssh": {
		Room:  RoomConfig{Width: 17, Height: 9},
		Start: StartConfig{X: -1, Y: -1},
		Hash:  "sha256",
	},
	"poster": {
		Room:  RoomConfig{Width: 31, Height: 15},
		Start: StartConfig{X: -1, Y: -1},
		Hash:  "sha3-512",
	},
	"square": {
		Room:  RoomConfig{Width: 15, Height: 15},
		Start: StartConfig{X: -1, Y: -1},
		Hash:  "sha256",
	},
	"banner": {
		Room:  RoomConfig{Width: 33, Height: 11},
		Start: StartConfig{X: -1, Y: -1},
		Hash:  "sha512",
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
