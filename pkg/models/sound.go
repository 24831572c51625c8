package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SoundKind tells the audio package how to produce a sound
type SoundKind string

const (
	SoundKindFile       SoundKind = "file"        // decoded from an audio file
	SoundKindWhiteNoise SoundKind = "white-noise" // generated
	SoundKindBrownNoise SoundKind = "brown-noise" // generated
)

// Built-in sound names
const (
	SoundRain       = "Rain"
	SoundWhiteNoise = "White Noise"
	SoundBrownNoise = "Brown Noise"
)

// Sound is an entry in the sound picker
type Sound struct {
	ID   string    `json:"id"`   // Unique identifier
	Name string    `json:"name"` // Display name
	Kind SoundKind `json:"kind"`
	Path string    `json:"path"` // File name for built-ins, absolute path for custom sounds
}

// BuiltinSounds returns the sounds shipped with the app
func BuiltinSounds() []Sound {
	return []Sound{
		{ID: "builtin-rain", Name: SoundRain, Kind: SoundKindFile, Path: "rain.mp3"},
		{ID: "builtin-white-noise", Name: SoundWhiteNoise, Kind: SoundKindWhiteNoise},
		{ID: "builtin-brown-noise", Name: SoundBrownNoise, Kind: SoundKindBrownNoise},
	}
}

// NewCustomSound creates a file sound with a fresh ID. An empty name is
// derived from the file name.
func NewCustomSound(name, path string) Sound {
	if strings.TrimSpace(name) == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return Sound{
		ID:   uuid.New().String(),
		Name: name,
		Kind: SoundKindFile,
		Path: path,
	}
}

// IsBuiltin reports whether the sound ships with the app
func (s Sound) IsBuiltin() bool {
	return strings.HasPrefix(s.ID, "builtin-")
}

// Validate checks if the sound has the fields its kind requires
func (s *Sound) Validate() bool {
	if s.Name == "" {
		return false
	}
	switch s.Kind {
	case SoundKindFile:
		return s.Path != ""
	case SoundKindWhiteNoise, SoundKindBrownNoise:
		return true
	default:
		return false
	}
}
