package audio

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// Errors returned when a sound cannot be opened
var (
	ErrSoundNotFound     = errors.New("audio file not found")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnknownSound      = errors.New("unknown sound kind")
)

// SupportedExtensions lists the audio file types that can be decoded
func SupportedExtensions() []string {
	return []string{".mp3", ".wav"}
}

// Source is an opened sound ready for looping playback
type Source struct {
	Streamer beep.StreamSeeker
	Format   beep.Format
	closer   io.Closer
}

// Close releases the underlying file, if any
func (s *Source) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Library resolves sounds to playable sources. Built-in file sounds are
// searched for in each of Dirs in order.
type Library struct {
	Dirs []string
}

// NewLibrary creates a Library searching dirs for bundled sound files
func NewLibrary(dirs ...string) *Library {
	return &Library{Dirs: dirs}
}

// DefaultSoundDirs returns the Sounds folders next to the executable and in
// the working directory, plus any extra directories given first.
func DefaultSoundDirs(extra ...string) []string {
	dirs := append([]string{}, extra...)
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "Sounds"))
		// macOS app bundles keep resources outside the MacOS folder
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "..", "Resources", "Sounds"))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, "Sounds"))
	}
	return dirs
}

// Resolve returns the file path a file sound would be loaded from
func (l *Library) Resolve(sound models.Sound) (string, error) {
	if sound.Path == "" {
		return "", fmt.Errorf("%w: %s has no path", ErrSoundNotFound, sound.Name)
	}

	if filepath.IsAbs(sound.Path) {
		if fileExists(sound.Path) {
			return sound.Path, nil
		}
		return "", fmt.Errorf("%w: %s", ErrSoundNotFound, sound.Path)
	}

	for _, dir := range l.Dirs {
		candidate := filepath.Join(dir, sound.Path)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s)", ErrSoundNotFound, sound.Path, strings.Join(l.Dirs, ", "))
}

// Open prepares a sound for playback
func (l *Library) Open(sound models.Sound) (*Source, error) {
	switch sound.Kind {
	case models.SoundKindWhiteNoise:
		return noiseSource(WhiteNoise, sound), nil
	case models.SoundKindBrownNoise:
		return noiseSource(BrownNoise, sound), nil
	case models.SoundKindFile:
		path, err := l.Resolve(sound)
		if err != nil {
			return nil, err
		}
		return decodeFile(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, sound.Kind)
	}
}

func noiseSource(color NoiseColor, sound models.Sound) *Source {
	buf := NewNoiseBuffer(color, OutputFormat, NoiseLength, seedFor(sound.ID))
	return &Source{
		Streamer: buf.Streamer(0, buf.Len()),
		Format:   OutputFormat,
	}
}

// seedFor derives a stable noise seed from a sound ID
func seedFor(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}

func decodeFile(path string) (*Source, error) {
	file, err := os.Open(path) // #nosec G304 - sound file chosen by the user or bundled with the app
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		file.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	return &Source{Streamer: streamer, Format: format, closer: streamer}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
