package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WriteWAV renders length of sound, looping it as needed, into a WAV stream
func (l *Library) WriteWAV(w io.WriteSeeker, sound models.Sound, length time.Duration) error {
	source, err := l.Open(sound)
	if err != nil {
		return err
	}
	defer source.Close()

	streamer := beep.Take(source.Format.SampleRate.N(length), newLooper(source.Streamer))
	if err := wav.Encode(w, streamer, source.Format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", sound.Name, err)
	}
	return nil
}
