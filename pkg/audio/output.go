package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep"
)

// SampleRate is the rate of the shared output context
const SampleRate = beep.SampleRate(44100)

// OutputFormat is the PCM format every source is converted to
var OutputFormat = beep.Format{
	SampleRate:  SampleRate,
	NumChannels: 2,
	Precision:   2,
}

// ErrOutputUnavailable is returned when the audio device could not be opened
var ErrOutputUnavailable = errors.New("audio output unavailable")

// Track is a single playing stream on an Output
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Output creates tracks reading signed 16-bit little-endian stereo PCM at SampleRate
type Output interface {
	NewTrack(pcm io.Reader) Track
}

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	globalAudioCtxErr  error
)

// initAudioContext initializes the global audio context once
func initAudioContext() error {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   int(OutputFormat.SampleRate),
			ChannelCount: OutputFormat.NumChannels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			globalAudioCtxErr = fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
	})
	return globalAudioCtxErr
}

// OtoOutput plays tracks on the shared oto context
type OtoOutput struct{}

// NewOtoOutput opens the audio device on first use
func NewOtoOutput() (*OtoOutput, error) {
	if err := initAudioContext(); err != nil {
		return nil, err
	}
	return &OtoOutput{}, nil
}

// NewTrack implements Output
func (OtoOutput) NewTrack(pcm io.Reader) Track {
	return globalAudioCtx.NewPlayer(pcm)
}
