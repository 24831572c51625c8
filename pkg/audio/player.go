package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/borgmon/focus-wave/pkg/models"
	"github.com/borgmon/focus-wave/pkg/store"
	"github.com/gopxl/beep"
	"github.com/hashicorp/go-hclog"
)

// DefaultFadeDuration is how long volume ramps take when fading is enabled
const DefaultFadeDuration = 400 * time.Millisecond

const fadeSteps = 10

// State is the observable playback state
type State struct {
	Playing bool
	Sound   string
	Volume  float64
}

// Player loops one ambient sound at a time. Pausing keeps the playback
// position; switching to another sound starts it from the beginning.
type Player struct {
	mu     sync.Mutex
	out    Output
	lib    *Library
	logger hclog.Logger

	sound   models.Sound
	source  *Source
	loop    *looper
	track   Track
	volume  float64
	playing bool

	fade         bool
	fadeDuration time.Duration
	fadeGen      uint64

	// Changes publishes the state after every transition
	Changes *store.Value[State]
}

// PlayerOptions configures a Player
type PlayerOptions struct {
	Output       Output
	Library      *Library
	Logger       hclog.Logger
	Volume       float64
	Sound        models.Sound
	Fade         bool
	FadeDuration time.Duration
}

// NewPlayer creates an idle Player
func NewPlayer(opts PlayerOptions) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	lib := opts.Library
	if lib == nil {
		lib = NewLibrary()
	}
	fadeDuration := opts.FadeDuration
	if fadeDuration <= 0 {
		fadeDuration = DefaultFadeDuration
	}

	p := &Player{
		out:          opts.Output,
		lib:          lib,
		logger:       logger,
		sound:        opts.Sound,
		volume:       models.ClampVolume(opts.Volume),
		fade:         opts.Fade,
		fadeDuration: fadeDuration,
	}
	p.Changes = store.NewValue(p.stateLocked())
	return p
}

// Play starts looping sound. Playing the sound that is already playing is a no-op;
// playing a different one replaces it.
func (p *Player) Play(sound models.Sound) error {
	p.mu.Lock()

	if p.playing && p.sound.ID == sound.ID {
		p.mu.Unlock()
		return nil
	}

	if p.sound.ID != sound.ID {
		// Switching sounds resets the playback position
		p.logger.Debug("switching sounds, resetting playback position", "from", p.sound.Name, "to", sound.Name)
		p.releaseLocked()
	}
	p.sound = sound

	if p.out == nil {
		p.playing = false
		p.mu.Unlock()
		p.publish()
		return ErrOutputUnavailable
	}

	if p.source == nil {
		source, err := p.lib.Open(sound)
		if err != nil {
			p.playing = false
			p.mu.Unlock()
			p.publish()
			return fmt.Errorf("failed to open %s: %w", sound.Name, err)
		}
		p.source = source
		p.loop = newLooper(source.Streamer)

		var streamer beep.Streamer = p.loop
		if source.Format.SampleRate != OutputFormat.SampleRate {
			streamer = beep.Resample(4, source.Format.SampleRate, OutputFormat.SampleRate, p.loop)
		}
		p.track = p.out.NewTrack(newPCMReader(streamer))
	}

	p.fadeGen++
	gen := p.fadeGen
	target := p.volume
	if p.fade {
		p.track.SetVolume(0)
	} else {
		p.track.SetVolume(target)
	}
	p.track.Play()
	p.playing = true
	p.logger.Info("playing sound", "sound", sound.Name, "volume", models.VolumePercentage(target))
	p.mu.Unlock()

	if p.fade {
		go p.ramp(gen, 0, target, nil)
	}
	p.publish()
	return nil
}

// Pause stops playback and keeps the position for the next Play
func (p *Player) Pause() {
	p.mu.Lock()
	if !p.playing || p.track == nil {
		p.playing = false
		p.mu.Unlock()
		p.publish()
		return
	}

	p.playing = false
	p.fadeGen++
	gen := p.fadeGen
	track := p.track
	if p.loop != nil {
		p.logger.Debug("stored playback position", "position", FormatTime(p.loop.Position(p.source.Format.SampleRate)))
	}

	if !p.fade {
		track.Pause()
		p.mu.Unlock()
		p.publish()
		return
	}
	from := p.volume
	p.mu.Unlock()

	go p.ramp(gen, from, 0, track.Pause)
	p.publish()
}

// SetSound makes sound the current one. A playing player switches to it
// immediately; an idle one plays it on the next Play or Toggle.
func (p *Player) SetSound(sound models.Sound) error {
	p.mu.Lock()
	if p.sound.ID == sound.ID {
		p.mu.Unlock()
		return nil
	}
	if p.playing {
		p.mu.Unlock()
		return p.Play(sound)
	}
	p.releaseLocked()
	p.sound = sound
	p.mu.Unlock()
	p.publish()
	return nil
}

// Toggle pauses when playing and resumes the current sound otherwise
func (p *Player) Toggle() error {
	if p.IsPlaying() {
		p.Pause()
		return nil
	}
	return p.Play(p.Sound())
}

// SetVolume changes the volume, applying it immediately when a track exists
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	p.volume = models.ClampVolume(volume)
	// Cancel any ramp so it doesn't override the new level
	p.fadeGen++
	if p.track != nil {
		if p.playing {
			p.track.SetVolume(p.volume)
		} else {
			// A cancelled fade-out never reaches its pause
			p.track.Pause()
		}
	}
	p.mu.Unlock()
	p.publish()
}

// SetFade enables or disables volume ramps on play and pause
func (p *Player) SetFade(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fade = enabled
}

// IsPlaying reports whether a sound is playing
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Volume returns the current volume in [0,1]
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Sound returns the current sound
func (p *Player) Sound() models.Sound {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sound
}

// State returns a snapshot of the playback state
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Position returns the offset into the current loop, zero when nothing is loaded
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop == nil {
		return 0
	}
	return p.loop.Position(p.source.Format.SampleRate)
}

// Duration returns the length of one loop of the current sound
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop == nil {
		return 0
	}
	return p.loop.Duration(p.source.Format.SampleRate)
}

// Close stops playback and releases the track and source
func (p *Player) Close() {
	p.mu.Lock()
	p.fadeGen++
	p.playing = false
	p.releaseLocked()
	p.mu.Unlock()
	p.publish()
}

func (p *Player) releaseLocked() {
	if p.track != nil {
		p.track.Pause()
		if err := p.track.Close(); err != nil {
			p.logger.Warn("failed to close audio track", "error", err)
		}
		p.track = nil
	}
	if p.source != nil {
		if err := p.source.Close(); err != nil {
			p.logger.Warn("failed to close audio source", "error", err)
		}
		p.source = nil
	}
	p.loop = nil
}

// ramp moves the track volume from one level to another, abandoning the ramp
// when a newer transition starts. done runs if the ramp completes.
func (p *Player) ramp(gen uint64, from, to float64, done func()) {
	step := p.fadeDuration / fadeSteps
	for i := 1; i <= fadeSteps; i++ {
		time.Sleep(step)

		p.mu.Lock()
		if p.fadeGen != gen || p.track == nil {
			p.mu.Unlock()
			return
		}
		p.track.SetVolume(from + (to-from)*float64(i)/fadeSteps)
		if i == fadeSteps && done != nil {
			done()
		}
		p.mu.Unlock()
	}
}

func (p *Player) stateLocked() State {
	return State{
		Playing: p.playing,
		Sound:   p.sound.Name,
		Volume:  p.volume,
	}
}

func (p *Player) publish() {
	p.Changes.Set(p.State())
}

// FormatTime renders a duration as m:ss
func FormatTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
