package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// looper plays a seekable stream forever, rewinding at the end. It is safe to
// query the position while the output goroutine is streaming.
type looper struct {
	mu  sync.Mutex
	s   beep.StreamSeeker
	err error
}

func newLooper(s beep.StreamSeeker) *looper {
	return &looper{s: s}
}

func (l *looper) Stream(samples [][2]float64) (n int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil || l.s.Len() == 0 {
		return 0, false
	}

	empty := 0
	for n < len(samples) {
		sn, sok := l.s.Stream(samples[n:])
		n += sn
		if sok && sn > 0 {
			empty = 0
			continue
		}

		if err := l.s.Err(); err != nil {
			l.err = err
			return n, n > 0
		}
		// A stream that keeps yielding nothing after a rewind is broken
		if empty++; empty > 1 {
			return n, n > 0
		}
		if err := l.s.Seek(0); err != nil {
			l.err = err
			return n, n > 0
		}
	}
	return n, true
}

func (l *looper) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Position returns the offset into the current loop iteration
func (l *looper) Position(rate beep.SampleRate) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return rate.D(l.s.Position())
}

// Duration returns the length of one loop iteration
func (l *looper) Duration(rate beep.SampleRate) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return rate.D(l.s.Len())
}
