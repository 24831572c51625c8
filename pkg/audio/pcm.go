package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// pcmReader renders a beep streamer as signed 16-bit little-endian stereo frames.
// It emits silence once the streamer is drained so the output never starves.
type pcmReader struct {
	streamer beep.Streamer
	buf      [][2]float64
	drained  bool
}

const bytesPerFrame = 4

func newPCMReader(s beep.Streamer) *pcmReader {
	return &pcmReader{streamer: s}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n := 0
	if !r.drained {
		var ok bool
		n, ok = r.streamer.Stream(buf)
		if !ok {
			r.drained = true
		}
	}
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}

	for i, frame := range buf {
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame:], uint16(toInt16(frame[0])))
		binary.LittleEndian.PutUint16(p[i*bytesPerFrame+2:], uint16(toInt16(frame[1])))
	}
	return frames * bytesPerFrame, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
