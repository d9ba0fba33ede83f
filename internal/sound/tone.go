package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone is a sine sweep with an exponential fade.
type Tone struct {
	From     float64 // Hz at the start
	To       float64 // Hz at the end
	Duration time.Duration
	Gain     float64
	Decay    float64 // per second
}

var (
	eatTone      = Tone{From: 880, To: 1320, Duration: 90 * time.Millisecond, Gain: 0.35, Decay: 12}
	gameOverTone = Tone{From: 440, To: 110, Duration: 600 * time.Millisecond, Gain: 0.45, Decay: 3}
)

// Streamer renders the tone at the given rate. The result is finite and
// not seekable; wrap it in a beep.Buffer to replay it.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.Duration)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			frac := float64(pos) / float64(total)
			freq := t.From + (t.To-t.From)*frac
			phase += 2 * math.Pi * freq / float64(sr)
			secs := float64(pos) / float64(sr)
			v := math.Sin(phase) * t.Gain * math.Exp(-t.Decay*secs)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
