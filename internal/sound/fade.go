package sound

import "github.com/gopxl/beep"

// ramp is a linear fade from a starting gain down to silence over a length
// expressed in any unit (seconds or samples).
type ramp struct {
	active  bool
	from    float64
	length  float64
	elapsed float64
}

func (r *ramp) start(from, length float64) {
	*r = ramp{active: true, from: from, length: length}
}

// advance moves the ramp forward and returns the gain to apply and whether
// the fade has reached silence.
func (r *ramp) advance(step float64) (gain float64, done bool) {
	if !r.active {
		return r.from, false
	}
	r.elapsed += step
	if r.length <= 0 || r.elapsed >= r.length {
		return 0, true
	}
	return r.from * (1 - r.elapsed/r.length), false
}

// fader applies a gain to a streamer and can fade it out, after which it
// reports itself drained so a beep.Mixer drops it.
type fader struct {
	streamer beep.Streamer
	gain     float64
	ramp     ramp
	stopped  bool
}

func newFader(s beep.Streamer, gain float64) *fader {
	return &fader{streamer: s, gain: gain}
}

// fadeOut starts a fade lasting n samples. Callers hold the speaker lock.
func (f *fader) fadeOut(n int) {
	f.ramp.start(f.gain, float64(n))
}

// stop ends the stream at the next buffer. Callers hold the speaker lock.
func (f *fader) stop() {
	f.stopped = true
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	if f.stopped {
		return 0, false
	}
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.gain
		if f.ramp.active {
			var done bool
			g, done = f.ramp.advance(1)
			if done {
				f.stopped = true
				for j := i; j < n; j++ {
					samples[j] = [2]float64{}
				}
				return n, true
			}
		}
		samples[i][0] *= g
		samples[i][1] *= g
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
