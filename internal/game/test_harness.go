package game

// TestSim is a headless session harness used by tests and the headless
// report. It has no display or audio device: cues go to a CueRecorder and
// events to a SimLog.
type TestSim struct {
	Session   *Session
	SimLog    *SimLog
	Audio     *CueRecorder
	Autopilot bool

	seed    int64
	verbose bool
}

// SimOption is a builder function applied to a TestSim during construction.
type SimOption func(*TestSim)

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return func(ts *TestSim) { ts.seed = seed }
}

// WithVerbose enables verbose log entries.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) { ts.verbose = v }
}

// WithAutopilot drives every tick from the Autopilot instead of idle input.
func WithAutopilot() SimOption {
	return func(ts *TestSim) { ts.Autopilot = true }
}

// NewTestSim builds a harness whose session sits on the menu.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{seed: 1, Audio: &CueRecorder{}}
	for _, o := range opts {
		o(ts)
	}
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Session = NewSession(
		WithSeed(ts.seed),
		WithAudio(ts.Audio),
		WithSimLog(ts.SimLog),
	)
	return ts
}

// World is a shortcut to the session's entity model.
func (ts *TestSim) World() *World { return ts.Session.World }

// Start presses the primary input on the menu, beginning a round.
func (ts *TestSim) Start() {
	ts.Step(Input{PointerX: ts.World().Player.X}.Press(EventPrimary))
}

// Step runs a single tick with the given input.
func (ts *TestSim) Step(in Input) error {
	return ts.Session.Update(in)
}

// nextInput is the autopilot's choice, or a pointer resting on the ship.
func (ts *TestSim) nextInput() Input {
	if ts.Autopilot {
		return Autopilot{}.Input(ts.Session)
	}
	return Input{PointerX: ts.World().Player.X}
}

// RunTicks advances the session n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		_ = ts.Step(ts.nextInput())
	}
}

// RunUntil advances the session up to maxTicks, stopping early if predicate
// returns true. Returns the session tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		_ = ts.Step(ts.nextInput())
		if predicate(ts) {
			return ts.Session.Tick()
		}
	}
	return -1
}

// RoundOver is a RunUntil predicate for reaching WIN or LOSE.
func RoundOver(ts *TestSim) bool {
	return ts.Session.Phase().Terminal()
}
