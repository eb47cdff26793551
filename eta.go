package barline

import "time"

// Eta is a snapshot of a Progress's rate of change, computed from the
// construction time sample and the sample taken when Progress.Eta was
// called. Purely arithmetic: degenerate input (zero elapsed time, zero
// speed) yields NaN/Inf output instead of an error.
type Eta struct {
	value      float64
	total      float64
	startValue float64
	elapsed    time.Duration

	// units per second, >0 only when WithSpeedAverage is configured
	smoothed float64
}

// Speed returns units per second. Callers round for display.
func (e Eta) Speed() float64 {
	if e.smoothed > 0 {
		return e.smoothed
	}
	return (e.value - e.startValue) / e.elapsed.Seconds()
}

// Remaining returns the estimated seconds until value reaches total.
// Zero or negative speed is not special cased.
func (e Eta) Remaining() float64 {
	return (e.total - e.value) / e.Speed()
}

// Elapsed returns the time since the Progress was constructed.
func (e Eta) Elapsed() time.Duration {
	return e.elapsed
}
