package barline

import (
	"sync"
	"time"

	"github.com/VividCortex/ewma"
)

// Progress tracks a single unit of work: a mutable value advancing towards
// a total which is fixed at construction. A Progress may be referenced by
// any number of BarItems; it is safe for concurrent use.
type Progress struct {
	mu      sync.Mutex
	value   float64
	total   float64
	tag     string
	payload map[string]string

	startValue float64
	startTime  time.Time
	lastSample time.Time

	// nanoseconds per unit, only set via WithSpeedAverage
	mAverage ewma.MovingAverage

	clock func() time.Time
}

// ProgressOption is a function option which changes the default behavior
// of a Progress, if passed to NewProgress.
type ProgressOption func(*Progress)

// WithTag assigns an identifier distinguishing this progress among several
// referenced by one BarItem, for {tag_name} placeholder targeting.
// Tags are expected to be unique within one item's progress list.
func WithTag(tag string) ProgressOption {
	return func(p *Progress) {
		p.tag = tag
	}
}

// WithPayload provides user supplied override values. A payload entry
// shadows the data provider of the same name during template resolution.
func WithPayload(payload map[string]string) ProgressOption {
	return func(p *Progress) {
		p.payload = payload
	}
}

// WithSpeedAverage enables exponential weighted moving average speed
// instead of the lifetime average. The age is the previous N samples to
// average over, zero value defaults to ewma.AVG_METRIC_AGE.
func WithSpeedAverage(age float64) ProgressOption {
	return func(p *Progress) {
		if age == 0 {
			age = ewma.AVG_METRIC_AGE
		}
		p.mAverage = ewma.NewMovingAverage(age)
	}
}

// NewProgress creates a Progress with the given total. The total is not
// validated: a zero or negative total propagates NaN/Inf into rendered
// output rather than failing, as this is a display only value.
func NewProgress(total float64, options ...ProgressOption) *Progress {
	p := &Progress{
		total: total,
		clock: time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	p.startTime = p.clock()
	return p
}

// Increment adds amount to the current value and records a sample for
// speed calculation. There is no upper clamp: overshoot past total is
// permitted and shows up as a ratio above 1.
func (p *Progress) Increment(amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.clock()
	if p.mAverage != nil && amount > 0 {
		since := p.lastSample
		if since.IsZero() {
			since = p.startTime
		}
		p.mAverage.Add(float64(now.Sub(since)) / amount)
	}
	p.value += amount
	p.lastSample = now
}

// Ratio returns value/total, unclamped. Degenerate input follows IEEE
// semantics: zero total yields NaN or Inf which propagates downstream.
func (p *Progress) Ratio() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value / p.total
}

// Value returns the current value.
func (p *Progress) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Total returns the target total.
func (p *Progress) Total() float64 {
	return p.total
}

// Tag returns the identifier assigned via WithTag, empty if none.
func (p *Progress) Tag() string {
	return p.tag
}

// Payload returns the user supplied override map, nil if none.
func (p *Progress) Payload() map[string]string {
	return p.payload
}

func (p *Progress) payloadValue(key string) (string, bool) {
	if p.payload == nil {
		return "", false
	}
	v, ok := p.payload[key]
	return v, ok
}

// Eta returns a point in time view over this progress's samples, from
// which speed and estimated time remaining derive.
func (p *Progress) Eta() Eta {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := Eta{
		value:      p.value,
		total:      p.total,
		startValue: p.startValue,
		elapsed:    p.clock().Sub(p.startTime),
	}
	if p.mAverage != nil {
		if nsPerUnit := p.mAverage.Value(); nsPerUnit > 0 {
			e.smoothed = float64(time.Second) / nsPerUnit
		}
	}
	return e
}
