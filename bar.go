package barline

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"

	"github.com/telsho/barline/cwriter"
)

// default refresh rate
const brr = 120 * time.Millisecond

// Renderer is the contract Bar requires from a managed item.
type Renderer interface {
	Render() string
}

// Bar renders an ordered collection of items to the terminal, each render
// pass overwriting the previous one in place. Items are appended with Add;
// rendering happens on demand via Render or on a tick via Start.
type Bar struct {
	mu    sync.Mutex
	items []Renderer
	cw    *cwriter.Writer
	rr    time.Duration
}

// New creates a Bar writing to os.Stdout unless overridden by WithOutput.
func New(options ...ContainerOption) *Bar {
	conf := defaultContainerConf()
	for _, opt := range options {
		if opt != nil {
			opt(&conf)
		}
	}
	return &Bar{
		cw: cwriter.New(conf.out),
		rr: conf.rr,
	}
}

// Add appends items to the render list.
func (b *Bar) Add(items ...Renderer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, items...)
}

// Render performs one render pass: every item's output is written line by
// line, then flushed, replacing the previous frame.
func (b *Bar) Render() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	lineCount := 0
	tw, _, err := b.cw.GetTermSize()
	if err != nil {
		tw = 0
	}
	for _, item := range b.items {
		for _, line := range strings.Split(item.Render(), "\n") {
			if _, err := fmt.Fprintln(b.cw, line); err != nil {
				return err
			}
			lineCount += wrappedLines(line, tw)
		}
	}
	return b.cw.Flush(lineCount)
}

// Start launches the redraw loop and returns its stop function. Stopping
// is idempotent and performs a final render so the last increments are
// never lost between ticks.
func (b *Bar) Start() (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(b.rr)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = b.Render()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			_ = b.Render()
		})
	}
}

// wrappedLines reports how many terminal rows a line occupies, so the next
// frame rewinds far enough. ANSI escape sequences occupy no cells.
func wrappedLines(line string, termWidth int) int {
	if termWidth <= 0 {
		return 1
	}
	w := runewidth.StringWidth(stripansi.Strip(line))
	if w <= termWidth {
		return 1
	}
	return (w + termWidth - 1) / termWidth
}
