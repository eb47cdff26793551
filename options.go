package barline

import (
	"io"
	"os"
	"time"
)

type containerConf struct {
	out io.Writer
	rr  time.Duration
}

func defaultContainerConf() containerConf {
	return containerConf{
		out: os.Stdout,
		rr:  brr,
	}
}

// ContainerOption is a function option which changes the default behavior
// of a Bar, if passed to New.
type ContainerOption func(*containerConf)

// WithOutput overrides the default output os.Stdout. In-place frame
// replacement only happens when the writer is a terminal.
func WithOutput(w io.Writer) ContainerOption {
	return func(c *containerConf) {
		if w != nil {
			c.out = w
		}
	}
}

// WithRefreshRate overrides the default 120ms redraw interval of Start.
func WithRefreshRate(d time.Duration) ContainerOption {
	return func(c *containerConf) {
		if d > 0 {
			c.rr = d
		}
	}
}
