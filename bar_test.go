package barline

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type staticRenderer string

func (r staticRenderer) Render() string { return string(r) }

func TestBarRender(t *testing.T) {
	var buf bytes.Buffer
	b := New(WithOutput(&buf))
	b.Add(staticRenderer("hello"))

	require.NoError(t, b.Render())
	require.Equal(t, "hello\n", buf.String())

	// the second frame rewinds over the first
	require.NoError(t, b.Render())
	require.Equal(t, "hello\n\x1b[1A\x1b[Jhello\n", buf.String())
}

func TestBarRenderMultipleItems(t *testing.T) {
	now := time.Unix(1000, 0)
	p := newTestProgress(1000, &now)
	p.Increment(300)

	var buf bytes.Buffer
	b := New(WithOutput(&buf))
	b.Add(
		NewBarItem([]*Progress{p}, WithTemplate("{value}/{total}")),
		staticRenderer("two\nlines"),
	)

	require.NoError(t, b.Render())
	require.Equal(t, "300/1000\ntwo\nlines\n", buf.String())
}

func TestBarRenderReflectsIncrements(t *testing.T) {
	now := time.Unix(1000, 0)
	p := newTestProgress(1000, &now)

	var buf bytes.Buffer
	b := New(WithOutput(&buf))
	b.Add(NewBarItem([]*Progress{p}, WithTemplate("{value}")))

	require.NoError(t, b.Render())
	p.Increment(300)
	require.NoError(t, b.Render())

	frames := strings.Split(buf.String(), "\x1b[1A\x1b[J")
	require.Equal(t, []string{"0\n", "300\n"}, frames)
}

func TestBarStartStopFinalRender(t *testing.T) {
	now := time.Unix(1000, 0)
	p := newTestProgress(1000, &now)

	var buf bytes.Buffer
	// refresh far in the future: only the final render on stop may fire
	b := New(WithOutput(&buf), WithRefreshRate(time.Hour))
	b.Add(NewBarItem([]*Progress{p}, WithTemplate("{value}")))

	stop := b.Start()
	p.Increment(420)
	stop()
	stop() // idempotent

	require.Equal(t, "420\n", buf.String())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBarStartTicks(t *testing.T) {
	now := time.Unix(1000, 0)
	p := newTestProgress(1000, &now)
	p.Increment(300)

	buf := new(syncBuffer)
	b := New(WithOutput(buf), WithRefreshRate(5*time.Millisecond))
	b.Add(NewBarItem([]*Progress{p}, WithTemplate("{value}")))

	stop := b.Start()
	defer stop()

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "300\n")
	}, time.Second, 5*time.Millisecond)
}

func TestWrappedLines(t *testing.T) {
	cases := map[string]struct {
		line      string
		termWidth int
		want      int
	}{
		"fits":             {"hello", 80, 1},
		"exact":            {strings.Repeat("x", 80), 80, 1},
		"wraps once":       {strings.Repeat("x", 81), 80, 2},
		"wraps twice":      {strings.Repeat("x", 161), 80, 3},
		"unknown width":    {strings.Repeat("x", 500), 0, 1},
		"ansi takes no cells": {
			"\x1b[31m" + strings.Repeat("x", 80) + "\x1b[0m", 80, 1,
		},
		"wide runes count double": {strings.Repeat("漢", 41), 80, 2},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := wrappedLines(tc.line, tc.termWidth); got != tc.want {
				t.Errorf("want %d, got %d", tc.want, got)
			}
		})
	}
}
