package barline

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// provideBar renders a single bar: round(ratio*width) cells of the
// complete glyph, the glue, then resume glyphs up to width. The ratio
// itself is left unclamped elsewhere; only the repeat counts are guarded.
func (b *BarItem) provideBar(p *Progress, _ []*Progress) string {
	done := cells(p.Ratio(), b.width)
	return fill(b.completeChar, done) + b.glue + fill(b.resumeChar, b.width-done)
}

// provideBars renders one shared bar of width cells apportioned across all
// progresses: each claims a prefix proportional to its ratio, claims are
// drawn in ascending size order so a larger claim extends rather than
// overwrites a smaller one. A claim not exceeding the running maximum
// contributes no cells and is silently dropped.
func (b *BarItem) provideBars(_ *Progress, all []*Progress) string {
	type claim struct {
		p    *Progress
		size int
	}
	claims := make([]claim, len(all))
	for i, p := range all {
		claims[i] = claim{p, cells(p.Ratio(), b.width)}
	}
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].size < claims[j].size
	})

	var segments []string
	prev := 0
	for _, c := range claims {
		length := c.size - prev
		if length <= 0 {
			continue
		}
		segment := fill(b.completeChar, length)
		if f := b.segmentFormatter(c.p); f != nil {
			segment = f(segment, c.p, all)
		}
		segments = append(segments, segment)
		prev = c.size
	}
	if rest := b.width - prev; rest > 0 {
		segments = append(segments, fill(b.resumeChar, rest))
	}
	return strings.Join(segments, b.glue)
}

// segmentFormatter picks the formatter for a combined bar segment: the
// progress's own "tag_bar" entry, falling back to the generic "bar" one.
func (b *BarItem) segmentFormatter(p *Progress) Formatter {
	if tag := p.Tag(); tag != "" {
		if f, ok := b.formatters[tag+b.tagDelimiter+"bar"]; ok {
			return f
		}
	}
	if f, ok := b.formatters["bar"]; ok {
		return f
	}
	return nil
}

func providePercentage(p *Progress, _ []*Progress) string {
	return formatFloat(math.Round(p.Ratio()*100)) + "%"
}

func provideEta(p *Progress, _ []*Progress) string {
	return formatFloat(math.Round(p.Eta().Remaining()))
}

func (b *BarItem) provideSpeed(p *Progress, _ []*Progress) string {
	speed := p.Eta().Speed()
	if b.units != UnitsNone {
		return formatUnits(speed, b.units) + "/s"
	}
	return formatFloat(math.Round(speed))
}

func provideDuration(p *Progress, _ []*Progress) string {
	return strconv.FormatInt(p.Eta().Elapsed().Milliseconds(), 10)
}

func (b *BarItem) provideValue(p *Progress, _ []*Progress) string {
	return b.formatAmount(p.Value())
}

func (b *BarItem) provideTotal(p *Progress, _ []*Progress) string {
	return b.formatAmount(p.Total())
}

func (b *BarItem) formatAmount(v float64) string {
	if b.units != UnitsNone {
		return formatUnits(v, b.units)
	}
	return formatFloat(v)
}

// formatFloat renders with the minimal digits required, so integral
// values carry no decimal point. NaN and Inf render as their literals.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// cells converts a ratio into a whole number of display cells. Repeating
// a glyph a negative number of times panics, and an unclamped ratio can
// drive the count past width or to NaN, so both ends are guarded here.
func cells(ratio float64, width int) int {
	n := math.Round(ratio * float64(width))
	switch {
	case math.IsNaN(n), n < 0:
		return 0
	case n > float64(width):
		return width
	default:
		return int(n)
	}
}

// fill repeats glyph until the given number of display cells is covered,
// padding with spaces when the glyph width does not divide evenly.
func fill(glyph string, cells int) string {
	if cells <= 0 {
		return ""
	}
	w := runewidth.StringWidth(glyph)
	if w <= 0 {
		return strings.Repeat(" ", cells)
	}
	return strings.Repeat(glyph, cells/w) + strings.Repeat(" ", cells%w)
}

// SpinnerProvider returns a data provider cycling through the given frames,
// one frame per render. With no frames a braille spinner is used. Register
// it under any placeholder name via WithDataProvider.
func SpinnerProvider(frames ...string) DataProvider {
	if len(frames) == 0 {
		frames = defaultSpinnerStyle
	}
	var count uint
	return func(_ *Progress, _ []*Progress) string {
		frame := frames[count%uint(len(frames))]
		count++
		return frame
	}
}

var defaultSpinnerStyle = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
