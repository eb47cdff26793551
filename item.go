package barline

import (
	"regexp"
	"strings"
)

const (
	defaultTagDelimiter = "_"
	defaultCompleteChar = "="
	defaultResumeChar   = "-"
	defaultWidth        = 40
)

// DataProvider computes the raw value of a placeholder from the progress
// the placeholder resolved to and the full progress list of the item.
type DataProvider func(p *Progress, all []*Progress) string

// Formatter post-processes a resolved placeholder value into final display
// text. Formatters are keyed by the full bracket key, tag prefix included,
// e.g. "worker1_bar".
type Formatter func(value string, p *Progress, all []*Progress) string

var placeholder = regexp.MustCompile(`\{[^{}]+\}`)

// BarItem binds a template string to a list of Progress instances and
// substitutes {name} and {tag_name} placeholders on every Render call.
// The progress list is fixed at construction; the references are shared
// with the caller, not owned.
type BarItem struct {
	progresses   []*Progress
	template     string
	tagDelimiter string

	completeChar string
	resumeChar   string
	width        int
	glue         string
	units        Units

	formatters map[string]Formatter
	providers  map[string]DataProvider
}

// NewBarItem creates a BarItem referencing the given progresses. With no
// WithTemplate option a default template is synthesized: a single bar line
// for one progress, or per progress stat groups joined by "/" plus one
// shared combined bar for several.
func NewBarItem(progresses []*Progress, options ...ItemOption) *BarItem {
	b := &BarItem{
		progresses:   progresses,
		tagDelimiter: defaultTagDelimiter,
		completeChar: defaultCompleteChar,
		resumeChar:   defaultResumeChar,
		width:        defaultWidth,
		formatters:   make(map[string]Formatter),
	}
	b.providers = map[string]DataProvider{
		"bar":        b.provideBar,
		"bars":       b.provideBars,
		"percentage": providePercentage,
		"eta":        provideEta,
		"speed":      b.provideSpeed,
		"duration":   provideDuration,
		"value":      b.provideValue,
		"total":      b.provideTotal,
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	if b.template == "" {
		b.template = defaultTemplate(len(progresses))
	}
	return b
}

func defaultTemplate(n int) string {
	const group = "{percentage} ETA: {eta} speed: {speed} duration: {duration} {value}/{total}"
	if n <= 1 {
		return "[{bar}] " + group
	}
	groups := make([]string, n)
	for i := range groups {
		groups[i] = group
	}
	return "[{bars}] " + strings.Join(groups, "/")
}

// Render substitutes every {...} occurrence in the template, left to right.
// Unresolvable placeholders pass through verbatim, braces included: that is
// the not-found signal, not an error. Nothing is cached between calls, so
// consecutive renders reflect live progress state.
func (b *BarItem) Render() string {
	// untagged occurrences of a property bind positionally: the Nth
	// occurrence of {percentage} binds to progresses[N]
	counters := make(map[string]int)
	return placeholder.ReplaceAllStringFunc(b.template, func(match string) string {
		key := match[1 : len(match)-1]
		tag, prop := b.splitKey(key)
		idx := -1
		if tag != "" {
			for i, p := range b.progresses {
				if p.Tag() == tag {
					idx = i
					break
				}
			}
		} else {
			n := counters[prop]
			counters[prop] = n + 1
			if n < len(b.progresses) {
				idx = n
			}
		}
		if idx < 0 {
			return match
		}
		p := b.progresses[idx]
		value, ok := p.payloadValue(prop)
		if !ok {
			provider, ok := b.providers[prop]
			if !ok {
				return match
			}
			value = provider(p, b.progresses)
		}
		if f, ok := b.formatters[key]; ok {
			return f(value, p, b.progresses)
		}
		return value
	})
}

// splitKey splits a bracket key once on the tag delimiter from the right,
// so "worker1_bar" yields ("worker1", "bar") and "bar" yields ("", "bar").
func (b *BarItem) splitKey(key string) (tag, prop string) {
	if b.tagDelimiter == "" {
		return "", key
	}
	if i := strings.LastIndex(key, b.tagDelimiter); i >= 0 {
		return key[:i], key[i+len(b.tagDelimiter):]
	}
	return "", key
}
