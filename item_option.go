package barline

// ItemOption is a function option which changes the default behavior of a
// BarItem, if passed to NewBarItem.
type ItemOption func(*BarItem)

// WithTemplate overrides the synthesized default template.
func WithTemplate(template string) ItemOption {
	return func(b *BarItem) {
		b.template = template
	}
}

// WithTagDelimiter overrides the default "_" separator between a tag
// prefix and a property name in placeholders like {worker1_bar}.
func WithTagDelimiter(delimiter string) ItemOption {
	return func(b *BarItem) {
		b.tagDelimiter = delimiter
	}
}

// WithFill overrides the default "=" complete and "-" resume glyphs.
// Glyphs wider than one cell fill by display width.
func WithFill(complete, resume string) ItemOption {
	return func(b *BarItem) {
		if complete != "" {
			b.completeChar = complete
		}
		if resume != "" {
			b.resumeChar = resume
		}
	}
}

// WithWidth overrides the default bar width of 40 character cells.
func WithWidth(w int) ItemOption {
	return func(b *BarItem) {
		if w > 0 {
			b.width = w
		}
	}
}

// WithGlue sets the string inserted between bar segments, default empty.
func WithGlue(glue string) ItemOption {
	return func(b *BarItem) {
		b.glue = glue
	}
}

// WithUnits switches value, total and speed rendering to human readable
// byte units, default plain numbers.
func WithUnits(u Units) ItemOption {
	return func(b *BarItem) {
		b.units = u
	}
}

// WithFormatter registers a formatter under the full bracket key, tag
// prefix included.
func WithFormatter(key string, f Formatter) ItemOption {
	return func(b *BarItem) {
		b.formatters[key] = f
	}
}

// WithFormatters registers a formatter per full bracket key.
func WithFormatters(formatters map[string]Formatter) ItemOption {
	return func(b *BarItem) {
		for key, f := range formatters {
			b.formatters[key] = f
		}
	}
}

// WithDataProvider registers a provider for a bare property name. Built-in
// providers of the same name are overridden.
func WithDataProvider(name string, f DataProvider) ItemOption {
	return func(b *BarItem) {
		b.providers[name] = f
	}
}

// WithDataProviders registers a provider per bare property name.
func WithDataProviders(providers map[string]DataProvider) ItemOption {
	return func(b *BarItem) {
		for name, f := range providers {
			b.providers[name] = f
		}
	}
}
