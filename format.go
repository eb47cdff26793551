package barline

import "fmt"

const (
	_   = iota
	kib = 1 << (iota * 10)
	mib
	gib
	tib
)

const (
	kb = 1000
	mb = kb * 1000
	gb = mb * 1000
	tb = gb * 1000
)

// Units selects how value, total and speed placeholders are rendered.
type Units uint

const (
	// UnitsNone renders plain numbers.
	UnitsNone Units = iota
	// UnitKiB renders binary byte units, 1 KiB = 1024 b.
	UnitKiB
	// UnitKB renders decimal byte units, 1 KB = 1000 b.
	UnitKB
)

func formatUnits(v float64, u Units) string {
	switch u {
	case UnitKiB:
		return formatKiB(v)
	case UnitKB:
		return formatKB(v)
	default:
		return formatFloat(v)
	}
}

func formatKiB(v float64) (result string) {
	switch {
	case v >= tib:
		result = fmt.Sprintf("%.1fTiB", v/tib)
	case v >= gib:
		result = fmt.Sprintf("%.1fGiB", v/gib)
	case v >= mib:
		result = fmt.Sprintf("%.1fMiB", v/mib)
	case v >= kib:
		result = fmt.Sprintf("%.1fKiB", v/kib)
	default:
		result = formatFloat(v) + "b"
	}
	return
}

func formatKB(v float64) (result string) {
	switch {
	case v >= tb:
		result = fmt.Sprintf("%.1fTB", v/tb)
	case v >= gb:
		result = fmt.Sprintf("%.1fGB", v/gb)
	case v >= mb:
		result = fmt.Sprintf("%.1fMB", v/mb)
	case v >= kb:
		result = fmt.Sprintf("%.1fKB", v/kb)
	default:
		result = formatFloat(v) + "b"
	}
	return
}
