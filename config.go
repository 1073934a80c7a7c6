package taplog

import (
	"io"
	"os"
	"sync/atomic"
)

// DumpFunc renders an arbitrary value as a single human-readable string.
type DumpFunc func(v any) string

// Settings are the process-wide dispatch options. The host resolves them
// from wherever it likes (flags, environment, test harness) and hands them
// over as plain values; taplog itself never reads the environment.
type Settings struct {
	// Out receives comment lines (severities below warning).
	// Defaults to os.Stdout.
	Out io.Writer
	// Diag receives diagnostic lines (warning and above).
	// Defaults to os.Stderr.
	Diag io.Writer

	// ShowCategory appends " (category)" to every message.
	ShowCategory bool
	// ShowSource appends " (file:line)" of the first frame outside taplog.
	ShowSource bool
	// FullPath keeps the full file path in source annotations instead of
	// the base name.
	FullPath bool

	// Banner makes the first logger built in the process emit one
	// info-level banner line, once ever.
	Banner bool

	// Dumper is the process default value dumper; nil means DefaultDumper.
	Dumper DumpFunc
}

var settings atomic.Pointer[Settings]

// Configure replaces the process-wide settings. Nil writers and dumper are
// filled with their defaults. Loggers pick the settings up on their next
// call; instances themselves stay immutable.
func Configure(s Settings) {
	settings.Store(normalizeSettings(s))
}

func normalizeSettings(s Settings) *Settings {
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Diag == nil {
		s.Diag = os.Stderr
	}
	if s.Dumper == nil {
		s.Dumper = DefaultDumper
	}
	return &s
}

func currentSettings() *Settings {
	for {
		if s := settings.Load(); s != nil {
			return s
		}
		settings.CompareAndSwap(nil, normalizeSettings(Settings{}))
	}
}
