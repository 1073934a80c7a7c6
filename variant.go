package taplog

import "sync"

type emitFunc func(l *Logger, args []any) error

type emitfFunc func(l *Logger, format string, args []any) error

// variant is one precomputed behavior table. Entries for levels at or below
// the threshold point at shared no-ops, so a suppressed call costs a single
// indirect call and no comparison. Enabled flags are constants per table.
type variant struct {
	threshold Level
	enabled   [LevelFatal + 1]bool
	emit      [LevelFatal + 1]emitFunc
	emitf     [LevelFatal + 1]emitfFunc
}

var (
	buildOnce  sync.Once
	variantTbl [LevelFatal - LevelTrace + 1]*variant
	unfiltered *variant
)

func nopEmit(*Logger, []any) error { return nil }

func nopEmitf(*Logger, string, []any) error { return nil }

// variantFor selects the table for a resolved threshold. Construction runs
// at most once per process and is safe under concurrent first use. A
// threshold below the minimum rank selects the unfiltered table directly.
func variantFor(threshold Level) *variant {
	buildOnce.Do(buildVariants)
	if threshold < LevelTrace {
		return unfiltered
	}
	if threshold > LevelFatal {
		threshold = LevelFatal
	}
	return variantTbl[threshold-LevelTrace]
}

func buildVariants() {
	unfiltered = newVariant(LevelNone)
	for t := LevelTrace; t <= LevelFatal; t++ {
		variantTbl[t-LevelTrace] = newVariant(t)
	}
}

func newVariant(threshold Level) *variant {
	v := &variant{threshold: threshold}
	for lv := LevelTrace; lv <= LevelFatal; lv++ {
		if lv <= threshold {
			v.emit[lv] = nopEmit
			v.emitf[lv] = nopEmitf
			continue
		}
		v.enabled[lv] = true
		v.emit[lv] = activeEmit(lv)
		v.emitf[lv] = activeEmitf(lv)
	}
	return v
}

func activeEmit(lv Level) emitFunc {
	name := levelNames[lv]
	return func(l *Logger, args []any) error {
		return l.call(lv, name, func() string { return l.concatArgs(args) })
	}
}

func activeEmitf(lv Level) emitfFunc {
	name := levelNames[lv]
	return func(l *Logger, format string, args []any) error {
		return l.call(lv, name, func() string { return l.formatArgs(format, args) })
	}
}
