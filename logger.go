package taplog

import "fmt"

// Logger is one immutable adapter instance: a category, an effective
// suppression threshold resolved once at construction, and the matching
// precomputed variant table. Changing filtering means building a new
// instance; existing ones never re-filter. Safe for concurrent use.
type Logger struct {
	category  string
	filter    string
	explicit  bool
	dumper    DumpFunc
	threshold Level
	variant   *variant
}

// Category returns the category this instance was bound to.
func (l *Logger) Category() string { return l.category }

// Threshold returns the suppression threshold resolved at construction.
func (l *Logger) Threshold() Level { return l.threshold }

// FilterSpec returns the explicit filter override, if one was set.
func (l *Logger) FilterSpec() (string, bool) { return l.filter, l.explicit }

// call formats and dispatches one message. Calls below info trap every
// failure, including panics out of a custom dumper, and demote the failure
// text to a warning through this same instance: exploratory logging must
// never crash the host. Info and above propagate normally.
func (l *Logger) call(lv Level, name string, build func() string) error {
	if lv >= LevelInfo {
		return l.writeMsg(lv, name, build())
	}
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return l.writeMsg(lv, name, build())
	}()
	if err != nil {
		l.Warning("trapped failure in " + name + " call: " + err.Error())
	}
	return nil
}

// Plain, formatted and is-enabled methods per level. Suppressed levels hit
// a no-op table entry; enabled flags are precomputed constants.

func (l *Logger) Trace(args ...any) error { return l.variant.emit[LevelTrace](l, args) }
func (l *Logger) Tracef(format string, args ...any) error {
	return l.variant.emitf[LevelTrace](l, format, args)
}
func (l *Logger) IsTrace() bool { return l.variant.enabled[LevelTrace] }

func (l *Logger) Debug(args ...any) error { return l.variant.emit[LevelDebug](l, args) }
func (l *Logger) Debugf(format string, args ...any) error {
	return l.variant.emitf[LevelDebug](l, format, args)
}
func (l *Logger) IsDebug() bool { return l.variant.enabled[LevelDebug] }

func (l *Logger) Info(args ...any) error { return l.variant.emit[LevelInfo](l, args) }
func (l *Logger) Infof(format string, args ...any) error {
	return l.variant.emitf[LevelInfo](l, format, args)
}
func (l *Logger) IsInfo() bool { return l.variant.enabled[LevelInfo] }

func (l *Logger) Notice(args ...any) error { return l.variant.emit[LevelNotice](l, args) }
func (l *Logger) Noticef(format string, args ...any) error {
	return l.variant.emitf[LevelNotice](l, format, args)
}
func (l *Logger) IsNotice() bool { return l.variant.enabled[LevelNotice] }

func (l *Logger) Warning(args ...any) error { return l.variant.emit[LevelWarning](l, args) }
func (l *Logger) Warningf(format string, args ...any) error {
	return l.variant.emitf[LevelWarning](l, format, args)
}
func (l *Logger) IsWarning() bool { return l.variant.enabled[LevelWarning] }

func (l *Logger) Error(args ...any) error { return l.variant.emit[LevelError](l, args) }
func (l *Logger) Errorf(format string, args ...any) error {
	return l.variant.emitf[LevelError](l, format, args)
}
func (l *Logger) IsError() bool { return l.variant.enabled[LevelError] }

func (l *Logger) Critical(args ...any) error { return l.variant.emit[LevelCritical](l, args) }
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.variant.emitf[LevelCritical](l, format, args)
}
func (l *Logger) IsCritical() bool { return l.variant.enabled[LevelCritical] }

func (l *Logger) Alert(args ...any) error { return l.variant.emit[LevelAlert](l, args) }
func (l *Logger) Alertf(format string, args ...any) error {
	return l.variant.emitf[LevelAlert](l, format, args)
}
func (l *Logger) IsAlert() bool { return l.variant.enabled[LevelAlert] }

func (l *Logger) Emergency(args ...any) error { return l.variant.emit[LevelEmergency](l, args) }
func (l *Logger) Emergencyf(format string, args ...any) error {
	return l.variant.emitf[LevelEmergency](l, format, args)
}
func (l *Logger) IsEmergency() bool { return l.variant.enabled[LevelEmergency] }

func (l *Logger) Fatal(args ...any) error { return l.variant.emit[LevelFatal](l, args) }
func (l *Logger) Fatalf(format string, args ...any) error {
	return l.variant.emitf[LevelFatal](l, format, args)
}
func (l *Logger) IsFatal() bool { return l.variant.enabled[LevelFatal] }

// Log dispatches at a level given by name, for callers driven by a generic
// front end rather than the typed methods. Aliases resolve to their
// canonical level; a name the registry has never seen is recovered locally
// with a fallback rank and a one-shot diagnostic, never an error.
func (l *Logger) Log(levelName string, args ...any) error {
	lv, name := resolveCallName(levelName)
	if !l.variant.enabled[lv] {
		return nil
	}
	return l.call(lv, name, func() string { return l.concatArgs(args) })
}

// Logf is the format-template counterpart of Log.
func (l *Logger) Logf(levelName, format string, args ...any) error {
	lv, name := resolveCallName(levelName)
	if !l.variant.enabled[lv] {
		return nil
	}
	return l.call(lv, name, func() string { return l.formatArgs(format, args) })
}

// IsEnabled reports whether the named level would be emitted by this
// instance.
func (l *Logger) IsEnabled(levelName string) bool {
	lv, _ := resolveCallName(levelName)
	return l.variant.enabled[lv]
}
