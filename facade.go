package taplog

import "sync"

// instances memoizes one logger per category, the way front-end facades
// cache adapter instances for the life of the process.
var instances sync.Map // category -> *Logger

// Get returns the logger for a category, building one with default
// configuration on first use. Loggers built here resolve their filter from
// the process-wide store at that moment; later store changes require a
// fresh instance via Builder.
func Get(category string) *Logger {
	if v, ok := instances.Load(category); ok {
		return v.(*Logger)
	}
	// cannot fail without an explicit filter spec
	l, _ := NewBuilder().WithCategory(category).Build()
	v, _ := instances.LoadOrStore(category, l)
	return v.(*Logger)
}

// Package-level helpers on the default-category logger.

func Trace(args ...any) error     { return Default().Trace(args...) }
func Debug(args ...any) error     { return Default().Debug(args...) }
func Info(args ...any) error      { return Default().Info(args...) }
func Notice(args ...any) error    { return Default().Notice(args...) }
func Warning(args ...any) error   { return Default().Warning(args...) }
func Error(args ...any) error     { return Default().Error(args...) }
func Critical(args ...any) error  { return Default().Critical(args...) }
func Alert(args ...any) error     { return Default().Alert(args...) }
func Emergency(args ...any) error { return Default().Emergency(args...) }
func Fatal(args ...any) error     { return Default().Fatal(args...) }

func Tracef(format string, args ...any) error     { return Default().Tracef(format, args...) }
func Debugf(format string, args ...any) error     { return Default().Debugf(format, args...) }
func Infof(format string, args ...any) error      { return Default().Infof(format, args...) }
func Noticef(format string, args ...any) error    { return Default().Noticef(format, args...) }
func Warningf(format string, args ...any) error   { return Default().Warningf(format, args...) }
func Errorf(format string, args ...any) error     { return Default().Errorf(format, args...) }
func Criticalf(format string, args ...any) error  { return Default().Criticalf(format, args...) }
func Alertf(format string, args ...any) error     { return Default().Alertf(format, args...) }
func Emergencyf(format string, args ...any) error { return Default().Emergencyf(format, args...) }
func Fatalf(format string, args ...any) error     { return Default().Fatalf(format, args...) }
