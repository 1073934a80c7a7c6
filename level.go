package taplog

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Level is a severity rank. Higher means more important. Ranks are internal
// to taplog; filter thresholds and variant tables index by them.
type Level int

const (
	LevelTrace Level = iota + 1
	LevelDebug
	LevelInfo
	LevelNotice
	LevelWarning
	LevelError
	LevelCritical
	LevelAlert
	LevelEmergency
	LevelFatal

	// LevelNone sits below every real rank; as a threshold it suppresses
	// nothing.
	LevelNone = LevelTrace - 1
)

// levelNames holds the canonical display name per rank.
var levelNames = [LevelFatal + 1]string{
	LevelNone:      "none",
	LevelTrace:     "trace",
	LevelDebug:     "debug",
	LevelInfo:      "info",
	LevelNotice:    "notice",
	LevelWarning:   "warning",
	LevelError:     "error",
	LevelCritical:  "critical",
	LevelAlert:     "alert",
	LevelEmergency: "emergency",
	LevelFatal:     "fatal",
}

func (l Level) String() string {
	if l >= LevelNone && l <= LevelFatal {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// levelRanks is taplog's fixed knowledge of level names. Core names supplied
// via SetLevels that are missing here get a fallback rank instead of an
// error.
var levelRanks = map[string]Level{
	"trace":     LevelTrace,
	"debug":     LevelDebug,
	"info":      LevelInfo,
	"notice":    LevelNotice,
	"warning":   LevelWarning,
	"error":     LevelError,
	"critical":  LevelCritical,
	"alert":     LevelAlert,
	"emergency": LevelEmergency,
	"fatal":     LevelFatal,
}

// coreLevelNames is the default ordered core list, least to most severe.
// Fatal is an independent level, not an alias of critical, and outranks it.
var coreLevelNames = []string{
	"trace", "debug", "info", "notice", "warning",
	"error", "critical", "alert", "emergency", "fatal",
}

var defaultAliases = map[string]string{
	"inform": "info",
	"warn":   "warning",
	"err":    "error",
	"crit":   "critical",
}

// registry maps level names and aliases to ranks. It is replaced wholesale
// (copy on write) and never mutated in place, so readers need no lock.
type registry struct {
	values  map[string]Level
	aliases map[string]string
	minimum Level
	maximum Level
}

var (
	regMu sync.Mutex
	reg   atomic.Pointer[registry]
)

func currentRegistry() *registry {
	if r := reg.Load(); r != nil {
		return r
	}
	regMu.Lock()
	defer regMu.Unlock()
	if r := reg.Load(); r != nil {
		return r
	}
	r := buildRegistry(coreLevelNames, defaultAliases)
	reg.Store(r)
	return r
}

// SetLevels replaces the registry with one built from the supplied core name
// list (ordered least to most severe) and alias table. Names without a known
// rank inherit the previous name's rank and emit a one-shot diagnostic; they
// never fail. Call before constructing loggers; the registry is read-only
// once instances exist.
func SetLevels(names []string, aliases map[string]string) {
	regMu.Lock()
	defer regMu.Unlock()
	reg.Store(buildRegistry(names, aliases))
}

func buildRegistry(names []string, aliases map[string]string) *registry {
	r := &registry{
		values:  make(map[string]Level, len(names)),
		aliases: make(map[string]string, len(aliases)),
		minimum: LevelFatal,
		maximum: LevelTrace,
	}
	prev := LevelInfo
	for _, name := range names {
		if name == "min" || name == "max" {
			// reserved names never become real levels
			continue
		}
		rank, ok := levelRanks[name]
		if !ok {
			rank = prev
			diagnoseUnknownLevel(name, rank)
		}
		r.values[name] = rank
		prev = rank
		if rank < r.minimum {
			r.minimum = rank
		}
		if rank > r.maximum {
			r.maximum = rank
		}
	}
	if len(r.values) == 0 {
		r.minimum, r.maximum = LevelTrace, LevelFatal
	}
	// Aliases are copied as-is and resolved lazily at lookup time, so the
	// declaration order of aliases versus their targets never matters.
	for alias, target := range aliases {
		r.aliases[alias] = target
	}
	return r
}

// levelValue resolves a level name or alias to its rank. The reserved names
// "min" and "max" yield the true minimum and maximum registered ranks.
func levelValue(name string) (Level, error) {
	r := currentRegistry()
	switch name {
	case "min":
		return r.minimum, nil
	case "max":
		return r.maximum, nil
	}
	if v, ok := r.values[name]; ok {
		return v, nil
	}
	if target, ok := r.aliases[name]; ok {
		if v, ok := r.values[target]; ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// resolveCallName maps a caller-supplied level name to a rank and a display
// name. Aliases display their canonical target; names the registry has never
// seen are registered at a fixed mid-range rank (info) and keep their own
// name. Registration is deterministic and diagnosed once per name.
func resolveCallName(name string) (Level, string) {
	r := currentRegistry()
	if v, ok := r.values[name]; ok {
		return v, name
	}
	if target, ok := r.aliases[name]; ok {
		if v, ok := r.values[target]; ok {
			return v, target
		}
	}
	switch name {
	case "min":
		return r.minimum, levelNames[r.minimum]
	case "max":
		return r.maximum, levelNames[r.maximum]
	}
	return registerFallback(name), name
}

// registerFallback records an unknown level name at the mid-range info rank
// so repeated use stays deterministic within the process.
func registerFallback(name string) Level {
	regMu.Lock()
	defer regMu.Unlock()
	cur := reg.Load()
	if cur == nil {
		cur = buildRegistry(coreLevelNames, defaultAliases)
		reg.Store(cur)
	}
	if v, ok := cur.values[name]; ok {
		return v
	}
	next := &registry{
		values:  make(map[string]Level, len(cur.values)+1),
		aliases: cur.aliases,
		minimum: cur.minimum,
		maximum: cur.maximum,
	}
	for k, v := range cur.values {
		next.values[k] = v
	}
	next.values[name] = LevelInfo
	reg.Store(next)
	diagnoseUnknownLevel(name, LevelInfo)
	return LevelInfo
}

var (
	diagMu   sync.Mutex
	diagSeen map[string]bool
)

// diagnoseUnknownLevel emits a one-shot warning line on the diagnostic
// stream for a level name taplog has no rank for.
func diagnoseUnknownLevel(name string, rank Level) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if diagSeen[name] {
		return
	}
	if diagSeen == nil {
		diagSeen = make(map[string]bool)
	}
	diagSeen[name] = true
	s := currentSettings()
	fmt.Fprintf(s.Diag, "# warning: taplog has no rank for level %q, treating it as %q\n", name, rank.String())
}
