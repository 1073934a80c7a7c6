package taplog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrUnknownLevel reports a filter spec or level name that does not resolve
// against the registry. Configuration APIs surface it synchronously and
// never store a partial result.
var ErrUnknownLevel = errors.New("taplog: unknown level")

var offsetSpec = regexp.MustCompile(`^([A-Za-z]+)([+-][0-9]+)$`)

// ParseFilter resolves a filter spec string to a suppression threshold.
// Levels ranked at or below the threshold are suppressed.
//
//	""/"none"    nothing is suppressed
//	"all"        everything is suppressed
//	"<name>"     the named level stays enabled, everything below it is cut
//	"<name>±N"   exact rank offset, clamped to the registered [min, max];
//	             "+" suppresses more, "-" less (inverse of syslog numbering)
//
// Parsing is side-effect free: it either yields a threshold or fails.
func ParseFilter(spec string) (Level, error) {
	switch spec {
	case "", "none":
		return LevelNone, nil
	case "all":
		r := currentRegistry()
		return r.maximum, nil
	}
	if v, err := levelValue(spec); err == nil {
		return v - 1, nil
	}
	if m := offsetSpec.FindStringSubmatch(spec); m != nil {
		if v, err := levelValue(m[1]); err == nil {
			n, err := strconv.Atoi(m[2])
			if err == nil {
				return clampThreshold(v + Level(n)), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: invalid filter spec %q", ErrUnknownLevel, spec)
}

func clampThreshold(v Level) Level {
	r := currentRegistry()
	if v < r.minimum {
		return r.minimum
	}
	if v > r.maximum {
		return r.maximum
	}
	return v
}
