package taplog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const (
	dumpMaxDepth = 4
	dumpMaxBytes = 2000
)

// spewConfig bounds recursion so cyclic or very deep values stay cheap to
// render.
var spewConfig = spew.ConfigState{
	Indent:   " ",
	MaxDepth: dumpMaxDepth,
	SortKeys: true,
}

var foldSpace = regexp.MustCompile(`\n\s*`)

// DefaultDumper renders a value as a single-line, human-readable string.
// The output is not round-trippable: depth is capped, byte length is capped
// with a trailing ellipsis, and a panic while rendering degrades to an
// "<exception ...>" placeholder instead of propagating.
func DefaultDumper(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("<exception %v>", r)
		}
	}()
	s := strings.TrimRight(spewConfig.Sdump(v), "\n")
	s = foldSpace.ReplaceAllString(s, " ")
	if len(s) > dumpMaxBytes {
		s = s[:dumpMaxBytes] + "..."
	}
	return s
}
