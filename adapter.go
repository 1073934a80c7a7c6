package taplog

import (
	"io"
	"strconv"
	"strings"
)

// TAP line framing. Continuation lines stay under the comment marker so a
// multi-line message cannot break the surrounding test protocol.
const (
	commentMarker      = "# "
	continuationPrefix = "\n#   "
)

// writeMsg normalizes a fully-stringified message and writes it as exactly
// one TAP-safe line group: at most one trailing newline is stripped, the
// optional category and source annotations are appended, embedded newlines
// are re-indented under the comment marker, and the result goes to the
// comment stream below warning or the diagnostic stream at warning and
// above. That stream split is fixed policy, not configurable.
//
// Write failures are not trapped here; they surface to the caller.
func (l *Logger) writeMsg(lv Level, name, msg string) error {
	s := currentSettings()
	msg = strings.TrimSuffix(msg, "\n")
	if s.ShowCategory {
		msg += " (" + l.category + ")"
	}
	if s.ShowSource {
		if file, line, ok := callerOrigin(s.FullPath); ok {
			msg += " (" + file + ":" + strconv.Itoa(line) + ")"
		}
	}
	msg = strings.ReplaceAll(msg, "\n", continuationPrefix)

	var b strings.Builder
	b.Grow(len(commentMarker) + len(name) + 2 + len(msg) + 1)
	b.WriteString(commentMarker)
	if name != "info" {
		// info is the common case; showing its name would be noise
		b.WriteString(name)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	b.WriteByte('\n')

	w := s.Out
	if lv >= LevelWarning {
		w = s.Diag
	}
	_, err := io.WriteString(w, b.String())
	return err
}
