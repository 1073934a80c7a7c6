package taplog

import (
	"path/filepath"
	"runtime"
	"strings"
)

const selfPkgPrefix = "github.com/trickstertwo/taplog."

// callerOrigin walks the stack outward past taplog's own frames and reports
// the file and line of the first external frame. Without fullPath the file
// is reduced to its base name, the moral equivalent of stripping the
// library-root prefix from the reported location.
func callerOrigin(fullPath bool) (string, int, bool) {
	var pcs [24]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.File != "" && !strings.HasPrefix(f.Function, selfPkgPrefix) {
			file := f.File
			if !fullPath {
				file = filepath.Base(file)
			}
			return file, f.Line, true
		}
		if !more {
			return "", 0, false
		}
	}
}
