package taplog

import (
	"fmt"
	"reflect"
	"strings"
)

// undefToken stands in for nil arguments in rendered messages.
const undefToken = "<undef>"

// stringify renders one argument of a plain (non-format) log call. Strings
// pass through, nil becomes the undef token, structured values go through
// the instance dumper and remaining scalars through fmt.
func (l *Logger) stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return undefToken
	case string:
		return t
	case error:
		return t.Error()
	}
	if structured(v) {
		return l.dump(v)
	}
	return fmt.Sprint(v)
}

// concatArgs joins the stringified arguments with no separator.
func (l *Logger) concatArgs(args []any) string {
	if len(args) == 1 {
		return l.stringify(args[0])
	}
	var b strings.Builder
	for _, a := range args {
		b.WriteString(l.stringify(a))
	}
	return b.String()
}

// formatArgs renders a format template. Structured arguments are replaced
// by their dumper rendering before substitution; text, scalars and nil (as
// the undef token) pass through so ordinary fmt verbs keep working.
func (l *Logger) formatArgs(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	conv := make([]any, len(args))
	for i, a := range args {
		switch a.(type) {
		case nil:
			conv[i] = undefToken
		case string, error, fmt.Stringer:
			conv[i] = a
		default:
			if structured(a) {
				conv[i] = l.dump(a)
			} else {
				conv[i] = a
			}
		}
	}
	return fmt.Sprintf(format, conv...)
}

// structured reports whether a value is a composite that needs the dumper
// rather than plain fmt rendering.
func structured(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct,
		reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

// dump runs the instance dumper, falling back to the process-wide default.
func (l *Logger) dump(v any) string {
	if l.dumper != nil {
		return l.dumper(v)
	}
	if d := currentSettings().Dumper; d != nil {
		return d(v)
	}
	return DefaultDumper(v)
}
