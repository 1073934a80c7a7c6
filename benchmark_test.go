package taplog

import (
	"io"
	"testing"
)

// blackhole prevents the compiler from optimizing away checked paths.
var bhB bool

func newBenchLogger(b *testing.B, filter string) *Logger {
	b.Helper()
	prev := settings.Load()
	Configure(Settings{Out: io.Discard, Diag: io.Discard})
	b.Cleanup(func() { settings.Store(prev) })
	l, err := NewBuilder().WithFilter(filter).Build()
	if err != nil {
		b.Fatal(err)
	}
	return l
}

func BenchmarkSuppressedDebug(b *testing.B) {
	l := newBenchLogger(b, "info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Debug("never rendered")
	}
}

func BenchmarkSuppressedDebugf(b *testing.B) {
	l := newBenchLogger(b, "info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Debugf("never rendered %d", i)
	}
}

func BenchmarkEnabledInfo(b *testing.B) {
	l := newBenchLogger(b, "none")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Info("ok")
	}
}

func BenchmarkIsDebug(b *testing.B) {
	l := newBenchLogger(b, "info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhB = l.IsDebug()
	}
}
