package taplog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBaselineSuppressesDebugAndBelow(t *testing.T) {
	s := NewFilterStore(nil)
	th := s.ResolveThreshold("anything")
	assert.Equal(t, baselineThreshold, th)
	v := variantFor(th)
	assert.False(t, v.enabled[LevelTrace])
	assert.False(t, v.enabled[LevelDebug])
	assert.True(t, v.enabled[LevelInfo])
}

func TestStoreCategoryBeatsGlobal(t *testing.T) {
	s := NewFilterStore(nil)
	require.NoError(t, s.SetDefault("", "error"))
	require.NoError(t, s.SetDefault("Foo", "trace"))

	spec, ok := s.Resolve("Foo")
	require.True(t, ok)
	assert.Equal(t, "trace", spec)

	spec, ok = s.Resolve("Bar")
	require.True(t, ok)
	assert.Equal(t, "error", spec)
}

func TestStoreLayering(t *testing.T) {
	base := NewFilterStore(nil)
	require.NoError(t, base.SetDefault("Foo", "trace"))
	require.NoError(t, base.SetDefault("", "warn"))

	derived := NewFilterStore(base)

	// falls through to the base layer
	spec, ok := derived.Resolve("Foo")
	require.True(t, ok)
	assert.Equal(t, "trace", spec)

	// derived entry shadows without deleting the base entry
	require.NoError(t, derived.SetDefault("Foo", "error"))
	spec, _ = derived.Resolve("Foo")
	assert.Equal(t, "error", spec)
	spec, _ = base.Resolve("Foo")
	assert.Equal(t, "trace", spec)

	// unsetting re-opens the fallthrough instead of leaving a hole
	derived.Unset("Foo")
	spec, _ = derived.Resolve("Foo")
	assert.Equal(t, "trace", spec)

	// a derived category entry wins over the base global
	spec, _ = derived.Resolve("Other")
	assert.Equal(t, "warn", spec)
}

func TestStoreRejectsInvalidSpecWithoutMutation(t *testing.T) {
	s := NewFilterStore(nil)
	err := s.SetDefault("Foo", "bogus")
	require.ErrorIs(t, err, ErrUnknownLevel)
	_, ok := s.Resolve("Foo")
	assert.False(t, ok)
}

func TestLoadSpecsPerCategory(t *testing.T) {
	s := NewFilterStore(nil)
	require.NoError(t, s.LoadSpecs("warn,Foo=trace,Bar=debug"))

	foo := variantFor(s.ResolveThreshold("Foo"))
	assert.True(t, foo.enabled[LevelTrace])

	bar := variantFor(s.ResolveThreshold("Bar"))
	assert.True(t, bar.enabled[LevelDebug])
	assert.False(t, bar.enabled[LevelTrace])

	main := variantFor(s.ResolveThreshold("main"))
	assert.True(t, main.enabled[LevelWarning])
	assert.False(t, main.enabled[LevelNotice])
}

func TestLoadSpecsIsAtomic(t *testing.T) {
	s := NewFilterStore(nil)
	err := s.LoadSpecs("warn,Bogus=wat")
	require.ErrorIs(t, err, ErrUnknownLevel)
	// nothing from the string may have been stored
	_, ok := s.Resolve("")
	assert.False(t, ok)
	_, ok = s.Resolve("Bogus")
	assert.False(t, ok)
}

func TestProcessWideStoreBacksDefaultBuilds(t *testing.T) {
	require.NoError(t, SetDefaultFilter("store-test-cat", "trace"))
	t.Cleanup(func() { DefaultStore().Unset("store-test-cat") })

	l, err := NewBuilder().WithCategory("store-test-cat").Build()
	require.NoError(t, err)
	assert.True(t, l.IsTrace())

	spec, explicit := l.FilterSpec()
	assert.Empty(t, spec)
	assert.False(t, explicit)
}

func TestLoadSpecsIgnoresEmptyParts(t *testing.T) {
	s := NewFilterStore(nil)
	require.NoError(t, s.LoadSpecs(" , error , Foo=debug ,"))
	spec, ok := s.Resolve("")
	require.True(t, ok)
	assert.Equal(t, "error", spec)
	spec, _ = s.Resolve("Foo")
	assert.Equal(t, "debug", spec)
}
