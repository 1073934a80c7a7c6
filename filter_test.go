package taplog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		spec string
		want Level
	}{
		{"", LevelNone},
		{"none", LevelNone},
		{"all", LevelFatal},
		{"trace", LevelNone},
		{"debug", LevelTrace},
		{"info", LevelDebug},
		{"warning", LevelNotice},
		{"error", LevelWarning},
		{"fatal", LevelEmergency},
		// aliases behave like their canonical target
		{"warn", LevelNotice},
		{"crit", LevelError},
		// offsets are exact ranks, sign raises or lowers the threshold
		{"error-1", LevelWarning},
		{"error+1", LevelCritical},
		{"info+2", LevelWarning},
		{"warn-2", LevelInfo},
		// offsets clamp to the registered rank range
		{"fatal+5", LevelFatal},
		{"trace-5", LevelTrace},
	}
	for _, tc := range cases {
		got, err := ParseFilter(tc.spec)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.want, got, tc.spec)
	}
}

func TestParseFilterUnknownSpec(t *testing.T) {
	for _, spec := range []string{"bogus", "bogus+2", "info*3", "3+info", "+2", "debug+"} {
		_, err := ParseFilter(spec)
		require.ErrorIs(t, err, ErrUnknownLevel, spec)
	}
}

func TestParseFilterOffsetMatchesRankArithmetic(t *testing.T) {
	for _, name := range coreLevelNames {
		base, err := levelValue(name)
		require.NoError(t, err)
		for _, n := range []int{-3, -1, 1, 3} {
			spec := fmt.Sprintf("%s%+d", name, n)
			got, err := ParseFilter(spec)
			require.NoError(t, err, spec)
			want := base + Level(n)
			if want < LevelTrace {
				want = LevelTrace
			}
			if want > LevelFatal {
				want = LevelFatal
			}
			assert.Equal(t, want, got, spec)
		}
	}
}

func TestNoneEnablesEveryLevel(t *testing.T) {
	th, err := ParseFilter("none")
	require.NoError(t, err)
	v := variantFor(th)
	for lv := LevelTrace; lv <= LevelFatal; lv++ {
		assert.True(t, v.enabled[lv], lv.String())
	}
}

func TestAllSuppressesEveryLevel(t *testing.T) {
	th, err := ParseFilter("all")
	require.NoError(t, err)
	v := variantFor(th)
	for lv := LevelTrace; lv <= LevelFatal; lv++ {
		assert.False(t, v.enabled[lv], lv.String())
	}
}

func TestVariantSelection(t *testing.T) {
	// below-minimum thresholds select the unfiltered table directly
	assert.Same(t, variantFor(LevelNone), variantFor(LevelNone-5))
	// above-maximum thresholds clamp to the last table
	assert.Same(t, variantFor(LevelFatal), variantFor(LevelFatal+7))
	// selection is a stable index, not a rebuild
	assert.Same(t, variantFor(LevelInfo), variantFor(LevelInfo))
}

func TestVariantConstructionIsConcurrencySafe(t *testing.T) {
	var wg sync.WaitGroup
	vs := make([]*variant, 8)
	for i := range vs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			vs[i] = variantFor(LevelNotice)
		}(i)
	}
	wg.Wait()
	for _, v := range vs[1:] {
		assert.Same(t, vs[0], v)
	}
}

func TestVariantTablesSuppressAtOrBelowThreshold(t *testing.T) {
	for th := LevelTrace; th <= LevelFatal; th++ {
		v := variantFor(th)
		for lv := LevelTrace; lv <= LevelFatal; lv++ {
			assert.Equal(t, lv > th, v.enabled[lv], "threshold %s level %s", th, lv)
		}
	}
}
