package taplog

import "sync"

// Builder separates logger construction from the immutable instance
// (Builder pattern). The effective threshold is resolved exactly once, in
// Build; the result never re-filters.
type Builder struct {
	category string
	filter   string
	explicit bool
	dumper   DumpFunc
	store    *FilterStore
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithCategory sets the logical source name for the instance.
func (b *Builder) WithCategory(category string) *Builder {
	b.category = category
	return b
}

// WithFilter sets an explicit filter spec. It always wins over category and
// global store defaults, and a bad spec fails Build loudly.
func (b *Builder) WithFilter(spec string) *Builder {
	b.filter = spec
	b.explicit = true
	return b
}

// WithDumper sets a per-instance value dumper; nil keeps the process-wide
// default.
func (b *Builder) WithDumper(d DumpFunc) *Builder {
	b.dumper = d
	return b
}

// WithStore resolves category defaults against the given store instead of
// the process-wide one.
func (b *Builder) WithStore(s *FilterStore) *Builder {
	b.store = s
	return b
}

var bannerOnce sync.Once

// Build resolves the effective threshold (explicit filter, else store
// resolution for the category), binds the matching variant table and
// returns the ready instance. Construction is the only state transition a
// Logger has.
func (b *Builder) Build() (*Logger, error) {
	var threshold Level
	if b.explicit {
		t, err := ParseFilter(b.filter)
		if err != nil {
			return nil, err
		}
		threshold = t
	} else {
		store := b.store
		if store == nil {
			store = defaultStore
		}
		threshold = store.ResolveThreshold(b.category)
	}
	l := &Logger{
		category:  b.category,
		filter:    b.filter,
		explicit:  b.explicit,
		dumper:    b.dumper,
		threshold: threshold,
		variant:   variantFor(threshold),
	}
	if currentSettings().Banner {
		bannerOnce.Do(func() {
			l.Info("logging via taplog, severities below warning print as test comments")
		})
	}
	return l, nil
}
