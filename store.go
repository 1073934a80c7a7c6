package taplog

import (
	"fmt"
	"strings"
	"sync"
)

// baselineThreshold applies when nothing is configured anywhere: debug and
// below are suppressed.
const baselineThreshold = LevelDebug

// FilterStore holds one layer of category filter specs (key "" is the
// global default) with optional fallthrough to a parent layer. Lookups walk
// the derived layer first; writes always land in the receiver layer and
// shadow, never delete, parent entries.
type FilterStore struct {
	mu     sync.RWMutex
	specs  map[string]string
	parent *FilterStore
}

// NewFilterStore returns an empty layer chained to parent. A nil parent
// makes it a base layer.
func NewFilterStore(parent *FilterStore) *FilterStore {
	return &FilterStore{
		specs:  make(map[string]string),
		parent: parent,
	}
}

// SetDefault stores a filter spec for a category ("" for the global
// default). The spec is validated first; an invalid spec is rejected with
// no mutation.
func (s *FilterStore) SetDefault(category, spec string) error {
	if _, err := ParseFilter(spec); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specs[category] = spec
	return nil
}

// Unset removes this layer's entry for a category so lookups fall through
// to parent layers again.
func (s *FilterStore) Unset(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.specs, category)
}

// LoadSpecs loads a comma-separated configuration string of the form
//
//	"warn,Foo=trace,Bar=debug"
//
// where a bare spec sets the global default and name=spec pairs set
// category overrides. All parts are validated before anything is stored;
// one bad part rejects the whole string.
func (s *FilterStore) LoadSpecs(cfg string) error {
	pending := make(map[string]string)
	for _, part := range strings.Split(cfg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		category, spec := "", part
		if i := strings.IndexByte(part, '='); i >= 0 {
			category, spec = part[:i], part[i+1:]
		}
		if _, err := ParseFilter(spec); err != nil {
			return fmt.Errorf("filter config %q: %w", part, err)
		}
		pending[category] = spec
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for category, spec := range pending {
		s.specs[category] = spec
	}
	return nil
}

func (s *FilterStore) lookup(category string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	spec, ok := s.specs[category]
	return spec, ok
}

// Resolve returns the effective filter spec for a category: the category
// entry walking derived to base, then the global entry walking the same
// chain. The second result is false when nothing is configured anywhere.
func (s *FilterStore) Resolve(category string) (string, bool) {
	for layer := s; layer != nil; layer = layer.parent {
		if spec, ok := layer.lookup(category); ok {
			return spec, true
		}
	}
	if category != "" {
		for layer := s; layer != nil; layer = layer.parent {
			if spec, ok := layer.lookup(""); ok {
				return spec, true
			}
		}
	}
	return "", false
}

// ResolveThreshold resolves a category to a numeric suppression threshold,
// applying the hard-coded baseline when nothing is configured. Stored specs
// were validated on write, so a spec that no longer parses (the registry
// was replaced underneath it) also falls back to the baseline.
func (s *FilterStore) ResolveThreshold(category string) Level {
	spec, ok := s.Resolve(category)
	if !ok {
		return baselineThreshold
	}
	t, err := ParseFilter(spec)
	if err != nil {
		return baselineThreshold
	}
	return t
}
