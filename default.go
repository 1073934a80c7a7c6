package taplog

// defaultStore backs every logger built without an explicit store. Host
// startup code typically seeds it once via LoadSpecs with the value of its
// filter configuration, then leaves it alone.
var defaultStore = NewFilterStore(nil)

// DefaultStore returns the process-wide filter resolution store.
func DefaultStore() *FilterStore {
	return defaultStore
}

// SetDefaultFilter stores a category filter spec ("" for the global
// default) in the process-wide store.
func SetDefaultFilter(category, spec string) error {
	return defaultStore.SetDefault(category, spec)
}

// LoadFilterSpecs loads a comma-separated "spec,category=spec,..." string
// into the process-wide store. Validation is all-or-nothing.
func LoadFilterSpecs(cfg string) error {
	return defaultStore.LoadSpecs(cfg)
}

// Default returns the memoized logger for the empty category.
func Default() *Logger {
	return Get("")
}
