package kernel

// ResolveCapability returns the first provider that implements C.
// Providers are checked in order; nil providers are skipped.
func ResolveCapability[C any](providers ...any) (C, bool) {
	for _, p := range providers {
		if p == nil {
			continue
		}
		if c, ok := p.(C); ok {
			return c, true
		}
	}
	var zero C
	return zero, false
}
