package testutil

// Set sets the value of a variable, and restores the original value when the
// test finishes.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}
