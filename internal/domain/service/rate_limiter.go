package service

// RateLimiter limits how often a given client identifier may perform an
// action inside a trailing time window. Implementations must make the
// check-and-record step atomic with respect to concurrent calls sharing an
// identifier.
type RateLimiter interface {
	// Allow records a request attempt for the identifier and reports whether
	// it falls within the configured budget. A rejected attempt is not
	// recorded against the window.
	Allow(identifier string) bool
}
