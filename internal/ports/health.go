package ports

import "context"

// HealthChecker is implemented by components the readiness probe depends on.
// The SQLite todo store is the only one today.
type HealthChecker interface {
	// Name keys the component in the readiness report ("database").
	Name() string

	// HealthCheck returns nil when the component can serve requests. It
	// must return promptly once ctx is done; the registry gives every check
	// its own deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers registered at startup and runs them
// for GET /health/ready. Liveness never consults it.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
