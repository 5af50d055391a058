package ports

import "context"

// HealthChecker is a backend reported by GET /health. The lottery keeps
// running on its fallbacks when one is down, so failures only degrade status.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string // "postgresql", "redis"
}
