package server

import "context"

// HealthChecker reports whether a dependency is ready to serve traffic.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is the no-dependency checker used when the service runs
// without a database.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}
