package utils

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Components map[string]bool `json:"components"`
	CheckedAt  time.Time       `json:"checkedAt"`
}

// Healthy reports whether every component passed its last check.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Components {
		if !ok {
			return false
		}
	}
	return true
}

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthMonitor runs periodic health checks and keeps the latest snapshot in memory.
type HealthMonitor struct {
	checks map[string]HealthCheck
	cron   *cron.Cron

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]HealthCheck) *HealthMonitor {
	return &HealthMonitor{
		checks: checks,
		cron:   cron.New(),
	}
}

// Start runs the checks once and then on the given cron spec (e.g. "@every 1m").
func (m *HealthMonitor) Start(spec string) error {
	m.RunChecks()
	if _, err := m.cron.AddFunc(spec, m.RunChecks); err != nil {
		return err
	}
	m.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (m *HealthMonitor) Stop() {
	<-m.cron.Stop().Done()
}

// RunChecks performs every check once and stores the result.
func (m *HealthMonitor) RunChecks() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	components := make(map[string]bool, len(m.checks))
	for name, check := range m.checks {
		err := check(ctx)
		if err != nil {
			GetLogger().Warn("health check failed", zap.String("component", name), zap.Error(err))
		}
		components[name] = err == nil
	}

	m.mu.Lock()
	m.current = HealthStatus{Components: components, CheckedAt: time.Now()}
	m.mu.Unlock()
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
