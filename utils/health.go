package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose backing service can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	SessionStore bool      `json:"sessionStore"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes the session store once and stores the snapshot.
func CheckHealth(ctx context.Context, store Pinger) HealthStatus {
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		SessionStore: store.Ping(pctx) == nil,
		CheckedAt:    time.Now(),
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, store Pinger, interval time.Duration) {
	CheckHealth(ctx, store)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if status := CheckHealth(ctx, store); !status.SessionStore {
					GetLogger().Warn("session store health check failed")
				}
			}
		}
	}()
}

// LogHealth is used at startup to report the first snapshot.
func LogHealth(status HealthStatus) {
	GetLogger().Info("health snapshot",
		zap.Bool("session_store", status.SessionStore),
		zap.Time("checked_at", status.CheckedAt))
}
