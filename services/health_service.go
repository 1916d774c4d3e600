package services

import (
	"bubblebrew_server/database"
	"context"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	AllocMB      uint64 `json:"alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	NumGC        uint32 `json:"num_gc"`
	NumGoroutine int    `json:"num_goroutine"`
}

type storeHealthStatus struct {
	Connected      bool           `json:"connected"`
	LastChecked    time.Time      `json:"last_checked"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	Stats          map[string]any `json:"stats"`
}

type HealthService struct {
	logger *gecho.Logger
	store  *database.Store
}

func NewHealthService(logger *gecho.Logger, store *database.Store) *HealthService {
	return &HealthService{
		logger: logger,
		store:  store,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &RamStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		SysMB:        m.Sys / 1024 / 1024,
		NumGC:        m.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
	}
}

func (hs *HealthService) GetServerHealthStatus() any {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetStoreHealthStatus(ctx context.Context) (any, error) {
	start := time.Now()
	err := hs.store.Health()
	elapsed := time.Since(start)

	status := storeHealthStatus{
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed.Milliseconds(),
		Stats:          hs.store.Stats(),
	}
	if err != nil {
		hs.logger.Error("Store health check failed", gecho.Field("error", err))
		return status, err
	}
	return status, nil
}
