package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps process-wide request counters for the /metrics endpoint.
type Collector struct {
	startedAt       time.Time
	totalRequests   uint64
	clientErrors    uint64
	errorRequests   uint64
	rateLimited     uint64
	conflicts       uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{startedAt: time.Now()}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	switch {
	case status >= 500:
		atomic.AddUint64(&c.errorRequests, 1)
	case status == 429:
		atomic.AddUint64(&c.rateLimited, 1)
	case status == 409:
		atomic.AddUint64(&c.conflicts, 1)
		atomic.AddUint64(&c.clientErrors, 1)
	case status >= 400:
		atomic.AddUint64(&c.clientErrors, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": atomic.LoadUint64(&c.clientErrors),
		"errorsTotal":       atomic.LoadUint64(&c.errorRequests),
		"rateLimitedTotal":  atomic.LoadUint64(&c.rateLimited),
		"conflictsTotal":    atomic.LoadUint64(&c.conflicts),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"uptimeSeconds":     int64(time.Since(c.startedAt).Seconds()),
	}
}
