package metrics

import (
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(409, 30*time.Millisecond)
	c.Record(429, 0)
	c.Record(503, 20*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(4) {
		t.Fatalf("expected 4 requests, got %v", snap["requestsTotal"])
	}
	if snap["conflictsTotal"] != uint64(1) || snap["clientErrorsTotal"] != uint64(1) {
		t.Fatalf("unexpected client error counters %v", snap)
	}
	if snap["rateLimitedTotal"] != uint64(1) || snap["errorsTotal"] != uint64(1) {
		t.Fatalf("unexpected error counters %v", snap)
	}
	if snap["avgDurationMs"] != float64(15) {
		t.Fatalf("expected 15ms average, got %v", snap["avgDurationMs"])
	}
}
