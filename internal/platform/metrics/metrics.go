package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps in-process batch counters, good enough for the /metrics
// snapshot endpoint without an external metrics backend.
type Collector struct {
	batchRuns       uint64
	batchFailures   uint64
	recordsWritten  uint64
	entityErrors    uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

// RecordBatch tallies one batch invocation.
func (c *Collector) RecordBatch(records, entityErrors int, failed bool, duration time.Duration) {
	atomic.AddUint64(&c.batchRuns, 1)
	if failed {
		atomic.AddUint64(&c.batchFailures, 1)
	}
	atomic.AddUint64(&c.recordsWritten, uint64(records))
	atomic.AddUint64(&c.entityErrors, uint64(entityErrors))
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) Snapshot() map[string]any {
	runs := atomic.LoadUint64(&c.batchRuns)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if runs > 0 {
		avg = float64(totalMs) / float64(runs)
	}
	return map[string]any{
		"batchRunsTotal":     runs,
		"batchFailuresTotal": atomic.LoadUint64(&c.batchFailures),
		"recordsWritten":     atomic.LoadUint64(&c.recordsWritten),
		"entityErrorsTotal":  atomic.LoadUint64(&c.entityErrors),
		"avgBatchDurationMs": avg,
	}
}
