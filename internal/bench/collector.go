package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector aggregates records and dispatch failures for one scenario run.
//
// The reference model ran on a single-threaded cooperative scheduler and
// needed no locking; batches here run as parallel goroutines, so appends
// are mutex-guarded and the failure counter is atomic.
type Collector struct {
	mu      sync.Mutex
	records []Record

	// Latency histogram: 1 microsecond to 1 hour, 3 significant figures.
	latencyHist *hdrhistogram.Histogram

	failures atomic.Int64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		latencyHist: hdrhistogram.New(1, 3600000000, 3),
	}
}

// Append records one completed request.
func (c *Collector) Append(rec *Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, *rec)

	micros := int64(rec.LatencyMS * 1000)
	if micros < 1 {
		micros = 1
	}
	// Out-of-range values are clamped by construction (max is 1 hour and
	// the request timeout is far below that), so the error is ignorable.
	_ = c.latencyHist.RecordValue(micros)
}

// RecordFailure counts one dispatch failure. Failures produce no record.
func (c *Collector) RecordFailure(err error) {
	_ = err
	c.failures.Add(1)
}

// Records returns a copy of all records collected so far.
func (c *Collector) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Count returns the number of records collected.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Failures returns the dispatch failure count.
func (c *Collector) Failures() int64 {
	return c.failures.Load()
}

// LatencyStats contains latency statistics for one scenario run.
type LatencyStats struct {
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
	P50   time.Duration
	P95   time.Duration
	P99   time.Duration
	Count int64
}

// Latency returns latency percentiles over all collected records.
func (c *Collector) Latency() LatencyStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return LatencyStats{
		Min:   time.Duration(c.latencyHist.Min()) * time.Microsecond,
		Max:   time.Duration(c.latencyHist.Max()) * time.Microsecond,
		Mean:  time.Duration(c.latencyHist.Mean()) * time.Microsecond,
		P50:   time.Duration(c.latencyHist.ValueAtQuantile(50)) * time.Microsecond,
		P95:   time.Duration(c.latencyHist.ValueAtQuantile(95)) * time.Microsecond,
		P99:   time.Duration(c.latencyHist.ValueAtQuantile(99)) * time.Microsecond,
		Count: c.latencyHist.TotalCount(),
	}
}
