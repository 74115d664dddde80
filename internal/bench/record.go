// Package bench contains the scenario execution engine: request dispatch,
// bounded-concurrency batching, metrics collection, and the scenario runner.
package bench

import (
	"math"
	"time"
)

// Operation is the kind of cache operation a request performed.
type Operation string

const (
	// OpRead is a retrieve by key.
	OpRead Operation = "READ"
	// OpWrite is a store of a key/value pair.
	OpWrite Operation = "WRITE"
)

// Record is the outcome of one successfully-dispatched request. A record is
// created once per completed attempt and never mutated. Transport failures
// produce no record; a received non-2xx status still does.
type Record struct {
	Scenario     string
	Timestamp    time.Time
	Op           Operation
	Status       int
	LatencyMS    float64
	PayloadBytes int
	Key          string
}

// RoundLatency converts a duration to milliseconds rounded to 2 decimals.
func RoundLatency(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
