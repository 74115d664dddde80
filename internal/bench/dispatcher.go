package bench

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"cacheburn/internal/cachehttp"
	"cacheburn/internal/config"
	"cacheburn/internal/workload"
)

// Dispatcher issues one cache operation per attempt and times it.
//
// Per attempt: a key and payload are sampled, the attempt becomes a WRITE
// with probability 1-readRatio and a READ otherwise, and wall-clock timing
// covers the call from just before issue until the response body has been
// fully consumed. A transport failure yields an error and no record; any
// received HTTP status, including 4xx/5xx, yields a record.
type Dispatcher struct {
	scenario *config.Scenario
	client   *cachehttp.Client
	keys     *workload.KeySampler
	payloads *workload.PayloadGenerator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDispatcher creates a dispatcher for one scenario. The seed feeds the
// read/write coin; key and payload samplers carry their own.
func NewDispatcher(sc *config.Scenario, client *cachehttp.Client, keys *workload.KeySampler, payloads *workload.PayloadGenerator, seed int64) *Dispatcher {
	return &Dispatcher{
		scenario: sc,
		client:   client,
		keys:     keys,
		payloads: payloads,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Dispatch performs one request attempt. It returns a record on any
// received response, or an error on transport failure.
func (d *Dispatcher) Dispatch(ctx context.Context) (*Record, error) {
	key := d.keys.Key()
	payload := d.payloads.Payload()

	op := OpRead
	if d.roll() > d.scenario.ReadRatio {
		op = OpWrite
	}

	var (
		resp *cachehttp.Response
		err  error
	)

	start := time.Now()
	if op == OpWrite {
		resp, err = d.client.Store(ctx, key, payload)
	} else {
		resp, err = d.client.Retrieve(ctx, key)
	}
	latency := time.Since(start)

	if err != nil {
		return nil, err
	}

	return &Record{
		Scenario:     d.scenario.Name,
		Timestamp:    start,
		Op:           op,
		Status:       resp.StatusCode,
		LatencyMS:    RoundLatency(latency),
		PayloadBytes: len(payload),
		Key:          key,
	}, nil
}

func (d *Dispatcher) roll() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64()
}
