package bench

import (
	"context"
	"time"

	"cacheburn/internal/cachehttp"
	"cacheburn/internal/config"
	"cacheburn/internal/workload"
)

// Reporter receives run lifecycle events for console output.
type Reporter interface {
	SuiteStarting(catalog *config.Catalog)
	ScenarioStarting(sc *config.Scenario)
	ResetResult(status, detail string, err error)
	Progress(completed, total int, elapsed time.Duration)
	ScenarioComplete(res *ScenarioResult)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) SuiteStarting(*config.Catalog)     {}
func (NopReporter) ScenarioStarting(*config.Scenario) {}
func (NopReporter) ResetResult(string, string, error) {}
func (NopReporter) Progress(int, int, time.Duration)  {}
func (NopReporter) ScenarioComplete(*ScenarioResult)  {}

// ScenarioResult is the aggregate outcome of one scenario run.
type ScenarioResult struct {
	Scenario config.Scenario

	// Records holds one entry per successfully-dispatched request,
	// in completion order.
	Records []Record

	// Failures is the number of transport-level dispatch failures.
	// Invariant: len(Records) + Failures == Scenario.Requests.
	Failures int64

	Elapsed time.Duration

	// Throughput is requests divided by elapsed seconds.
	Throughput float64

	// DataVolumeBytes approximates moved data as requests * payload_mean.
	DataVolumeBytes float64

	Latency LatencyStats
}

// Runner executes scenarios sequentially:
// reset, warmup delay, batched execution, summary. No retries, no parallel
// scenario execution, and a fixed pause between scenarios.
type Runner struct {
	// BaseURL of the cache service under test.
	BaseURL string

	// Timeout applies uniformly to every request; expiry surfaces as a
	// dispatch failure. Zero means cachehttp.DefaultTimeout.
	Timeout time.Duration

	// Warmup is the pause after the reset call, letting it settle.
	Warmup time.Duration

	// Pause is the delay between consecutive scenarios.
	Pause time.Duration

	// Seed makes sampling reproducible when nonzero.
	Seed int64

	// Reporter receives lifecycle events. Nil means no reporting.
	Reporter Reporter
}

// DefaultWarmup is the post-reset settle delay.
const DefaultWarmup = 2 * time.Second

// DefaultPause is the delay between scenarios.
const DefaultPause = 5 * time.Second

// NewRunner creates a runner with default warmup and pause.
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:  baseURL,
		Warmup:   DefaultWarmup,
		Pause:    DefaultPause,
		Reporter: NopReporter{},
	}
}

// Run executes every scenario in the catalog, strictly in catalog order,
// and returns all scenario results.
func (r *Runner) Run(ctx context.Context, catalog *config.Catalog) ([]*ScenarioResult, error) {
	reporter := r.reporter()
	reporter.SuiteStarting(catalog)

	results := make([]*ScenarioResult, 0, len(catalog.Scenarios))
	for i := range catalog.Scenarios {
		sc := &catalog.Scenarios[i]

		res, err := r.RunScenario(ctx, sc)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		if i < len(catalog.Scenarios)-1 {
			if err := sleepCtx(ctx, r.Pause); err != nil {
				return results, err
			}
		}
	}

	return results, nil
}

// RunScenario executes a single scenario end to end. The scenario's HTTP
// client is acquired here and released on return regardless of outcome.
func (r *Runner) RunScenario(ctx context.Context, sc *config.Scenario) (*ScenarioResult, error) {
	reporter := r.reporter()
	reporter.ScenarioStarting(sc)

	client := cachehttp.NewClient(
		cachehttp.WithBaseURL(r.BaseURL),
		cachehttp.WithTimeout(r.timeout()),
		cachehttp.WithPoolSize(sc.Users),
	)
	defer client.Close()

	// Best-effort state reset: a failure is reported and the run proceeds.
	if resp, err := client.Reset(ctx); err != nil {
		reporter.ResetResult("", "", err)
	} else {
		reporter.ResetResult(resp.Status, resp.Field("message"), nil)
	}

	if err := sleepCtx(ctx, r.Warmup); err != nil {
		return nil, err
	}

	seed := r.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	collector := NewCollector()
	dispatcher := NewDispatcher(
		sc,
		client,
		workload.NewKeySampler(sc, seed),
		workload.NewPayloadGenerator(sc.PayloadMean, sc.PayloadStd, seed+1),
		seed+2,
	)

	batcher := NewBatcher(sc.Requests, sc.Users, reporter.Progress)

	start := time.Now()
	err := batcher.Run(ctx, func(ctx context.Context) {
		rec, dispatchErr := dispatcher.Dispatch(ctx)
		if dispatchErr != nil {
			collector.RecordFailure(dispatchErr)
			return
		}
		collector.Append(rec)
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}

	res := &ScenarioResult{
		Scenario:        *sc,
		Records:         collector.Records(),
		Failures:        collector.Failures(),
		Elapsed:         elapsed,
		Throughput:      float64(sc.Requests) / elapsed.Seconds(),
		DataVolumeBytes: float64(sc.Requests) * sc.PayloadMean,
		Latency:         collector.Latency(),
	}

	reporter.ScenarioComplete(res)
	return res, nil
}

func (r *Runner) reporter() Reporter {
	if r.Reporter == nil {
		return NopReporter{}
	}
	return r.Reporter
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return cachehttp.DefaultTimeout
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
