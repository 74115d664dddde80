package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"cacheburn/internal/bench"
	"cacheburn/internal/config"
)

// Console prints run lifecycle events in a human-readable form. It
// implements bench.Reporter.
type Console struct {
	w      io.Writer
	colors *ColorScheme
	quiet  bool
	isTTY  bool
}

// ConsoleConfig configures a Console.
type ConsoleConfig struct {
	// Writer defaults to os.Stdout.
	Writer io.Writer

	// NoColor disables colored output.
	NoColor bool

	// Quiet suppresses progress lines; banners and summaries still print.
	Quiet bool
}

// NewConsole creates a console reporter.
func NewConsole(cfg ConsoleConfig) *Console {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	colors := DefaultColorScheme()
	if cfg.NoColor {
		colors = NoColorScheme()
	}

	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Console{
		w:      w,
		colors: colors,
		quiet:  cfg.Quiet,
		isTTY:  tty,
	}
}

// IsTTY reports whether the console writes to a terminal.
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// SuiteStarting prints the suite banner.
func (c *Console) SuiteStarting(catalog *config.Catalog) {
	rule := "--------------------------------------------------"
	fmt.Fprintln(c.w, rule)
	c.colors.Banner.Fprintf(c.w, " CACHEBURN BENCHMARK SUITE - %d scenario(s)\n", len(catalog.Scenarios))
	fmt.Fprintln(c.w, rule)
}

// ScenarioStarting prints the scenario header.
func (c *Console) ScenarioStarting(sc *config.Scenario) {
	fmt.Fprintln(c.w)
	c.colors.Scenario.Fprintf(c.w, "[STARTING SCENARIO] %s\n", sc.Name)
	fmt.Fprintf(c.w, " > Configuration: %d requests | %d concurrent users | %s keys\n",
		sc.Requests, sc.Users, sc.KeyPattern)
	fmt.Fprintf(c.w, " > Payload Avg:   %.2f KB\n", sc.PayloadMean/1024)
}

// ResetResult reports the best-effort cache reset.
func (c *Console) ResetResult(status, detail string, err error) {
	if err != nil {
		c.colors.Warn.Fprintf(c.w, "[WARN] Reset failed: %v\n", err)
		return
	}
	if detail != "" {
		fmt.Fprintf(c.w, "[INFO] Cache reset: %s (%s)\n", status, detail)
		return
	}
	fmt.Fprintf(c.w, "[INFO] Cache reset: %s\n", status)
}

// Progress prints a completion line at each 10% boundary.
func (c *Console) Progress(completed, total int, elapsed time.Duration) {
	if c.quiet {
		return
	}
	percent := float64(completed) / float64(total) * 100
	fmt.Fprintf(c.w, "   ... %.0f%% complete (%.1fs elapsed)\n", percent, elapsed.Seconds())
}

// ScenarioComplete prints the scenario summary.
func (c *Console) ScenarioComplete(res *bench.ScenarioResult) {
	c.colors.Success.Fprintf(c.w, "[COMPLETE] Execution Time: %.2fs\n", res.Elapsed.Seconds())
	fmt.Fprintf(c.w, " > Throughput: %.0f req/sec\n", res.Throughput)
	fmt.Fprintf(c.w, " > Data Moved: %.2f MB\n", res.DataVolumeBytes/(1024*1024))

	if res.Latency.Count > 0 {
		fmt.Fprintf(c.w, " > Latency:    p50=%s p95=%s p99=%s max=%s\n",
			formatLatency(res.Latency.P50),
			formatLatency(res.Latency.P95),
			formatLatency(res.Latency.P99),
			formatLatency(res.Latency.Max))
	}

	if res.Failures > 0 {
		c.colors.Warn.Fprintf(c.w, " > [WARN] Errors/Timeouts encountered: %d\n", res.Failures)
	}
}

// Exported prints the final export confirmation.
func (c *Console) Exported(path string, rows int) {
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, "[EXPORTING] Wrote %d records to %s\n", rows, path)
	c.colors.Success.Fprintln(c.w, "[SUCCESS] Benchmark suite completed successfully.")
}

func formatLatency(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
