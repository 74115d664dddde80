package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cacheburn/internal/bench"
	"cacheburn/internal/config"
	"cacheburn/internal/output"
	"cacheburn/internal/report"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the workload suite against a cache service",
	Long: `Execute every scenario in the catalog, in order, against the target
cache service and export all per-request records to a CSV report.

Built-in catalog:
  cacheburn bench --base-url http://localhost:8080/api/cache

Custom catalog (YAML or JSON):
  cacheburn bench --base-url http://localhost:8080/api/cache \
    --config workloads.yaml --output results.csv`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().String("base-url", "http://localhost:8080/api/cache", "Base URL of the cache service API")
	benchCmd.Flags().StringP("config", "c", "", "Scenario catalog file (YAML or JSON); defaults to the built-in catalog")
	benchCmd.Flags().StringP("output", "o", "cacheburn_results.csv", "CSV report output path")
	benchCmd.Flags().Duration("timeout", 0, "Per-request timeout (default 300s)")
	benchCmd.Flags().Duration("warmup", bench.DefaultWarmup, "Pause after cache reset before executing")
	benchCmd.Flags().Duration("pause", bench.DefaultPause, "Pause between scenarios")
	benchCmd.Flags().Int64("seed", 0, "Seed for reproducible sampling (0 = random)")
	benchCmd.Flags().Bool("no-color", false, "Disable colored output")
	benchCmd.Flags().BoolP("quiet", "q", false, "Suppress progress lines")
}

func runBench(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	configFile, _ := cmd.Flags().GetString("config")
	outputPath, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	warmup, _ := cmd.Flags().GetDuration("warmup")
	pause, _ := cmd.Flags().GetDuration("pause")
	seed, _ := cmd.Flags().GetInt64("seed")
	noColor, _ := cmd.Flags().GetBool("no-color")
	quiet, _ := cmd.Flags().GetBool("quiet")

	catalog, err := loadCatalog(configFile)
	if err != nil {
		return err
	}

	console := output.NewConsole(output.ConsoleConfig{
		NoColor: noColor,
		Quiet:   quiet,
	})

	runner := bench.NewRunner(baseURL)
	runner.Timeout = timeout
	runner.Warmup = warmup
	runner.Pause = pause
	runner.Seed = seed
	runner.Reporter = console

	results, err := runner.Run(context.Background(), catalog)
	if err != nil {
		return fmt.Errorf("benchmark run failed: %w", err)
	}

	// Report write failure is the one unrecoverable failure class: abort
	// with a diagnostic rather than discard a completed run silently.
	rows, err := report.WriteFile(outputPath, results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}

	console.Exported(outputPath, rows)
	return nil
}

func loadCatalog(path string) (*config.Catalog, error) {
	if path == "" {
		return config.DefaultCatalog(), nil
	}
	return config.LoadCatalog(path)
}
