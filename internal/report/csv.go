// Package report writes the final benchmark report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cacheburn/internal/bench"
)

// Header is the fixed column schema of the report.
var Header = []string{"Scenario", "Timestamp", "Operation", "HTTP_Status", "Latency_ms", "Payload_Bytes", "Key_ID"}

// WriteFile flattens every scenario's records into one CSV file, in
// scenario order. Called once, after all scenarios finish; a write failure
// here is the caller's cue to abort.
func WriteFile(path string, results []*bench.ScenarioResult) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("error creating report file: %w", err)
	}
	defer f.Close()

	n, err := Write(f, results)
	if err != nil {
		return n, err
	}

	if err := f.Close(); err != nil {
		return n, fmt.Errorf("error writing report file: %w", err)
	}
	return n, nil
}

// Write writes the report to w and returns the number of rows written.
func Write(w io.Writer, results []*bench.ScenarioResult) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("error writing report header: %w", err)
	}

	rows := 0
	for _, res := range results {
		for i := range res.Records {
			if err := cw.Write(row(&res.Records[i])); err != nil {
				return rows, fmt.Errorf("error writing report row: %w", err)
			}
			rows++
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("error flushing report: %w", err)
	}
	return rows, nil
}

func row(rec *bench.Record) []string {
	ts := float64(rec.Timestamp.UnixNano()) / 1e9
	return []string{
		rec.Scenario,
		strconv.FormatFloat(ts, 'f', 3, 64),
		string(rec.Op),
		strconv.Itoa(rec.Status),
		strconv.FormatFloat(rec.LatencyMS, 'f', 2, 64),
		strconv.Itoa(rec.PayloadBytes),
		rec.Key,
	}
}
