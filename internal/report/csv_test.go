package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cacheburn/internal/bench"
)

func sampleResults() []*bench.ScenarioResult {
	ts := time.Unix(1700000000, 500000000)
	return []*bench.ScenarioResult{
		{
			Records: []bench.Record{
				{Scenario: "a", Timestamp: ts, Op: bench.OpRead, Status: 200, LatencyMS: 1.5, PayloadBytes: 64, Key: "user_1"},
				{Scenario: "a", Timestamp: ts, Op: bench.OpWrite, Status: 503, LatencyMS: 20.25, PayloadBytes: 128, Key: "user_2"},
			},
		},
		{
			Records: []bench.Record{
				{Scenario: "b", Timestamp: ts, Op: bench.OpRead, Status: 404, LatencyMS: 0.1, PayloadBytes: 1, Key: "user_3"},
			},
		},
	}
}

func TestWrite_SchemaAndRows(t *testing.T) {
	var buf bytes.Buffer

	rows, err := Write(&buf, sampleResults())
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 4, "header plus one row per record")

	assert.Equal(t, Header, parsed[0])

	first := parsed[1]
	assert.Equal(t, "a", first[0])
	assert.Equal(t, "1700000000.500", first[1])
	assert.Equal(t, "READ", first[2])
	assert.Equal(t, "200", first[3])
	assert.Equal(t, "1.50", first[4], "latency keeps 2 decimals")
	assert.Equal(t, "64", first[5])
	assert.Equal(t, "user_1", first[6])

	// Records flatten in scenario order.
	assert.Equal(t, "b", parsed[3][0])
	assert.Equal(t, "404", parsed[3][3])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	rows, err := WriteFile(path, sampleResults())
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scenario,Timestamp,Operation,HTTP_Status,Latency_ms,Payload_Bytes,Key_ID")
}

func TestWriteFile_BadPath(t *testing.T) {
	_, err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleResults())
	require.Error(t, err)
}

func TestWrite_NoRecords(t *testing.T) {
	var buf bytes.Buffer

	rows, err := Write(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rows)

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 1, "header is always written")
}
