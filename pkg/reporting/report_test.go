/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for report rendering and JSON export. Covers section
formatting, localized number grouping, empty-report behavior, and the JSON
snapshot round trip.
*/

package reporting_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
	"github.com/kleascm/akaylee-binscope/pkg/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *interfaces.AnalysisReport {
	return &interfaces.AnalysisReport{
		RunID:            "test-run",
		FilePath:         "sample.bin",
		FileSize:         2048,
		ChunksProcessed:  2,
		DateFindings:     1,
		RecordBoundaries: 4,
		TextRuns:         1,
		TopGaps: []interfaces.GapBucket{
			{Distance: 1024, Count: 3},
			{Distance: 64, Count: 1},
		},
		DateSamples: []interfaces.DateFinding{
			{Offset: 1234, Kind: interfaces.DateKindTwoByteYear, Value: 1850, Description: "Possible year: 1850"},
		},
		TextSamples: []interfaces.TextRunFinding{
			{Offset: 40, Length: 10, Text: "birth date"},
		},
	}
}

func TestRenderSections(t *testing.T) {
	var out bytes.Buffer
	reporting.Render(&out, sampleReport())

	output := out.String()
	assert.Contains(t, output, "Most common distances between potential record starts:")
	assert.Contains(t, output, "Size: 1,024 bytes, Count: 3")
	assert.Contains(t, output, "Size: 64 bytes, Count: 1")
	assert.Contains(t, output, "Sample of potential dates found:")
	assert.Contains(t, output, "Offset 1,234 (000004d2): Possible year: 1850")
	assert.Contains(t, output, "Sample of text regions that might contain genealogical data:")
	assert.Contains(t, output, "Offset 40 (00000028): birth date")
}

func TestRenderEmptyReport(t *testing.T) {
	var out bytes.Buffer
	reporting.Render(&out, &interfaces.AnalysisReport{})

	output := out.String()
	assert.NotContains(t, output, "Most common distances")
	assert.NotContains(t, output, "Sample of potential dates")
	assert.Contains(t, output, "Sample of text regions that might contain genealogical data:")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	report := sampleReport()
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, reporting.WriteJSON(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded interfaces.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.RunID, decoded.RunID)
	assert.Equal(t, report.RecordBoundaries, decoded.RecordBoundaries)
	assert.Equal(t, report.TopGaps, decoded.TopGaps)
	assert.Equal(t, report.DateSamples, decoded.DateSamples)
	assert.Equal(t, report.TextSamples, decoded.TextSamples)
}

func TestWriteJSONBadPath(t *testing.T) {
	err := reporting.WriteJSON(sampleReport(), filepath.Join(t.TempDir(), "missing", "report.json"))
	assert.Error(t, err)
}
