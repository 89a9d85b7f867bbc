/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Report rendering for Akaylee Binscope. Formats the accumulated
scan findings as human-readable console output (ranked gap histogram, date
samples, keyword-matched text regions) and optionally writes the full report
as an indented JSON snapshot.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Render writes the human-readable analysis report to out. Sections with no
// findings are omitted, except the text region section whose header always
// prints so an empty result is visible to the analyst.
func Render(out io.Writer, report *interfaces.AnalysisReport) {
	p := message.NewPrinter(language.English)

	if len(report.TopGaps) > 0 {
		fmt.Fprintln(out, "\nMost common distances between potential record starts:")
		for _, gap := range report.TopGaps {
			p.Fprintf(out, "Size: %d bytes, Count: %d\n", gap.Distance, gap.Count)
		}
	}

	if len(report.DateSamples) > 0 {
		fmt.Fprintln(out, "\nSample of potential dates found:")
		for _, finding := range report.DateSamples {
			p.Fprintf(out, "Offset %d (%s): %s\n", finding.Offset, hex8(finding.Offset), finding.Description)
		}
	}

	fmt.Fprintln(out, "\nSample of text regions that might contain genealogical data:")
	for _, run := range report.TextSamples {
		p.Fprintf(out, "Offset %d (%s): %s\n", run.Offset, hex8(run.Offset), run.Text)
	}
}

// WriteJSON writes the report as indented JSON to path. The snapshot is
// advisory output for one run; nothing ever reads it back.
func WriteJSON(report *interfaces.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// hex8 renders an offset as zero-padded hex outside the localized printer,
// which must only group the decimal columns.
func hex8(offset int64) string {
	return fmt.Sprintf("%08x", offset)
}
