/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: accumulator.go
Description: Scan accumulator and gap histogram for Akaylee Binscope.
Aggregates per-chunk scanner findings into run-wide totals and tracks the
distribution of distances between consecutive record-boundary findings,
the key signal for inferring a fixed record size.
*/

package analysis

import (
	"sort"
	"strings"

	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
)

// DefaultKeywords are the genealogical terms the sample report filters text
// runs by. Matching is case-insensitive substring containment.
var DefaultKeywords = []string{
	"birth", "death", "name", "date", "place", "family", "married",
}

// GapHistogram maps distances between consecutive record-boundary findings
// to occurrence counts. Aggregation is additive; insertion order is
// irrelevant.
type GapHistogram struct {
	counts map[int64]int
}

// NewGapHistogram creates an empty gap histogram
func NewGapHistogram() *GapHistogram {
	return &GapHistogram{counts: make(map[int64]int)}
}

// Add records one occurrence of a distance
func (h *GapHistogram) Add(distance int64) {
	h.counts[distance]++
}

// Count returns how often a distance has been recorded
func (h *GapHistogram) Count(distance int64) int {
	return h.counts[distance]
}

// Len returns the number of distinct distances recorded
func (h *GapHistogram) Len() int {
	return len(h.counts)
}

// TopN returns the n most frequent distances, ordered by count descending
// with smaller distances first on ties so the ranking is deterministic
// across runs.
func (h *GapHistogram) TopN(n int) []interfaces.GapBucket {
	buckets := make([]interfaces.GapBucket, 0, len(h.counts))
	for distance, count := range h.counts {
		buckets = append(buckets, interfaces.GapBucket{Distance: distance, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Distance < buckets[j].Distance
	})
	if len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// ScanAccumulator holds the ordered findings of one analysis run plus the
// gap histogram. It is owned exclusively by the file walker for the duration
// of a run; it is not shared across files or goroutines.
type ScanAccumulator struct {
	Dates    []interfaces.DateFinding
	Records  []interfaces.RecordBoundaryFinding
	TextRuns []interfaces.TextRunFinding
	Gaps     *GapHistogram
}

// NewScanAccumulator creates an empty accumulator
func NewScanAccumulator() *ScanAccumulator {
	return &ScanAccumulator{Gaps: NewGapHistogram()}
}

// MergeChunk folds one chunk's findings into the running totals. Gap
// distances are computed between consecutive record-boundary findings of
// this chunk's scan pass only; pairs spanning two passes are never compared.
func (a *ScanAccumulator) MergeChunk(
	dates []interfaces.DateFinding,
	records []interfaces.RecordBoundaryFinding,
	runs []interfaces.TextRunFinding,
) {
	a.Dates = append(a.Dates, dates...)
	a.Records = append(a.Records, records...)
	a.TextRuns = append(a.TextRuns, runs...)

	for i := 1; i < len(records); i++ {
		a.Gaps.Add(records[i].Offset - records[i-1].Offset)
	}
}

// AddTextRun appends a single text run finding, used for the trailing run
// flushed at end of file.
func (a *ScanAccumulator) AddTextRun(run interfaces.TextRunFinding) {
	a.TextRuns = append(a.TextRuns, run)
}

// DateSamples returns up to n date findings with the lowest absolute
// offsets. The accumulator's own slice is left untouched.
func (a *ScanAccumulator) DateSamples(n int) []interfaces.DateFinding {
	samples := make([]interfaces.DateFinding, len(a.Dates))
	copy(samples, a.Dates)
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Offset < samples[j].Offset
	})
	if len(samples) > n {
		samples = samples[:n]
	}
	return samples
}

// KeywordTextRuns returns up to n text runs whose lowercased text contains
// at least one of the given keywords, in discovery order.
func (a *ScanAccumulator) KeywordTextRuns(keywords []string, n int) []interfaces.TextRunFinding {
	var samples []interfaces.TextRunFinding
	for _, run := range a.TextRuns {
		if len(samples) >= n {
			break
		}
		lower := strings.ToLower(run.Text)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				samples = append(samples, run)
				break
			}
		}
	}
	return samples
}
