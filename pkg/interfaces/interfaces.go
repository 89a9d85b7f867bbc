/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types for Akaylee Binscope. Defines the chunk and finding
types produced by the heuristic scanners, plus the analysis report structure,
so all packages share one vocabulary without import cycles.
*/

package interfaces

import "time"

// ByteChunk is an immutable contiguous slice of file bytes plus the absolute
// offset of its first byte within the file. Scanners translate chunk-relative
// positions to absolute offsets through Base, so findings from different
// chunks are directly comparable and sortable.
type ByteChunk struct {
	Data []byte
	Base int64
}

// DateKind identifies which fixed-width interpretation produced a DateFinding
type DateKind int

const (
	// DateKindEpochSeconds is a 4-byte little-endian unsigned count of
	// seconds since 1970-01-01T00:00:00Z
	DateKindEpochSeconds DateKind = iota
	// DateKindTwoByteYear is a 2-byte little-endian unsigned calendar year
	DateKindTwoByteYear
)

// String returns a human-readable name for the date interpretation
func (k DateKind) String() string {
	switch k {
	case DateKindEpochSeconds:
		return "epoch-seconds"
	case DateKindTwoByteYear:
		return "two-byte-year"
	default:
		return "unknown"
	}
}

// DateFinding is a single plausible date detected at an absolute file offset.
// Immutable once produced.
type DateFinding struct {
	Offset      int64    `json:"offset"`
	Kind        DateKind `json:"kind"`
	Value       uint64   `json:"value"`
	Description string   `json:"description"`
}

// RecordBoundaryFinding is an absolute file offset where the fixed
// record-start signature (4 zero bytes followed by 4 alphanumeric bytes)
// matched. Immutable.
type RecordBoundaryFinding struct {
	Offset int64 `json:"offset"`
}

// TextRunFinding is a run of printable/whitespace bytes longer than the
// minimum threshold, with the absolute offset of its first byte and the
// recovered text. Immutable.
type TextRunFinding struct {
	Offset int64  `json:"offset"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// GapBucket is one entry of the ranked gap histogram: a distance between
// consecutive record-boundary findings and how often it occurred.
type GapBucket struct {
	Distance int64 `json:"distance"`
	Count    int   `json:"count"`
}

// AnalysisReport summarizes one full analysis run. It is rendered to the
// console and optionally written as a JSON snapshot; it is never read back
// or compared across runs.
type AnalysisReport struct {
	RunID            string           `json:"run_id"`
	FilePath         string           `json:"file_path"`
	FileSize         int64            `json:"file_size"`
	ChunksProcessed  int              `json:"chunks_processed"`
	DateFindings     int              `json:"date_findings"`
	RecordBoundaries int              `json:"record_boundaries"`
	TextRuns         int              `json:"text_runs"`
	TopGaps          []GapBucket      `json:"top_gaps"`
	DateSamples      []DateFinding    `json:"date_samples"`
	TextSamples      []TextRunFinding `json:"text_samples"`
	StartedAt        time.Time        `json:"started_at"`
	Elapsed          time.Duration    `json:"elapsed_ns"`
}
