/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: text.go
Description: Printable text run extractor for Akaylee Binscope. Accumulates
consecutive printable or whitespace bytes into runs and emits runs longer
than a minimum threshold. Carries an open run across chunk boundaries so
strings straddling a chunk read are recovered whole.
*/

package scan

import "github.com/kleascm/akaylee-binscope/pkg/interfaces"

// MinTextRunLen is the exclusive lower bound on emitted run lengths: a run
// is reported only when it is longer than this many bytes.
const MinTextRunLen = 4

// TextRunExtractor scans chunks left to right for runs of qualifying bytes.
// Unlike the other scanners it is stateful: a run still open when a chunk
// ends is carried into the next chunk rather than dropped, and Flush emits a
// trailing open run at end of file. One extractor serves exactly one
// analysis run and is owned by the walker.
type TextRunExtractor struct {
	runStart int64  // absolute offset of the open run's first byte
	run      []byte // open run bytes; nil when no run is open
}

// NewTextRunExtractor creates a new text run extractor instance
func NewTextRunExtractor() *TextRunExtractor {
	return &TextRunExtractor{}
}

// Feed scans one chunk and returns the runs completed within it. A byte
// qualifies when it is ASCII printable (0x20-0x7E) or tab, line feed, or
// carriage return. A non-qualifying byte ends the open run, which is emitted
// if longer than MinTextRunLen and discarded otherwise.
func (e *TextRunExtractor) Feed(chunk interfaces.ByteChunk) []interfaces.TextRunFinding {
	var findings []interfaces.TextRunFinding
	for i, b := range chunk.Data {
		if isTextByte(b) {
			if len(e.run) == 0 {
				e.runStart = chunk.Base + int64(i)
			}
			e.run = append(e.run, b)
			continue
		}
		if finding, ok := e.closeRun(); ok {
			findings = append(findings, finding)
		}
	}
	return findings
}

// Flush ends the analysis run, emitting a still-open trailing run if it
// qualifies. The extractor is empty afterwards.
func (e *TextRunExtractor) Flush() (interfaces.TextRunFinding, bool) {
	return e.closeRun()
}

// closeRun ends the open run, returning it as a finding when it exceeds the
// minimum length.
func (e *TextRunExtractor) closeRun() (interfaces.TextRunFinding, bool) {
	run := e.run
	e.run = nil
	if len(run) <= MinTextRunLen {
		return interfaces.TextRunFinding{}, false
	}
	return interfaces.TextRunFinding{
		Offset: e.runStart,
		Length: len(run),
		Text:   string(run),
	}, true
}

func isTextByte(b byte) bool {
	return (b >= 0x20 && b <= 0x7e) || b == '\t' || b == '\n' || b == '\r'
}
