/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dates.go
Description: Date pattern scanner for Akaylee Binscope. Tests fixed-width
little-endian interpretations of raw bytes (Unix epoch seconds and bare
calendar years) against plausible calendar ranges to surface date-like
values in unknown binary formats.
*/

package scan

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
)

// Plausibility bounds for the two interpretations. All bounds are exclusive:
// an epoch timestamp qualifies when its UTC year is strictly between 1900 and
// 2100, a raw year when it is strictly between 1800 and 2100.
const (
	epochYearFloor = 1900
	epochYearCeil  = 2100
	rawYearFloor   = 1800
	rawYearCeil    = 2100
)

// dateWindowLen is the headroom required past a scan position. The trailing
// window of each chunk is never date-scanned; the walker's overlap carry
// closes the resulting blind spot.
const dateWindowLen = 8

// DateScanner detects date-like byte patterns at fixed positions.
// Stateless; one instance can scan any number of chunks.
type DateScanner struct{}

// NewDateScanner creates a new date scanner instance
func NewDateScanner() *DateScanner {
	return &DateScanner{}
}

// ScanAt attempts the two independent fixed-width decodes at position pos
// within data. Offsets in the returned findings are absolute (base + pos).
// Returns zero, one, or two findings; both interpretations may fire at the
// same position.
func (s *DateScanner) ScanAt(data []byte, pos int, base int64) []interfaces.DateFinding {
	findings := make([]interfaces.DateFinding, 0, 2)

	if ts, ok := decodeEpochSeconds(data, pos); ok {
		when := time.Unix(int64(ts), 0).UTC()
		findings = append(findings, interfaces.DateFinding{
			Offset:      base + int64(pos),
			Kind:        interfaces.DateKindEpochSeconds,
			Value:       uint64(ts),
			Description: fmt.Sprintf("Possible Unix timestamp: %s", when.Format("2006-01-02 15:04:05")),
		})
	}

	if year, ok := decodeRawYear(data, pos); ok {
		findings = append(findings, interfaces.DateFinding{
			Offset:      base + int64(pos),
			Kind:        interfaces.DateKindTwoByteYear,
			Value:       uint64(year),
			Description: fmt.Sprintf("Possible year: %d", year),
		})
	}

	return findings
}

// ScanChunk invokes ScanAt at every 4-byte-aligned position of the chunk,
// stopping short of the trailing window. The walker hands over chunks whose
// base offsets are 4-byte aligned, so chunk-relative alignment matches
// file-absolute alignment.
func (s *DateScanner) ScanChunk(chunk interfaces.ByteChunk) []interfaces.DateFinding {
	var findings []interfaces.DateFinding
	for i := 0; i < len(chunk.Data)-dateWindowLen; i += 4 {
		findings = append(findings, s.ScanAt(chunk.Data, i, chunk.Base)...)
	}
	return findings
}

// decodeEpochSeconds reads a 4-byte little-endian unsigned integer at pos and
// accepts it as epoch seconds when the resulting UTC calendar year is
// plausible. Rejection is the routine outcome, reported through ok.
func decodeEpochSeconds(data []byte, pos int) (uint32, bool) {
	if pos < 0 || pos+4 > len(data) {
		return 0, false
	}
	v := binary.LittleEndian.Uint32(data[pos:])
	if v == 0 {
		return 0, false
	}
	year := time.Unix(int64(v), 0).UTC().Year()
	if year <= epochYearFloor || year >= epochYearCeil {
		return 0, false
	}
	return v, true
}

// decodeRawYear reads a 2-byte little-endian unsigned integer at pos and
// accepts it as a bare calendar year when plausible.
func decodeRawYear(data []byte, pos int) (uint16, bool) {
	if pos < 0 || pos+2 > len(data) {
		return 0, false
	}
	year := binary.LittleEndian.Uint16(data[pos:])
	if year <= rawYearFloor || year >= rawYearCeil {
		return 0, false
	}
	return year, true
}
