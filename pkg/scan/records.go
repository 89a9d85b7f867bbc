/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: records.go
Description: Record boundary scanner for Akaylee Binscope. Matches a fixed
8-byte signature (four zero bytes followed by four ASCII alphanumeric bytes)
at every byte position of a chunk, the classic padding-then-key layout of
legacy fixed-record databases.
*/

package scan

import "github.com/kleascm/akaylee-binscope/pkg/interfaces"

// SignatureLen is the length of the record-start signature in bytes
const SignatureLen = 8

// RecordBoundaryScanner detects candidate record-start positions.
// Stateless; one instance can scan any number of chunks.
type RecordBoundaryScanner struct{}

// NewRecordBoundaryScanner creates a new record boundary scanner instance
func NewRecordBoundaryScanner() *RecordBoundaryScanner {
	return &RecordBoundaryScanner{}
}

// ScanChunk tests the signature at every byte position from 0 through
// len(data)-8 inclusive, one byte at a time. Matches are reported at every
// position without deduplication, so long zero runs followed by alphanumeric
// text yield adjacent findings. Offsets are absolute.
func (s *RecordBoundaryScanner) ScanChunk(chunk interfaces.ByteChunk) []interfaces.RecordBoundaryFinding {
	var findings []interfaces.RecordBoundaryFinding
	data := chunk.Data
	for i := 0; i+SignatureLen <= len(data); i++ {
		if matchesSignature(data[i : i+SignatureLen]) {
			findings = append(findings, interfaces.RecordBoundaryFinding{
				Offset: chunk.Base + int64(i),
			})
		}
	}
	return findings
}

// matchesSignature reports whether an 8-byte window is four zero bytes
// followed by four ASCII alphanumeric bytes. Only ASCII letters and digits
// qualify for the trailing half; other printable characters do not.
func matchesSignature(window []byte) bool {
	for _, b := range window[:4] {
		if b != 0 {
			return false
		}
	}
	for _, b := range window[4:SignatureLen] {
		if !isASCIIAlnum(b) {
			return false
		}
	}
	return true
}

func isASCIIAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
