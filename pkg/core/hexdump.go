/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hexdump.go
Description: Hex and ASCII dump formatting for Akaylee Binscope. Renders raw
bytes 16 per line with offsets, used for the diagnostic header dump at the
start of an analysis run and by the standalone hexdump command.
*/

package core

import (
	"fmt"
	"io"
	"strings"
)

const bytesPerLine = 16

// DumpHeader writes a hex+ASCII dump of data to out, 16 bytes per line.
// Offsets are relative to the start of data. Non-printable bytes render
// as '.' in the ASCII column.
func DumpHeader(out io.Writer, data []byte) {
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[i:end]

		hexParts := make([]string, len(line))
		var ascii strings.Builder
		for j, b := range line {
			hexParts[j] = fmt.Sprintf("%02x", b)
			if b >= 0x20 && b <= 0x7e {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}

		fmt.Fprintf(out, "%04x: %-48s | %s\n", i, strings.Join(hexParts, " "), ascii.String())
	}
}
