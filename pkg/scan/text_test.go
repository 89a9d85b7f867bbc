/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: text_test.go
Description: Tests for the text run extractor. Covers the minimum length
threshold, whitespace handling, open runs carried across chunk boundaries,
and the end-of-file flush.
*/

package scan_test

import (
	"testing"

	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
	"github.com/kleascm/akaylee-binscope/pkg/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedEmitsQualifyingRun(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	data := append([]byte{0xFF, 0xFF}, []byte("hello")...)
	data = append(data, 0xFF)

	findings := extractor.Feed(interfaces.ByteChunk{Data: data, Base: 200})
	require.Len(t, findings, 1)
	assert.Equal(t, int64(202), findings[0].Offset)
	assert.Equal(t, 5, findings[0].Length)
	assert.Equal(t, "hello", findings[0].Text)
}

func TestFeedThresholdIsStrict(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	// Exactly 4 printable bytes is not enough
	data := append([]byte("abcd"), 0x00)
	assert.Empty(t, extractor.Feed(interfaces.ByteChunk{Data: data, Base: 0}))

	// 5 is
	data = append([]byte("abcde"), 0x00)
	findings := extractor.Feed(interfaces.ByteChunk{Data: data, Base: 0})
	require.Len(t, findings, 1)
	assert.Equal(t, "abcde", findings[0].Text)
}

func TestFeedWhitespaceQualifies(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	data := append([]byte("a\tb\nc\rd"), 0x00)
	findings := extractor.Feed(interfaces.ByteChunk{Data: data, Base: 0})
	require.Len(t, findings, 1)
	assert.Equal(t, "a\tb\nc\rd", findings[0].Text)
	assert.Equal(t, 7, findings[0].Length)
}

func TestFeedMultipleRuns(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	data := []byte("first run\x00\x01short\xffsecond run\x02")
	findings := extractor.Feed(interfaces.ByteChunk{Data: data, Base: 0})
	require.Len(t, findings, 3)
	assert.Equal(t, "first run", findings[0].Text)
	assert.Equal(t, "short", findings[1].Text)
	assert.Equal(t, "second run", findings[2].Text)
}

func TestOpenRunCarriedAcrossChunks(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	// "hel" ends chunk one still open; "lo" completes it in chunk two
	first := append([]byte{0xFF}, []byte("hel")...)
	findings := extractor.Feed(interfaces.ByteChunk{Data: first, Base: 60})
	assert.Empty(t, findings)

	second := append([]byte("lo"), 0xFF)
	findings = extractor.Feed(interfaces.ByteChunk{Data: second, Base: 64})
	require.Len(t, findings, 1)
	assert.Equal(t, int64(61), findings[0].Offset)
	assert.Equal(t, "hello", findings[0].Text)
}

func TestFlushEmitsTrailingRun(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	findings := extractor.Feed(interfaces.ByteChunk{Data: []byte("trailing text"), Base: 100})
	assert.Empty(t, findings, "open run must not be emitted before flush")

	finding, ok := extractor.Flush()
	require.True(t, ok)
	assert.Equal(t, int64(100), finding.Offset)
	assert.Equal(t, "trailing text", finding.Text)

	// Extractor is empty afterwards
	_, ok = extractor.Flush()
	assert.False(t, ok)
}

func TestFlushDiscardsShortTrailingRun(t *testing.T) {
	extractor := scan.NewTextRunExtractor()

	extractor.Feed(interfaces.ByteChunk{Data: []byte("abcd"), Base: 0})
	_, ok := extractor.Flush()
	assert.False(t, ok)
}
