/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: walker.go
Description: Chunked file walker for Akaylee Binscope. Drives the full
analysis of one binary file: header dump, chunked scan loop with an overlap
carry across chunk boundaries, accumulator merging, progress logging, and
final report generation.
*/

package core

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-binscope/pkg/analysis"
	"github.com/kleascm/akaylee-binscope/pkg/interfaces"
	"github.com/kleascm/akaylee-binscope/pkg/logging"
	"github.com/kleascm/akaylee-binscope/pkg/reporting"
	"github.com/kleascm/akaylee-binscope/pkg/scan"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultChunkSize is the chunk size used when none is configured
	DefaultChunkSize = 1 << 20 // 1 MiB

	// overlapLen is the window tail carried into the next chunk's scan pass
	// so date and record-boundary patterns straddling a chunk read are still
	// detected. 8 bytes covers the full signature width and keeps window
	// bases 4-byte aligned for date scanning.
	overlapLen = 8

	// headerDumpLen is how many leading bytes the diagnostic dump shows
	headerDumpLen = 64

	// progressInterval is how many chunks pass between progress log lines
	progressInterval = 10

	topGapCount = 5
	sampleCount = 10
)

// WalkerConfig configures a ChunkedFileWalker
type WalkerConfig struct {
	// ChunkSize is the read size in bytes. Must be a positive multiple of 8,
	// at least 64. Zero selects DefaultChunkSize.
	ChunkSize int

	// Keywords filters the text run samples in the final report. Empty
	// selects analysis.DefaultKeywords.
	Keywords []string

	// Out receives the hex dump and the formatted report. Nil selects
	// os.Stdout.
	Out io.Writer

	// Logger receives progress and summary events. Nil selects a default
	// logger.
	Logger *logging.Logger
}

// ChunkedFileWalker reads a file in fixed-size chunks and feeds each chunk
// to the heuristic scanners, merging findings into a per-run accumulator.
// All run state lives on the walker call stack, so one walker can analyze
// several files in sequence. Not safe for concurrent use; analysis is
// strictly single-threaded by design.
type ChunkedFileWalker struct {
	chunkSize int
	keywords  []string
	out       io.Writer
	logger    *logging.Logger
	printer   *message.Printer
}

// NewChunkedFileWalker creates a walker from the given configuration
func NewChunkedFileWalker(config *WalkerConfig) (*ChunkedFileWalker, error) {
	if config == nil {
		config = &WalkerConfig{}
	}

	chunkSize := config.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 64 || chunkSize%8 != 0 {
		return nil, fmt.Errorf("chunk size must be a multiple of 8 and at least 64, got %d", chunkSize)
	}

	keywords := config.Keywords
	if len(keywords) == 0 {
		keywords = analysis.DefaultKeywords
	}

	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	logger := config.Logger
	if logger == nil {
		var err error
		logger, err = logging.NewLogger(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	return &ChunkedFileWalker{
		chunkSize: chunkSize,
		keywords:  keywords,
		out:       out,
		logger:    logger,
		printer:   message.NewPrinter(language.English),
	}, nil
}

// Analyze scans one file end to end and returns its report. The report is
// also rendered to the walker's output writer. A missing or unreadable file
// fails immediately with no partial report.
func (w *ChunkedFileWalker) Analyze(path string) (*interfaces.AnalysisReport, error) {
	start := time.Now()
	runID := uuid.New().String()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	size := info.Size()

	w.logger.LogScanStart(runID, path, size)
	w.printer.Fprintf(w.out, "Analyzing file of size %d bytes...\n", size)

	if err := w.dumpHeader(f); err != nil {
		return nil, err
	}

	acc := analysis.NewScanAccumulator()
	chunks, err := w.scanChunks(f, size, acc)
	if err != nil {
		return nil, err
	}

	report := w.buildReport(runID, path, size, chunks, acc, start)
	reporting.Render(w.out, report)
	w.logger.LogRunComplete(runID, report.DateFindings, report.RecordBoundaries, report.TextRuns, report.Elapsed)

	return report, nil
}

// dumpHeader shows the first bytes of the file and resets the read offset.
// Diagnostic only; header bytes are scanned again by the chunk loop.
func (w *ChunkedFileWalker) dumpHeader(f *os.File) error {
	header := make([]byte, headerDumpLen)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if n > 0 {
		fmt.Fprintf(w.out, "\nFirst %d bytes:\n", n)
		DumpHeader(w.out, header[:n])
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}
	return nil
}

// scanChunks runs the chunked scan loop. Each pass scans a window of the
// previous chunk's 8-byte tail plus the new chunk; scan ranges are arranged
// so no position is ever tested twice:
//   - record starts: the previous pass covered window starts through its
//     length-8, which is exactly position 0 of the next window, so an
//     overlapped pass begins at window position 1;
//   - dates: the previous pass stopped strictly before its length-8, so the
//     next window's aligned positions 0 and 4 are always fresh.
//
// Text runs never see the overlap; the extractor carries its open run across
// chunks instead.
func (w *ChunkedFileWalker) scanChunks(f *os.File, size int64, acc *analysis.ScanAccumulator) (int, error) {
	dates := scan.NewDateScanner()
	records := scan.NewRecordBoundaryScanner()
	text := scan.NewTextRunExtractor()

	buf := make([]byte, w.chunkSize)
	var carry []byte
	var offset int64
	chunks := 0

	for {
		n, err := io.ReadFull(f, buf)
		if n > 0 {
			chunk := buf[:n]
			window := make([]byte, 0, len(carry)+n)
			window = append(window, carry...)
			window = append(window, chunk...)
			base := offset - int64(len(carry))

			dateFindings := dates.ScanChunk(interfaces.ByteChunk{Data: window, Base: base})

			recordWindow := interfaces.ByteChunk{Data: window, Base: base}
			if len(carry) > 0 {
				recordWindow = interfaces.ByteChunk{Data: window[1:], Base: base + 1}
			}
			recordFindings := records.ScanChunk(recordWindow)

			runFindings := text.Feed(interfaces.ByteChunk{Data: chunk, Base: offset})

			acc.MergeChunk(dateFindings, recordFindings, runFindings)

			offset += int64(n)
			chunks++
			if chunks%progressInterval == 0 {
				w.logger.LogProgress(offset, size, chunks)
			}

			tail := len(window) - overlapLen
			if tail < 0 {
				tail = 0
			}
			carry = append(carry[:0], window[tail:]...)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return chunks, fmt.Errorf("failed to read chunk at offset %d: %w", offset, err)
		}
	}

	if trailing, ok := text.Flush(); ok {
		acc.AddTextRun(trailing)
	}

	return chunks, nil
}

// buildReport assembles the run summary from the accumulator
func (w *ChunkedFileWalker) buildReport(runID, path string, size int64, chunks int, acc *analysis.ScanAccumulator, start time.Time) *interfaces.AnalysisReport {
	return &interfaces.AnalysisReport{
		RunID:            runID,
		FilePath:         path,
		FileSize:         size,
		ChunksProcessed:  chunks,
		DateFindings:     len(acc.Dates),
		RecordBoundaries: len(acc.Records),
		TextRuns:         len(acc.TextRuns),
		TopGaps:          acc.Gaps.TopN(topGapCount),
		DateSamples:      acc.DateSamples(sampleCount),
		TextSamples:      acc.KeywordTextRuns(w.keywords, sampleCount),
		StartedAt:        start,
		Elapsed:          time.Since(start),
	}
}
