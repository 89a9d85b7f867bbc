/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: analyze.go
Description: Analysis command implementation for Akaylee Binscope. Drives the
chunked heuristic scan of one binary file with configuration loading, logging
setup, optional JSON report export, and a final summary.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/akaylee-binscope/pkg/core"
	"github.com/kleascm/akaylee-binscope/pkg/reporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunAnalyze executes the full analysis of one binary file
func RunAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("🔬 Akaylee Binscope - Binary Format Analysis")
	fmt.Println("============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create the walker from configuration
	walker, err := core.NewChunkedFileWalker(&core.WalkerConfig{
		ChunkSize: viper.GetInt("chunk_size"),
		Keywords:  viper.GetStringSlice("keywords"),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Run the scan; the walker renders the report to stdout
	report, err := walker.Analyze(args[0])
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// Export the JSON snapshot if requested
	if path := viper.GetString("json_report"); path != "" {
		if err := reporting.WriteJSON(report, path); err != nil {
			fmt.Printf("\n⚠️  Failed to save JSON report: %v\n", err)
		} else {
			fmt.Printf("\n💾 JSON report saved to: %s\n", path)
		}
	}

	fmt.Println("\n✨ Analysis completed!")
	fmt.Printf("   Run %s finished in %v: %d dates, %d record starts, %d text runs.\n",
		report.RunID, report.Elapsed.Round(time.Millisecond),
		report.DateFindings, report.RecordBoundaries, report.TextRuns)

	return nil
}
