/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for Akaylee Binscope. Wires up the root
analysis command, the standalone hexdump command, flag handling, and viper
configuration binding for exploratory reverse-engineering of unknown binary
file formats.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-binscope/cmd/binscope/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Scan configuration
	chunkSize  int
	keywords   []string
	jsonReport string

	// Hexdump configuration
	dumpLength int
)

func main() {
	// Create root command: the analysis itself takes exactly one positional
	// argument, the file to analyze
	rootCmd := &cobra.Command{
		Use:   "binscope <binary_file>",
		Short: "Akaylee Binscope - Exploratory binary file format analyzer",
		Long: `Akaylee Binscope performs exploratory reverse-engineering of unknown binary
file formats. It scans a file for date-like byte patterns, repeating
record-boundary markers, and embedded printable-text runs, then prints
frequency statistics to help an analyst infer the file's structure, such as
a legacy genealogical database. The output is advisory, not authoritative.`,
		Version: "1.0.0",
		Args:    cobra.ExactArgs(1),
		RunE:    commands.RunAnalyze,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add analysis flags
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Chunk size in bytes (0 = 1 MiB default, must be a multiple of 8)")
	rootCmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Keywords for the text region samples (default genealogical set)")
	rootCmd.Flags().StringVar(&jsonReport, "json-report", "", "Write the full report as JSON to this path")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("chunk_size", rootCmd.Flags().Lookup("chunk-size"))
	viper.BindPFlag("keywords", rootCmd.Flags().Lookup("keywords"))
	viper.BindPFlag("json_report", rootCmd.Flags().Lookup("json-report"))

	// Add hexdump command for a quick look at file headers
	hexdumpCmd := &cobra.Command{
		Use:   "hexdump <binary_file>",
		Short: "Dump the leading bytes of a file as hex and ASCII",
		Long: `Dump the first bytes of a file as a hex+ASCII listing, 16 bytes per line.
Useful for a quick manual look at magic numbers and header fields before
running the full analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunHexdump,
	}

	hexdumpCmd.Flags().IntVar(&dumpLength, "length", 64, "Number of leading bytes to dump")
	viper.BindPFlag("dump_length", hexdumpCmd.Flags().Lookup("length"))

	rootCmd.AddCommand(hexdumpCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
