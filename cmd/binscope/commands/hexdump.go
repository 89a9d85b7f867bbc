/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: hexdump.go
Description: Hexdump command implementation for Akaylee Binscope. Dumps the
leading bytes of a file as a hex+ASCII listing for a quick manual look at
headers and magic numbers.
*/

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/kleascm/akaylee-binscope/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunHexdump dumps the leading bytes of a file
func RunHexdump(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	length := viper.GetInt("dump_length")
	if length <= 0 {
		length = 64
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, length)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	fmt.Printf("First %d bytes of %s:\n", n, args[0])
	core.DumpHeader(os.Stdout, buf[:n])

	return nil
}
