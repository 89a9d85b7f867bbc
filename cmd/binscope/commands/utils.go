/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Binscope commands. Provides
common configuration loading and logging setup used across all command
implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-binscope/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("BINSCOPE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the run logger from the loaded configuration
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:  logging.LogLevel(viper.GetString("log_level")),
		Format: logging.LogFormatCustom,
		Colors: true,
	}
	if config.Level == "" {
		config.Level = logging.LogLevelInfo
	}
	if viper.GetBool("json_logs") {
		config.Format = logging.LogFormatJSON
		config.Colors = false
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
