/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers config validation, default
construction, and custom formatter output.
*/

package logging_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/kleascm/akaylee-binscope/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerConfigValidate(t *testing.T) {
	valid := &logging.LoggerConfig{Level: logging.LogLevelInfo, Format: logging.LogFormatCustom}
	assert.NoError(t, valid.Validate())

	badFormat := &logging.LoggerConfig{Level: logging.LogLevelInfo, Format: "xml"}
	assert.Error(t, badFormat.Validate())

	badLevel := &logging.LoggerConfig{Level: "verbose", Format: logging.LogFormatJSON}
	assert.Error(t, badLevel.Validate())
}

func TestNewLoggerDefaults(t *testing.T) {
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLogger().GetLevel())
}

func TestNewLoggerRejectsInvalidConfig(t *testing.T) {
	_, err := logging.NewLogger(&logging.LoggerConfig{Level: "loud", Format: logging.LogFormatCustom})
	assert.Error(t, err)
}

func TestCustomFormatterOutput(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Scan progress",
		Data: logrus.Fields{
			"chunks":  10,
			"bytes":   1024,
			"elapsed": 2 * time.Second,
		},
		Time: time.Now(),
	}

	output, err := formatter.Format(entry)
	require.NoError(t, err)

	line := string(output)
	assert.Contains(t, line, "INFO Scan progress")
	// Fields render sorted by key
	assert.Contains(t, line, "bytes=1024 chunks=10 elapsed=2s")
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatJSON,
	})
	require.NoError(t, err)

	var out bytes.Buffer
	logger.SetOutput(&out)

	logger.LogProgress(640, 1280, 10)
	assert.Contains(t, out.String(), `"bytes_processed":640`)
	assert.Contains(t, out.String(), `"chunks":10`)
}
