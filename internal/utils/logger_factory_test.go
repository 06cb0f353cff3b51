package utils_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/utils"
)

const (
	testLoggerFactoryCaseSupportedFormatConstant   = "supported_log_level_%s_format_%s"
	testLoggerFactoryCaseUnsupportedLevelConstant  = "unsupported_log_level"
	testLoggerFactoryCaseUnsupportedFormatConstant = "unsupported_log_format"
	testLoggerFactorySubtestTemplateConstant       = "%d_%s"
	testInvalidLogLevelConstant                    = "invalid"
	testInvalidLogFormatConstant                   = "invalid"
	testLogMessageConstant                         = "logger_factory_test_message"
	testRunLogFileNameConstant                     = "pipeline_log_test.txt"
	testRunLogMessageConstant                      = "Starting: Fuel Cost Estimation"
)

var runLogLinePattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\]\tINFO\tStarting: Fuel Cost Estimation`)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name                string
		requestedLogLevel   utils.LogLevel
		requestedLogFormat  utils.LogFormat
		expectError         bool
		expectStructuredLog bool
	}{
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelDebug, utils.LogFormatStructured),
			requestedLogLevel:   utils.LogLevelDebug,
			requestedLogFormat:  utils.LogFormatStructured,
			expectStructuredLog: true,
		},
		{
			name:                fmt.Sprintf(testLoggerFactoryCaseSupportedFormatConstant, utils.LogLevelInfo, utils.LogFormatConsole),
			requestedLogLevel:   utils.LogLevelInfo,
			requestedLogFormat:  utils.LogFormatConsole,
			expectStructuredLog: false,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedLevelConstant,
			requestedLogLevel:  utils.LogLevel(testInvalidLogLevelConstant),
			requestedLogFormat: utils.LogFormatStructured,
			expectError:        true,
		},
		{
			name:               testLoggerFactoryCaseUnsupportedFormatConstant,
			requestedLogLevel:  utils.LogLevelInfo,
			requestedLogFormat: utils.LogFormat(testInvalidLogFormatConstant),
			expectError:        true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testLoggerFactorySubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			loggerFactory := utils.NewLoggerFactory()

			pipeReader, pipeWriter, pipeError := os.Pipe()
			require.NoError(testInstance, pipeError)

			originalStderr := os.Stderr
			os.Stderr = pipeWriter

			logger, creationError := loggerFactory.CreateLogger(testCase.requestedLogLevel, testCase.requestedLogFormat)

			os.Stderr = originalStderr

			if testCase.expectError {
				require.Error(testInstance, creationError)
				require.Nil(testInstance, logger)
				require.NoError(testInstance, pipeWriter.Close())
				require.NoError(testInstance, pipeReader.Close())
				return
			}

			require.NoError(testInstance, creationError)
			logger.Info(testLogMessageConstant)
			syncError := logger.Sync()
			if syncError != nil {
				require.True(testInstance, errors.Is(syncError, syscall.ENOTSUP) || errors.Is(syncError, syscall.EINVAL))
			}

			require.NoError(testInstance, pipeWriter.Close())
			capturedOutput, readError := io.ReadAll(pipeReader)
			require.NoError(testInstance, readError)
			require.NoError(testInstance, pipeReader.Close())

			trimmedOutput := bytes.TrimSpace(capturedOutput)
			require.Contains(testInstance, string(trimmedOutput), testLogMessageConstant)
			require.Equal(testInstance, testCase.expectStructuredLog, json.Valid(trimmedOutput))
		})
	}
}

func TestLoggerFactoryCreateRunLogger(testInstance *testing.T) {
	logDirectory := filepath.Join(testInstance.TempDir(), "logs", "nested")
	logFilePath := filepath.Join(logDirectory, testRunLogFileNameConstant)

	runLogger, creationError := utils.NewLoggerFactory().CreateRunLogger(logFilePath, utils.LogLevelInfo)
	require.NoError(testInstance, creationError)
	require.Equal(testInstance, logFilePath, runLogger.FilePath)

	runLogger.Logger.Info(testRunLogMessageConstant)
	runLogger.Logger.Debug("suppressed below configured level")
	require.NoError(testInstance, runLogger.Close())
	require.NoError(testInstance, runLogger.Close())

	contents, readError := os.ReadFile(logFilePath)
	require.NoError(testInstance, readError)

	lines := bytes.Split(bytes.TrimSpace(contents), []byte("\n"))
	require.Len(testInstance, lines, 1)
	require.Regexp(testInstance, runLogLinePattern, string(lines[0]))
}

func TestLoggerFactoryCreateRunLoggerRejectsUnknownLevel(testInstance *testing.T) {
	logFilePath := filepath.Join(testInstance.TempDir(), testRunLogFileNameConstant)

	runLogger, creationError := utils.NewLoggerFactory().CreateRunLogger(logFilePath, utils.LogLevel(testInvalidLogLevelConstant))
	require.Error(testInstance, creationError)
	require.Nil(testInstance, runLogger)
	require.NoFileExists(testInstance, logFilePath)
}
