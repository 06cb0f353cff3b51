package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugStringConstant          = "debug"
	logLevelInfoStringConstant           = "info"
	logLevelWarnStringConstant           = "warn"
	logLevelErrorStringConstant          = "error"
	logFormatStructuredStringConstant    = "structured"
	logFormatConsoleStringConstant       = "console"
	jsonZapEncodingStringConstant        = "json"
	consoleZapEncodingStringConstant     = "console"
	runLogTimeLayoutConstant             = "[15:04:05]"
	runLogDirectoryPermissionsConstant   = 0o755
	runLogFilePermissionsConstant        = 0o644
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
	runLogDirectoryErrorTemplateConstant = "unable to create run log directory %s: %w"
	runLogOpenErrorTemplateConstant      = "unable to open run log %s: %w"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Exported log level constants for reuse across packages.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugStringConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoStringConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnStringConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorStringConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Exported log format constants for reuse across packages.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredStringConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleStringConstant)
)

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

// RunLogger couples a file-backed logger with the function releasing its file handle.
type RunLogger struct {
	Logger   *zap.Logger
	FilePath string
	closer   func() error
}

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: jsonZapEncodingStringConstant,
	LogFormatConsole:    consoleZapEncodingStringConstant,
}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoding, formatExists := logFormatEncodingMapping[requestedLogFormat]
	if !formatExists {
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	configuration := zap.NewProductionConfig()
	configuration.Level = zap.NewAtomicLevelAt(zapLogLevel)
	configuration.Encoding = encoding
	if requestedLogFormat == LogFormatConsole {
		configuration.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		configuration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, buildError := configuration.Build()
	if buildError != nil {
		return nil, buildError
	}

	return logger, nil
}

// CreateRunLogger opens (appending) the run log file and returns a console-encoded logger
// whose entries carry wall-clock timestamps.
func (factory *LoggerFactory) CreateRunLogger(logFilePath string, requestedLogLevel LogLevel) (*RunLogger, error) {
	zapLogLevel, levelExists := logLevelMapping[requestedLogLevel]
	if !levelExists {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	logDirectory := filepath.Dir(logFilePath)
	if directoryError := os.MkdirAll(logDirectory, runLogDirectoryPermissionsConstant); directoryError != nil {
		return nil, fmt.Errorf(runLogDirectoryErrorTemplateConstant, logDirectory, directoryError)
	}

	fileHandle, openError := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, runLogFilePermissionsConstant)
	if openError != nil {
		return nil, fmt.Errorf(runLogOpenErrorTemplateConstant, logFilePath, openError)
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	encoderConfiguration.EncodeTime = zapcore.TimeEncoderOfLayout(runLogTimeLayoutConstant)
	encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfiguration.CallerKey = zapcore.OmitKey
	encoderConfiguration.StacktraceKey = zapcore.OmitKey

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfiguration),
		zapcore.AddSync(fileHandle),
		zap.NewAtomicLevelAt(zapLogLevel),
	)

	return &RunLogger{
		Logger:   zap.New(core),
		FilePath: logFilePath,
		closer:   fileHandle.Close,
	}, nil
}

// Close flushes pending entries and releases the run log file.
func (runLogger *RunLogger) Close() error {
	if runLogger == nil || runLogger.closer == nil {
		return nil
	}
	_ = runLogger.Logger.Sync()
	closeError := runLogger.closer()
	runLogger.closer = nil
	return closeError
}
