package pipeline

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func stringFlagOverride(command *cobra.Command, flagName string, configured string) string {
	if command == nil || !command.Flags().Changed(flagName) {
		return configured
	}
	flagValue, _ := command.Flags().GetString(flagName)
	trimmedValue := strings.TrimSpace(flagValue)
	if len(trimmedValue) == 0 {
		return configured
	}
	return trimmedValue
}

func boolFlagOverride(command *cobra.Command, flagName string, configured bool) bool {
	if command == nil || !command.Flags().Changed(flagName) {
		return configured
	}
	flagValue, _ := command.Flags().GetBool(flagName)
	return flagValue
}
