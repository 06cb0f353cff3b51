// Package ui provides helpers for formatting human-readable console output.
//
// The helpers translate pipeline stage events into concise messages so that run
// progress remains readable for CLI users while detailed telemetry continues to
// flow through structured loggers.
package ui
