package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/logicost/internal/ui"
)

func TestStagePrinterWritesTaggedLines(testInstance *testing.T) {
	var output bytes.Buffer
	printer := ui.NewStagePrinter(&output, false)
	event := testStageEvent()

	printer.StageStarted(event)
	printer.StageWarned(event, testWarningMessageConstant)
	printer.StageFailed(event, errors.New(testFailureReasonConstant))
	printer.StageSkipped(event)
	printer.StageSucceeded(event)

	expectedOutput := "RUN  " + testStartedExpectation + "\n" +
		"WARN " + testWarningExpectation + "\n" +
		"FAIL " + testFailedExpectation + "\n" +
		"SKIP " + testSkippedExpectation + "\n" +
		"OK   " + testSucceededExpectation + "\n"
	require.Equal(testInstance, expectedOutput, output.String())
}

func TestStagePrinterColorsTagsWhenEnabled(testInstance *testing.T) {
	var output bytes.Buffer
	printer := ui.NewStagePrinter(&output, true)

	printer.StageFailed(testStageEvent(), errors.New(testFailureReasonConstant))

	require.Contains(testInstance, output.String(), "\x1b[")
	require.Contains(testInstance, output.String(), testFailedExpectation)
}
