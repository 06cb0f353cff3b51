package pipeline

import (
	"fmt"
	"strings"
)

const (
	// SelectorAll selects every stage.
	SelectorAll = "all"

	selectorSeparatorConstant         = ","
	unknownStageErrorTemplateConstant = "%w: %s"
)

// SelectStages resolves a selector expression against the available stages. The expression is "all",
// a group name, or a comma-separated list of stage and group names. The result keeps canonical order.
func SelectStages(expression string, available []ConfiguredStage) ([]ConfiguredStage, error) {
	trimmedExpression := strings.TrimSpace(strings.ToLower(expression))
	if len(trimmedExpression) == 0 || trimmedExpression == SelectorAll {
		return append([]ConfiguredStage(nil), available...), nil
	}

	selectedNames := map[string]bool{}
	for _, rawToken := range strings.Split(trimmedExpression, selectorSeparatorConstant) {
		token := strings.TrimSpace(rawToken)
		if len(token) == 0 {
			continue
		}
		if token == SelectorAll {
			return append([]ConfiguredStage(nil), available...), nil
		}
		matched := false
		for _, stage := range available {
			if stage.Name() == token || string(stage.Group()) == token {
				selectedNames[stage.Name()] = true
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf(unknownStageErrorTemplateConstant, ErrUnknownStage, token)
		}
	}
	if len(selectedNames) == 0 {
		return nil, ErrEmptySelection
	}

	selected := make([]ConfiguredStage, 0, len(selectedNames))
	for _, stage := range available {
		if selectedNames[stage.Name()] {
			selected = append(selected, stage)
		}
	}
	return selected, nil
}

// StageNames lists the names of the provided stages.
func StageNames(stages []ConfiguredStage) []string {
	names := make([]string, 0, len(stages))
	for _, stage := range stages {
		names = append(names, stage.Name())
	}
	return names
}
