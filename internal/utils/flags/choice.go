package flags

import (
	"fmt"
	"strings"
)

const (
	keywordPlaceholderTemplateConstant = "`<%s>`"
	keywordSeparatorConstant           = "|"
	nameSeparatorConstant              = ", "
	namesClauseTemplateConstant        = "%s or a comma-separated subset of: %s"
	descriptionTemplateConstant        = "%s %s"
)

// SelectorUsage describes a flag that accepts either one keyword or a comma-separated list of names.
// The default keyword is rendered in upper case.
type SelectorUsage struct {
	DefaultKeyword string
	Keywords       []string
	Names          []string
}

// String renders the usage text, for example "`<ALL|analysis>` or a comma-separated subset of: clean, fuel".
func (usage SelectorUsage) String() string {
	return usage.Describe("")
}

// Describe renders the usage text prefixed with a description.
func (usage SelectorUsage) Describe(description string) string {
	keywords := uniqueChoices(usage.Keywords, usage.DefaultKeyword)
	rendered := fmt.Sprintf(keywordPlaceholderTemplateConstant, strings.Join(keywords, keywordSeparatorConstant))
	if names := uniqueChoices(usage.Names, ""); len(names) > 0 {
		rendered = fmt.Sprintf(namesClauseTemplateConstant, rendered, strings.Join(names, nameSeparatorConstant))
	}
	if trimmedDescription := strings.TrimSpace(description); len(trimmedDescription) > 0 {
		return fmt.Sprintf(descriptionTemplateConstant, trimmedDescription, rendered)
	}
	return rendered
}

func uniqueChoices(choices []string, defaultChoice string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	unique := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, duplicate := seen[normalizedChoice]; duplicate {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		unique = append(unique, trimmedChoice)
	}
	return unique
}
