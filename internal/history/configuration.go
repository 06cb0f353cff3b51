package history

import "strings"

const (
	defaultDatabasePathConstant = "data/history/logicost.db"
	defaultListLimitConstant    = 10
)

// Configuration describes where run history is stored.
type Configuration struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
	ListLimit    int    `mapstructure:"list_limit"`
}

// DefaultConfiguration returns the baseline history configuration.
func DefaultConfiguration() Configuration {
	return Configuration{
		Enabled:      true,
		DatabasePath: defaultDatabasePathConstant,
		ListLimit:    defaultListLimitConstant,
	}
}

// Sanitize trims the database path and restores defaults for unset values.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.DatabasePath = strings.TrimSpace(sanitized.DatabasePath)
	if len(sanitized.DatabasePath) == 0 {
		sanitized.DatabasePath = defaultDatabasePathConstant
	}
	if sanitized.ListLimit <= 0 {
		sanitized.ListLimit = defaultListLimitConstant
	}
	return sanitized
}
