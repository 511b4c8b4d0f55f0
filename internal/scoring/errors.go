package scoring

import "fmt"

// ConfigurationError is returned when the round setup cannot be scored.
// It is raised before any computation starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scoring configuration: %s: %s", e.Field, e.Reason)
}
