package catalog

import "fmt"

// ValidationError is a broken catalog entry (fatal, never retried)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("catalog: %s: %s", e.Field, e.Message)
}
