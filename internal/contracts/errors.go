package contracts

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPosition is a configuration error: no catalog entry for a position label
	ErrUnknownPosition = errors.New("unknown position")
	// ErrUnknownRole is a configuration error: no weight table for a role code
	ErrUnknownRole = errors.New("unknown role")
	// ErrMissingAttribute means a role weight references an attribute the player lacks
	ErrMissingAttribute = errors.New("missing attribute")
)

// QueryError is a caller error naming the offending query field
type QueryError struct {
	Field   string
	Message string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query: %s: %s", e.Field, e.Message)
}
