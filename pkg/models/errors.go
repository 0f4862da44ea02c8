package models

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup kinds reported by NotFoundError.
const (
	KindAlias      = "alias"
	KindProvider   = "provider"
	KindAgentModel = "agent model"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when a lookup key is absent from its table.
type NotFoundError struct {
	Kind  string
	Key   string
	Valid []string
}

func (e *NotFoundError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%s not found: %q", e.Kind, e.Key)
	}
	return fmt.Sprintf("%s not found: %q (valid: %s)", e.Kind, e.Key, strings.Join(e.Valid, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
