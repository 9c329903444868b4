package order

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrAlreadyPaid         = errors.New("order already paid")
	ErrAlreadyReady        = errors.New("order already ready")
	ErrIllegalTransition   = errors.New("status change not allowed")
	ErrDepositExceedsTotal = errors.New("deposit cannot exceed order total")
)

// ValidationError lists every offending input field with its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid input: " + strings.Join(names, ", ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
