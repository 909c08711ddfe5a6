package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrInvalidSession        = errors.New("invalid or expired session")
	ErrSessionRevoked        = errors.New("session has been revoked")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrInvalidDateRange      = errors.New("start date must not be after end date")
	ErrEmptyImport           = errors.New("import payload contains no patients")
)

// ValidationError reports per-field problems with a request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = e.Fields[k]
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError when it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
