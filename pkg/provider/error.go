package provider

import (
	"errors"
	"strings"
)

var (
	// ErrAuthorization covers invalid keys and exhausted quotas alike:
	// either way every further call with the same key will fail.
	ErrAuthorization = errors.New("provider authorization failed")
)

// IsAuthorization reports whether err is an auth/quota failure, either
// tagged explicitly or recognizable from the provider's error text.
func IsAuthorization(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrAuthorization) {
		return true
	}

	text := strings.ToLower(err.Error())

	for _, hint := range []string{"quota", "credit", "insufficient", "authentication", "invalid api key", "invalid x-api-key", "api key not valid", "unauthorized"} {
		if strings.Contains(text, hint) {
			return true
		}
	}

	return false
}

// AuthError tags err as an authorization failure while preserving it.
func AuthError(err error) error {
	return &authError{err: err}
}

type authError struct {
	err error
}

func (e *authError) Error() string {
	return e.err.Error()
}

func (e *authError) Unwrap() []error {
	return []error{ErrAuthorization, e.err}
}
