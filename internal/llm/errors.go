// In file: internal/llm/errors.go
package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies why an invocation failed.
type ErrorKind string

const (
	// ConfigurationError means no credential was available at all.
	ConfigurationError ErrorKind = "ConfigurationError"
	// AuthenticationError means the service rejected the credential.
	AuthenticationError ErrorKind = "AuthenticationError"
	// TransientServiceError covers every other failure.
	TransientServiceError ErrorKind = "TransientServiceError"
)

// User-facing messages. Raw transport text never reaches callers.
const (
	msgConfiguration  = "API key is not configured. Set GEMINI_API_KEY or provide a custom key."
	msgAuthentication = "API Key Error. If using a custom key, please check if it is valid."
	msgTransient      = "The generation service is unavailable right now. Please try again."
)

var (
	// ErrEmptyInput is returned when the user input is blank.
	ErrEmptyInput = errors.New("input must not be empty")
	// ErrNoCredential is wrapped by configuration errors.
	ErrNoCredential = errors.New("no API key available")
)

// InvocationError is the only error type Invoke returns for a failed call.
// Error() yields the user-facing message; the cause is kept for errors.Is/As.
type InvocationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *InvocationError) Error() string { return e.Message }

func (e *InvocationError) Unwrap() error { return e.Err }

// KindOf returns the kind of an *InvocationError anywhere in err's chain,
// or "" if there is none.
func KindOf(err error) ErrorKind {
	var ie *InvocationError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// ProviderError is a structured error from a model provider.
type ProviderError struct {
	Provider string
	Code     int
	Status   string
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: %d %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func newConfigurationError(cause error) *InvocationError {
	return &InvocationError{Kind: ConfigurationError, Message: msgConfiguration, Err: cause}
}

// classify maps a transport error onto the error taxonomy. A failure is an
// authentication error when its text mentions "API key" or the service
// answered 400, 401 or 403. Everything else is transient.
func classify(err error) *InvocationError {
	if isAuthFailure(err) {
		return &InvocationError{Kind: AuthenticationError, Message: msgAuthentication, Err: err}
	}
	return &InvocationError{Kind: TransientServiceError, Message: msgTransient, Err: err}
}

func isAuthFailure(err error) bool {
	if strings.Contains(err.Error(), "API key") {
		return true
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		switch pe.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return true
		}
	}
	return false
}
