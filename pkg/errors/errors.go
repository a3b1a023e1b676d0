package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents transport failures (timeout, DNS, refused)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeStatus represents a non-200 HTTP response
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeRateLimit represents a 429/430 HTTP response
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeFilesystem represents directory or file write errors
	ErrorTypeFilesystem ErrorType = "filesystem"
	// ErrorTypeRegistry represents competitor registry loading errors
	ErrorTypeRegistry ErrorType = "registry"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// FetchError represents a failure while fetching or storing screenshots
type FetchError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether the failure looks transient.
// Nothing in this module retries; the value only annotates log lines.
func (e *FetchError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork:
		return true
	case ErrorTypeStatus:
		return false
	case ErrorTypeRateLimit:
		return false
	default:
		return false
	}
}

// New creates a new FetchError
func New(errType ErrorType, source, message string, err error) *FetchError {
	return &FetchError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *FetchError {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewStatus creates a new unexpected status error
func NewStatus(source string, statusCode int) *FetchError {
	return New(ErrorTypeStatus, source, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(source string, statusCode int, retryAfter string) *FetchError {
	message := fmt.Sprintf("rate limited (status %d); retry after %q", statusCode, retryAfter)
	return New(ErrorTypeRateLimit, source, message, nil)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *FetchError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewFilesystem creates a new filesystem error
func NewFilesystem(source, message string, err error) *FetchError {
	return New(ErrorTypeFilesystem, source, message, err)
}

// NewRegistry creates a new registry error
func NewRegistry(message string, err error) *FetchError {
	return New(ErrorTypeRegistry, "registry", message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *FetchError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// Retryable reports whether err wraps a FetchError that looks transient
func Retryable(err error) bool {
	for err != nil {
		if fe, ok := err.(*FetchError); ok {
			return fe.IsRetryable()
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// IsType reports whether err is a FetchError of the given type
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		if fe, ok := err.(*FetchError); ok && fe.Type == errType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
