package apperr

import "fmt"

// ValidationError marks a request that failed validation before any I/O.
// Callers can fix the input and retry; nothing is retried automatically.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// FetchError is a transport failure or non-success HTTP status from an
// upstream feed host. Failed responses are never cached, so re-issuing the
// request attempts a fresh fetch.
type FetchError struct {
	URL    string
	Status string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch feed: %v", e.Err)
	}
	return fmt.Sprintf("failed to fetch feed: %s", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func NewFetch(url, status string) *FetchError {
	return &FetchError{URL: url, Status: status}
}

func NewFetchWrap(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}

// ParseError means an upstream payload did not match the expected XML/JSON
// shape, usually because the feed format changed.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %s feed, the feed format may have changed: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParse(source string, err error) *ParseError {
	return &ParseError{Source: source, Err: err}
}

// NotFoundError signals a detail lookup that found no matching entry. It is
// distinct from a fetch failure and reported as an absence.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}
