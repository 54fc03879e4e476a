// Package exitcode defines the exit codes of the jenkins-builder CLI and an
// error type that carries one through a command's error return.
package exitcode

import "errors"

// Exit codes returned by the jenkins-builder CLI.
// These constants allow wrapper scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// Success indicates every project's build was triggered.
	Success = 0

	// InvalidJSON indicates the credentials file is not valid JSON.
	InvalidJSON = 1

	// MissingUser indicates the credentials file lacks a string 'user' key.
	MissingUser = 2

	// MissingToken indicates the credentials file lacks a string 'token' key.
	MissingToken = 3

	// TransportFailure indicates the CI server could not be reached and no
	// HTTP status was observed (DNS, connect, TLS failures).
	TransportFailure = 7

	// InvalidArgument indicates a setup failure before any request was made:
	// an unreadable credentials file or an unset PROJECTS variable (EINVAL).
	InvalidArgument = 22

	// Usage indicates a bad command-line invocation (EX_USAGE).
	Usage = 64
)

// A failed build trigger exits with the HTTP status code the CI server
// returned, so the full code space is not enumerable here.

// Error pairs an exit code with the failure that produced it.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with the given exit code.
func New(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// From extracts the exit code from err. Errors that carry no code default
// to Usage, which is what cobra's flag and argument errors amount to.
func From(err error) int {
	if err == nil {
		return Success
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	return Usage
}
