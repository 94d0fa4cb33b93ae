package status

import (
	"fmt"
	"strings"
)

// Status is the outcome of an operation: a Code plus an optional
// free-text message. Statuses are immutable values, created where an
// operation concludes and propagated by return value. Branching logic
// must inspect the code only; the message elaborates for humans but is
// never authoritative.
type Status struct {
	code    Code
	message string
}

// OK returns a success status.
func OK() Status {
	return Status{}
}

// New creates a status with the given code and message.
//
// Example:
//
//	return status.New(status.NotFoundError, "record not found")
func New(code Code, message string) Status {
	return Status{code: code, message: message}
}

// Newf creates a status with a formatted message.
//
// Example:
//
//	return status.Newf(status.InvalidArgumentError, "bad bucket count: %d", n)
func Newf(code Code, format string, args ...any) Status {
	return Status{code: code, message: fmt.Sprintf(format, args...)}
}

// Code returns the status code.
func (s Status) Code() Code {
	return s.code
}

// Message returns the status message. Empty for most success values.
func (s Status) Message() string {
	return s.message
}

// IsOK reports whether the status is success.
func (s Status) IsOK() bool {
	return s.code == Success
}

// And combines two statuses with first-failure-wins semantics: if the
// receiver is already a failure it is returned unchanged, otherwise the
// other status is adopted as-is. This accumulates the result of a
// sequence of sub-operations without overwriting an earlier failure.
//
// Example:
//
//	st := step1()
//	st = st.And(step2())
//	st = st.And(step3())
func (s Status) And(other Status) Status {
	if s.code != Success {
		return s
	}
	return other
}

// Equal reports whether two statuses carry the same code. The message
// is never part of status identity.
func (s Status) Equal(other Status) bool {
	return s.code == other.code
}

// Compare orders statuses first by code ordinal, then lexicographically
// by message. It returns a negative number, zero, or a positive number
// as s sorts before, equal to, or after other. The order is total, which
// makes Status usable as a sort or dedup key.
func (s Status) Compare(other Status) int {
	if s.code != other.code {
		if s.code < other.code {
			return -1
		}
		return 1
	}
	return strings.Compare(s.message, other.message)
}

// String returns the code name, followed by ": message" when a message
// is present.
func (s Status) String() string {
	if s.message == "" {
		return s.code.String()
	}
	return s.code.String() + ": " + s.message
}

// OrDie returns the status unchanged when it is success and panics with
// a *StatusError otherwise. This is the only sanctioned way to turn a
// recoverable status into a fatal failure; use it sparingly, at
// boundaries where the caller has no recovery strategy.
func (s Status) OrDie() Status {
	if s.code != Success {
		panic(&StatusError{Status: s})
	}
	return s
}
