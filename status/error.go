package status

import "errors"

// StatusError conveys a non-success Status through the standard error
// interface. It is the bridge between this package's value-based result
// handling and Go error chains: Status.Err and Status.OrDie produce it,
// and errors.As recovers it from a wrapped chain.
type StatusError struct {
	Status Status
}

// Error returns the status string, which always begins with the stable
// code name.
func (e *StatusError) Error() string {
	return e.Status.String()
}

// Err returns nil when the status is success and a *StatusError
// otherwise. Use it where a caller expects a plain error:
//
//	if err := doStep().Err(); err != nil {
//	    return err
//	}
func (s Status) Err() error {
	if s.code == Success {
		return nil
	}
	return &StatusError{Status: s}
}

// FromError recovers a Status from an error. A nil error is success; a
// *StatusError anywhere in the chain yields its original status; any
// other error becomes UnknownError with the error text as the message.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return New(UnknownError, err.Error())
}
