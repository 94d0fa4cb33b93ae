// Package status provides the operation-outcome type used throughout
// the storage library.
//
// Every fallible operation returns a Status: a stable code drawn from a
// fixed taxonomy plus an optional human-readable message. The package
// also provides the classifier that maps operating-system error numbers
// into that taxonomy, so that recovery logic everywhere branches on the
// same codes regardless of which platform produced the failure.
//
// # Design
//
//   - Results over exceptions: Status is a plain value passed back
//     through return channels. The single escalation point is OrDie,
//     which panics with a *StatusError; implicit termination on failure
//     is never acceptable elsewhere.
//   - Identity by code: Equal and Compare look at the code first and use
//     the message only to break ordering ties. Branching on message text
//     is a bug.
//   - Stable ordinals and names: codes are persisted and compared across
//     versions. Neither the numeric values nor the display names may
//     change.
//
// # Quick Start
//
// Returning and combining statuses:
//
//	st := status.New(status.NotFoundError, "record not found")
//	if !st.IsOK() {
//	    return st
//	}
//
//	st = openFile().And(readHeader()).And(verifyMagic())
//
// Classifying system call failures:
//
//	if errno != 0 {
//	    return status.GetErrnoStatus("open", errno)
//	}
//
// Bridging to Go error chains:
//
//	if err := st.Err(); err != nil {
//	    return fmt.Errorf("loading database: %w", err)
//	}
//	st = status.FromError(err)
//
// # Taxonomy
//
// The thirteen codes partition into success, caller-logic errors
// (PRECONDITION, INVALID_ARGUMENT, NOT_IMPLEMENTED), environment and
// resource errors (SYSTEM, NOT_FOUND, PERMISSION, INFEASIBLE,
// DUPLICATION), data-integrity errors (BROKEN_DATA), and catch-alls
// (UNKNOWN, APPLICATION, CANCELED).
package status
