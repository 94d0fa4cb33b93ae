package status

// Code identifies the category of a Status.
//
// Ordinal values are stable: they are persisted by higher layers of the
// storage library and compared across versions, so existing codes must
// never be renumbered. New codes may only be appended.
type Code int32

const (
	// Success means the operation fully completed.
	Success Code = 0

	// UnknownError is a generic error whose cause is unknown.
	UnknownError Code = 1

	// SystemError is a generic error from underlying systems.
	SystemError Code = 2

	// NotImplementedError means the feature is not implemented.
	NotImplementedError Code = 3

	// PreconditionError means a precondition of the operation is not met.
	PreconditionError Code = 4

	// InvalidArgumentError means a given argument is invalid.
	InvalidArgumentError Code = 5

	// CanceledError means the operation was canceled.
	CanceledError Code = 6

	// NotFoundError means a specific resource was not found.
	NotFoundError Code = 7

	// PermissionError means the operation is not permitted.
	PermissionError Code = 8

	// InfeasibleError means the operation is infeasible.
	InfeasibleError Code = 9

	// DuplicationError means a specific resource is duplicated.
	DuplicationError Code = 10

	// BrokenDataError means internal data are broken.
	BrokenDataError Code = 11

	// ApplicationError is a generic error caused by application logic.
	ApplicationError Code = 12
)

// String returns the stable display name of the code, such as
// "NOT_FOUND_ERROR". The names are locale-independent and safe to
// persist or match against in diagnostics.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case UnknownError:
		return "UNKNOWN_ERROR"
	case SystemError:
		return "SYSTEM_ERROR"
	case NotImplementedError:
		return "NOT_IMPLEMENTED_ERROR"
	case PreconditionError:
		return "PRECONDITION_ERROR"
	case InvalidArgumentError:
		return "INVALID_ARGUMENT_ERROR"
	case CanceledError:
		return "CANCELED_ERROR"
	case NotFoundError:
		return "NOT_FOUND_ERROR"
	case PermissionError:
		return "PERMISSION_ERROR"
	case InfeasibleError:
		return "INFEASIBLE_ERROR"
	case DuplicationError:
		return "DUPLICATION_ERROR"
	case BrokenDataError:
		return "BROKEN_DATA_ERROR"
	case ApplicationError:
		return "APPLICATION_ERROR"
	}
	return "unnamed error"
}
