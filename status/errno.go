package status

import (
	"errors"
	"syscall"
)

// GetErrnoStatus converts the result of a failed system call into a
// Status. callName names the call for diagnostics ("open", "mmap");
// errno is the platform-reported error number. The mapping is total:
// every number yields some status, with SystemError as the default for
// anything unrecognized. The per-platform table lives in classifyErrno.
func GetErrnoStatus(callName string, errno int) Status {
	code, desc := classifyErrno(errno)
	return Newf(code, "%s: %s", callName, desc)
}

// ClassifySyscallError classifies a Go error produced by a system call.
// It walks the chain for a syscall.Errno and feeds it through the errno
// table; a nil error is success, and an error with no errno becomes a
// SystemError carrying the error text.
func ClassifySyscallError(callName string, err error) Status {
	if err == nil {
		return OK()
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return GetErrnoStatus(callName, int(errno))
	}
	return Newf(SystemError, "%s: %v", callName, err)
}
