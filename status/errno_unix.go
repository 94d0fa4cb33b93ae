//go:build unix

package status

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyErrno is the authoritative errno table for POSIX targets.
// The whole OS boundary contract lives in this one switch.
func classifyErrno(errno int) (Code, string) {
	e := syscall.Errno(errno)
	var code Code
	switch e {
	case unix.ENOENT, unix.ENOTDIR, unix.ESRCH, unix.ENODEV, unix.ENXIO:
		code = NotFoundError
	case unix.EACCES, unix.EPERM, unix.EROFS:
		code = PermissionError
	case unix.EINVAL, unix.ENAMETOOLONG, unix.EBADF, unix.ESPIPE, unix.ENOTSOCK:
		code = InvalidArgumentError
	case unix.EEXIST:
		code = DuplicationError
	case unix.ENOSPC, unix.ENOMEM, unix.EMFILE, unix.ENFILE, unix.EDQUOT,
		unix.EFBIG, unix.ELOOP, unix.EISDIR, unix.ENOTEMPTY, unix.EXDEV:
		code = InfeasibleError
	case unix.EINTR, unix.ECANCELED:
		code = CanceledError
	default:
		code = SystemError
	}
	name := unix.ErrnoName(e)
	if name == "" {
		name = fmt.Sprintf("errno %d", errno)
	}
	return code, name + ": " + e.Error()
}
