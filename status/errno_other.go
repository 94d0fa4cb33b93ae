//go:build !unix

package status

import "fmt"

// Fallback table for targets without the POSIX errno surface. The
// common POSIX numbers keep their usual meanings; everything else is a
// SystemError.
func classifyErrno(errno int) (Code, string) {
	var code Code
	switch errno {
	case 2, 3, 19, 20: // ENOENT, ESRCH, ENODEV, ENOTDIR
		code = NotFoundError
	case 1, 13, 30: // EPERM, EACCES, EROFS
		code = PermissionError
	case 9, 22, 36: // EBADF, EINVAL, ENAMETOOLONG
		code = InvalidArgumentError
	case 17: // EEXIST
		code = DuplicationError
	case 12, 21, 23, 24, 27, 28, 39: // ENOMEM, EISDIR, ENFILE, EMFILE, EFBIG, ENOSPC, ENOTEMPTY
		code = InfeasibleError
	case 4: // EINTR
		code = CanceledError
	default:
		code = SystemError
	}
	return code, fmt.Sprintf("errno %d", errno)
}
