//go:build unix

package errcode

import (
	"strings"

	"golang.org/x/sys/unix"
)

// catalog lists every injectable error condition. Codes not defined on a
// platform must be left out of that platform's build rather than referenced
// conditionally at runtime; everything below is defined by x/sys/unix on all
// unix targets.
var catalog = []struct {
	name string
	code unix.Errno
}{
	{"EACCES", unix.EACCES},
	{"EAGAIN", unix.EAGAIN},
	{"EBADF", unix.EBADF},
	{"EBUSY", unix.EBUSY},
	{"EDQUOT", unix.EDQUOT},
	{"EEXIST", unix.EEXIST},
	{"EFBIG", unix.EFBIG},
	{"EINTR", unix.EINTR},
	{"EIO", unix.EIO},
	{"EMFILE", unix.EMFILE},
	{"EMLINK", unix.EMLINK},
	{"ENFILE", unix.ENFILE},
	{"ENODEV", unix.ENODEV},
	{"ENOENT", unix.ENOENT},
	{"ENOMEM", unix.ENOMEM},
	{"ENOSPC", unix.ENOSPC},
	{"ENOTEMPTY", unix.ENOTEMPTY},
	{"ENOTSUP", unix.ENOTSUP},
	{"ENXIO", unix.ENXIO},
	{"EPERM", unix.EPERM},
	{"EROFS", unix.EROFS},
	{"ESTALE", unix.ESTALE},
	{"ETXTBSY", unix.ETXTBSY},
}

var (
	byName map[string]unix.Errno
	byCode map[unix.Errno]string
)

func init() {
	byName = make(map[string]unix.Errno, len(catalog))
	byCode = make(map[unix.Errno]string, len(catalog))
	for _, e := range catalog {
		byName[e.name] = e.code
		byCode[e.code] = e.name
	}
}

// FromName resolves a symbolic error name to its errno. Matching is
// case-insensitive.
func FromName(name string) (unix.Errno, bool) {
	code, ok := byName[strings.ToUpper(name)]
	return code, ok
}

// Name returns the canonical symbolic name for an errno.
func Name(code unix.Errno) (string, bool) {
	name, ok := byCode[code]
	return name, ok
}

// Describe returns the platform's human-readable description for an errno,
// e.g. "no space left on device" for ENOSPC.
func Describe(code unix.Errno) string {
	return code.Error()
}

// Codes returns every errno in the catalog, in catalog order.
func Codes() []unix.Errno {
	codes := make([]unix.Errno, len(catalog))
	for i, e := range catalog {
		codes[i] = e.code
	}
	return codes
}
