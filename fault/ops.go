package fault

import "strings"

// Op identifies one filesystem operation eligible for fault injection.
//
// The primary open/stat/lstat/fstat operations are deliberately not
// representable here: failing handle acquisition or attribute lookup
// destabilizes the host itself, so they stay permanently outside the
// registry no matter what configuration asks for.
type Op string

const (
	OpChmod    Op = "chmod"
	OpChown    Op = "chown"
	OpChroot   Op = "chroot"
	OpClose    Op = "close"
	OpClosedir Op = "closedir"
	OpFchmod   Op = "fchmod"
	OpFchown   Op = "fchown"
	OpFutimes  Op = "futimes"
	OpLchown   Op = "lchown"
	OpLseek    Op = "lseek"
	OpMkdir    Op = "mkdir"
	OpOpendir  Op = "opendir"
	OpPread    Op = "pread"
	OpPwrite   Op = "pwrite"
	OpRead     Op = "read"
	OpReaddir  Op = "readdir"
	OpReadlink Op = "readlink"
	OpRename   Op = "rename"
	OpRmdir    Op = "rmdir"
	OpUnlink   Op = "unlink"
	OpUtimes   Op = "utimes"
	OpWrite    Op = "write"
)

// registry holds the canonical operation names, the only names ParseOp
// accepts.
var registry = []Op{
	OpChmod,
	OpChown,
	OpChroot,
	OpClose,
	OpClosedir,
	OpFchmod,
	OpFchown,
	OpFutimes,
	OpLchown,
	OpLseek,
	OpMkdir,
	OpOpendir,
	OpPread,
	OpPwrite,
	OpRead,
	OpReaddir,
	OpReadlink,
	OpRename,
	OpRmdir,
	OpUnlink,
	OpUtimes,
	OpWrite,
}

// ParseOp resolves a configuration token to a registered operation.
// Matching is case-insensitive.
func ParseOp(name string) (Op, bool) {
	op := Op(strings.ToLower(name))
	for _, o := range registry {
		if o == op {
			return op, true
		}
	}
	return "", false
}

// Ops returns the registry in canonical order.
func Ops() []Op {
	out := make([]Op, len(registry))
	copy(out, registry)
	return out
}
