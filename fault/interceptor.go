package fault

import (
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault"
	"github.com/wippyai/fsfault/errcode"
)

// Interceptor decorates an inner provider with configured fault injection.
// Operations without a table entry delegate verbatim; operations with an
// entry never reach the inner provider and return the configured errno with
// the operation's normal failure sentinel.
//
// The table is read-only by the time an Interceptor consults it, so no
// locking happens on the call path.
type Interceptor struct {
	inner fsfault.Provider
	table *Table
	log   *zap.SugaredLogger
	sess  *Session
}

// NewInterceptor stacks fault injection in front of inner. A nil logger
// falls back to the package logger.
func NewInterceptor(inner fsfault.Provider, table *Table, log *zap.Logger) *Interceptor {
	if log == nil {
		log = Logger()
	}
	return &Interceptor{inner: inner, table: table, log: log.Sugar()}
}

var _ fsfault.Provider = (*Interceptor)(nil)

// inject emits the diagnostic record for a short-circuited call and hands
// back the errno to return.
func (i *Interceptor) inject(code unix.Errno, format string, args ...any) unix.Errno {
	name, _ := errcode.Name(code)
	args = append(args, name, int(code), errcode.Describe(code))
	i.log.Debugf(format+", returning %s (%d) [%s]", args...)
	return code
}

// Open, Stat, Lstat and Fstat are foundational to host stability and always
// delegate, regardless of configuration.

func (i *Interceptor) Open(path string, flags int, mode uint32) (*fsfault.File, error) {
	return i.inner.Open(path, flags, mode)
}

func (i *Interceptor) Stat(path string, st *unix.Stat_t) error {
	return i.inner.Stat(path, st)
}

func (i *Interceptor) Lstat(path string, st *unix.Stat_t) error {
	return i.inner.Lstat(path, st)
}

func (i *Interceptor) Fstat(f *fsfault.File, st *unix.Stat_t) error {
	return i.inner.Fstat(f, st)
}

func (i *Interceptor) Chmod(path string, mode uint32) error {
	code, ok := i.table.Lookup(OpChmod)
	if !ok {
		return i.inner.Chmod(path, mode)
	}
	return i.inject(code, "chmod: '%s'", path)
}

func (i *Interceptor) Chown(path string, uid, gid int) error {
	code, ok := i.table.Lookup(OpChown)
	if !ok {
		return i.inner.Chown(path, uid, gid)
	}
	return i.inject(code, "chown: '%s'", path)
}

// Chroot records the new root into session-visible state on success,
// matching the real provider's side effect. A faulted chroot leaves the
// session root untouched.
func (i *Interceptor) Chroot(path string) error {
	code, ok := i.table.Lookup(OpChroot)
	if ok {
		return i.inject(code, "chroot: '%s'", path)
	}
	if err := i.inner.Chroot(path); err != nil {
		return err
	}
	if i.sess != nil {
		i.sess.setRoot(path)
	}
	return nil
}

func (i *Interceptor) Close(f *fsfault.File) error {
	code, ok := i.table.Lookup(OpClose)
	if !ok {
		return i.inner.Close(f)
	}
	return i.inject(code, "close: %d ('%s')", f.Fd, f.Path)
}

func (i *Interceptor) Closedir(d *fsfault.Dir) error {
	code, ok := i.table.Lookup(OpClosedir)
	if !ok {
		return i.inner.Closedir(d)
	}
	return i.inject(code, "closedir: %d ('%s')", d.Fd, d.Path)
}

func (i *Interceptor) Fchmod(f *fsfault.File, mode uint32) error {
	code, ok := i.table.Lookup(OpFchmod)
	if !ok {
		return i.inner.Fchmod(f, mode)
	}
	return i.inject(code, "fchmod: %d ('%s')", f.Fd, f.Path)
}

func (i *Interceptor) Fchown(f *fsfault.File, uid, gid int) error {
	code, ok := i.table.Lookup(OpFchown)
	if !ok {
		return i.inner.Fchown(f, uid, gid)
	}
	return i.inject(code, "fchown: %d ('%s')", f.Fd, f.Path)
}

// Futimes falls back to the path-based primitive when the handle-based one
// is not implemented. The fallback is invisible to the caller and is not
// independently gated: only the handle-based attempt consults the table.
func (i *Interceptor) Futimes(f *fsfault.File, atime, mtime time.Time) error {
	code, ok := i.table.Lookup(OpFutimes)
	if ok {
		return i.inject(code, "futimes: %d ('%s')", f.Fd, f.Path)
	}
	err := i.inner.Futimes(f, atime, mtime)
	if stderrors.Is(err, unix.ENOSYS) {
		return i.inner.Utimes(f.Path, atime, mtime)
	}
	return err
}

func (i *Interceptor) Lchown(path string, uid, gid int) error {
	code, ok := i.table.Lookup(OpLchown)
	if !ok {
		return i.inner.Lchown(path, uid, gid)
	}
	return i.inject(code, "lchown: '%s'", path)
}

func (i *Interceptor) Lseek(f *fsfault.File, offset int64, whence int) (int64, error) {
	code, ok := i.table.Lookup(OpLseek)
	if !ok {
		return i.inner.Lseek(f, offset, whence)
	}
	return -1, i.inject(code, "lseek: %d ('%s', %d offset, %d whence)", f.Fd, f.Path, offset, whence)
}

func (i *Interceptor) Mkdir(path string, mode uint32) error {
	code, ok := i.table.Lookup(OpMkdir)
	if !ok {
		return i.inner.Mkdir(path, mode)
	}
	return i.inject(code, "mkdir: '%s'", path)
}

func (i *Interceptor) Opendir(path string) (*fsfault.Dir, error) {
	code, ok := i.table.Lookup(OpOpendir)
	if !ok {
		return i.inner.Opendir(path)
	}
	return nil, i.inject(code, "opendir: '%s'", path)
}

// Pread consults its own entry first, then aliases to plain read: an
// injected "read" fault also fires for positional reads on the same
// descriptor. The reverse does not hold.
func (i *Interceptor) Pread(f *fsfault.File, p []byte, offset int64) (int, error) {
	code, ok := i.table.Lookup(OpPread)
	if !ok {
		code, ok = i.table.Lookup(OpRead)
	}
	if !ok {
		return i.inner.Pread(f, p, offset)
	}
	return -1, i.inject(code, "pread: %d ('%s', %d bytes, %d offset)", f.Fd, f.Path, len(p), offset)
}

// Pwrite mirrors Pread, aliasing to plain write.
func (i *Interceptor) Pwrite(f *fsfault.File, p []byte, offset int64) (int, error) {
	code, ok := i.table.Lookup(OpPwrite)
	if !ok {
		code, ok = i.table.Lookup(OpWrite)
	}
	if !ok {
		return i.inner.Pwrite(f, p, offset)
	}
	return -1, i.inject(code, "pwrite: %d ('%s', %d bytes, %d offset)", f.Fd, f.Path, len(p), offset)
}

func (i *Interceptor) Read(f *fsfault.File, p []byte) (int, error) {
	code, ok := i.table.Lookup(OpRead)
	if !ok {
		return i.inner.Read(f, p)
	}
	return -1, i.inject(code, "read: %d ('%s', %d bytes)", f.Fd, f.Path, len(p))
}

func (i *Interceptor) Readdir(d *fsfault.Dir) ([]string, error) {
	code, ok := i.table.Lookup(OpReaddir)
	if !ok {
		return i.inner.Readdir(d)
	}
	return nil, i.inject(code, "readdir: %d ('%s')", d.Fd, d.Path)
}

func (i *Interceptor) Readlink(path string) (string, error) {
	code, ok := i.table.Lookup(OpReadlink)
	if !ok {
		return i.inner.Readlink(path)
	}
	return "", i.inject(code, "readlink: '%s'", path)
}

func (i *Interceptor) Rename(oldPath, newPath string) error {
	code, ok := i.table.Lookup(OpRename)
	if !ok {
		return i.inner.Rename(oldPath, newPath)
	}
	return i.inject(code, "rename: '%s' to '%s'", oldPath, newPath)
}

func (i *Interceptor) Rmdir(path string) error {
	code, ok := i.table.Lookup(OpRmdir)
	if !ok {
		return i.inner.Rmdir(path)
	}
	return i.inject(code, "rmdir: '%s'", path)
}

func (i *Interceptor) Unlink(path string) error {
	code, ok := i.table.Lookup(OpUnlink)
	if !ok {
		return i.inner.Unlink(path)
	}
	return i.inject(code, "unlink: '%s'", path)
}

func (i *Interceptor) Utimes(path string, atime, mtime time.Time) error {
	code, ok := i.table.Lookup(OpUtimes)
	if !ok {
		return i.inner.Utimes(path, atime, mtime)
	}
	return i.inject(code, "utimes: '%s'", path)
}

func (i *Interceptor) Write(f *fsfault.File, p []byte) (int, error) {
	code, ok := i.table.Lookup(OpWrite)
	if !ok {
		return i.inner.Write(f, p)
	}
	return -1, i.inject(code, "write: %d ('%s', %d bytes)", f.Fd, f.Path, len(p))
}
