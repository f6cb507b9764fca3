package fsfault

import (
	"time"

	"golang.org/x/sys/unix"
)

// File is an open file handle. The path is recorded at open time so that
// descriptor-based operations can report it in diagnostics and fall back to
// path-based primitives where needed.
type File struct {
	Fd   int
	Path string
}

// Dir is an open directory handle.
type Dir struct {
	Fd   int
	Path string
}

// Provider is the filesystem operation surface that fault injection stacks
// onto. Two implementations exist: the real provider (osfs) and the
// fault-aware decorator (fault.Interceptor) wrapping an inner Provider.
//
// Error conventions follow the underlying syscalls: failures return a bare
// unix.Errno and the operation's normal failure sentinel (-1 byte counts and
// offsets, nil handles, empty strings).
type Provider interface {
	// Handle acquisition and the stat family are foundational to host
	// stability and are never subject to interception.
	Open(path string, flags int, mode uint32) (*File, error)
	Stat(path string, st *unix.Stat_t) error
	Lstat(path string, st *unix.Stat_t) error
	Fstat(f *File, st *unix.Stat_t) error

	Chmod(path string, mode uint32) error
	Chown(path string, uid, gid int) error
	Chroot(path string) error
	Close(f *File) error
	Closedir(d *Dir) error
	Fchmod(f *File, mode uint32) error
	Fchown(f *File, uid, gid int) error
	Futimes(f *File, atime, mtime time.Time) error
	Lchown(path string, uid, gid int) error
	Lseek(f *File, offset int64, whence int) (int64, error)
	Mkdir(path string, mode uint32) error
	Opendir(path string) (*Dir, error)
	Pread(f *File, p []byte, offset int64) (int, error)
	Pwrite(f *File, p []byte, offset int64) (int, error)
	Read(f *File, p []byte) (int, error)
	Readdir(d *Dir) ([]string, error)
	Readlink(path string) (string, error)
	Rename(oldPath, newPath string) error
	Rmdir(path string) error
	Unlink(path string) error
	Utimes(path string, atime, mtime time.Time) error
	Write(f *File, p []byte) (int, error)
}
