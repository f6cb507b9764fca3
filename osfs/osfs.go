//go:build unix

package osfs

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault"
)

// readdirBufSize is the dirent buffer handed to the kernel per Readdir call.
const readdirBufSize = 8192

// FS performs filesystem operations directly against the host kernel.
type FS struct{}

// New returns the real provider.
func New() *FS {
	return &FS{}
}

var _ fsfault.Provider = (*FS)(nil)

func (*FS) Open(path string, flags int, mode uint32) (*fsfault.File, error) {
	fd, err := unix.Open(path, flags, mode)
	if err != nil {
		return nil, err
	}
	return &fsfault.File{Fd: fd, Path: path}, nil
}

func (*FS) Stat(path string, st *unix.Stat_t) error {
	return unix.Stat(path, st)
}

func (*FS) Lstat(path string, st *unix.Stat_t) error {
	return unix.Lstat(path, st)
}

func (*FS) Fstat(f *fsfault.File, st *unix.Stat_t) error {
	return unix.Fstat(f.Fd, st)
}

func (*FS) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

func (*FS) Chown(path string, uid, gid int) error {
	return unix.Chown(path, uid, gid)
}

func (*FS) Chroot(path string) error {
	return unix.Chroot(path)
}

func (*FS) Close(f *fsfault.File) error {
	return unix.Close(f.Fd)
}

func (*FS) Closedir(d *fsfault.Dir) error {
	return unix.Close(d.Fd)
}

func (*FS) Fchmod(f *fsfault.File, mode uint32) error {
	return unix.Fchmod(f.Fd, mode)
}

func (*FS) Fchown(f *fsfault.File, uid, gid int) error {
	return unix.Fchown(f.Fd, uid, gid)
}

func (*FS) Futimes(f *fsfault.File, atime, mtime time.Time) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(atime.UnixNano()),
		unix.NsecToTimeval(mtime.UnixNano()),
	}
	return unix.Futimes(f.Fd, tv)
}

func (*FS) Lchown(path string, uid, gid int) error {
	return unix.Lchown(path, uid, gid)
}

func (*FS) Lseek(f *fsfault.File, offset int64, whence int) (int64, error) {
	return unix.Seek(f.Fd, offset, whence)
}

func (*FS) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

func (*FS) Opendir(path string) (*fsfault.Dir, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		return nil, err
	}
	return &fsfault.Dir{Fd: fd, Path: path}, nil
}

func (*FS) Pread(f *fsfault.File, p []byte, offset int64) (int, error) {
	return unix.Pread(f.Fd, p, offset)
}

func (*FS) Pwrite(f *fsfault.File, p []byte, offset int64) (int, error) {
	return unix.Pwrite(f.Fd, p, offset)
}

func (*FS) Read(f *fsfault.File, p []byte) (int, error) {
	return unix.Read(f.Fd, p)
}

// Readdir returns the next batch of entry names from the directory stream,
// excluding "." and "..". An empty batch with a nil error marks the end of
// the stream; the kernel tracks the position on the descriptor.
func (*FS) Readdir(d *fsfault.Dir) ([]string, error) {
	buf := make([]byte, readdirBufSize)
	n, err := unix.ReadDirent(d.Fd, buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	var names []string
	_, _, names = unix.ParseDirent(buf[:n], -1, names)
	return names, nil
}

func (*FS) Readlink(path string) (string, error) {
	buf := make([]byte, unix.PathMax)
	n, err := unix.Readlink(path, buf)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

func (*FS) Rename(oldPath, newPath string) error {
	return unix.Rename(oldPath, newPath)
}

func (*FS) Rmdir(path string) error {
	return unix.Rmdir(path)
}

func (*FS) Unlink(path string) error {
	return unix.Unlink(path)
}

func (*FS) Utimes(path string, atime, mtime time.Time) error {
	tv := []unix.Timeval{
		unix.NsecToTimeval(atime.UnixNano()),
		unix.NsecToTimeval(mtime.UnixNano()),
	}
	return unix.Utimes(path, tv)
}

func (*FS) Write(f *fsfault.File, p []byte) (int, error) {
	return unix.Write(f.Fd, p)
}
