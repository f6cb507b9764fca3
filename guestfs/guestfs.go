//go:build unix

package guestfs

import (
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/tetratelabs/wazero"
	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault"
)

// FS exposes the subtree rooted at a host directory through a Provider.
type FS struct {
	p    fsfault.Provider
	root string
}

// New returns an fs.FS whose calls all go through p. root is the host
// directory backing the fs.FS namespace.
func New(p fsfault.Provider, root string) *FS {
	return &FS{p: p, root: root}
}

var _ fs.FS = (*FS)(nil)

// Mount attaches the adapter to a wazero filesystem configuration at
// guestPath.
func Mount(cfg wazero.FSConfig, p fsfault.Provider, root, guestPath string) wazero.FSConfig {
	return cfg.WithFSMount(New(p, root), guestPath)
}

func (f *FS) join(name string) string {
	if name == "." {
		return f.root
	}
	return f.root + "/" + name
}

func (f *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	full := f.join(name)

	var st unix.Stat_t
	if err := f.p.Stat(full, &st); err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		d, err := f.p.Opendir(full)
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &dirFile{fsys: f, d: d, name: name, st: st}, nil
	}

	h, err := f.p.Open(full, unix.O_RDONLY, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return &file{fsys: f, h: h, name: name}, nil
}

// file adapts a provider file handle to fs.File plus the seek/pread
// extensions wazero probes for.
type file struct {
	fsys *FS
	h    *fsfault.File
	name string
}

var (
	_ fs.File     = (*file)(nil)
	_ io.Seeker   = (*file)(nil)
	_ io.ReaderAt = (*file)(nil)
)

func (f *file) Read(p []byte) (int, error) {
	n, err := f.fsys.p.Read(f.h, p)
	if err != nil {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: err}
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (f *file) ReadAt(p []byte, off int64) (int, error) {
	n, err := f.fsys.p.Pread(f.h, p, off)
	if err != nil {
		return 0, &fs.PathError{Op: "read", Path: f.name, Err: err}
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (f *file) Seek(offset int64, whence int) (int64, error) {
	off, err := f.fsys.p.Lseek(f.h, offset, whence)
	if err != nil {
		return 0, &fs.PathError{Op: "seek", Path: f.name, Err: err}
	}
	return off, nil
}

func (f *file) Stat() (fs.FileInfo, error) {
	var st unix.Stat_t
	if err := f.fsys.p.Fstat(f.h, &st); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: f.name, Err: err}
	}
	return newFileInfo(path.Base(f.name), &st), nil
}

func (f *file) Close() error {
	return f.fsys.p.Close(f.h)
}

// dirFile adapts a provider directory handle to fs.ReadDirFile.
type dirFile struct {
	fsys    *FS
	d       *fsfault.Dir
	name    string
	st      unix.Stat_t
	pending []fs.DirEntry
	eof     bool
}

var _ fs.ReadDirFile = (*dirFile)(nil)

func (d *dirFile) Read(p []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: unix.EISDIR}
}

func (d *dirFile) Stat() (fs.FileInfo, error) {
	return newFileInfo(path.Base(d.name), &d.st), nil
}

func (d *dirFile) Close() error {
	return d.fsys.p.Closedir(d.d)
}

func (d *dirFile) ReadDir(n int) ([]fs.DirEntry, error) {
	for !d.eof && (n <= 0 || len(d.pending) < n) {
		batch, err := d.fsys.p.Readdir(d.d)
		if err != nil {
			return nil, &fs.PathError{Op: "readdir", Path: d.name, Err: err}
		}
		if len(batch) == 0 {
			d.eof = true
			break
		}
		for _, name := range batch {
			full := d.fsys.join(path.Join(d.name, name))
			var st unix.Stat_t
			if err := d.fsys.p.Lstat(full, &st); err != nil {
				return nil, &fs.PathError{Op: "lstat", Path: name, Err: err}
			}
			d.pending = append(d.pending, dirEntry{info: newFileInfo(name, &st)})
		}
	}

	if n <= 0 {
		out := d.pending
		d.pending = nil
		return out, nil
	}
	if len(d.pending) == 0 {
		return nil, io.EOF
	}
	if n > len(d.pending) {
		n = len(d.pending)
	}
	out := d.pending[:n]
	d.pending = d.pending[n:]
	return out, nil
}

type fileInfo struct {
	name string
	st   unix.Stat_t
}

func newFileInfo(name string, st *unix.Stat_t) fileInfo {
	return fileInfo{name: name, st: *st}
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.st.Size }
func (fi fileInfo) ModTime() time.Time { return statMtime(&fi.st) }
func (fi fileInfo) IsDir() bool        { return fi.st.Mode&unix.S_IFMT == unix.S_IFDIR }
func (fi fileInfo) Sys() any           { return &fi.st }

func (fi fileInfo) Mode() fs.FileMode {
	mode := fs.FileMode(fi.st.Mode & 0777)
	switch fi.st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	}
	return mode
}

type dirEntry struct {
	info fileInfo
}

func (e dirEntry) Name() string               { return e.info.name }
func (e dirEntry) IsDir() bool                { return e.info.IsDir() }
func (e dirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e dirEntry) Info() (fs.FileInfo, error) { return e.info, nil }
