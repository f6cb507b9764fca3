//go:build unix

package testbed

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault"
	"github.com/wippyai/fsfault/fault"
	"github.com/wippyai/fsfault/guestfs"
	"github.com/wippyai/fsfault/osfs"
)

func applyAll(t *testing.T, eng *fault.Engine, directives [][]string) {
	t.Helper()
	for _, d := range directives {
		if err := eng.Apply(d[0], d[1:]); err != nil {
			t.Fatalf("Apply %v: %v", d, err)
		}
	}
}

// Full path: directives, engine, session over the real filesystem. Faulted
// operations fail with the configured errno and never touch disk; everything
// else behaves exactly as the kernel does.
func TestInjection_EndToEnd(t *testing.T) {
	eng := fault.NewEngine()
	eng.Init()
	applyAll(t, eng, [][]string{
		{"FaultEngine", "on"},
		{"FaultInject", "filesystem", "ENOSPC", "write", "mkdir"},
		{"FaultInject", "filesystem", "EIO", "rename"},
	})

	sess := eng.StartSession(osfs.New())
	if !sess.Activated() {
		t.Fatal("expected activated session")
	}
	p := sess.Provider()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	// read path untouched
	f, err := p.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	buf := make([]byte, 16)
	n, err := p.Read(f, buf)
	if err != nil || string(buf[:n]) != "hello" {
		t.Fatalf("Read = (%q, %v)", buf[:n], err)
	}
	if err := p.Close(f); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// write fails before reaching the kernel
	f, err = p.Open(path, unix.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if n, err := p.Write(f, []byte("world")); n != -1 || err != unix.ENOSPC {
		t.Fatalf("Write = (%d, %v), want (-1, ENOSPC)", n, err)
	}
	if err := p.Close(f); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := p.Mkdir(filepath.Join(dir, "sub"), 0755); err != unix.ENOSPC {
		t.Fatalf("Mkdir = %v, want ENOSPC", err)
	}
	if err := p.Rename(path, filepath.Join(dir, "moved.txt")); err != unix.EIO {
		t.Fatalf("Rename = %v, want EIO", err)
	}

	// disk state is unchanged by the injected operations
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("on-disk contents = (%q, %v)", data, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub")); !os.IsNotExist(err) {
		t.Error("mkdir fault must not create the directory")
	}

	// operations outside the table delegate: unlink really removes the file
	if err := p.Unlink(path); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("unlink must pass through to the kernel")
	}
}

// Injected and real failures carry the same bare errno type.
func TestInjection_IndistinguishableFromRealErrno(t *testing.T) {
	eng := fault.NewEngine()
	eng.Init()
	applyAll(t, eng, [][]string{
		{"FaultEngine", "on"},
		{"FaultInject", "filesystem", "ENOENT", "rmdir"},
	})
	p := eng.StartSession(osfs.New()).Provider()

	injected := p.Rmdir(filepath.Join(t.TempDir(), "exists-not"))
	real := p.Unlink(filepath.Join(t.TempDir(), "also-missing"))

	var injErrno, realErrno unix.Errno
	if !stderrors.As(injected, &injErrno) || !stderrors.As(real, &realErrno) {
		t.Fatalf("errors are (%T, %T), want bare unix.Errno", injected, real)
	}
	if injErrno != unix.ENOENT || realErrno != unix.ENOENT {
		t.Fatalf("errnos = (%v, %v), want ENOENT twice", injErrno, realErrno)
	}
}

func TestInjection_DiagnosticRecords(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	fault.SetLogger(zap.New(core))
	defer fault.SetLogger(zap.NewNop())

	eng := fault.NewEngine()
	eng.Init()
	applyAll(t, eng, [][]string{
		{"FaultEngine", "on"},
		{"FaultInject", "filesystem", "EACCES", "unlink"},
	})
	p := eng.StartSession(osfs.New()).Provider()

	target := filepath.Join(t.TempDir(), "victim")
	if err := p.Unlink(target); err != unix.EACCES {
		t.Fatalf("Unlink = %v, want EACCES", err)
	}

	var joined strings.Builder
	for _, e := range logs.All() {
		joined.WriteString(e.Message)
		joined.WriteString("\n")
	}
	for _, frag := range []string{"unlink", target, "EACCES", unix.EACCES.Error()} {
		if !strings.Contains(joined.String(), frag) {
			t.Errorf("diagnostic output missing %q:\n%s", frag, joined.String())
		}
	}
}

func TestInjection_ReloadDropsTable(t *testing.T) {
	eng := fault.NewEngine()
	eng.Init()
	applyAll(t, eng, [][]string{
		{"FaultEngine", "on"},
		{"FaultInject", "filesystem", "ENOSPC", "mkdir"},
	})

	dir := t.TempDir()
	p := eng.StartSession(osfs.New()).Provider()
	if err := p.Mkdir(filepath.Join(dir, "a"), 0755); err != unix.ENOSPC {
		t.Fatalf("Mkdir = %v, want ENOSPC", err)
	}

	eng.Reload()
	applyAll(t, eng, [][]string{{"FaultEngine", "on"}})

	// existing sessions keep the old generation
	if err := p.Mkdir(filepath.Join(dir, "b"), 0755); err != unix.ENOSPC {
		t.Fatalf("pre-reload session: Mkdir = %v, want ENOSPC", err)
	}

	// new sessions see the empty table
	sess := eng.StartSession(osfs.New())
	if sess.Activated() {
		t.Fatal("session after reload must not be activated")
	}
	if err := sess.Provider().Mkdir(filepath.Join(dir, "c"), 0755); err != nil {
		t.Fatalf("post-reload Mkdir: %v", err)
	}
}

// Faults configured on read surface inside an fs.FS consumer exactly as an
// errno-carrying PathError, while the same tree reads cleanly without them.
func TestInjection_ThroughGuestFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "guest.txt"), []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	eng := fault.NewEngine()
	eng.Init()
	applyAll(t, eng, [][]string{
		{"FaultEngine", "on"},
		{"FaultInject", "filesystem", "EIO", "read"},
	})

	var faultedFS fs.FS = guestfs.New(eng.StartSession(osfs.New()).Provider(), dir)
	if _, err := fs.ReadFile(faultedFS, "guest.txt"); !stderrors.Is(err, unix.EIO) {
		t.Fatalf("faulted ReadFile = %v, want EIO", err)
	}

	var cleanProvider fsfault.Provider = osfs.New()
	cleanFS := guestfs.New(cleanProvider, dir)
	data, err := fs.ReadFile(cleanFS, "guest.txt")
	if err != nil || string(data) != "payload" {
		t.Fatalf("clean ReadFile = (%q, %v)", data, err)
	}
}
