package fault

import (
	stderrors "errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault/errors"
)

func wantKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: kind}) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func TestConfig_SetEngine(t *testing.T) {
	cfg := NewConfig()
	if cfg.Enabled() {
		t.Fatal("new config must start disabled")
	}

	if err := cfg.SetEngine([]string{"on"}); err != nil {
		t.Fatalf("SetEngine on: %v", err)
	}
	if !cfg.Enabled() {
		t.Error("expected enabled after 'on'")
	}

	if err := cfg.SetEngine([]string{"off"}); err != nil {
		t.Fatalf("SetEngine off: %v", err)
	}
	if cfg.Enabled() {
		t.Error("expected disabled after 'off'")
	}
}

func TestConfig_SetEngine_Rejections(t *testing.T) {
	cfg := NewConfig()

	wantKind(t, cfg.SetEngine(nil), errors.KindMissingArgument)
	wantKind(t, cfg.SetEngine([]string{"on", "off"}), errors.KindMissingArgument)
	wantKind(t, cfg.SetEngine([]string{"maybe"}), errors.KindInvalidArgument)
}

func TestConfig_Inject(t *testing.T) {
	cfg := NewConfig()

	err := cfg.Inject([]string{"filesystem", "ENOSPC", "write", "mkdir"})
	if err != nil {
		t.Fatalf("Inject: %v", err)
	}

	if cfg.Table().Len() != 2 {
		t.Fatalf("table has %d entries, want 2", cfg.Table().Len())
	}
	for _, op := range []Op{OpWrite, OpMkdir} {
		code, ok := cfg.Table().Lookup(op)
		if !ok {
			t.Fatalf("no entry for %s", op)
		}
		if code != unix.ENOSPC {
			t.Errorf("%s mapped to %d, want ENOSPC", op, int(code))
		}
	}
}

func TestConfig_Inject_CaseInsensitiveNames(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Inject([]string{"filesystem", "enospc", "WRITE"}); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if code, ok := cfg.Table().Lookup(OpWrite); !ok || code != unix.ENOSPC {
		t.Errorf("lookup write = (%d, %v)", int(code), ok)
	}
}

func TestConfig_Inject_UnsupportedCategory(t *testing.T) {
	cfg := NewConfig()

	// valid error and operation: the category alone must sink the directive
	wantKind(t, cfg.Inject([]string{"network", "ENOSPC", "write"}), errors.KindUnsupportedCategory)

	// category matching is exact, not case-insensitive
	wantKind(t, cfg.Inject([]string{"Filesystem", "ENOSPC", "write"}), errors.KindUnsupportedCategory)

	if cfg.Table().Len() != 0 {
		t.Errorf("rejected directives left %d entries", cfg.Table().Len())
	}
}

func TestConfig_Inject_UnknownError(t *testing.T) {
	cfg := NewConfig()

	wantKind(t, cfg.Inject([]string{"filesystem", "BOGUS_ERROR", "write"}), errors.KindUnknownError)
	if _, ok := cfg.Table().Lookup(OpWrite); ok {
		t.Error("no entry may be created for an unknown error name")
	}
}

func TestConfig_Inject_MissingArguments(t *testing.T) {
	cfg := NewConfig()

	wantKind(t, cfg.Inject(nil), errors.KindMissingArgument)
	wantKind(t, cfg.Inject([]string{"filesystem"}), errors.KindMissingArgument)
	wantKind(t, cfg.Inject([]string{"filesystem", "ENOSPC"}), errors.KindMissingArgument)
}

// Validation is sequential with partial commit: operations earlier in the
// list stay committed when a later one is rejected.
func TestConfig_Inject_PartialCommit(t *testing.T) {
	cfg := NewConfig()

	err := cfg.Inject([]string{"filesystem", "ENOSPC", "read", "notarealop", "write"})
	wantKind(t, err, errors.KindUnsupportedOperation)

	if _, ok := cfg.Table().Lookup(OpRead); !ok {
		t.Error("entry committed before the rejection must remain")
	}
	if _, ok := cfg.Table().Lookup(OpWrite); ok {
		t.Error("entry after the rejection must not be committed")
	}
}

func TestConfig_Inject_DuplicateWithinDirective(t *testing.T) {
	cfg := NewConfig()

	err := cfg.Inject([]string{"filesystem", "ENOSPC", "write", "write"})
	wantKind(t, err, errors.KindDuplicateOperation)

	// the first successfully validated entry stands
	code, ok := cfg.Table().Lookup(OpWrite)
	if !ok || code != unix.ENOSPC {
		t.Errorf("lookup write = (%d, %v), want ENOSPC", int(code), ok)
	}
	if cfg.Table().Len() != 1 {
		t.Errorf("table has %d entries, want 1", cfg.Table().Len())
	}
}

func TestConfig_Inject_DuplicateAcrossDirectives(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.Inject([]string{"filesystem", "ENOSPC", "write"}); err != nil {
		t.Fatalf("first directive: %v", err)
	}
	err := cfg.Inject([]string{"filesystem", "EIO", "write"})
	wantKind(t, err, errors.KindDuplicateOperation)

	// first-write-wins: the earlier directive's errno stands
	code, ok := cfg.Table().Lookup(OpWrite)
	if !ok || code != unix.ENOSPC {
		t.Errorf("lookup write = (%d, %v), want ENOSPC", int(code), ok)
	}
}

func TestConfig_Apply(t *testing.T) {
	cfg := NewConfig()

	if err := cfg.Apply(DirectiveEngine, []string{"on"}); err != nil {
		t.Fatalf("Apply FaultEngine: %v", err)
	}
	if err := cfg.Apply(DirectiveInject, []string{"filesystem", "EIO", "close"}); err != nil {
		t.Fatalf("Apply FaultInject: %v", err)
	}
	wantKind(t, cfg.Apply("FaultWhatever", nil), errors.KindUnknownDirective)

	if !cfg.Enabled() || cfg.Table().Len() != 1 {
		t.Errorf("enabled=%v len=%d after directives", cfg.Enabled(), cfg.Table().Len())
	}
}

func TestTable_Snapshot(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Inject([]string{"filesystem", "EACCES", "rename", "unlink"}); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	snap := cfg.Table().Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap))
	}
	// dump order is unspecified: assert set membership only
	got := make(map[Op]unix.Errno, len(snap))
	for _, e := range snap {
		got[e.Op] = e.Code
	}
	for _, op := range []Op{OpRename, OpUnlink} {
		if got[op] != unix.EACCES {
			t.Errorf("snapshot entry for %s = %d, want EACCES", op, int(got[op]))
		}
	}
}
