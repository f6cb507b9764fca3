package fault

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/fsfault/errcode"
)

// Entry pairs one operation with the errno injected for it.
type Entry struct {
	Op   Op
	Code unix.Errno
}

// Table maps operations to injected errnos for one configuration generation.
// It accumulates entries while directives are processed and must not be
// mutated once a session has been started from it. Each operation appears at
// most once.
type Table struct {
	entries map[Op]unix.Errno
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[Op]unix.Errno)}
}

// Len returns the number of configured entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the errno configured for op, if any.
func (t *Table) Lookup(op Op) (unix.Errno, bool) {
	code, ok := t.entries[op]
	return code, ok
}

// set records an entry. The builder rejects duplicates before calling this.
func (t *Table) set(op Op, code unix.Errno) {
	t.entries[op] = code
}

// Snapshot returns the entries for diagnostics. Order is unspecified;
// callers must treat the result as a set.
func (t *Table) Snapshot() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for op, code := range t.entries {
		out = append(out, Entry{Op: op, Code: code})
	}
	return out
}

// LogEntries writes the full table to the logger at Debug level, one record
// per entry: operation, symbolic name, numeric code and platform description.
func (t *Table) LogEntries(log *zap.Logger) {
	sugar := log.Sugar()
	for op, code := range t.entries {
		name, _ := errcode.Name(code)
		sugar.Debugf("  %s: %s (%d) [%s]", op, name, int(code), errcode.Describe(code))
	}
}
