// Package fsfault provides deterministic fault injection for filesystem
// operations.
//
// The module makes a host process behave as if a specific, named filesystem
// error occurred on a specific operation, for controlled failure-path
// testing. It does not implement a filesystem of its own: every operation
// either delegates to a real provider unmodified, or is short-circuited with
// a configured errno before the provider is ever reached.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	fsfault/         Root package with the Provider interface and handle types
//	├── errcode/     Symbolic error catalog (name <-> errno, both directions)
//	├── errors/      Structured configuration and session errors
//	├── osfs/        Real provider backed by raw unix syscalls
//	├── fault/       Fault table, directives, interception and lifecycle
//	└── guestfs/     io/fs adapter for mounting a provider into WASI guests
//
// # Quick Start
//
// Build a configuration from directives, start a session and use its
// provider in place of the real one:
//
//	eng := fault.NewEngine()
//	eng.Init()
//	eng.Apply(fault.DirectiveEngine, []string{"on"})
//	eng.Apply(fault.DirectiveInject, []string{"filesystem", "ENOSPC", "write"})
//
//	sess := eng.StartSession(osfs.New())
//	p := sess.Provider()
//
//	f, _ := p.Open(path, unix.O_WRONLY|unix.O_CREAT, 0644)
//	n, err := p.Write(f, data) // n == -1, err == unix.ENOSPC
//
// Callers of the provider cannot distinguish an injected failure from a
// genuine one except via the specific errno requested: the failure sentinel
// and the returned errno match what the real provider produces.
//
// # Sessions and Generations
//
// One Config is built per configuration generation and becomes immutable once
// a session has been started from it. Each session owns its provider stack
// exclusively; no state is shared between sessions, so activated sessions
// need no locking. Reloading configuration discards the whole generation and
// starts an empty one.
//
// # What Is Never Intercepted
//
// The primary open/stat/lstat/fstat operations are foundational to host
// stability and are permanently excluded from interception: they are not
// representable in the fault.Op enumeration and the interceptor always
// delegates them verbatim.
package fsfault
