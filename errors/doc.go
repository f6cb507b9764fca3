// Package errors provides structured error types for the fsfault library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Configuration-time rejections carry the directive and the
// offending argument so the host can surface a precise message; they are
// always fatal to configuration loading for that directive and never deferred
// to runtime.
//
// Injected filesystem errors are deliberately NOT represented here: they are
// bare errnos, the product's purpose rather than a failure of the engine.
//
// Use the convenience constructors for common rejections:
//
//	err := errors.UnknownError("FaultInject", "BOGUS_ERROR")
//	err := errors.DuplicateOperation("FaultInject", "filesystem", "write")
//
// Or the Builder for anything richer:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidArgument).
//		Directive("FaultEngine").
//		Argument("maybe").
//		Detail("expected Boolean parameter").
//		Build()
//
// All errors implement the standard error interface and support errors.Is/As;
// two errors match when their Phase and Kind agree.
package errors
