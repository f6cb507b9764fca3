package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // directive processing
	PhaseSession Phase = "session" // session activation
	PhaseRuntime Phase = "runtime" // engine lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedCategory  Kind = "unsupported_category"
	KindUnknownError         Kind = "unknown_error"
	KindUnsupportedOperation Kind = "unsupported_operation"
	KindDuplicateOperation   Kind = "duplicate_operation"
	KindUnknownDirective     Kind = "unknown_directive"
	KindInvalidArgument      Kind = "invalid_argument"
	KindMissingArgument      Kind = "missing_argument"
	KindNotInitialized       Kind = "not_initialized"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Directive string
	Argument  string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Directive != "" {
		b.WriteString(" in ")
		b.WriteString(e.Directive)
	}

	if e.Argument != "" {
		b.WriteString(" at '")
		b.WriteString(e.Argument)
		b.WriteByte('\'')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Directive sets the directive name
func (b *Builder) Directive(name string) *Builder {
	b.err.Directive = name
	return b
}

// Argument sets the offending argument
func (b *Builder) Argument(arg string) *Builder {
	b.err.Argument = arg
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common rejections

// UnsupportedCategory rejects a FaultInject category other than "filesystem"
func UnsupportedCategory(directive, category string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindUnsupportedCategory,
		Directive: directive,
		Argument:  category,
		Detail:    fmt.Sprintf("unsupported category: %s", category),
	}
}

// UnknownError rejects an error name absent from the catalog
func UnknownError(directive, name string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindUnknownError,
		Directive: directive,
		Argument:  name,
		Detail:    fmt.Sprintf("unknown/unsupported error: %s", name),
	}
}

// UnsupportedOperation rejects an operation name outside the registry
func UnsupportedOperation(directive, category, op string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindUnsupportedOperation,
		Directive: directive,
		Argument:  op,
		Detail:    fmt.Sprintf("unknown/unsupported %s operation: %s", category, op),
	}
}

// DuplicateOperation rejects an operation already configured in this
// generation
func DuplicateOperation(directive, category, op string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindDuplicateOperation,
		Directive: directive,
		Argument:  op,
		Detail:    fmt.Sprintf("%s configuration already exists for '%s'", category, op),
	}
}

// UnknownDirective rejects a directive the engine does not handle
func UnknownDirective(directive string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindUnknownDirective,
		Directive: directive,
		Detail:    "unknown directive",
	}
}

// MissingArguments rejects a directive with too few arguments
func MissingArguments(directive string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindMissingArgument,
		Directive: directive,
		Detail:    "missing parameters",
	}
}

// InvalidArgument rejects a malformed directive argument
func InvalidArgument(directive, arg, detail string) *Error {
	return &Error{
		Phase:     PhaseConfig,
		Kind:      KindInvalidArgument,
		Directive: directive,
		Argument:  arg,
		Detail:    detail,
	}
}

// NotInitialized reports use of an engine outside a configuration generation
func NotInitialized(component string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}
