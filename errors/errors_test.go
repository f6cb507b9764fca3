package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "unsupported category",
			err:  UnsupportedCategory("FaultInject", "network"),
			want: "[config] unsupported_category in FaultInject at 'network': unsupported category: network",
		},
		{
			name: "unknown error",
			err:  UnknownError("FaultInject", "BOGUS_ERROR"),
			want: "[config] unknown_error in FaultInject at 'BOGUS_ERROR': unknown/unsupported error: BOGUS_ERROR",
		},
		{
			name: "duplicate operation",
			err:  DuplicateOperation("FaultInject", "filesystem", "write"),
			want: "[config] duplicate_operation in FaultInject at 'write': filesystem configuration already exists for 'write'",
		},
		{
			name: "missing arguments",
			err:  MissingArguments("FaultInject"),
			want: "[config] missing_argument in FaultInject: missing parameters",
		},
		{
			name: "not initialized",
			err:  NotInitialized("fault engine"),
			want: "[runtime] not_initialized: fault engine not initialized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnknownError("FaultInject", "EWHATEVER")

	if !stderrors.Is(err, &Error{Phase: PhaseConfig, Kind: KindUnknownError}) {
		t.Error("expected match on phase and kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseConfig, Kind: KindDuplicateOperation}) {
		t.Error("unexpected match on different kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseRuntime, Kind: KindUnknownError}) {
		t.Error("unexpected match on different phase")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(PhaseConfig, KindInvalidArgument).
		Directive("FaultEngine").
		Cause(cause).
		Detail("bad value").
		Build()

	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be unwrapped")
	}
	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Errorf("cause missing from message: %q", err.Error())
	}
}

func TestBuilder_DetailFormatting(t *testing.T) {
	err := New(PhaseConfig, KindInvalidArgument).
		Detail("expected %d arguments, got %d", 3, 1).
		Build()

	if err.Detail != "expected 3 arguments, got 1" {
		t.Errorf("unexpected detail %q", err.Detail)
	}
}
