package fault

import (
	"go.uber.org/zap"

	"github.com/wippyai/fsfault"
)

// Session owns the provider stack for one host session. Activation is
// computed once, at session start: a session is activated iff the engine is
// enabled and the table is non-empty. Non-activated sessions expose the
// inner provider directly, so unconfigured hosts pay nothing.
//
// A Session is not shared: one session per unit of execution, each with its
// own view of the configuration generation that built it.
type Session struct {
	cfg       *Config
	provider  fsfault.Provider
	root      string
	activated bool
}

// NewSession stacks the interception layer in front of inner when cfg calls
// for it. A nil logger falls back to the package logger; a nil cfg behaves
// like a disabled engine.
func NewSession(cfg *Config, inner fsfault.Provider, log *zap.Logger) *Session {
	if log == nil {
		log = Logger()
	}

	s := &Session{cfg: cfg, provider: inner}
	if cfg == nil || !cfg.Enabled() || cfg.Table().Len() == 0 {
		return s
	}

	s.activated = true
	ic := NewInterceptor(inner, cfg.Table(), log)
	ic.sess = s
	s.provider = ic

	log.Sugar().Debugf("filesystem fault injections (%d) configured, installing interception layer",
		cfg.Table().Len())
	if log.Core().Enabled(zap.DebugLevel) {
		cfg.Table().LogEntries(log)
	}
	return s
}

// Provider returns the active provider: the interceptor when the session is
// activated, the inner provider verbatim otherwise.
func (s *Session) Provider() fsfault.Provider {
	return s.provider
}

// Activated reports whether the interception layer was installed.
func (s *Session) Activated() bool {
	return s.activated
}

// Root returns the session root recorded by a successful chroot through the
// interception layer, or "" when none happened.
func (s *Session) Root() string {
	return s.root
}

func (s *Session) setRoot(path string) {
	s.root = path
}
