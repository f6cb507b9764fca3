package fault

import (
	"github.com/wippyai/fsfault"
	"github.com/wippyai/fsfault/errors"
)

// Engine owns the configuration generation lifecycle:
//
//	Uninitialized -> Init() -> Initialized (empty table, engine disabled)
//
// Directives applied while Initialized build the generation. Reload discards
// the whole generation and returns to Initialized with a fresh empty one, so
// the host replays directive processing for the new configuration. Unload
// releases everything and returns to Uninitialized.
type Engine struct {
	cfg *Config
}

// NewEngine returns an uninitialized engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Init establishes an empty configuration generation.
func (e *Engine) Init() {
	e.cfg = NewConfig()
}

// Reload discards the current generation, table and engine flag included,
// and starts a fresh empty one.
func (e *Engine) Reload() {
	e.cfg = NewConfig()
}

// Unload releases the generation and returns to Uninitialized.
func (e *Engine) Unload() {
	e.cfg = nil
}

// Config returns the active generation, or nil when uninitialized.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Apply dispatches one tokenized directive into the active generation.
func (e *Engine) Apply(directive string, args []string) error {
	if e.cfg == nil {
		return errors.NotInitialized("fault engine")
	}
	return e.cfg.Apply(directive, args)
}

// StartSession builds a session over inner from the active generation.
// An uninitialized engine yields a non-activated session.
func (e *Engine) StartSession(inner fsfault.Provider) *Session {
	return NewSession(e.cfg, inner, Logger())
}
