package fault

import (
	"strings"

	"github.com/wippyai/fsfault/errcode"
	"github.com/wippyai/fsfault/errors"
)

// Directive names handled by Config.Apply.
const (
	DirectiveEngine = "FaultEngine"
	DirectiveInject = "FaultInject"
)

// CategoryFilesystem is the only injection category currently implemented.
// The category argument exists so future resource categories (e.g. network
// I/O) can share the directive without changing its shape.
const CategoryFilesystem = "filesystem"

// Config is one configuration generation: the engine flag plus the fault
// table built from directives. A Config starts empty, accumulates entries
// directive by directive, and is treated as immutable once a session has
// been started from it. Reloading configuration means discarding the Config
// and building a new one.
type Config struct {
	table   *Table
	enabled bool
}

// NewConfig returns an empty configuration generation: engine disabled,
// no fault entries.
func NewConfig() *Config {
	return &Config{table: NewTable()}
}

// Enabled reports the most recent FaultEngine setting.
func (c *Config) Enabled() bool {
	return c.enabled
}

// Table returns the fault table for this generation.
func (c *Config) Table() *Table {
	return c.table
}

// Apply dispatches one tokenized directive.
func (c *Config) Apply(directive string, args []string) error {
	switch directive {
	case DirectiveEngine:
		return c.SetEngine(args)
	case DirectiveInject:
		return c.Inject(args)
	default:
		return errors.UnknownDirective(directive)
	}
}

// SetEngine handles `FaultEngine on|off`: exactly one boolean argument.
func (c *Config) SetEngine(args []string) error {
	if len(args) != 1 {
		return errors.MissingArguments(DirectiveEngine)
	}
	enabled, ok := parseBool(args[0])
	if !ok {
		return errors.InvalidArgument(DirectiveEngine, args[0], "expected Boolean parameter")
	}
	c.enabled = enabled
	return nil
}

// Inject handles `FaultInject <category> <error-name> <op> [op ...]`.
//
// Operations are validated and committed sequentially in input order: a
// rejection aborts the directive but leaves operations already committed by
// it (and by prior directives) in the table. Duplicates are rejected, never
// overwritten.
func (c *Config) Inject(args []string) error {
	if len(args) < 3 {
		return errors.MissingArguments(DirectiveInject)
	}

	category := args[0]
	if category != CategoryFilesystem {
		return errors.UnsupportedCategory(DirectiveInject, category)
	}

	code, ok := errcode.FromName(args[1])
	if !ok {
		return errors.UnknownError(DirectiveInject, args[1])
	}

	for _, name := range args[2:] {
		op, ok := ParseOp(name)
		if !ok {
			return errors.UnsupportedOperation(DirectiveInject, category, name)
		}
		if _, exists := c.table.Lookup(op); exists {
			return errors.DuplicateOperation(DirectiveInject, category, string(op))
		}
		c.table.set(op, code)
	}
	return nil
}

// parseBool accepts the boolean spellings the directive language allows.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, true
	case "off", "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}
