// Package fault implements the fault-injection engine: the operation
// registry, the per-generation fault table built from configuration
// directives, the interception layer, and the engine/session lifecycle.
//
// # Configuration Flow
//
// Configuration text flows one direction. The host's directive parser hands
// tokenized argument lists to a Config; directives build the fault table and
// set the engine flag; the table is read-only after that; sessions consult it
// on every intercepted call.
//
//	eng := fault.NewEngine()
//	eng.Init()
//	eng.Apply(fault.DirectiveEngine, []string{"on"})
//	eng.Apply(fault.DirectiveInject, []string{"filesystem", "ENOSPC", "write", "mkdir"})
//
//	sess := eng.StartSession(osfs.New())
//	if sess.Activated() {
//	    // sess.Provider() is an Interceptor stacked on the real provider
//	}
//
// # Validation
//
// Directive validation is sequential with partial commit: FaultInject
// operations are validated and inserted in input order, and a failure aborts
// the directive leaving earlier insertions from the same directive in place.
// Duplicates are detected cumulatively across directives within one
// generation; a later directive naming an already configured operation is
// rejected, never overwritten.
//
// # Interception
//
// An Interceptor implements fsfault.Provider by decorating an inner provider.
// Operations without a table entry delegate verbatim. Operations with an
// entry never reach the inner provider: the wrapper emits one Debug-level
// diagnostic record and returns the operation's failure sentinel with the
// configured errno. Positional reads and writes share the "read" and "write"
// entries with their plain counterparts.
package fault
