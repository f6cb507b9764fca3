// Package errcode is the symbolic error catalog for fault injection.
//
// The catalog is a fixed, compiled-in table mapping symbolic names such as
// "ENOSPC" to platform errno values and back. The mapping is injective in
// both directions: errnos that alias another on this platform (EWOULDBLOCK,
// EOPNOTSUPP) appear only under their canonical name.
//
// Name lookup is case-insensitive because the names arrive from
// configuration text. Reverse lookup failing is a logic error, never a
// user-facing condition: every errno the fault engine stores was resolved
// through FromName first.
package errcode
