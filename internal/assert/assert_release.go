// +build !debug

// Package assert provides cheap invariant checks that compile away
// entirely in release builds. Build with -tags debug to get panics
// instead of no-ops.
package assert

// DEBUG reports whether Assert actually evaluates its condition.
const DEBUG = false

// Assert panics with a formatted message when test is false and the
// package was built with the debug tag. In release builds it is a
// no-op; callers still guard calls with "if assert.DEBUG" so the
// compiler can drop the whole statement, including any argument
// expressions that would otherwise have a cost.
func Assert(test bool, msg string, a ...interface{}) {}
