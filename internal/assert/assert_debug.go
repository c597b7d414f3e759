// +build debug

package assert

import "fmt"

// DEBUG reports whether Assert actually evaluates its condition.
const DEBUG = true

// Assert panics with a formatted message when test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
