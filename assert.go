package bmesh

import "fmt"

// assert panics when a structural precondition does not hold. These are
// caller bugs, not recoverable errors.
func assert(cond bool, msg string) {
	if !cond {
		panic("bmesh: " + msg)
	}
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("bmesh: " + fmt.Sprintf(format, args...))
	}
}
