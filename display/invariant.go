package display

import (
	"fmt"
	"sync/atomic"
)

// debugInvariants turns upstream contract violations (an operator without the
// op_ prefix, a conversion that is neither op_Explicit nor op_Implicit) into
// panics. It is off in production, where the raw name is rendered instead.
var debugInvariants atomic.Bool

func invariant(cond bool, format string, args ...any) {
	if !cond && debugInvariants.Load() {
		panic("display: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
