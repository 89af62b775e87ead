package domain

import (
	"fmt"
	"runtime"
)

// CallSite identifies the source position a declaration or navigation call
// originated from. Every reported failure carries one.
type CallSite struct {
	File string
	Line int
}

// Here captures the call site skip levels above the caller. Public API entry
// points use Here(1) to attribute failures to the test that invoked them.
func Here(skip int) CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{File: "unknown"}
	}
	return CallSite{File: file, Line: line}
}

func (c CallSite) String() string {
	return fmt.Sprintf("%s:%d", c.File, c.Line)
}
