package bintree

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// CallData describes where in client code an operation originated.
// It is informational only and never influences tree structure.
type CallData struct {
	File     string
	Line     int
	Function string
}

// Here returns a CallData for the caller of Here.
func Here() CallData {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return CallData{}
	}
	cd := CallData{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		cd.Function = fn.Name()
	}
	return cd
}

// IsZero reports whether cd carries no origin information.
func (cd CallData) IsZero() bool {
	return cd.File == "" && cd.Line == 0 && cd.Function == ""
}

func (cd CallData) String() string {
	if cd.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d (%s)", filepath.Base(cd.File), cd.Line, cd.Function)
}
