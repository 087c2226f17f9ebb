package shaders

import (
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// TrimLog strips the NUL terminator and trailing whitespace drivers leave
// in info logs.
func TrimLog(raw string) string {
	return strings.TrimRight(raw, "\x00 \t\r\n")
}
