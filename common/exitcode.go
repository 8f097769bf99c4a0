package common

import (
	"fmt"
	"io"
)

// ExitCode travels as a panic value from deep inside a command up to the
// recovering main function, which then exits with Code.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}

func (it ExitCode) ShowMessage(out io.Writer) {
	if len(it.Message) > 0 {
		fmt.Fprintln(out, it.Message)
	}
}
