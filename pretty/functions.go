package pretty

import (
	"fmt"

	"github.com/joshyorko/sbomtool/common"
)

func Ok(log *common.Logger) error {
	log.Log("%sOK.%s", Green, Reset)
	return nil
}

func Note(log *common.Logger, format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sNote: %s%s", Cyan, format, Reset)
	log.Log(niceform, rest...)
}

func Warning(log *common.Logger, format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", Yellow, format, Reset)
	log.Log(niceform, rest...)
}

// Exit never returns. It panics with common.ExitCode, and the panic is
// turned into a process exit by the recovering main.
func Exit(code int, format string, rest ...interface{}) {
	var niceform string
	if code == 0 {
		niceform = fmt.Sprintf("%s%s%s", Green, format, Reset)
	} else {
		niceform = fmt.Sprintf("%s%s%s", Red, format, Reset)
	}
	panic(common.ExitCode{
		Code:    code,
		Message: fmt.Sprintf(niceform, rest...),
	})
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
