package pretty

import (
	"os"

	"github.com/joshyorko/sbomtool/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Red         string
	Green       string
	Yellow      string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func csi(value string) string {
	return "\x1b[" + value
}

func Setup(log *common.Logger) {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}

	// Missing TERM means a minimal environment, so no escapes at all.
	if os.Getenv("TERM") == "" {
		Colorless = true
	}

	Interactive = stdin && stdout && stderr

	// Messages go to stderr, so that is the stream that decides colors.
	visualOutput := stderr && !Colorless

	log.Trace("Interactive mode enabled: %v; colors enabled: %v", Interactive, visualOutput && !Disabled)
	if visualOutput && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
}
