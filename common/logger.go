package common

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Verbosity int

const (
	Silent Verbosity = iota
	Normal
	Debugging
	Tracing
)

func (it Verbosity) String() string {
	switch it {
	case Silent:
		return "silent"
	case Debugging:
		return "debug"
	case Tracing:
		return "trace"
	default:
		return "normal"
	}
}

// DefineVerbosity resolves command line switches into one level. Trace wins
// over debug, and debug wins over silent.
func DefineVerbosity(silent, debug, trace bool) Verbosity {
	switch {
	case trace:
		return Tracing
	case debug:
		return Debugging
	case silent:
		return Silent
	default:
		return Normal
	}
}

// Logger is handed explicitly to every pipeline stage, so nothing depends
// on ambient verbosity state.
type Logger struct {
	mu      sync.Mutex
	level   Verbosity
	stderr  io.Writer
	stdout  io.Writer
	hides   []string
	line    uint64
	numbers bool
	now     func() time.Time
}

func NewLogger(level Verbosity, stderr, stdout io.Writer) *Logger {
	return &Logger{
		level:  level,
		stderr: stderr,
		stdout: stdout,
		hides:  []string{},
		now:    time.Now,
	}
}

func ConsoleLogger(level Verbosity) *Logger {
	return NewLogger(level, os.Stderr, os.Stdout)
}

func QuietLogger() *Logger {
	return NewLogger(Silent, io.Discard, io.Discard)
}

func (it *Logger) Level() Verbosity {
	return it.level
}

func (it *Logger) Silent() bool {
	return it.level == Silent
}

func (it *Logger) DebugFlag() bool {
	return it.level >= Debugging
}

func (it *Logger) TraceFlag() bool {
	return it.level >= Tracing
}

// LineNumbers turns on line counters for non-trace output.
func (it *Logger) LineNumbers(enabled bool) {
	it.mu.Lock()
	it.numbers = enabled
	it.mu.Unlock()
}

// Hide suppresses every line that contains one of the fragments.
func (it *Logger) Hide(fragments ...string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, fragment := range fragments {
		if len(fragment) > 0 {
			it.hides = append(it.hides, fragment)
		}
	}
}

func (it *Logger) AcceptableOutput(message string) bool {
	for _, fragment := range it.hides {
		if strings.Contains(message, fragment) {
			return false
		}
	}
	return true
}

func (it *Logger) printout(out io.Writer, message string) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if !it.AcceptableOutput(message) {
		return
	}
	it.line += 1
	stamp := ""
	if it.level >= Tracing {
		stamp = it.now().Format("02.150405.000 ")
	} else if it.numbers {
		stamp = fmt.Sprintf("%3d ", it.line)
	}
	fmt.Fprintf(out, "%s%s\n", stamp, message)
}

func (it *Logger) Error(context string, err error) {
	if err != nil {
		it.Log("Error [%s]: %v", context, err)
	}
}

func (it *Logger) Uncritical(context string, err error) {
	if err != nil {
		it.Log("Warning [%s; not critical]: %v", context, err)
	}
}

func (it *Logger) Warning(format string, details ...interface{}) {
	it.Log("Warning: "+format, details...)
}

func (it *Logger) Log(format string, details ...interface{}) {
	if !it.Silent() {
		prefix := ""
		if it.DebugFlag() {
			prefix = "[N] "
		}
		it.printout(it.stderr, fmt.Sprintf(prefix+format, details...))
	}
}

func (it *Logger) Debug(format string, details ...interface{}) {
	if it.DebugFlag() {
		it.printout(it.stderr, fmt.Sprintf("[D] "+format, details...))
	}
}

func (it *Logger) Trace(format string, details ...interface{}) {
	if it.TraceFlag() {
		it.printout(it.stderr, fmt.Sprintf("[T] "+format, details...))
	}
}

// Stdout is for results, and it ignores verbosity.
func (it *Logger) Stdout(format string, details ...interface{}) {
	message := format
	if len(details) > 0 {
		message = fmt.Sprintf(format, details...)
	}
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.AcceptableOutput(message) {
		fmt.Fprint(it.stdout, message)
	}
}
