package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

// ParseVerbosity maps a case-insensitive level name to a VerbosityLevel.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return Verbose, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	default:
		return Info, fmt.Errorf("invalid verbosity level '%s'. Valid levels are Verbose, Info, Warning, Error, Off", s)
	}
}

func (v VerbosityLevel) String() string {
	switch v {
	case Verbose:
		return "Verbose"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Off:
		return "Off"
	default:
		return fmt.Sprintf("VerbosityLevel(%d)", int(v))
	}
}

// Logger writes console lines at or above its verbosity level.
type Logger struct {
	out   io.Writer
	level VerbosityLevel
	warn  *color.Color
	err   *color.Color
}

// New returns a Logger writing to out. Colors are only emitted when out is
// the process's standard output and that is a terminal.
func New(out io.Writer, level VerbosityLevel) *Logger {
	l := &Logger{
		out:   out,
		level: level,
		warn:  color.New(color.FgYellow),
		err:   color.New(color.FgRed),
	}
	if out != os.Stdout || color.NoColor {
		l.warn.DisableColor()
		l.err.DisableColor()
	}
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Off)
}

func (l *Logger) Level() VerbosityLevel { return l.level }

func (l *Logger) Enabled(level VerbosityLevel) bool {
	return level != Off && level >= l.level
}

func (l *Logger) Verbosef(format string, args ...any) {
	if l.Enabled(Verbose) {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.Enabled(Info) {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

func (l *Logger) Warningf(format string, args ...any) {
	if l.Enabled(Warning) {
		l.warn.Fprintf(l.out, "Warning: "+format+"\n", args...)
	}
}

// Errorf writes an error line. Lines are printed verbatim (no prefix) so
// multi-line diagnostics such as captured process output stay readable.
func (l *Logger) Errorf(format string, args ...any) {
	if l.Enabled(Error) {
		l.err.Fprintf(l.out, format+"\n", args...)
	}
}

// Diagnosef writes an error line whatever the verbosity level. It is for
// output a failure must always show, such as a failed tool's captured streams.
func (l *Logger) Diagnosef(format string, args ...any) {
	l.err.Fprintf(l.out, format+"\n", args...)
}
