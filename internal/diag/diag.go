// Package diag provides leveled console output for the CLI. Everything goes
// to one writer (stderr in practice) so that stdout stays free for
// generated text.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Level represents the level of diagnostic output.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
)

// Reporter writes leveled messages.
type Reporter struct {
	level Level
	out   io.Writer

	errColor  *color.Color
	warnColor *color.Color
	okColor   *color.Color
	dimColor  *color.Color
}

// New creates a reporter writing to out. Colors follow fatih/color's
// terminal detection and NO_COLOR.
func New(level Level, out io.Writer) *Reporter {
	r := &Reporter{
		level:     level,
		out:       out,
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow),
		okColor:   color.New(color.FgGreen),
		dimColor:  color.New(color.FgHiBlack),
	}
	if f, ok := out.(*os.File); !ok || f != os.Stderr || color.NoColor {
		r.SetColors(false)
	}
	return r
}

// LevelFor maps the --quiet and --verbose flags to a level. Quiet wins.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case quiet:
		return LevelError
	case verbose:
		return LevelVerbose
	default:
		return LevelWarn
	}
}

// SetColors forces colors on or off.
func (r *Reporter) SetColors(on bool) {
	for _, c := range []*color.Color{r.errColor, r.warnColor, r.okColor, r.dimColor} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Error outputs error messages (always shown unless silent).
func (r *Reporter) Error(format string, args ...interface{}) {
	r.write(LevelError, r.errColor, "ERROR", format, args...)
}

// Warn outputs warning messages.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.write(LevelWarn, r.warnColor, "WARN", format, args...)
}

// Info outputs informational messages.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.write(LevelInfo, r.okColor, "INFO", format, args...)
}

// Verbose outputs detailed messages (verbose mode only).
func (r *Reporter) Verbose(format string, args ...interface{}) {
	r.write(LevelVerbose, r.dimColor, "VERBOSE", format, args...)
}

func (r *Reporter) write(level Level, c *color.Color, tag, format string, args ...interface{}) {
	if r.level < level {
		return
	}
	prefix := c.Sprint("[" + tag + "]")
	fmt.Fprintf(r.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
