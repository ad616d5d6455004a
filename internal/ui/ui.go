package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ANSI palette indexes.
const (
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorBlue   = "4"
)

// UI writes human-facing messages. Tool answers go to Out, diagnostics to Err.
type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    termenv.NewOutput(err),
		ColorEnabled: shouldEnableColor(output, mode, disableColor),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if disableColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

func (u *UI) Errorf(format string, args ...any) {
	u.print(u.Err, u.ErrOutput, colorRed, fmt.Sprintf(format, args...))
}

func (u *UI) Warnf(format string, args ...any) {
	u.print(u.Err, u.ErrOutput, colorYellow, fmt.Sprintf(format, args...))
}

func (u *UI) Infof(format string, args ...any) {
	u.print(u.Out, u.Output, colorBlue, fmt.Sprintf(format, args...))
}

func (u *UI) Successf(format string, args ...any) {
	u.print(u.Out, u.Output, colorGreen, fmt.Sprintf(format, args...))
}

// Answer prints a tool answer as-is to Out, or in red to Err when failed.
func (u *UI) Answer(text string, failed bool) {
	if failed {
		u.print(u.Err, u.ErrOutput, colorRed, text)
		return
	}
	fmt.Fprintln(u.Out, strings.Trim(text, "\n"))
}

func (u *UI) print(w io.Writer, output *termenv.Output, color string, msg string) {
	msg = strings.TrimRight(msg, "\n")
	if u.ColorEnabled {
		msg = output.String(msg).Foreground(output.Color(color)).String()
	}
	fmt.Fprintln(w, msg)
}

func NormalizeColorMode(value string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ColorAlways):
		return ColorAlways
	case string(ColorNever):
		return ColorNever
	default:
		return ColorAuto
	}
}
