package term

import (
	"fmt"
	"strings"

	"github.com/creativeprojects/folders/lib"
	"github.com/pterm/pterm"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var lvl = LevelInfo

func SetLevel(level Level) {
	lvl = level
}

func GetLevel() Level {
	return lvl
}

func output(level Level, color pterm.Color, a ...any) {
	if lvl > level {
		return
	}
	color.Println(a...)
}

func outputf(level Level, color pterm.Color, format string, a ...any) {
	if lvl > level {
		return
	}
	color.Printfln(format, a...)
}

func Trace(a ...any) {
	output(LevelTrace, pterm.FgGray, a...)
}

func Tracef(format string, a ...any) {
	outputf(LevelTrace, pterm.FgGray, format, a...)
}

func Debug(a ...any) {
	output(LevelDebug, pterm.FgLightCyan, a...)
}

func Debugf(format string, a ...any) {
	outputf(LevelDebug, pterm.FgLightCyan, format, a...)
}

func Info(a ...any) {
	output(LevelInfo, pterm.FgLightGreen, a...)
}

func Infof(format string, a ...any) {
	outputf(LevelInfo, pterm.FgLightGreen, format, a...)
}

func Warn(a ...any) {
	output(LevelWarn, pterm.FgYellow, a...)
}

func Warnf(format string, a ...any) {
	outputf(LevelWarn, pterm.FgYellow, format, a...)
}

// Error is always displayed
func Error(a ...any) {
	pterm.FgLightRed.Println(a...)
}

func Errorf(format string, a ...any) {
	pterm.FgLightRed.Printfln(format, a...)
}

// debugLogger sends lib.Logger output to the debug level
type debugLogger struct{}

// DebugLogger returns a lib.Logger printing at debug level
func DebugLogger() lib.Logger {
	return &debugLogger{}
}

func (l *debugLogger) Print(a ...any) {
	Debug(strings.TrimSuffix(fmt.Sprint(a...), "\n"))
}

func (l *debugLogger) Printf(format string, a ...any) {
	Debugf(strings.TrimSuffix(format, "\n"), a...)
}
