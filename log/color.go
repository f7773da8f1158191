package log

import "github.com/fatih/color"

var levelColors = map[LogLevel]*color.Color{
	Debug: forcedColor(color.FgBlue),
	Info:  forcedColor(color.FgGreen),
	Warn:  forcedColor(color.FgYellow),
	Error: forcedColor(color.FgRed),
	Fatal: forcedColor(color.FgMagenta, color.Bold),
}

// forcedColor ignores color.NoColor; the logger decides per writer instead.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()

	return c
}

// Colorize wraps text in the colour assigned to the level.
func Colorize(l LogLevel, text string) string {
	c, ok := levelColors[l]
	if !ok {
		return text
	}

	return c.Sprint(text)
}
