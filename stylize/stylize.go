// Package stylize wraps strings in ANSI terminal escape codes.
package stylize

// Style names a text treatment used when rendering.
type Style string

const (
	StyleWarn       Style = "warn"
	StyleFail       Style = "fail"
	StyleOk         Style = "ok"
	StyleAccent     Style = "accent"
	StyleUnderlined Style = "underlined"
)

// reset restores the default foreground color.
const reset = "\u001b[39m"

var escapeCodes = map[string]string{
	// Colors
	"white":   "\u001b[37m",
	"grey":    "\u001b[90m",
	"black":   "\u001b[30m",
	"blue":    "\u001b[34m",
	"cyan":    "\u001b[36m",
	"green":   "\u001b[32m",
	"magenta": "\u001b[35m",
	"red":     "\u001b[31m",
	"yellow":  "\u001b[33m",
	// Styles
	"bold":       "\u001b[1m",
	"underlined": "\u001b[0m",
}

var styles = map[Style]string{
	StyleWarn:       "yellow",
	StyleFail:       "red",
	StyleOk:         "green",
	StyleAccent:     "bold",
	StyleUnderlined: "underlined",
}

// Wrap surrounds s with the escape code registered under name and a
// foreground reset. Unknown names return s unchanged.
func Wrap(s, name string) string {
	code, ok := escapeCodes[name]
	if !ok {
		return s
	}
	return code + s + reset
}

// Apply renders s with the given style. Unknown styles return s unchanged.
func Apply(s string, style Style) string {
	name, ok := styles[style]
	if !ok {
		return s
	}
	return Wrap(s, name)
}

func Warn(s string) string       { return Apply(s, StyleWarn) }
func Fail(s string) string       { return Apply(s, StyleFail) }
func Ok(s string) string         { return Apply(s, StyleOk) }
func Accent(s string) string     { return Apply(s, StyleAccent) }
func Underlined(s string) string { return Apply(s, StyleUnderlined) }
