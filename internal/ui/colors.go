package ui

// Accessors for the active theme's escape codes. Each returns "" when
// colors are disabled.

func ColorReset() string     { return CurrentTheme().Reset }
func ColorBold() string      { return CurrentTheme().Bold }
func ColorUnderline() string { return CurrentTheme().Underline }
func ColorRed() string       { return CurrentTheme().Error }
func ColorGreen() string     { return CurrentTheme().Success }
func ColorYellow() string    { return CurrentTheme().Warning }
func ColorBlue() string      { return CurrentTheme().Primary }
func ColorMagenta() string   { return CurrentTheme().Info }
func ColorCyan() string      { return CurrentTheme().Secondary }

// Paint wraps s in code and a reset, or returns s unchanged when code is
// empty.
func Paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + ColorReset()
}
