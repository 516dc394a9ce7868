// Package icons provides glyph lookup for toast icons.
package icons

// glyphs maps icon names to terminal glyphs.
var glyphs = map[string]string{
	"info":           "",
	"circle-check":   "",
	"triangle-alert": "",
	"circle-x":       "",
	"close":          "✕",
	"bell":           "",
	"clock":          "",
	"download":       "",
	"upload":         "",
}

// severityIcons maps semantic roles to their default icon name.
var severityIcons = map[string]string{
	"info":    "info",
	"success": "circle-check",
	"warning": "triangle-alert",
	"error":   "circle-x",
}

// Lookup returns the glyph for an icon name. Unknown names return the
// fallback bell glyph; a missing icon is never an error.
func Lookup(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return glyphs["bell"]
}

// ForSeverity returns the default glyph for a semantic role.
func ForSeverity(role string) string {
	name, ok := severityIcons[role]
	if !ok {
		name = "info"
	}
	return glyphs[name]
}

// Known reports whether an icon name is registered.
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}
