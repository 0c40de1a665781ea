package theme

import (
	"github.com/jmylchreest/materialise/internal/colour"
)

// shellTint is the base amount by which background shell roles are
// tinted towards the primary container.
const shellTint = 0.15

// Shell derives the shell palette from the material role palette. It
// never touches the seed colour: background-family roles are blends of
// material roles, everything else is an aliased material role with a
// literal fallback when the role is absent.
func Shell(material map[string]string) map[string]string {
	get := func(name, fallback string) string {
		if v, ok := material[name]; ok {
			return v
		}
		return fallback
	}

	surface := get("surface", "#1a1a1a")
	surfaceContainer := get("surfaceContainer", "#1e1e1e")
	surfaceContainerHighest := get("surfaceContainerHighest", "#333333")
	primaryContainer := get("primaryContainer", "#004c99")

	return map[string]string{
		"backgroundColor":       blendHex(surfaceContainer, primaryContainer, shellTint),
		"backgroundColorDim":    blendHex(surface, primaryContainer, shellTint*0.7),
		"backgroundColorBright": blendHex(surfaceContainerHighest, primaryContainer, shellTint),
		"backgroundColorHover":  blendHex(surfaceContainerHighest, primaryContainer, shellTint*1.3),

		"foregroundColor": get("onSurface", "#ffffff"),
		"dimmedColor":     get("outline", "#888888"),

		"accentColor":    get("primary", "#007AFF"),
		"accentColorDim": get("primaryContainer", "#004c99"),
		"onAccentColor":  get("onPrimary", "#ffffff"),

		"secondaryColor": get("secondary", "#666666"),
		"tertiaryColor":  get("tertiary", "#888888"),

		"surfaceContainer":     get("surfaceContainerHigh", get("surfaceContainer", "#1e1e1e")),
		"surfaceContainerLow":  get("surfaceContainer", get("surfaceContainerLow", "#1a1a1a")),
		"surfaceContainerHigh": get("surfaceContainerHighest", get("surfaceContainerHigh", "#282828")),

		"workspaceActive":   get("primary", "#ffffff"),
		"workspaceInactive": get("outlineVariant", "#555555"),
		"workspaceUrgent":   get("error", "#ff5555"),

		"errorColor":   get("error", "#ff5555"),
		"onErrorColor": get("onError", "#ffffff"),
		"successColor": "#4ade80",
		"warningColor": "#ffa726",

		"borderColor": get("outlineVariant", "#333333"),
		"shadowColor": get("shadow", "#000000"),
	}
}

// blendHex blends two hex colours, tolerating malformed input by
// falling back to the base colour.
func blendHex(a, b string, amount float32) string {
	ca, err := colour.FromHex(a)
	if err != nil {
		return a
	}
	cb, err := colour.FromHex(b)
	if err != nil {
		return a
	}
	return colour.Blend(ca, cb, amount).Hex()
}
