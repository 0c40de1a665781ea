package scheme

import (
	"github.com/jmylchreest/materialise/internal/colour"
)

// paletteKind selects which of a scheme's key palettes a role draws from.
type paletteKind int

const (
	palPrimary paletteKind = iota
	palSecondary
	palTertiary
	palNeutral
	palNeutralVariant
	palError
)

// roleDef maps a role name to its palette and its tone in each
// brightness mode. Foreground roles have their tone stretched away
// from the mid tone as the contrast level rises.
type roleDef struct {
	name       string
	palette    paletteKind
	light      float32
	dark       float32
	foreground bool
}

// contrastStretch is how far a foreground role's tone moves at full
// contrast level.
const contrastStretch = 10

// roleTable is the closed set of material roles. Every variant
// populates exactly these names; only the values differ.
var roleTable = []roleDef{
	// Palette key colours.
	{name: "primaryPaletteKeyColor", palette: palPrimary, light: 50, dark: 50},
	{name: "secondaryPaletteKeyColor", palette: palSecondary, light: 50, dark: 50},
	{name: "tertiaryPaletteKeyColor", palette: palTertiary, light: 50, dark: 50},
	{name: "neutralPaletteKeyColor", palette: palNeutral, light: 50, dark: 50},
	{name: "neutralVariantPaletteKeyColor", palette: palNeutralVariant, light: 50, dark: 50},

	// Surfaces.
	{name: "background", palette: palNeutral, light: 98, dark: 6},
	{name: "onBackground", palette: palNeutral, light: 10, dark: 90, foreground: true},
	{name: "surface", palette: palNeutral, light: 98, dark: 6},
	{name: "surfaceDim", palette: palNeutral, light: 87, dark: 6},
	{name: "surfaceBright", palette: palNeutral, light: 98, dark: 24},
	{name: "surfaceContainerLowest", palette: palNeutral, light: 100, dark: 4},
	{name: "surfaceContainerLow", palette: palNeutral, light: 96, dark: 10},
	{name: "surfaceContainer", palette: palNeutral, light: 94, dark: 12},
	{name: "surfaceContainerHigh", palette: palNeutral, light: 92, dark: 17},
	{name: "surfaceContainerHighest", palette: palNeutral, light: 90, dark: 22},
	{name: "onSurface", palette: palNeutral, light: 10, dark: 90, foreground: true},
	{name: "surfaceVariant", palette: palNeutralVariant, light: 90, dark: 30},
	{name: "onSurfaceVariant", palette: palNeutralVariant, light: 30, dark: 80, foreground: true},
	{name: "inverseSurface", palette: palNeutral, light: 20, dark: 90},
	{name: "inverseOnSurface", palette: palNeutral, light: 95, dark: 20, foreground: true},
	{name: "outline", palette: palNeutralVariant, light: 50, dark: 60, foreground: true},
	{name: "outlineVariant", palette: palNeutralVariant, light: 80, dark: 30},
	{name: "shadow", palette: palNeutral, light: 0, dark: 0},
	{name: "scrim", palette: palNeutral, light: 0, dark: 0},
	{name: "surfaceTint", palette: palPrimary, light: 40, dark: 80},

	// Primary family.
	{name: "primary", palette: palPrimary, light: 40, dark: 80, foreground: true},
	{name: "onPrimary", palette: palPrimary, light: 100, dark: 20, foreground: true},
	{name: "primaryContainer", palette: palPrimary, light: 90, dark: 30},
	{name: "onPrimaryContainer", palette: palPrimary, light: 10, dark: 90, foreground: true},
	{name: "inversePrimary", palette: palPrimary, light: 80, dark: 40},

	// Secondary family.
	{name: "secondary", palette: palSecondary, light: 40, dark: 80, foreground: true},
	{name: "onSecondary", palette: palSecondary, light: 100, dark: 20, foreground: true},
	{name: "secondaryContainer", palette: palSecondary, light: 90, dark: 30},
	{name: "onSecondaryContainer", palette: palSecondary, light: 10, dark: 90, foreground: true},

	// Tertiary family.
	{name: "tertiary", palette: palTertiary, light: 40, dark: 80, foreground: true},
	{name: "onTertiary", palette: palTertiary, light: 100, dark: 20, foreground: true},
	{name: "tertiaryContainer", palette: palTertiary, light: 90, dark: 30},
	{name: "onTertiaryContainer", palette: palTertiary, light: 10, dark: 90, foreground: true},

	// Error family.
	{name: "error", palette: palError, light: 40, dark: 80, foreground: true},
	{name: "onError", palette: palError, light: 100, dark: 20, foreground: true},
	{name: "errorContainer", palette: palError, light: 90, dark: 30},
	{name: "onErrorContainer", palette: palError, light: 10, dark: 90, foreground: true},

	// Fixed roles keep the same tone in both modes.
	{name: "primaryFixed", palette: palPrimary, light: 90, dark: 90},
	{name: "primaryFixedDim", palette: palPrimary, light: 80, dark: 80},
	{name: "onPrimaryFixed", palette: palPrimary, light: 10, dark: 10, foreground: true},
	{name: "onPrimaryFixedVariant", palette: palPrimary, light: 30, dark: 30, foreground: true},
	{name: "secondaryFixed", palette: palSecondary, light: 90, dark: 90},
	{name: "secondaryFixedDim", palette: palSecondary, light: 80, dark: 80},
	{name: "onSecondaryFixed", palette: palSecondary, light: 10, dark: 10, foreground: true},
	{name: "onSecondaryFixedVariant", palette: palSecondary, light: 30, dark: 30, foreground: true},
	{name: "tertiaryFixed", palette: palTertiary, light: 90, dark: 90},
	{name: "tertiaryFixedDim", palette: palTertiary, light: 80, dark: 80},
	{name: "onTertiaryFixed", palette: palTertiary, light: 10, dark: 10, foreground: true},
	{name: "onTertiaryFixedVariant", palette: palTertiary, light: 30, dark: 30, foreground: true},
}

// RoleNames returns the closed set of role names in table order.
func RoleNames() []string {
	names := make([]string, len(roleTable))
	for i, def := range roleTable {
		names[i] = def.name
	}
	return names
}

// Roles computes the full role palette for the scheme. The result
// always contains every role name in the closed table.
func (s *Scheme) Roles() map[string]colour.RGB {
	out := make(map[string]colour.RGB, len(roleTable))
	for _, def := range roleTable {
		out[def.name] = s.paletteFor(def.palette).Tone(s.roleTone(def))
	}
	return out
}

func (s *Scheme) paletteFor(kind paletteKind) Tonal {
	switch kind {
	case palPrimary:
		return s.Primary
	case palSecondary:
		return s.Secondary
	case palTertiary:
		return s.Tertiary
	case palNeutralVariant:
		return s.NeutralVariant
	case palError:
		return s.Error
	default:
		return s.Neutral
	}
}

// roleTone selects the mode-appropriate tone and applies the contrast
// stretch: positive contrast pushes foreground tones away from the
// mid tone, negative contrast pulls them in.
func (s *Scheme) roleTone(def roleDef) float32 {
	tone := def.light
	if s.Dark {
		tone = def.dark
	}
	if !def.foreground || s.Contrast == 0 {
		return tone
	}
	delta := s.Contrast * contrastStretch
	if tone < 50 {
		tone -= delta
	} else {
		tone += delta
	}
	return clampF(tone, 0, 100)
}
