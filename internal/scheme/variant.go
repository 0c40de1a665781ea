// Package scheme derives the full Material Design 3 role palette from
// a seed colour, brightness mode, variant, and contrast level.
package scheme

import "fmt"

// Variant selects the algorithm used to derive the key tonal palettes
// from the seed colour.
type Variant int

const (
	TonalSpot Variant = iota
	Content
	Expressive
	Fidelity
	Monochrome
	Neutral
	Vibrant
	FruitSalad
	Rainbow
)

var variantNames = map[Variant]string{
	TonalSpot:  "tonal-spot",
	Content:    "content",
	Expressive: "expressive",
	Fidelity:   "fidelity",
	Monochrome: "monochrome",
	Neutral:    "neutral",
	Vibrant:    "vibrant",
	FruitSalad: "fruit-salad",
	Rainbow:    "rainbow",
}

// VariantNames lists every valid variant name, in declaration order.
func VariantNames() []string {
	names := make([]string, 0, len(variantNames))
	for v := TonalSpot; v <= Rainbow; v++ {
		names = append(names, variantNames[v])
	}
	return names
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant parses a variant name as used on the command line.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return TonalSpot, fmt.Errorf("unknown scheme variant %q (valid: %v)", s, VariantNames())
}
