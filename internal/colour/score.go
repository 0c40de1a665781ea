package colour

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/jmylchreest/materialise/internal/hct"
)

// Scoring constants tuned for picking source colours that make
// attractive, recognisable themes.
const (
	targetChroma            = 48.0 // A1 chroma
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// scored pairs a candidate with its suitability score.
type scored struct {
	index int
	hct   hct.HCT
	score float32
}

// Score ranks quantised colours by their suitability as a theme seed,
// returning up to desired colours ordered best-first. Colours that are
// too grey or too rare are filtered out; hue-wise near-duplicates are
// removed so the results are visually distinct. The result is empty
// only when the input is empty: if every candidate is filtered out,
// the most populous input colour is returned.
func Score(candidates []Weighted, desired int) []RGB {
	if len(candidates) == 0 || desired < 1 {
		return nil
	}

	hcts := make([]hct.HCT, len(candidates))
	populationSum := 0
	var huePopulation [360]float64
	for i, cand := range candidates {
		h := hct.SRGBToHCT(
			float32(cand.Colour.R)/255,
			float32(cand.Colour.G)/255,
			float32(cand.Colour.B)/255,
		)
		hcts[i] = h
		hue := sanitizeHueInt(int(math32.Round(h.Hue)))
		huePopulation[hue] += float64(cand.Population)
		populationSum += cand.Population
	}
	if populationSum == 0 {
		return nil
	}

	// Proportion of the image within 15 degrees of each hue.
	var hueExcitedProportions [360]float64
	for i := 0; i < 360; i++ {
		proportion := huePopulation[i] / float64(populationSum)
		for j := i - 14; j < i+16; j++ {
			hueExcitedProportions[sanitizeHueInt(j)] += proportion
		}
	}

	var ranked []scored
	for i, h := range hcts {
		hue := sanitizeHueInt(int(math32.Round(h.Hue)))
		proportion := hueExcitedProportions[hue]
		if h.Chroma < cutoffChroma || proportion <= cutoffExcitedProportion {
			continue
		}
		proportionScore := proportion * 100 * weightProportion
		chromaWeight := float64(weightChromaBelow)
		if h.Chroma >= targetChroma {
			chromaWeight = weightChromaAbove
		}
		chromaScore := float64(h.Chroma-targetChroma) * chromaWeight
		ranked = append(ranked, scored{index: i, hct: h, score: float32(proportionScore + chromaScore)})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	// Prefer widely spread hues, relaxing the required separation until
	// enough colours are chosen.
	var chosen []scored
	for diff := 90; diff >= 15; diff-- {
		chosen = chosen[:0]
		for _, cand := range ranked {
			duplicate := false
			for _, c := range chosen {
				if hueDistance(cand.hct.Hue, c.hct.Hue) < float32(diff) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				chosen = append(chosen, cand)
				if len(chosen) >= desired {
					break
				}
			}
		}
		if len(chosen) >= desired {
			break
		}
	}

	if len(chosen) == 0 {
		return []RGB{mostPopulous(candidates)}
	}

	out := make([]RGB, len(chosen))
	for i, c := range chosen {
		out[i] = candidates[c.index].Colour
	}
	return out
}

func mostPopulous(candidates []Weighted) RGB {
	best := 0
	for i, c := range candidates {
		if c.Population > candidates[best].Population {
			best = i
		}
	}
	return candidates[best].Colour
}

// hueDistance returns the angular distance between two hues on the
// colour wheel, between 0 and 180 degrees.
func hueDistance(h1, h2 float32) float32 {
	diff := math32.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func sanitizeHueInt(hue int) int {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	return hue
}
