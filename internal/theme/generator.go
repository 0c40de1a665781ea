package theme

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/materialise/internal/colour"
	"github.com/jmylchreest/materialise/internal/hct"
	imageutil "github.com/jmylchreest/materialise/internal/image"
	"github.com/jmylchreest/materialise/internal/scheme"
)

const (
	// quantiseColours is how many representative colours are extracted
	// from an image before scoring.
	quantiseColours = 128

	// scoreCandidates is how many seed candidates the scorer ranks.
	scoreCandidates = 4

	// saturationCutoff is the sampled average saturation (percent)
	// below which an image is treated as monochrome.
	saturationCutoff = 15

	// chromaCutoff is the seed chroma below which the scheme falls back
	// to monochrome even when the saturation gate passed.
	chromaCutoff = 10
)

// neutralSeed is the fixed grey seed used for monochrome fallbacks.
var neutralSeed = colour.RGB{R: 128, G: 128, B: 128}

// Source selects exactly one seed origin for a pipeline run.
type Source struct {
	// ImagePath is the path of an image to extract the seed from.
	ImagePath string

	// Colour is a literal "#RRGGBB" seed. Mutually exclusive with
	// ImagePath.
	Colour string
}

// Options configures a pipeline run.
type Options struct {
	// Dark selects dark mode tones; light otherwise.
	Dark bool

	// Variant is the requested scheme variant. The effective variant
	// may differ when the monochrome fallback triggers.
	Variant scheme.Variant

	// Contrast is the contrast level, clamped to [-1, 1].
	Contrast float32

	// MaxDimension bounds the sampled image size (default 64).
	MaxDimension int

	// Loader loads the source image; defaults to a filesystem loader.
	Loader imageutil.Loader

	// Logger receives debug diagnostics. Defaults to a disabled logger.
	Logger hclog.Logger
}

// Generate runs the full pipeline: seed resolution, role palette
// generation, and shell palette derivation.
func Generate(src Source, opts Options) (*Document, error) {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.MaxDimension < 1 {
		opts.MaxDimension = imageutil.DefaultMaxDimension
	}
	if opts.Loader == nil {
		opts.Loader = imageutil.NewFileLoader()
	}

	seed, mono, err := resolveSeed(src, opts)
	if err != nil {
		return nil, err
	}

	variant := opts.Variant
	if mono {
		variant = scheme.Monochrome
	}

	seedHCT := hct.SRGBToHCT(float32(seed.R)/255, float32(seed.G)/255, float32(seed.B)/255)
	opts.Logger.Debug("resolved seed",
		"colour", seed.Hex(),
		"hue", fmt.Sprintf("%.1f", seedHCT.Hue),
		"chroma", fmt.Sprintf("%.1f", seedHCT.Chroma),
		"tone", fmt.Sprintf("%.1f", seedHCT.Tone),
		"variant", variant.String(),
	)

	roles := scheme.New(seedHCT, opts.Dark, variant, opts.Contrast).Roles()
	material := make(map[string]string, len(roles))
	for name, rgb := range roles {
		material[name] = rgb.Hex()
	}

	mode := "light"
	if opts.Dark {
		mode = "dark"
	}
	return &Document{
		Mode:      mode,
		Scheme:    variant.String(),
		SeedColor: seed.Hex(),
		Material:  material,
		Shell:     Shell(material),
	}, nil
}

// resolveSeed yields the seed colour and whether the monochrome
// fallback was triggered.
func resolveSeed(src Source, opts Options) (colour.RGB, bool, error) {
	if src.Colour != "" {
		seed, err := colour.FromHex(src.Colour)
		if err != nil {
			return colour.RGB{}, false, err
		}
		seed, mono := gateChroma(seed, opts)
		return seed, mono, nil
	}

	img, err := opts.Loader.Load(src.ImagePath)
	if err != nil {
		return colour.RGB{}, false, err
	}

	sampled := imageutil.Downsample(img, opts.MaxDimension)

	saturation := colour.MeanSaturation(sampled) * 100
	if saturation < saturationCutoff {
		opts.Logger.Debug("low saturation, using monochrome", "saturation", fmt.Sprintf("%.1f%%", saturation))
		return neutralSeed, true, nil
	}

	population, err := colour.NewQuantiser().Quantise(sampled, quantiseColours)
	if err != nil {
		return colour.RGB{}, false, fmt.Errorf("failed to quantise image: %w", err)
	}

	scored := colour.Score(population, scoreCandidates)
	if len(scored) == 0 {
		return colour.RGB{}, false, fmt.Errorf("could not extract a seed colour from %s", src.ImagePath)
	}

	best, mono := gateChroma(scored[0], opts)
	return best, mono, nil
}

// gateChroma applies the seed chroma cutoff regardless of where the
// seed came from: a near-achromatic seed falls back to the fixed
// neutral grey with a monochrome scheme.
func gateChroma(seed colour.RGB, opts Options) (colour.RGB, bool) {
	h := hct.SRGBToHCT(float32(seed.R)/255, float32(seed.G)/255, float32(seed.B)/255)
	if h.Chroma < chromaCutoff {
		opts.Logger.Debug("low chroma, using monochrome", "chroma", fmt.Sprintf("%.1f", h.Chroma))
		return neutralSeed, true
	}
	return seed, false
}
