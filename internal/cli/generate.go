package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/materialise/internal/scheme"
	"github.com/jmylchreest/materialise/internal/theme"
)

// generateOptions holds the generate command's flag values.
type generateOptions struct {
	image    string
	colour   string
	mode     string
	scheme   string
	size     int
	contrast float32
	output   string
	preview  bool
}

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Material You colour scheme",
		Long: `Generate a full Material Design 3 colour scheme from a wallpaper image
or a literal seed colour.

The image is downscaled, quantised, and scored to find the best seed
colour; near-greyscale images automatically fall back to a monochrome
scheme. The output document contains the material role palette and a
derived shell palette, as JSON.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Generate a dark scheme from a wallpaper
  materialise generate --image wallpaper.jpg

  # Generate from a literal seed colour
  materialise generate --colour "#ff5500" --mode light

  # Pick a variant and write to a file
  materialise generate -i wallpaper.png -s vibrant -o colors.json

  # Raise the contrast level and preview the palette
  materialise generate -i wallpaper.png --contrast 0.5 --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := generateCmd.Flags()

	// Accept the American spelling as an alias.
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "color" {
			name = "colour"
		}
		return pflag.NormalizedName(name)
	})

	flags.StringVarP(&opts.image, "image", "i", "", "path to the source image")
	flags.StringVarP(&opts.colour, "colour", "c", "", "literal seed colour (#RRGGBB)")
	flags.StringVarP(&opts.mode, "mode", "m", "dark", "brightness mode (dark, light)")
	flags.StringVarP(&opts.scheme, "scheme", "s", "tonal-spot",
		fmt.Sprintf("scheme variant %v", scheme.VariantNames()))
	flags.IntVar(&opts.size, "size", 64, "maximum image dimension for extraction")
	flags.Float32Var(&opts.contrast, "contrast", 0, "contrast level (-1 to 1)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	generateCmd.MarkFlagsMutuallyExclusive("image", "colour")
	generateCmd.MarkFlagsOneRequired("image", "colour")

	return generateCmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.mode != "dark" && opts.mode != "light" {
		return fmt.Errorf("invalid mode: %s (valid: dark, light)", opts.mode)
	}

	variant, err := scheme.ParseVariant(opts.scheme)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	doc, err := theme.Generate(
		theme.Source{ImagePath: opts.image, Colour: opts.colour},
		theme.Options{
			Dark:         opts.mode == "dark",
			Variant:      variant,
			Contrast:     opts.contrast,
			MaxDimension: opts.size,
			Logger:       logger,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to generate scheme: %w", err)
	}

	if opts.output != "" {
		if err := doc.WriteFile(opts.output); err != nil {
			return err
		}
		logger.Debug("wrote output", "path", opts.output)
	} else {
		data, err := doc.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if opts.preview {
		printPreview(os.Stderr, doc)
	}

	return nil
}

// newLogger builds the pipeline logger from the verbosity flag. The
// logger is constructed here, once, and passed down explicitly.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "materialise",
		Level:  level,
		Output: os.Stderr,
	})
}
