// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/materialise/internal/cli"
)

// writeTestImage writes a small solid-colour PNG and returns its path.
func writeTestImage(t *testing.T, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String() + errBuf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	t.Run("LiteralColourToFile", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "colors.json")
		_, err := runCommand(t, "generate", "--colour", "#FF0000", "--output", outPath)
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if doc["seedColor"] != "#FF0000" {
			t.Errorf("seedColor = %v, want #FF0000", doc["seedColor"])
		}
		if doc["mode"] != "dark" {
			t.Errorf("mode = %v, want dark (the default)", doc["mode"])
		}
	})

	t.Run("AmericanSpellingAlias", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "colors.json")
		if _, err := runCommand(t, "generate", "--color", "#00FF00", "--output", outPath); err != nil {
			t.Fatalf("Execute() with --color error: %v", err)
		}
	})

	t.Run("FromImage", func(t *testing.T) {
		imgPath := writeTestImage(t, color.RGBA{R: 30, G: 90, B: 220, A: 255})
		outPath := filepath.Join(t.TempDir(), "colors.json")
		if _, err := runCommand(t, "generate", "--image", imgPath, "--mode", "light", "--output", outPath); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatal(err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatal(err)
		}
		if doc["mode"] != "light" {
			t.Errorf("mode = %v, want light", doc["mode"])
		}
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, err := runCommand(t, "generate", "--colour", "#FF0000", "--mode", "dim")
		if err == nil || !strings.Contains(err.Error(), "invalid mode") {
			t.Errorf("expected invalid mode error, got: %v", err)
		}
	})

	t.Run("InvalidScheme", func(t *testing.T) {
		_, err := runCommand(t, "generate", "--colour", "#FF0000", "--scheme", "pastel")
		if err == nil || !strings.Contains(err.Error(), "unknown scheme variant") {
			t.Errorf("expected unknown variant error, got: %v", err)
		}
	})

	t.Run("MissingImage", func(t *testing.T) {
		_, err := runCommand(t, "generate", "--image", "/nonexistent/image.png")
		if err == nil {
			t.Error("expected error for missing image")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	if _, err := runCommand(t, "version"); err != nil {
		t.Fatalf("version command error: %v", err)
	}
}
