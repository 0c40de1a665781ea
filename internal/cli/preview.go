package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/term"

	"github.com/jmylchreest/materialise/internal/colour"
	"github.com/jmylchreest/materialise/internal/theme"
)

// printPreview writes ANSI colour swatches for the generated palettes.
// Swatches need a terminal; when the writer is not a TTY only the
// plain role listing is printed.
func printPreview(w io.Writer, doc *theme.Document) {
	tty := isTerminal(w)

	fmt.Fprintf(w, "\nSeed: %s %s\n\n", swatch(doc.SeedColor, tty), doc.SeedColor)

	fmt.Fprintln(w, "Material roles:")
	printRoles(w, doc.Material, tty)

	fmt.Fprintln(w, "\nShell roles:")
	printRoles(w, doc.Shell, tty)
}

func printRoles(w io.Writer, roles map[string]string, tty bool) {
	names := make([]string, 0, len(roles))
	width := 0
	for name := range roles {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		hex := roles[name]
		fmt.Fprintf(w, "  %-*s %s %s\n", width, name, swatch(hex, tty), hex)
	}
}

// swatch renders a colour block using 24-bit ANSI background codes.
func swatch(hex string, tty bool) string {
	if !tty {
		return ""
	}
	rgb, err := colour.FromHex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", rgb.R, rgb.G, rgb.B)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
