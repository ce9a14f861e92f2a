package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// Tagline is printed under the NextDay wordmark.
const Tagline = "fresh meals, delivered tomorrow"

var taglineStyle = secondaryStyle.Italic(true)

// RenderBanner returns the NextDay wordmark and tagline, centred as a
// block in the current terminal.
func RenderBanner() string {
	return renderBanner(termWidth())
}

func renderBanner(width int) string {
	art := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	block := 0
	for _, l := range art {
		block = max(block, lipgloss.Width(l))
	}
	indent := strings.Repeat(" ", max(0, (width-block)/2))

	var b strings.Builder
	for _, l := range art {
		b.WriteString(indent + BannerStyle.Render(l) + "\n")
	}

	// The tagline is right-aligned under the wordmark.
	pad := max(0, block-lipgloss.Width(Tagline))
	b.WriteString(indent + strings.Repeat(" ", pad) + taglineStyle.Render(Tagline) + "\n")
	return b.String()
}

// termWidth returns the terminal width, or 80 when stdout is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
