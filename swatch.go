package gradient

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders the gradient as a horizontal strip of width colored
// cells using ANSI background colors, for terminal legends and scale
// indicators. width must be at least 2. Color depth degrades with the
// terminal profile lipgloss detects.
func (g *Gradient) Swatch(width int) (string, error) {
	colors, err := g.Samples(width)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}

	return b.String(), nil
}
