package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPad renders a single colored pad
func RenderPad(hex string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	return style.Render("■")
}

// RenderPadRow renders a row of colored pads with spacing
func RenderPadRow(hexes []string) string {
	var out strings.Builder
	for i, h := range hexes {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(RenderPad(h))
	}
	return out.String()
}

// RenderPadGrid renders the device in physical layout: the 8 top buttons
// first, then each grid row followed by its edge button. Row 0 is the top
// grid row, matching the panel.
func RenderPadGrid(top [8]string, grid [8][8]string, side [8]string) string {
	var lines []string
	lines = append(lines, RenderPadRow(top[:]))
	for y := 0; y < 8; y++ {
		var line strings.Builder
		for x := 0; x < 8; x++ {
			line.WriteString(RenderPad(grid[y][x]))
			line.WriteString(" ")
		}
		line.WriteString(" ")
		line.WriteString(RenderPad(side[y]))
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(hex, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(hex), name, desc)
}
