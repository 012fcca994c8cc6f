package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/fixturegen/pkg/palette"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconInfo    = ">>"
	iconArrow   = "→"

	// maxSwatches caps the colors shown by printSwatches.
	maxSwatches = 24
)

// =============================================================================
// Status Output
// =============================================================================

func (c *CLI) println(s string) {
	fmt.Fprintln(c.Out, s)
}

// printTitle prints a section heading.
func (c *CLI) printTitle(format string, args ...any) {
	c.println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printSuccess prints a success message.
func (c *CLI) printSuccess(format string, args ...any) {
	c.println(styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a progress message.
func (c *CLI) printInfo(format string, args ...any) {
	c.println(styleInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printFile prints a file output line.
func (c *CLI) printFile(path string) {
	c.println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

// printKeyValue prints a labeled value.
func (c *CLI) printKeyValue(key string, value any) {
	c.println(styleKey.Render(key) + " " + styleValue.Render(fmt.Sprint(value)))
}

// printSwatches prints the leading palette colors as colored blocks.
func (c *CLI) printSwatches(p *palette.Palette) {
	n := min(p.Len(), maxSwatches)
	var b strings.Builder
	for _, col := range p.Colors[:n] {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(col.String())).Render("  "))
	}
	if p.Len() > n {
		b.WriteString(styleDim.Render(fmt.Sprintf(" +%d more", p.Len()-n)))
	}
	c.println(b.String())
}
