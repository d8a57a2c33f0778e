package app

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

var baseBadgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000"))

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// truncateToWidth shortens s to fit maxWidth display cells, appending "..."
// when it had to cut.
func truncateToWidth(s string, maxWidth int) string {
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return ""
	}
	runes := []rune(s)
	for ansi.StringWidth(string(runes)) > maxWidth-3 && len(runes) > 0 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// renderTitledBox draws a bordered w-by-h box around content with a pill
// title badge embedded in the top border line.
func renderTitledBox(content, title string, w, h int, borderCol color.Color) string {
	border := getBorder()
	box := lipgloss.NewStyle().
		Width(w - 2).
		Height(h - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Border(border).
		BorderForeground(borderCol).
		Render(content)

	title = truncateToWidth(title, w-6)
	if title == "" {
		return box
	}

	idx := strings.IndexByte(box, '\n')
	if idx < 0 {
		return box
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderCol)
	badgeStyle := baseBadgeStyle.Background(borderCol)

	badge := borderStyle.Render(config.GetDockPillLeftChar()) +
		badgeStyle.Render(" " + title + " ") +
		borderStyle.Render(config.GetDockPillRightChar())
	badgeWidth := ansi.StringWidth(config.GetDockPillLeftChar()) +
		ansi.StringWidth(title) + 2 +
		ansi.StringWidth(config.GetDockPillRightChar())

	fill := w - 2 - badgeWidth - 1
	if fill < 0 {
		return box
	}

	top := borderStyle.Render(border.TopLeft+border.Top) +
		badge +
		borderStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)
	return top + box[idx:]
}

// renderSlotContent builds the interior text of a slot box.
func renderSlotContent(s *Slot, fillChar string) string {
	dim := lipgloss.NewStyle().Foreground(theme.DockDimmed())

	if s.Occupied() {
		return lipgloss.JoinVertical(lipgloss.Center,
			cardGlyph(s.Card.Kind),
			dim.Render(s.Card.Kind),
		)
	}

	accepts := "any"
	if !s.Wildcard {
		accepts = strings.Join(s.Drop.Groups(), ", ")
	}
	lines := []string{dim.Render("accepts"), dim.Render(accepts)}
	if fillChar != "" {
		lines = append([]string{fillChar}, lines...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// renderCardContent builds the interior text of a card box.
func renderCardContent(c *Card) string {
	if !c.FaceUp {
		pattern := "░░░░░░░░"
		if config.UseASCIIOnly {
			pattern = "::::::::"
		}
		return lipgloss.NewStyle().
			Foreground(theme.DockDimmed()).
			Render(pattern)
	}
	glyph := cardGlyph(c.Kind)
	if c.Gridded {
		tag := lipgloss.NewStyle().
			Foreground(theme.DockDimmed()).
			Render("grid")
		return lipgloss.JoinVertical(lipgloss.Center, glyph, tag)
	}
	return glyph
}

// cardGlyph returns the display glyph for a card kind.
func cardGlyph(kind string) string {
	if config.UseASCIIOnly {
		return strings.ToUpper(kind[:1])
	}
	switch kind {
	case "alpha":
		return "α"
	case "beta":
		return "β"
	case "gamma":
		return "γ"
	default:
		return kind
	}
}

// cpuGraph renders the CPU history as a bar sparkline for the dock.
func cpuGraph(history []float64) string {
	if len(history) == 0 {
		return ""
	}
	if config.UseASCIIOnly {
		return fmt.Sprintf("cpu %3.0f%%", history[len(history)-1])
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var sb strings.Builder
	pad := config.CPUGraphBars - len(history)
	for range pad {
		sb.WriteRune(' ')
	}
	for _, pct := range history {
		idx := int(pct / config.CPUGraphScale)
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(blocks[idx])
	}
	return fmt.Sprintf("%s %3.0f%%", sb.String(), history[len(history)-1])
}

// maxLogScroll mirrors the log viewer layout math so the sticky scroll in
// Log can pin to the newest page.
func maxLogScroll(totalLogs, screenHeight int) int {
	maxDisplayHeight := max(screenHeight-8, 8)
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage := max(maxDisplayHeight-fixedLines, 1)
	return max(totalLogs-logsPerPage, 0)
}
