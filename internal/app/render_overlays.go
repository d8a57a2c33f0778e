package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/dropzone/internal/config"
	"github.com/Gaurav-Gosain/dropzone/internal/dragdrop"
	"github.com/Gaurav-Gosain/dropzone/internal/theme"
)

func (b *Board) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if !config.HideClock {
		currentTime := time.Now().Format("15:04:05")

		timeStyle := lipgloss.NewStyle().
			Foreground(theme.TimeOverlayFg()).
			Background(theme.TimeOverlayBg()).
			Bold(true).
			Padding(0, 1)

		timeLayer := lipgloss.NewLayer(timeStyle.Render(currentTime)).
			X(1).
			Y(b.timeYPosition()).
			Z(config.ZIndexTime).
			ID("time")

		layers = append(layers, timeLayer)
	}

	if b.ShowHelp {
		helpLayer := lipgloss.NewLayer(b.RenderHelpMenu(b.Width, b.Height)).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help")
		layers = append(layers, helpLayer)
	}

	if b.ShowLogs {
		logLayer := lipgloss.NewLayer(b.renderLogViewer()).
			X(0).Y(0).Z(config.ZIndexLogs).ID("logs")
		layers = append(layers, logLayer)
	}

	if len(b.Notifications) > 0 {
		layers = append(layers, b.renderNotifications()...)
	}

	return layers
}

// timeYPosition keeps the clock clear of a top dockbar.
func (b *Board) timeYPosition() int {
	if config.DockbarPosition == "top" {
		return config.DockHeight
	}
	return 0
}

// renderLogViewer renders the centered event log overlay.
func (b *Board) renderLogViewer() string {
	logTitle := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("Event Log")

	maxDisplayHeight := max(b.Height-8, 8)
	totalLogs := len(b.LogMessages)

	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage := max(maxDisplayHeight-fixedLines, 1)

	maxScroll := max(totalLogs-logsPerPage, 0)
	b.LogScrollOffset = max(0, min(b.LogScrollOffset, maxScroll))

	var logLines []string
	logLines = append(logLines, logTitle)
	logLines = append(logLines, "")

	startIdx := b.LogScrollOffset
	displayCount := 0
	for i := startIdx; i < len(b.LogMessages) && displayCount < logsPerPage; i++ {
		msg := b.LogMessages[i]

		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}

		timeStr := msg.Time.Format("15:04:05")
		levelStr := lipgloss.NewStyle().
			Foreground(levelColor).
			Render(fmt.Sprintf("[%s]", msg.Level))

		logLines = append(logLines, fmt.Sprintf("%s %s %s", timeStr, levelStr, msg.Message))
		displayCount++
	}

	if maxScroll > 0 {
		scrollInfo := fmt.Sprintf("Showing %d-%d of %d events (↑/↓ to scroll)",
			startIdx+1, startIdx+displayCount, totalLogs)
		logLines = append(logLines, "")
		logLines = append(logLines, lipgloss.NewStyle().
			Foreground(theme.HelpGray()).
			Render(scrollInfo))
	}

	logLines = append(logLines, "")
	logLines = append(logLines, lipgloss.NewStyle().
		Foreground(theme.HelpGray()).
		Render("Press 'q'/'esc' to exit, j/k or ↑/↓ to scroll"))

	logBox := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.LogViewerDebug()).
		Padding(1, 2).
		Width(min(config.LogViewerWidth, b.Width-4)).
		Background(theme.LogViewerBg()).
		Render(strings.Join(logLines, "\n"))

	return lipgloss.Place(b.Width, b.Height,
		lipgloss.Center, lipgloss.Center, logBox)
}

// renderNotifications stacks up to three active notifications in the top
// right corner, newest first, with a fade-out via dimming near expiry.
func (b *Board) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	notifY := 1
	notifSpacing := config.NotificationSpacing
	for i, notif := range b.Notifications {
		if i >= config.MaxVisibleNotifications {
			break
		}

		timeLeft := notif.Duration - time.Since(notif.StartTime)
		fading := timeLeft < config.NotificationFadeOutDuration

		var bgColor color.Color
		var icon string
		switch notif.Type {
		case "error":
			bgColor = theme.NotificationError()
			icon = config.NotificationIconError
		case "warning":
			bgColor = theme.NotificationWarning()
			icon = config.NotificationIconWarning
		case "success":
			bgColor = theme.NotificationSuccess()
			icon = config.NotificationIconSuccess
		default:
			bgColor = theme.NotificationInfo()
			icon = config.NotificationIconInfo
		}
		fgColor := color.Color(lipgloss.Color("#ffffff"))
		if fading {
			fgColor = lipgloss.Color("#d0d0d0")
		}

		maxNotifWidth := min(
			max(b.Width-config.NotificationMargin, config.MinNotificationWidth),
			config.MaxNotificationWidth)

		message := notif.Message
		maxMessageLen := maxNotifWidth - 10
		if len(message) > maxMessageLen {
			message = message[:maxMessageLen-3] + "..."
		}

		notifBox := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(fgColor).
			Padding(1, 2).
			Bold(!fading).
			MaxWidth(maxNotifWidth).
			Render(fmt.Sprintf(" %s  %s ", icon, message))

		notifX := max(b.Width-lipgloss.Width(notifBox)-2, 0)
		currentY := notifY + (i * notifSpacing)

		layers = append(layers, lipgloss.NewLayer(notifBox).
			X(notifX).Y(currentY).Z(config.ZIndexNotifications).
			ID(fmt.Sprintf("notif-%s", notif.ID)))
	}
	return layers
}

// renderDock renders the status bar: mode pill and counts on the left,
// system stats on the right.
func (b *Board) renderDock() *lipgloss.Layer {
	var modeIcon string
	var modeColor color.Color
	switch b.Mode {
	case dragdrop.ModePoint:
		modeIcon = config.GetDockModeIconPoint()
		modeColor = theme.DockColorPoint()
	case dragdrop.ModeStrict:
		modeIcon = config.GetDockModeIconStrict()
		modeColor = theme.DockColorStrict()
	default:
		modeIcon = config.GetDockModeIconIntersect()
		modeColor = theme.DockColorIntersect()
	}

	pillStyle := lipgloss.NewStyle().Foreground(modeColor).Background(theme.DockBg())
	badgeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(modeColor).
		Bold(true)

	modePill := pillStyle.Render(config.GetDockPillLeftChar()) +
		badgeStyle.Render(modeIcon+b.Mode.String()+" ") +
		pillStyle.Render(config.GetDockPillRightChar())

	placed := 0
	for _, s := range b.Slots {
		if s.Occupied() {
			placed++
		}
	}

	fg := lipgloss.NewStyle().Foreground(theme.DockFg()).Background(theme.DockBg())
	dim := lipgloss.NewStyle().Foreground(theme.DockDimmed()).Background(theme.DockBg())

	left := modePill +
		fg.Render(config.GetDockSeparator()) +
		fg.Render(fmt.Sprintf("%s %d", config.GetDockIconCardCount(), len(b.Cards))) +
		dim.Render(config.GetDockSeparator()) +
		fg.Render(fmt.Sprintf("%s %d/%d", config.GetDockIconSlotCount(), placed, len(b.Slots)))

	right := ""
	if graph := cpuGraph(b.CPUHistory); graph != "" {
		right = dim.Render(graph)
	}
	if b.RAMUsage > 0 {
		if right != "" {
			right += dim.Render(config.GetDockSeparator())
		}
		right += dim.Render(fmt.Sprintf("ram %3.0f%%", b.RAMUsage))
	}

	gap := b.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		right = ""
	}

	bar := " " + left + fg.Render(strings.Repeat(" ", gap)) + right + " "
	dock := lipgloss.NewStyle().
		Background(theme.DockBg()).
		Width(b.Width).
		Height(config.DockHeight).
		Render(bar)

	y := b.Height - config.DockHeight
	if config.DockbarPosition == "top" {
		y = 0
	}

	return lipgloss.NewLayer(dock).
		X(0).Y(y).Z(config.ZIndexDock).ID("dock")
}

// RenderHelpMenu renders the centered help overlay from the keybinding
// sections.
func (b *Board) RenderHelpMenu(width, height int) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg()).
		Padding(0, 1).
		Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.BoardFg())
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.HelpBorder()).
		Bold(true)
	grayStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	sections := config.GetKeybindings(b.KeybindRegistry)

	maxKeyLen := 0
	for _, section := range sections {
		for _, binding := range section.Bindings {
			if len(binding.Key) > maxKeyLen {
				maxKeyLen = len(binding.Key)
			}
		}
	}

	var lines []string
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(section.Title))
		for _, binding := range section.Bindings {
			pad := strings.Repeat(" ", maxKeyLen-len(binding.Key))
			lines = append(lines,
				keyStyle.Render(binding.Key)+pad+"  "+descStyle.Render(binding.Description))
		}
	}

	lines = append(lines, "")
	lines = append(lines, grayStyle.Render("Press '?' or 'esc' to close"))

	helpBox := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center, helpBox)
}
