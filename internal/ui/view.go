package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"commsdash/internal/ui/textutil"
)

const (
	eventLogHeight = 12

	popupPercentX = 60
	popupPercentY = 25
	fieldPercentX = 75
	fieldPercentY = 25
)

// Render composes a full frame of width x height cells from the current state.
// Top to bottom: tab bar, tab content or message prompt, event log, status bar.
func (a *App) Render(width, height int) string {
	area := Rect{Width: width, Height: height}
	regions := SplitVertical(area, Length(1), Min(0), Length(eventLogHeight), Length(1))
	tabBar, middle, eventLog, statusBar := regions[0], regions[1], regions[2], regions[3]

	parts := make([]string, 0, len(regions))
	if !tabBar.Empty() {
		parts = append(parts, a.renderTabs(tabBar.Width))
	}
	if !middle.Empty() {
		parts = append(parts, a.renderMiddle(middle))
	}
	if !eventLog.Empty() {
		parts = append(parts, a.renderEventLog(eventLog))
	}
	if !statusBar.Empty() {
		parts = append(parts, a.renderStatusBar(statusBar.Width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderTabs(width int) string {
	var b strings.Builder
	for _, id := range AllTabs() {
		style := a.theme.Tabs
		if id == a.tab {
			style = a.theme.TabsSelected
		}
		b.WriteString(style.Render(a.tabs[id].Title()))
	}
	line := b.String()
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += a.theme.Root.Render(strings.Repeat(" ", pad))
	}
	return textutil.Fit(line, width)
}

func (a *App) renderMiddle(r Rect) string {
	if a.inputMode == InputEditing {
		return a.renderPrompt(r)
	}
	return textutil.FitBlock(a.CurrentTab().Render(r.Width, r.Height), r.Width, r.Height)
}

// renderPrompt clears the content region and draws the message popup over it.
func (a *App) renderPrompt(r Rect) string {
	local := Rect{Width: r.Width, Height: r.Height}
	popup := CenteredRect(local, popupPercentX, popupPercentY)
	// Keep room for one line of text inside the border.
	if popup.Height < 3 {
		popup.Height = min(3, local.Height)
		popup.Y = (local.Height - popup.Height) / 2
	}
	if popup.Width < 3 {
		popup.Width = min(3, local.Width)
		popup.X = (local.Width - popup.Width) / 2
	}

	inner := popup.Inner()
	field := CenteredRect(popup, fieldPercentX, fieldPercentY).Clamp(inner)
	if field.Height < 1 {
		field.Height = 1
		field.Y = inner.Y + (inner.Height-1)/2
	}
	if field.Width < 1 {
		field.X, field.Width = inner.X, inner.Width
	}

	body := make([]string, max(inner.Height, 0))
	if row := field.Y - inner.Y; row >= 0 && row < len(body) {
		body[row] = strings.Repeat(" ", field.X-inner.X) + a.renderField(field.Width)
	}
	box := titledBox("Enter message", strings.Join(body, "\n"), popup.Width, popup.Height, a.theme.Middle)
	placed := lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, box)
	return textutil.FitBlock(placed, r.Width, r.Height)
}

// renderField shows the input buffer in a single line width cells wide.
func (a *App) renderField(width int) string {
	if width <= 0 {
		return ""
	}
	return textutil.Fit(a.input.View(width), width)
}

// renderEventLog shows the newest log lines, oldest at the top.
func (a *App) renderEventLog(r Rect) string {
	inner := r.Inner()
	var body string
	if !inner.Empty() && a.events != nil {
		lines := a.events.Lines()
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, inner.Width, "")
		}
		vp := viewport.New(inner.Width, inner.Height)
		vp.SetContent(strings.Join(lines, "\n"))
		vp.GotoBottom()
		body = vp.View()
	}
	return titledBox("Event Log", body, r.Width, r.Height, a.theme.Middle)
}

// renderStatusBar centers the key legend followed by the current date and time.
func (a *App) renderStatusBar(width int) string {
	legend := a.help.ShortHelpView(a.keys.ShortHelp())
	date := a.theme.Date.Render(" | " + a.Now().UTC().Format(a.cfg.UI.DateFormat))
	// The date wins over the legend when the bar is too narrow for both.
	legend = ansi.Truncate(legend, max(width-ansi.StringWidth(date), 0), "…")
	line := ansi.Truncate(legend+date, width, "")
	return a.theme.StatusBar.
		Width(width).
		Align(lipgloss.Center).
		Render(line)
}
