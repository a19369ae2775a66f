package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"commsdash/internal/config"
	"commsdash/internal/logx"
)

// AboutTab shows the project name and a short usage note.
type AboutTab struct {
	projectName string
	pageSize    int
	row         int
	theme       Theme
}

func newAboutTab(cfg config.UIConfig, theme Theme) *AboutTab {
	return &AboutTab{
		projectName: cfg.ProjectName,
		pageSize:    max(cfg.PageSize, 1),
		theme:       theme,
	}
}

func (a *AboutTab) lines() []string {
	return []string{
		a.projectName,
		"",
		"Terminal dashboard for comms links.",
		"Tab and Shift-Tab switch tabs; Enter opens the message prompt.",
		"F12 asks the comms links to restart.",
	}
}

func (a *AboutTab) Title() string { return TabAbout.Title() }

// Row is the highlighted line.
func (a *AboutTab) Row() int { return a.row }

// Escape leaves the dashboard.
func (a *AboutTab) Escape() RunMode { return RunModeExiting }

func (a *AboutTab) PrevRow() { a.moveRow(-1) }
func (a *AboutTab) NextRow() { a.moveRow(1) }

func (a *AboutTab) PrevPage() { a.moveRow(-a.pageSize) }
func (a *AboutTab) NextPage() { a.moveRow(a.pageSize) }

func (a *AboutTab) moveRow(delta int) {
	a.row = max(0, min(a.row+delta, len(a.lines())-1))
}

// EnterKey opens the message prompt, or submits and clears it when already open.
func (a *AboutTab) EnterKey(ctx context.Context, host Host) {
	log := logx.WithTab(logx.Ctx(ctx), TabAbout.String())
	switch host.InputMode() {
	case InputNormal:
		log.Info("enter key")
		host.SetInputMode(InputEditing)
	case InputEditing:
		buf := host.Input()
		if !buf.IsEmpty() {
			log.Info("text was input", "text", buf.String())
		}
		buf.Reset()
		host.SetInputMode(InputNormal)
	}
}

func (a *AboutTab) FunctionKey(ctx context.Context, n int) {
	switch n {
	case 1:
		logx.WithTab(logx.Ctx(ctx), TabAbout.String()).Info(fmt.Sprintf("F%d", n))
	}
}

func (a *AboutTab) Render(width, height int) string {
	lines := a.lines()
	for i, line := range lines {
		// Wrap inside the border.
		line = wordwrap.String(line, max(width-2, 1))
		if i == a.row && line != "" {
			line = a.theme.MessageSelected.Render(line)
		}
		lines[i] = line
	}
	return titledBox("About", strings.Join(lines, "\n"), width, height, a.theme.Middle)
}
