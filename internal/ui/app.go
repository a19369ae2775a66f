package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"commsdash/internal/config"
	"commsdash/internal/event"
	"commsdash/internal/logx"
	"commsdash/internal/trace"
	"commsdash/internal/ui/editor"
)

// Terminal is the surface the loop draws on and reads events from.
// term.Session implements it.
type Terminal interface {
	Enter(ctx context.Context) error
	Exit() error
	Draw(compose func(width, height int) string) error
	Next(ctx context.Context) (event.Event, bool)
}

// App is the dashboard state machine. It is driven from a single goroutine.
type App struct {
	mode      RunMode
	tab       TabID
	inputMode InputMode
	input     *editor.Buffer
	tabs      [tabCount]Tab

	cfg    config.Config
	keys   KeyMap
	help   help.Model
	theme  Theme
	events *logx.Ring

	// Tracer records a span per frame and per dispatched key. Defaults to a no-op tracer.
	Tracer oteltrace.Tracer
	// Now is the status bar clock.
	Now func() time.Time
	// OnRestartComms is called every time F12 requests a comms restart.
	OnRestartComms func(ctx context.Context)
}

var _ Host = (*App)(nil)

// NewApp builds the initial state: Running, About tab, Normal input, empty
// buffer. events backs the event log region and may be nil.
func NewApp(cfg config.Config, events *logx.Ring) *App {
	theme := DefaultTheme()
	h := help.New()
	h.Styles.ShortKey = theme.Key
	h.Styles.ShortDesc = theme.KeyDesc
	h.Styles.ShortSeparator = theme.KeyDesc

	input := editor.New("")
	input.SetStyle(theme.MessageSelected, theme.Cursor)

	a := &App{
		mode:      RunModeRunning,
		tab:       TabAbout,
		inputMode: InputNormal,
		input:     input,
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		theme:     theme,
		events:    events,
		Tracer:    trace.Disabled().Tracer(),
		Now:       time.Now,
	}
	for _, id := range AllTabs() {
		a.tabs[id] = newTab(id, cfg, theme)
	}
	return a
}

func (a *App) RunMode() RunMode { return a.mode }

// IsRunning is false exactly when the run mode is Exiting.
func (a *App) IsRunning() bool { return a.mode != RunModeExiting }

func (a *App) SelectedTab() TabID { return a.tab }

// CurrentTab returns the state of the selected tab.
func (a *App) CurrentTab() Tab { return a.tabs[a.tab] }

func (a *App) InputMode() InputMode { return a.inputMode }

func (a *App) SetInputMode(m InputMode) { a.inputMode = m }

func (a *App) Input() *editor.Buffer { return a.input }

func (a *App) Preferences() config.Preferences { return a.cfg.Prefs }

// Run drives the loop until the run mode becomes Exiting. The terminal is
// entered first and exited on every return path, panics included. Terminal
// enter/exit and draw failures are logged and do not stop the loop.
func (a *App) Run(ctx context.Context, t Terminal) error {
	if a.cfg.Prefs.Initialized == "" {
		return errors.New("preferences not initialized")
	}
	log := logx.Ctx(ctx)

	if err := t.Enter(ctx); err != nil {
		log.Warn("enter terminal", "err", err)
	}
	defer func() {
		if err := t.Exit(); err != nil {
			log.Warn("exit terminal", "err", err)
		}
	}()

	log.Info("dashboard started", "tab", a.tab.String(), "show_mqtt", a.cfg.Prefs.ShowMQTT)
	for a.IsRunning() {
		a.step(ctx, t)
	}
	log.Info("dashboard stopped")
	return nil
}

// step runs one loop iteration: tab hook, draw, then wait for and handle an event.
func (a *App) step(ctx context.Context, t Terminal) {
	log := logx.Ctx(ctx)
	frameCtx, span := a.Tracer.Start(ctx, "ui.frame",
		oteltrace.WithAttributes(attribute.String("tab", a.tab.String())))

	if r, ok := a.CurrentTab().(Runner); ok {
		if err := r.Run(frameCtx); err != nil {
			log.Error("tab hook failed", "tab", a.tab.String(), "err", err)
			span.RecordError(err)
		}
	}
	if err := t.Draw(a.Render); err != nil {
		log.Warn("draw frame", "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "draw failed")
	}
	span.End()

	for {
		ev, ok := t.Next(ctx)
		if !ok {
			log.Debug("event stream ended")
			a.mode = RunModeExiting
			return
		}
		switch ev.Kind {
		case event.KindKey:
			a.HandleKey(ctx, ev.Key)
			return
		case event.KindRender, event.KindResize:
			return
		case event.KindTick:
		}
	}
}

// HandleKey dispatches one key press through the table of the current input mode.
func (a *App) HandleKey(ctx context.Context, msg tea.KeyMsg) {
	ctx, span := a.Tracer.Start(ctx, "ui.dispatch", oteltrace.WithAttributes(
		attribute.String("key", msg.String()),
		attribute.String("input_mode", a.inputMode.String()),
		attribute.String("tab", a.tab.String()),
	))
	defer span.End()

	switch a.inputMode {
	case InputNormal:
		a.handleNormal(ctx, msg)
	case InputEditing:
		a.handleEditing(ctx, msg)
	}
	span.SetAttributes(attribute.String("run_mode", a.mode.String()))
}

func (a *App) handleNormal(ctx context.Context, msg tea.KeyMsg) {
	tab := a.CurrentTab()
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.mode = tab.Escape()
	case key.Matches(msg, a.keys.Left):
		if h, ok := tab.(Horizontal); ok {
			h.Left()
		}
	case key.Matches(msg, a.keys.Right):
		if h, ok := tab.(Horizontal); ok {
			h.Right()
		}
	case key.Matches(msg, a.keys.Up):
		tab.PrevRow()
	case key.Matches(msg, a.keys.Down):
		tab.NextRow()
	case key.Matches(msg, a.keys.PageUp):
		tab.PrevPage()
	case key.Matches(msg, a.keys.PageDown):
		tab.NextPage()
	case key.Matches(msg, a.keys.Enter):
		tab.EnterKey(ctx, a)
	case key.Matches(msg, a.keys.PrevTab):
		a.tab = a.tab.Prev()
	case key.Matches(msg, a.keys.NextTab):
		a.tab = a.tab.Next()
	default:
		n, ok := a.keys.functionKey(msg)
		if !ok {
			return
		}
		if n == 12 {
			a.restartComms(ctx)
		}
		tab.FunctionKey(ctx, n)
	}
}

func (a *App) handleEditing(ctx context.Context, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		a.CurrentTab().EnterKey(ctx, a)
	case key.Matches(msg, a.keys.Cancel):
		a.inputMode = InputNormal
	case key.Matches(msg, a.keys.Backspace):
		a.input.DeleteBack()
	case key.Matches(msg, a.keys.CursorLeft):
		a.input.MoveLeft()
	case key.Matches(msg, a.keys.CursorRight):
		a.input.MoveRight()
	case msg.Type == tea.KeySpace:
		a.input.Insert(' ')
	case msg.Type == tea.KeyRunes:
		// Alt+x types x.
		for _, r := range msg.Runes {
			a.input.Insert(r)
		}
	}
}

func (a *App) restartComms(ctx context.Context) {
	a.mode = RunModeRestartComms
	logx.Ctx(ctx).Info("comms restart requested")
	if a.OnRestartComms != nil {
		a.OnRestartComms(ctx)
	}
}
