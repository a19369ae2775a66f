package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"
	"pkt.systems/psi"
	"pkt.systems/pslog"

	"commsdash/internal/config"
	"commsdash/internal/logx"
	"commsdash/internal/term"
	"commsdash/internal/trace"
	"commsdash/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	root := newRootCmd(runDashboard)
	root.SetArgs(os.Args[1:])
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "commsdash: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(ctx context.Context, cfg config.Config) error

type flags struct {
	configPath string
	tickRate   float64
	frameRate  float64
	pageSize   int
	showMQTT   bool
	logFile    string
}

func newRootCmd(run runFunc) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "commsdash",
		Short:         "Terminal dashboard for comms links",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default $COMMSDASH_CONFIG or ~/.config/commsdash/config.toml)")
	fs.Float64Var(&f.tickRate, "tick-rate", 0, "tick events per second")
	fs.Float64Var(&f.frameRate, "frame-rate", 0, "frames per second")
	fs.IntVar(&f.pageSize, "page-size", 0, "rows moved by PgUp/PgDn")
	fs.BoolVar(&f.showMQTT, "show-mqtt", false, "show MQTT traffic")
	fs.StringVar(&f.logFile, "log-file", "", "also append log lines to this file")
	return cmd
}

// loadConfig reads file and environment configuration, then applies the flags
// the user actually set.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("tick-rate") {
		cfg.Events.TickRate = f.tickRate
	}
	if fs.Changed("frame-rate") {
		cfg.Events.FrameRate = f.frameRate
	}
	if fs.Changed("page-size") {
		cfg.UI.PageSize = f.pageSize
	}
	if fs.Changed("show-mqtt") {
		cfg.Prefs.ShowMQTT = f.showMQTT
	}
	if fs.Changed("log-file") {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runDashboard(ctx context.Context, cfg config.Config) error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("commsdash needs an interactive terminal")
	}

	ring := logx.NewRing(cfg.EventLog.Capacity)
	logger, closeLog, err := logx.Setup(ring, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = pslog.ContextWithLogger(ctx, logger)

	tp, err := trace.NewProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		tp = trace.Disabled()
	}
	if tp.Enabled() {
		logger.Info("exporting spans over otlp")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	cfg.Prefs.Initialized = "Yes"
	app := ui.NewApp(cfg, ring)
	app.Tracer = tp.Tracer()

	session := term.New(term.Options{
		TickInterval:  cfg.Events.TickInterval(),
		FrameInterval: cfg.Events.FrameInterval(),
	})
	return app.Run(ctx, session)
}
