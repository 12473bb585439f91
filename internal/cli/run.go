package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/tickloop/internal/app"
	"github.com/dshills/tickloop/internal/config"
	"github.com/dshills/tickloop/internal/demo"
	"github.com/dshills/tickloop/internal/element"
	"github.com/dshills/tickloop/internal/renderer/core"
)

// paletteFile is stored next to the config file.
const paletteFile = "palette.toml"

type loadResult struct {
	palette demo.Palette
	err     error
}

// runDemo shows the splash screen while the saved palette loads, then runs
// the swatch demo and saves the palette if it changed.
func runDemo(cmd *cobra.Command, e env) error {
	cfgPath := configPath(cmd)
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}

	logOut, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOut.Close()

	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.Log.Level)
	lc.Output = logOut
	log := app.NewLogger(lc)
	log.Info("starting", "config", cfgPath, "tick_rate", cfg.TickRate)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := trapSignals(ctx, e, log)

	palettePath := filepath.Join(filepath.Dir(cfgPath), paletteFile)
	loader := app.Spawn(func() loadResult {
		p, err := demo.LoadPalette(palettePath)
		return loadResult{p, err}
	})

	theme := demo.ThemeFrom(cfg.Theme)
	if _, err := runScreen(e, log, stop, demo.SplashState{}, demo.Splash(theme), app.Options[demo.SplashState]{
		TickRate: cfg.Splash.TickRate,
		Exit:     demo.SplashDone(cfg.Splash.MinTicks, loader.Ready),
	}); err != nil {
		return err
	}
	if stop.Ready() {
		return errInterrupted
	}

	res, ok := loader.Take()
	switch {
	case loader.Err() != nil:
		res.err = fmt.Errorf("loading palette: %w", loader.Err())
	case !ok:
		res.err = fmt.Errorf("palette loader finished without a result")
	}
	if res.err != nil {
		log.Error("palette load failed", "path", palettePath, "err", res.err)
		msg := demo.Message(res.err.Error()+"\n\npress any key", core.ColorRed)
		if _, err := runScreen(e, log, stop, demo.MessageState{}, msg,
			app.Options[demo.MessageState]{Exit: demo.MessageDone}); err != nil {
			log.Error("message screen failed", "err", err)
		}
		return res.err
	}

	themes := &app.Slot[demo.Theme]{}
	watchTheme(ctx, log, cfgPath, themes)

	start := demo.NewSwatchState(res.palette, theme)
	final, err := runScreen(e, log, stop, start, demo.Swatches(themes.Take), app.Options[demo.SwatchState]{
		TickRate: cfg.TickRate,
		Exit:     demo.SwatchesDone,
	})
	if err != nil {
		return err
	}

	if final.Palette != start.Palette {
		if err := demo.SavePalette(palettePath, final.Palette); err != nil {
			return err
		}
		log.Info("palette saved", "path", palettePath)
	}
	if stop.Ready() {
		return errInterrupted
	}
	return nil
}

// runScreen runs one element set on a fresh backend and logs its metrics.
// The run also ends once stop is ready.
func runScreen[S comparable](e env, log *clog.Logger, stop *app.Slot[struct{}], state S, els *element.Collection[S], opts app.Options[S]) (S, error) {
	b, err := e.newBackend()
	if err != nil {
		return state, &app.InitError{Component: "terminal", Err: err}
	}
	exit := opts.Exit
	opts.Exit = func(s S) bool {
		return stop.Ready() || (exit != nil && exit(s))
	}
	opts.Backend = b
	opts.Logger = log
	opts.Metrics = app.NewMetrics()

	final, err := app.Run(state, els, opts)
	m := opts.Metrics.Snapshot()
	log.Debug("screen metrics", "ticks", m.Ticks, "renders", m.Renders,
		"avg_render", m.AvgRender, "max_render", m.MaxRender, "uptime", m.Uptime)
	return final, err
}

// watchTheme forwards theme changes from the config file into slot. A file
// that does not exist yet is not watched.
func watchTheme(ctx context.Context, log *clog.Logger, path string, slot *app.Slot[demo.Theme]) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err != nil {
			log.Warn("config reload failed", "err", err)
			return
		}
		log.Info("theme reloaded", "accent", cfg.Theme.Accent)
		slot.Put(demo.ThemeFrom(cfg.Theme))
	})
	if err != nil {
		log.Warn("config watch disabled", "err", err)
	}
}

// trapSignals catches SIGINT and SIGTERM until ctx ends. A caught signal
// marks the returned slot, which every screen's exit predicate polls, so the
// terminal is restored before the process exits.
func trapSignals(ctx context.Context, e env, log *clog.Logger) *app.Slot[struct{}] {
	caught := &app.Slot[struct{}]{}
	sigs := make(chan os.Signal, 1)
	stopNotify := e.notify(sigs)
	go func() {
		defer stopNotify()
		select {
		case sig := <-sigs:
			log.Warn("signal received, shutting down", "signal", sig)
			caught.Put(struct{}{})
		case <-ctx.Done():
		}
	}()
	return caught
}
