package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/pixel-survivor/asset"
	"github.com/lixenwraith/pixel-survivor/audio"
	"github.com/lixenwraith/pixel-survivor/config"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/input"
	"github.com/lixenwraith/pixel-survivor/quest"
	"github.com/lixenwraith/pixel-survivor/render"
	"github.com/lixenwraith/pixel-survivor/render/renderers"
	"github.com/lixenwraith/pixel-survivor/save"
	"github.com/lixenwraith/pixel-survivor/service"
	"github.com/lixenwraith/pixel-survivor/session"
	"github.com/lixenwraith/pixel-survivor/status"
	"github.com/lixenwraith/pixel-survivor/terminal"
)

// errQuit ends the event group on a user or signal exit
var errQuit = errors.New("quit")

var (
	configFlag   = flag.String("config", config.DefaultPath, "Path to YAML config")
	continueFlag = flag.Bool("continue", false, "Resume the saved game")
	debugFlag    = flag.Bool("debug", false, "Write debug logs")
)

func main() {
	// Panic Recovery: the crash hook restores the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := config.Load(*configFlag, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "pixel-survivor: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	reg := status.NewRegistry()

	screen := terminal.NewScreen(nil, logger)

	sound := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume, logger)
	sound.SetMetrics(reg)

	assets := asset.NewStore(logger)
	assets.Configure(asset.SlotGround, cfg.Assets.GroundTexture)
	assets.Configure(asset.SlotKnight, cfg.Assets.KnightSprite)

	overrides, err := input.LoadBindings(cfg.Input.Keys)
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring key bindings")
	}
	held := input.NewState(nil, cfg.HoldTimeout())
	mapper := input.NewMapper(held, overrides)

	// Sized after the terminal is up
	orchestrator := render.NewRenderOrchestrator(screen, 1, 1)
	orchestrator.SetZoom(cfg.Display.Zoom)
	orchestrator.SetRasterText(cfg.Display.RasterText)
	orchestrator.SetMetrics(reg)

	board := quest.NewBoard(quest.NewGeminiClient(cfg.QuestClient(), logger))

	sess := session.New(session.Deps{
		Orchestrator: orchestrator,
		Audio:        sound,
		Quests:       board,
		Store:        save.NewJSONStore(cfg.Save.Path),
		Input:        held,
		Registry:     reg,
		Logger:       logger,
	}, session.Options{
		FPS:           cfg.Display.FPS,
		Deterministic: cfg.World.Deterministic,
		ScreenshotDir: cfg.Log.Dir,
	})
	sess.SetDebugToggle(renderers.RegisterAll(orchestrator, assets, reg, sess.Sources()))

	hub := service.NewHub()
	for _, svc := range []service.Service{screen, sound, assets, sess} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	if err := hub.InitAll(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	orchestrator.Resize(screen.CanvasSize())
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	if *continueFlag && !sess.Continue() {
		sess.Redraw()
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			logger.Info().Stringer("signal", s).Msg("terminating")
			return errQuit
		case <-ctx.Done():
			return nil
		}
	})

	g.Go(func() error {
		return eventLoop(ctx, screen, mapper, sess, orchestrator)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	logger.Info().Msg("exit")
	return nil
}

// eventLoop is the only goroutine driving the session
func eventLoop(ctx context.Context, screen *terminal.Screen, mapper *input.Mapper, sess *session.Session, orchestrator *render.RenderOrchestrator) error {
	events := screen.Events()
	for {
		select {
		case <-ctx.Done():
			return nil

		case n := <-sess.Notices():
			sess.HandleNotice(n)

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				orchestrator.Resize(screen.CanvasSize())
				sess.Redraw()
				continue
			}
			if sess.Handle(mapper.Translate(ev, sess.State())) {
				return errQuit
			}
		}
	}
}
