package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wilblik/cyberconda/internal/app"
	"github.com/Wilblik/cyberconda/internal/domain"
	"github.com/Wilblik/cyberconda/internal/sound"
	"github.com/Wilblik/cyberconda/internal/ui/graphics"
	"github.com/Wilblik/cyberconda/internal/ui/graphics/screens"
	"github.com/Wilblik/cyberconda/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const soundEventBuffer = 16

type options struct {
	ui      string
	seed    uint64
	sound   bool
	fps     int
	logPath string
}

func parseFlags() (*domain.GameConfig, options) {
	cfg := domain.DefaultGameConfig()
	var opts options

	flag.StringVar(&opts.ui, "ui", "window", "surface: window or term")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "cells per side of the square field")
	flag.DurationVar(&cfg.InitialSpeed, "speed", cfg.InitialSpeed, "initial move interval")
	flag.DurationVar(&cfg.SpeedStep, "step", cfg.SpeedStep, "interval decrement per food")
	flag.DurationVar(&cfg.MinSpeed, "min-speed", cfg.MinSpeed, "shortest move interval")
	flag.IntVar(&cfg.InitialCapacity, "capacity", cfg.InitialCapacity, "initial body capacity")
	flag.Uint64Var(&opts.seed, "seed", 0, "food RNG seed, 0 picks one from the clock")
	flag.BoolVar(&opts.sound, "sound", false, "play sound cues")
	flag.IntVar(&opts.fps, "fps", 100, "terminal frame rate cap")
	flag.StringVar(&opts.logPath, "log", "", "log file, terminal mode discards logs without it")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	return cfg, opts
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, opts := parseFlags()

	closeLog, err := setupLog(opts)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	application, err := app.NewApp(cfg, app.NewSystemClock(), opts.seed)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("Sound: disabled: %v", err)
		} else {
			defer player.Close()
			go player.Run(ctx, application.Subscribe(soundEventBuffer))
		}
	}

	switch opts.ui {
	case "window":
		err = runWindow(ctx, application)
	case "term":
		err = runTerminal(ctx, application, opts.fps)
	default:
		err = fmt.Errorf("unknown surface %q", opts.ui)
	}

	if err != nil {
		log.Printf("UI error: %v", err)
		exit(closeLog, 1)
	}
	if err := application.Err(); err != nil {
		log.Printf("Session failed: %v", err)
		exit(closeLog, 1)
	}
}

func runWindow(ctx context.Context, application *app.App) error {
	engine := graphics.NewEngine(application)

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewConfigScreen(engine),
		screens.NewGameScreen(engine, screens.GameLayout{
			BoardWidth:   graphics.BoardWidth,
			BoardHeight:  graphics.BoardHeight,
			HeaderHeight: graphics.HeaderHeight,
			FooterHeight: graphics.FooterHeight,
			PanelWidth:   graphics.PanelWidth,
		}),
	)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		engine.Shutdown()
	}()

	return engine.Run()
}

func runTerminal(ctx context.Context, application *app.App, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}

	return terminal.New(screen, application, fps).Run(ctx)
}

// setupLog keeps logs off the terminal surface's screen.
func setupLog(opts options) (func(), error) {
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	}

	if opts.ui == "term" {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func exit(closeLog func(), code int) {
	closeLog()
	os.Exit(code)
}
