package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deskcat/assets"
	"github.com/milk9111/deskcat/config"
	"github.com/milk9111/deskcat/logger"
	"go.uber.org/zap"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	configureWindow(cfg.Window)

	game, err := NewGame(cfg, logger.Log, assets.LoadSheet)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer game.Close()

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Window.Transparent,
		InitUnfocused:     cfg.Window.MousePassthrough,
	}
	if err := ebiten.RunGameWithOptions(game, opts); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}

// configureWindow turns the window into an overlay covering the whole
// monitor: undecorated, on top, not resizable and click-through.
func configureWindow(wc config.WindowConfig) {
	monitors := ebiten.AppendMonitors(nil)
	if wc.Monitor < len(monitors) {
		ebiten.SetMonitor(monitors[wc.Monitor])
	} else {
		logger.Warn("monitor not found, using primary", zap.Int("monitor", wc.Monitor), zap.Int("monitors", len(monitors)))
	}

	ebiten.SetWindowTitle(wc.Title)
	ebiten.SetWindowDecorated(wc.Decorated)
	ebiten.SetWindowFloating(wc.Floating)
	ebiten.SetWindowMousePassthrough(wc.MousePassthrough)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if wc.TPS > 0 {
		ebiten.SetTPS(wc.TPS)
	}

	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowPosition(0, 0)
	logger.Info("window configured", zap.Int("width", w), zap.Int("height", h), zap.String("monitor", ebiten.Monitor().Name()))
}
