package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pedals/configs"
	"github.com/wvoliveira/pedals/internal/game"
)

func main() {
	cfg := configs.New()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := cfg.Validate(); err != nil {
		logError("configs.Validate", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth*cfg.Scale, cfg.ScreenHeight*cfg.Scale)
	ebiten.SetWindowSizeLimits(cfg.ScreenWidth, cfg.ScreenHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	slog.Debug("starting", "width", cfg.ScreenWidth, "height", cfg.ScreenHeight, "tps", cfg.TPS)

	// Esc devolve ebiten.Termination e RunGame retorna nil.
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		logError("ebiten.RunGame", err)
		os.Exit(1)
	}

	slog.Info("bye")
}

// logError registra o método que falhou e cada causa da cadeia de erros.
func logError(method string, err error) {
	slog.Error(method+"() failed", "error", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		slog.Error("  caused by", "error", cause)
	}
}
