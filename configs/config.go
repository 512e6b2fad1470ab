package configs

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
)

var ErrInvalidConfig = errors.New("invalid config")

// Constantes do jogo. Não existe arquivo nem flag: tudo sai de New().
type Config struct {
	Title    string
	Scale    int
	TPS      int
	LogLevel slog.Level
	ShowHelp bool

	ScreenWidth  int
	ScreenHeight int
	PaddleWidth  int
	PaddleHeight int
	BallSize     int

	// Pixels por tick.
	PlayerSpeed int
	AISpeed     int
	TrackSpeed  int
	BallSpeedX  float32
	BallSpeedY  float32

	Palette
}

// Cores de cada entidade (RGBA8).
type Palette struct {
	Player1 color.RGBA
	Player2 color.RGBA
	Ball    color.RGBA
}

func New() Config {
	return Config{
		Title:    "Pedals",
		Scale:    2,
		TPS:      60,
		LogLevel: slog.LevelInfo,
		ShowHelp: true,

		ScreenWidth:  320,
		ScreenHeight: 240,
		PaddleWidth:  32,
		PaddleHeight: 5,
		BallSize:     5,

		PlayerSpeed: 2,
		AISpeed:     2,
		TrackSpeed:  1,
		BallSpeedX:  1.0,
		BallSpeedY:  1.0,

		Palette: Palette{
			Player1: color.RGBA{0xff, 0x00, 0x00, 0xff},
			Player2: color.RGBA{0x00, 0xff, 0x00, 0xff},
			Ball:    color.RGBA{0xff, 0xff, 0xff, 0xff},
		},
	}
}

// Validate rejects geometry the world can't be built from.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen %dx%d: %w", c.ScreenWidth, c.ScreenHeight, ErrInvalidConfig)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("paddle %dx%d: %w", c.PaddleWidth, c.PaddleHeight, ErrInvalidConfig)
	}
	if c.PaddleWidth >= c.ScreenWidth {
		return fmt.Errorf("paddle width %d does not fit screen width %d: %w", c.PaddleWidth, c.ScreenWidth, ErrInvalidConfig)
	}
	// Raquete de cima em y=1, de baixo colada no rodapé.
	if 2*c.PaddleHeight+2 > c.ScreenHeight {
		return fmt.Errorf("paddle height %d does not fit screen height %d: %w", c.PaddleHeight, c.ScreenHeight, ErrInvalidConfig)
	}
	if c.BallSize <= 0 || c.BallSize >= c.ScreenWidth || c.BallSize >= c.ScreenHeight {
		return fmt.Errorf("ball size %d: %w", c.BallSize, ErrInvalidConfig)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d: %w", c.Scale, ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalidConfig)
	}
	return nil
}
