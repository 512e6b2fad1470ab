package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/wvoliveira/pedals/configs"
	"github.com/wvoliveira/pedals/internal/render"
	"github.com/wvoliveira/pedals/internal/world"
)

const help = "<- ->  move  |  esc  quit"

// Game liga o mundo ao ebiten: lê o teclado, avança um tick, apresenta o buffer.
type Game struct {
	cfg    configs.Config
	world  *world.World
	canvas *render.Canvas
	face   text.Face
}

func New(cfg configs.Config) *Game {
	return &Game{
		cfg:    cfg,
		world:  world.New(cfg),
		canvas: render.NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.world.Step(world.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(g.canvas, g.world, g.cfg.Palette)
	screen.WritePixels(g.canvas.Pix)

	if g.cfg.ShowHelp {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, float64(g.cfg.PaddleHeight+4))
		op.ColorScale.ScaleWithColor(color.Gray{0x80})
		text.Draw(screen, help, g.face, op)
	}
}

// Layout fixa a resolução lógica; o ebiten escala para o tamanho da janela.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
