//go:build !tinygo

package sim

import (
	"github.com/hajimehoshi/ebiten/v2"

	"emu5110/internal/buildinfo"
	"emu5110/st7735"
)

// RunWindow opens a desktop window presenting the simulated panel and
// blocks until it closes. step, if non-nil, runs once per tick.
func RunWindow(p *Panel, step func() error) error {
	g := &game{p: p, step: step}
	ebiten.SetWindowTitle("nokia5110 on st7735 (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(st7735.PanelWidth*4, st7735.PanelHeight*4)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	p    *Panel
	img  *ebiten.Image
	step func() error
}

func (g *game) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(st7735.PanelWidth, st7735.PanelHeight)
	}
	g.img.WritePixels(g.p.Image().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return st7735.PanelWidth, st7735.PanelHeight
}
