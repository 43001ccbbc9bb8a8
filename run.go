package plotline

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	ShowFPS bool // draw an FPS/TPS readout in the top-left corner
}

// Run opens a window sized to the stage and drives its game loop until the
// window closes. For full control, implement ebiten.Game yourself and call
// Stage.Update and Stage.Draw directly.
func Run(stage *Stage, cfg RunConfig) error {
	w, h := stage.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(&game{stage: stage, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run stage: %w", err)
	}
	return nil
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage   *Stage
	showFPS bool
}

func (g *game) Update() error {
	g.stage.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.stage.Size()
}
