//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/FedExRU/life-the-game/internal/render"
	"github.com/FedExRU/life-the-game/internal/sim"
	"github.com/FedExRU/life-the-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudHeight is the pixel height of the status bar under the board.
const hudHeight = 16

// Game adapts the simulation controller to the ebiten.Game interface. All
// cell edits go through the controller, which refuses them while running.
type Game struct {
	ctrl    *sim.Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller. The controller must
// already have a generated grid.
func New(ctrl *sim.Controller, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	n := ctrl.Size()
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(n, n),
		hud:      ui.NewHUD(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input. Generation advances happen on the
// controller's own tick goroutine, not here.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.State() == sim.Running {
			g.ctrl.Stop()
		} else if err := g.ctrl.Start(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.ctrl.Step(); err != nil {
			return err
		}
	}
	// Edits are refused by the controller while running; the bindings below
	// mirror that by only firing in the stopped phase.
	if g.ctrl.State() == sim.Stopped {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := g.ctrl.Reset(); err != nil {
				return err
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.ctrl.Reseed(time.Now().UnixNano())
			if err := g.ctrl.Randomize(); err != nil {
				return err
			}
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.handleClick()
		}
	}
	return nil
}

// handleClick toggles the cell under the cursor. Clicks outside the board
// land out of bounds and are ignored.
func (g *Game) handleClick() {
	mx, my := ebiten.CursorPosition()
	_ = g.ctrl.Toggle(mx/g.scale, my/g.scale)
}

// Draw renders the current board snapshot and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	g.painter.Blit(screen, snap.Cells, g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, snap, snap.Size*g.scale+hudHeight-4)
}

// Layout returns the logical screen size: the scaled board plus status bar.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.ctrl.Size()
	return n * g.scale, n*g.scale + hudHeight
}
