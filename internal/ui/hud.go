//go:build ebiten

package ui

import (
	"image/color"

	"github.com/FedExRU/life-the-game/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the one-line status bar under the board: lifecycle state,
// generation counter, last advance time and live cell count.
type HUD struct{}

// NewHUD constructs a HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw paints the status line with its baseline at y.
func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot, y int) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, StatusLine(snap), face, 4, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
