package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/deskcat/atlas"
)

// SpriteSheet draws one frame of Image, located through Atlas.
type SpriteSheet struct {
	Image *ebiten.Image
	Atlas *atlas.Layout
}

var SpriteSheetComponent = NewComponent[SpriteSheet]()
