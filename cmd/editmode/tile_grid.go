package main

import (
	"image"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewTileGrid lays a tileset out as a grid of clickable tiles. The callback
// receives the tile's column and row within the sheet.
func NewTileGrid(tileset *ebiten.Image, tileSize int, onPick func(tileX, tileY int)) *widget.Container {
	if tileset == nil || tileSize <= 0 {
		return widget.NewContainer()
	}
	w, h := tileset.Size()
	tilesX := w / tileSize
	tilesY := h / tileSize
	if tilesX < 1 || tilesY < 1 {
		return widget.NewContainer()
	}
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(tilesX),
				widget.GridLayoutOpts.Spacing(2, 2),
			),
		),
	)
	for y := 0; y < tilesY; y++ {
		for x := 0; x < tilesX; x++ {
			sub := tileset.SubImage(
				image.Rect(x*tileSize, y*tileSize, (x+1)*tileSize, (y+1)*tileSize),
			).(*ebiten.Image)
			tx, ty := x, y
			cell := widget.NewGraphic(
				widget.GraphicOpts.Image(sub),
				widget.GraphicOpts.WidgetOpts(
					widget.WidgetOpts.MinSize(tileSize, tileSize),
					widget.WidgetOpts.MouseButtonClickedHandler(func(args *widget.WidgetMouseButtonClickedEventArgs) {
						onPick(tx, ty)
					}),
				),
			)
			container.AddChild(cell)
		}
	}
	return container
}
