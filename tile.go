package worldedit

import "math"

// Tile is one painted ground cell. X and Y are the cell origin in design
// space, floor-snapped to TileSize; TileX and TileY pick the column and row
// inside the tileset image.
type Tile struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	TilesetPath string `json:"tilesetPath"`
	TileX       int    `json:"tileX"`
	TileY       int    `json:"tileY"`
	TileSize    int    `json:"tileSize"`
}

// SnapToCell floor-snaps a design-space coordinate to the origin of the
// size-aligned cell containing it.
func SnapToCell(v float64, size int) int {
	if size <= 0 {
		return int(v)
	}
	return int(math.Floor(v/float64(size))) * size
}

// SnapToGrid rounds a design-space coordinate to the nearest grid multiple.
func SnapToGrid(v float64, grid int) float64 {
	if grid <= 0 {
		return v
	}
	g := float64(grid)
	return math.Round(v/g) * g
}

// PaintTile stamps a tileset cell onto the grid cell containing (x, y). A
// tile already occupying that cell at the same size is replaced, so a cell
// holds at most one tile per size. Returns the stored tile.
func (w *WorldLayout) PaintTile(x, y float64, tilesetPath string, tileX, tileY, tileSize int) Tile {
	t := Tile{
		X:           SnapToCell(x, tileSize),
		Y:           SnapToCell(y, tileSize),
		TilesetPath: tilesetPath,
		TileX:       tileX,
		TileY:       tileY,
		TileSize:    tileSize,
	}
	for i := range w.Tiles {
		p := &w.Tiles[i]
		if p.X == t.X && p.Y == t.Y && p.TileSize == t.TileSize {
			*p = t
			return t
		}
	}
	w.Tiles = append(w.Tiles, t)
	return t
}

// EraseTile clears the cell containing (x, y). The cell origin is resolved
// with the erasing size, but the match is on position alone, so a tile
// painted at a different size is still removed. Returns whether a tile went
// away.
func (w *WorldLayout) EraseTile(x, y float64, tileSize int) bool {
	cx := SnapToCell(x, tileSize)
	cy := SnapToCell(y, tileSize)
	for i := range w.Tiles {
		if w.Tiles[i].X == cx && w.Tiles[i].Y == cy {
			w.Tiles = append(w.Tiles[:i], w.Tiles[i+1:]...)
			return true
		}
	}
	return false
}

// TileAt returns the tile occupying the cell that contains (x, y) at the
// given size, or nil.
func (w *WorldLayout) TileAt(x, y float64, tileSize int) *Tile {
	cx := SnapToCell(x, tileSize)
	cy := SnapToCell(y, tileSize)
	for i := range w.Tiles {
		if w.Tiles[i].X == cx && w.Tiles[i].Y == cy && w.Tiles[i].TileSize == tileSize {
			return &w.Tiles[i]
		}
	}
	return nil
}
