package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/worldedit"
	"github.com/milk9111/worldedit/common"
)

var (
	letterboxColor = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	designColor    = color.RGBA{R: 24, G: 27, B: 34, A: 255}
)

// Placeholder colors for objects whose sprite cannot be loaded.
var kindColors = map[worldedit.Kind]color.RGBA{
	worldedit.KindBuilding:   {R: 80, G: 220, B: 120, A: 200},
	worldedit.KindDecoration: {R: 80, G: 180, B: 255, A: 200},
	worldedit.KindNpc:        {R: 255, G: 230, B: 80, A: 200},
}

func (g *EditModeGame) drawScene(screen *ebiten.Image) {
	if g.gridPixel == nil {
		g.gridPixel = ebiten.NewImage(1, 1)
		g.gridPixel.Fill(color.White)
	}
	screen.Fill(letterboxColor)

	tr := g.session.View.Fit(g.winW, g.winH)
	g.drawBackdrop(screen, tr)
	g.drawTiles(screen, tr)
	if g.session.GridEnabled {
		g.drawGrid(screen, tr)
	}
	g.drawObjects(screen, tr)
	g.drawRoute(screen, tr)
	g.drawSelection(screen, tr)
	g.drawPreview(screen, tr)
	g.drawBrushGhost(screen, tr)
}

// drawBackdrop shades the design-space rectangle so the letterbox bars read
// as outside the scene.
func (g *EditModeGame) drawBackdrop(screen *ebiten.Image, tr worldedit.Transform) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.session.View.DesignWidth*tr.Scale, g.session.View.DesignHeight*tr.Scale)
	op.GeoM.Translate(tr.OffsetX, tr.OffsetY)
	op.ColorScale.Scale(float32(designColor.R)/255, float32(designColor.G)/255, float32(designColor.B)/255, 1)
	screen.DrawImage(g.gridPixel, op)
}

func (g *EditModeGame) drawTiles(screen *ebiten.Image, tr worldedit.Transform) {
	for _, t := range g.session.Layout.Tiles {
		size := t.TileSize
		if size <= 0 {
			continue
		}
		wx, wy := tr.ToWindow(float64(t.X), float64(t.Y))
		// SpriteSize remembers failures, so broken tileset refs don't retry
		// disk IO every frame.
		tsW, tsH, ok := g.index.SpriteSize(t.TilesetPath)
		if ok && t.TileX*size < tsW && t.TileY*size < tsH {
			if ts, err := g.index.Image(t.TilesetPath); err == nil {
				sub := ts.SubImage(
					image.Rect(t.TileX*size, t.TileY*size, (t.TileX+1)*size, (t.TileY+1)*size),
				).(*ebiten.Image)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(tr.Scale, tr.Scale)
				op.GeoM.Translate(wx, wy)
				screen.DrawImage(sub, op)
				continue
			}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(size)*tr.Scale, float64(size)*tr.Scale)
		op.GeoM.Translate(wx, wy)
		op.ColorScale.Scale(1, 0, 1, 0.4)
		screen.DrawImage(g.gridPixel, op)
	}
}

func (g *EditModeGame) drawGrid(screen *ebiten.Image, tr worldedit.Transform) {
	grid := g.session.Config.GridSize
	if grid <= 0 {
		return
	}
	dw := g.session.View.DesignWidth
	dh := g.session.View.DesignHeight
	for x := 0.0; x <= dw; x += float64(grid) {
		wx, wy := tr.ToWindow(x, 0)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, dh*tr.Scale)
		op.GeoM.Translate(wx, wy)
		op.ColorScale.Scale(1, 1, 1, 0.08)
		screen.DrawImage(g.gridPixel, op)
	}
	for y := 0.0; y <= dh; y += float64(grid) {
		wx, wy := tr.ToWindow(0, y)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(dw*tr.Scale, 1)
		op.GeoM.Translate(wx, wy)
		op.ColorScale.Scale(1, 1, 1, 0.08)
		screen.DrawImage(g.gridPixel, op)
	}
}

func (g *EditModeGame) drawObjects(screen *ebiten.Image, tr worldedit.Transform) {
	w := g.session.Layout
	objs := make([]worldedit.Object, 0, len(w.Buildings)+len(w.Decorations)+len(w.Npcs))
	for _, b := range w.Buildings {
		objs = append(objs, b)
	}
	for _, d := range w.Decorations {
		objs = append(objs, d)
	}
	for _, n := range w.Npcs {
		objs = append(objs, n)
	}
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].Base().Layer < objs[j].Base().Layer
	})
	for _, o := range objs {
		g.drawSprite(screen, tr, o)
	}
}

// frameInfo reports the animation parameters to render an object with. A
// non-animated object is a single frame.
func frameInfo(o worldedit.Object) (frames, fps int, offset float64) {
	switch t := o.(type) {
	case *worldedit.Decoration:
		if t.Animated && t.FrameCount > 1 {
			return t.FrameCount, t.FPS, t.AnimOffset
		}
	case *worldedit.Npc:
		if t.Animated && t.FrameCount > 1 {
			return t.FrameCount, t.FPS, 0
		}
	}
	return 1, 0, 0
}

func (g *EditModeGame) drawSprite(screen *ebiten.Image, tr worldedit.Transform, o worldedit.Object) {
	p := o.Base()
	w, h, ok := g.index.SpriteSize(p.SpriteRef)
	if !ok {
		g.drawPlaceholder(screen, tr, o)
		return
	}
	img, err := g.index.Image(p.SpriteRef)
	if err != nil {
		g.drawPlaceholder(screen, tr, o)
		return
	}

	frames, fps, offset := frameInfo(o)
	fw := w / frames
	src := img
	if frames > 1 {
		frame := 0
		if fps > 0 {
			t := float64(g.tick)/60*float64(fps) + offset*float64(frames)
			frame = int(t) % frames
		}
		src = img.SubImage(image.Rect(frame*fw, 0, (frame+1)*fw, h)).(*ebiten.Image)
	}

	bb := worldedit.Bounds(o, w, h)
	wx, wy := tr.ToWindow(bb.L, bb.B)
	op := &ebiten.DrawImageOptions{}
	if n, isNpc := o.(*worldedit.Npc); isNpc && n.Facing == worldedit.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(fw), 0)
	}
	op.GeoM.Scale(p.Scale*tr.Scale, p.Scale*tr.Scale)
	op.GeoM.Translate(wx, wy)
	screen.DrawImage(src, op)
}

func (g *EditModeGame) drawPlaceholder(screen *ebiten.Image, tr worldedit.Transform, o worldedit.Object) {
	bb := worldedit.FallbackBounds(o)
	wx, wy := tr.ToWindow(bb.L, bb.B)
	c := kindColors[o.Kind()]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale((bb.R-bb.L)*tr.Scale, (bb.T-bb.B)*tr.Scale)
	op.GeoM.Translate(wx, wy)
	op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	screen.DrawImage(g.gridPixel, op)
}

// drawRoute overlays the selected NPC's movement: the patrol polyline with
// its waypoints, or the wander circle.
func (g *EditModeGame) drawRoute(screen *ebiten.Image, tr worldedit.Transform) {
	n := g.session.SelectedNpc()
	if n == nil {
		return
	}
	switch n.Behavior {
	case worldedit.BehaviorPatrol:
		segs := worldedit.PatrolSegments(n)
		for _, seg := range segs {
			x0, y0 := tr.ToWindow(seg.From.X, seg.From.Y)
			x1, y1 := tr.ToWindow(seg.To.X, seg.To.Y)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colornames.Lightskyblue, true)
		}
		for i, wp := range n.Waypoints {
			c := colornames.Orange
			if i == 0 {
				c = colornames.Limegreen
			}
			x, y := tr.ToWindow(wp.X, wp.Y)
			vector.StrokeRect(screen, float32(x)-4, float32(y)-4, 8, 8, 2, c, false)
		}
		// A marker runs along the route so the walk direction is visible.
		if len(segs) > 0 {
			t := math.Mod(float64(g.tick)/120, float64(len(segs)))
			seg := segs[int(t)]
			f := t - math.Floor(t)
			mx, my := tr.ToWindow(common.Lerp(seg.From.X, seg.To.X, f), common.Lerp(seg.From.Y, seg.To.Y, f))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(6, 6)
			op.GeoM.Translate(mx-3, my-3)
			c := colornames.Lightskyblue
			op.ColorScale.Scale(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
			screen.DrawImage(g.gridPixel, op)
		}
	case worldedit.BehaviorWander:
		if n.Radius > 0 {
			cx, cy := tr.ToWindow(n.X, n.Y)
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(n.Radius*tr.Scale), 2, colornames.Lightskyblue, true)
		}
	}
}

func (g *EditModeGame) drawSelection(screen *ebiten.Image, tr worldedit.Transform) {
	o := g.session.Selected
	if o == nil {
		return
	}
	var bb cp.BB
	if w, h, ok := g.index.SpriteSize(o.Base().SpriteRef); ok {
		bb = worldedit.Bounds(o, w, h)
	} else {
		bb = worldedit.FallbackBounds(o)
	}
	x, y := tr.ToWindow(bb.L, bb.B)
	vector.StrokeRect(screen, float32(x), float32(y), float32((bb.R-bb.L)*tr.Scale), float32((bb.T-bb.B)*tr.Scale), 2, colornames.Gold, false)
}

// drawPreview ghosts the armed sprite at the pointer with the same anchor
// rules a committed object would get.
func (g *EditModeGame) drawPreview(screen *ebiten.Image, tr worldedit.Transform) {
	p := g.session.Preview
	if p == nil || g.session.Tool != worldedit.ToolPlace {
		return
	}
	w, h, ok := g.index.SpriteSize(p.SpriteRef)
	if !ok {
		return
	}
	img, err := g.index.Image(p.SpriteRef)
	if err != nil {
		return
	}
	frames := 1
	if h > 0 && w > h {
		frames = w / h
	}
	fw := w / frames
	src := img
	if frames > 1 {
		src = img.SubImage(image.Rect(0, 0, fw, h)).(*ebiten.Image)
	}
	sc := p.Scale
	if sc <= 0 {
		sc = 1
	}
	dx := p.X - float64(fw)*sc/2
	dy := p.Y
	if p.Kind != worldedit.KindBuilding {
		dy = p.Y - float64(h)*sc
	}
	wx, wy := tr.ToWindow(dx, dy)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sc*tr.Scale, sc*tr.Scale)
	op.GeoM.Translate(wx, wy)
	op.ColorScale.Scale(1, 1, 1, 0.5)
	screen.DrawImage(src, op)
}

// drawBrushGhost previews the armed tile in the cell under the pointer.
func (g *EditModeGame) drawBrushGhost(screen *ebiten.Image, tr worldedit.Transform) {
	s := g.session
	if s.Tool != worldedit.ToolTilePaint || s.Brush.TileSize <= 0 || s.Brush.TilesetPath == "" {
		return
	}
	if ebuiinput.UIHovered {
		return
	}
	cx, cy := ebiten.CursorPosition()
	px, py := tr.ToDesign(float64(cx), float64(cy))
	size := s.Brush.TileSize
	wx, wy := tr.ToWindow(float64(worldedit.SnapToCell(px, size)), float64(worldedit.SnapToCell(py, size)))

	tsW, tsH, ok := g.index.SpriteSize(s.Brush.TilesetPath)
	if ok && s.Brush.TileX*size < tsW && s.Brush.TileY*size < tsH {
		if ts, err := g.index.Image(s.Brush.TilesetPath); err == nil {
			sub := ts.SubImage(
				image.Rect(s.Brush.TileX*size, s.Brush.TileY*size, (s.Brush.TileX+1)*size, (s.Brush.TileY+1)*size),
			).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(tr.Scale, tr.Scale)
			op.GeoM.Translate(wx, wy)
			op.ColorScale.Scale(1, 1, 1, 0.5)
			screen.DrawImage(sub, op)
			return
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)*tr.Scale, float64(size)*tr.Scale)
	op.GeoM.Translate(wx, wy)
	op.ColorScale.Scale(1, 1, 1, 0.25)
	screen.DrawImage(g.gridPixel, op)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (g *EditModeGame) drawStatus(screen *ebiten.Image) {
	s := g.session
	line := "Tool: " + s.Tool.String() + " | Grid: " + onOff(s.GridEnabled)
	if s.AddingWaypoint {
		line += " | click to add waypoints"
	}
	if o := s.Selected; o != nil {
		p := o.Base()
		line += fmt.Sprintf(" | %s (%.0f, %.0f)", p.ID, p.X, p.Y)
		if n := s.SelectedNpc(); n != nil && len(n.Waypoints) > 0 {
			line += fmt.Sprintf(" | %d waypoints", len(n.Waypoints))
		}
	}
	ebitenutil.DebugPrintAt(screen, line, 8, g.winH-36)
	if msg := s.Status(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, 8, g.winH-18)
	}
}
