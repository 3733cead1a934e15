package worldedit

// EventKind discriminates input events.
type EventKind int

const (
	EventMouseDown EventKind = iota
	EventMouseUp
	EventMouseMove
	EventKeyDown
	EventScroll
	EventResize
)

// MouseButton identifies which button an event refers to.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
)

// Key is the reduced key set edit mode reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyDelete
	KeyA
	KeyG
	KeyS
)

// Event is one input occurrence. Positions are window coordinates; the
// session converts them to design space itself, so the frontend only
// translates raw engine input into these values and stays out of editing
// decisions. MouseMove arrives every frame the cursor is over the scene,
// which drives the live placement preview, drags, and continuous painting.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Button  MouseButton
	Key     Key
	Ctrl    bool
	ScrollY float64
	W, H    int
}

// HandleEvent advances the editor state machine by one input event. All
// mutations and their saves happen synchronously before it returns.
func (s *Session) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventResize:
		s.winW, s.winH = ev.W, ev.H
	case EventKeyDown:
		s.handleKey(ev)
	case EventMouseDown:
		s.handleMouseDown(ev)
	case EventMouseMove:
		s.handleMouseMove(ev)
	case EventMouseUp:
		s.handleMouseUp()
	case EventScroll:
		// The wheel only scrolls panels, which the frontend handles before
		// events reach the session.
	}
}

// transform is rebuilt per event so a resize can never leave stale mapping
// behind.
func (s *Session) transform() Transform {
	return s.View.Fit(s.winW, s.winH)
}

func (s *Session) maybeSnap(x, y float64) (float64, float64) {
	if !s.GridEnabled || s.Config.GridSize <= 0 {
		return x, y
	}
	return SnapToGrid(x, s.Config.GridSize), SnapToGrid(y, s.Config.GridSize)
}

func (s *Session) handleKey(ev Event) {
	switch ev.Key {
	case KeyEscape:
		s.cancelOne()
	case KeyDelete:
		s.deleteSelection()
	case KeyA:
		s.AssetBrowserOpen = !s.AssetBrowserOpen
	case KeyG:
		s.GridEnabled = !s.GridEnabled
	case KeyS:
		if ev.Ctrl {
			s.SaveNow()
		}
	}
}

// cancelOne dismisses the topmost cancellable layer, one per press: an open
// dialog first, then waypoint-adding mode, then the placement preview, then
// the selection.
func (s *Session) cancelOne() {
	switch {
	case s.AssetBrowserOpen || s.TilePickerOpen:
		s.AssetBrowserOpen = false
		s.TilePickerOpen = false
	case s.AddingWaypoint:
		s.AddingWaypoint = false
		s.Tool = ToolSelect
	case s.Preview != nil:
		s.Preview = nil
		s.Tool = ToolSelect
	case s.Selected != nil:
		s.Selected = nil
	}
}

// deleteSelection removes the selected object, except that a patrol NPC with
// more than one waypoint only loses its last waypoint and survives.
func (s *Session) deleteSelection() {
	if s.Selected == nil {
		return
	}
	if n, ok := s.Selected.(*Npc); ok && n.Behavior == BehaviorPatrol && len(n.Waypoints) > 1 {
		n.Waypoints = n.Waypoints[:len(n.Waypoints)-1]
		s.persist()
		return
	}
	if s.Layout.DeleteObject(s.Selected.Kind(), s.Selected.Base().ID) {
		s.Selected = nil
		s.persist()
	}
}

func (s *Session) handleMouseDown(ev Event) {
	px, py := s.transform().ToDesign(ev.X, ev.Y)
	switch s.Tool {
	case ToolPlace:
		if ev.Button == MouseLeft {
			s.commitPreview(px, py)
		}
	case ToolWaypoint:
		if ev.Button == MouseLeft {
			s.addWaypoint(px, py)
		}
	case ToolTilePaint:
		if ev.Button == MouseLeft || ev.Button == MouseRight {
			s.PaintingTiles = true
			s.paintErase = ev.Button == MouseRight
			s.paintAt(px, py)
		}
	case ToolSelect:
		switch ev.Button {
		case MouseLeft:
			s.beginSelectOrDrag(px, py)
		case MouseRight:
			s.copyOrPaste(px, py)
		}
	}
}

func (s *Session) handleMouseMove(ev Event) {
	px, py := s.transform().ToDesign(ev.X, ev.Y)
	switch {
	case s.Tool == ToolPlace && s.Preview != nil:
		s.Preview.X, s.Preview.Y = s.maybeSnap(px, py)
	case s.Tool == ToolTilePaint && s.PaintingTiles:
		s.paintAt(px, py)
	case s.Dragging:
		s.dragTo(px, py)
	}
}

func (s *Session) handleMouseUp() {
	if s.PaintingTiles {
		s.PaintingTiles = false
		s.havePaintCell = false
	}
	if s.Dragging {
		s.Dragging = false
		s.dragWaypoint = -1
		s.persist()
	}
}

// commitPreview turns the placement preview into a real object and returns
// to the select tool with the new object selected.
func (s *Session) commitPreview(px, py float64) {
	p := s.Preview
	if p == nil {
		return
	}
	x, y := s.maybeSnap(px, py)
	var o Object
	switch p.Kind {
	case KindBuilding:
		o = s.Layout.AddBuilding(p.SpriteRef, x, y)
	case KindDecoration:
		w, h := s.spriteSize(p.SpriteRef)
		o = s.Layout.AddDecoration(p.SpriteRef, x, y, w, h)
	case KindNpc:
		w, h := s.spriteSize(p.SpriteRef)
		o = s.Layout.AddNpc(p.SpriteRef, x, y, w, h)
	default:
		return
	}
	s.Preview = nil
	s.Tool = ToolSelect
	s.Selected = o
	s.persist()
}

func (s *Session) spriteSize(ref string) (int, int) {
	if s.Assets == nil {
		return 0, 0
	}
	w, h, ok := s.Assets.SpriteSize(ref)
	if !ok {
		return 0, 0
	}
	return w, h
}

// addWaypoint appends one patrol waypoint at the click position without
// leaving waypoint mode. Losing the patrol selection drops back to select.
func (s *Session) addWaypoint(px, py float64) {
	n := s.SelectedNpc()
	if n == nil || n.Behavior != BehaviorPatrol {
		s.AddingWaypoint = false
		s.Tool = ToolSelect
		return
	}
	x, y := s.maybeSnap(px, py)
	n.Waypoints = append(n.Waypoints, Waypoint{X: x, Y: y})
	s.persist()
}

// paintAt paints or erases the cell under the pointer. Repeated hits on the
// same cell within one stroke are skipped, so holding the button writes once
// per cell, not once per frame.
func (s *Session) paintAt(px, py float64) {
	size := s.Brush.TileSize
	if size <= 0 {
		return
	}
	cx := SnapToCell(px, size)
	cy := SnapToCell(py, size)
	if s.havePaintCell && cx == s.lastPaintX && cy == s.lastPaintY {
		return
	}
	s.lastPaintX, s.lastPaintY = cx, cy
	s.havePaintCell = true
	if s.paintErase {
		if !s.Layout.EraseTile(px, py, size) {
			return
		}
	} else {
		s.Layout.PaintTile(px, py, s.Brush.TilesetPath, s.Brush.TileX, s.Brush.TileY, size)
	}
	s.persist()
}

// beginSelectOrDrag resolves a left click in select mode. Waypoints of the
// already selected patrol NPC win over whole objects; then the fixed
// NPC/decoration/building priority applies. Clicking empty space clears the
// selection. The hit always resolves against the pre-click state, and the
// drag only writes at release.
func (s *Session) beginSelectOrDrag(px, py float64) {
	t := s.hits()
	if n := s.SelectedNpc(); n != nil {
		if i := t.WaypointAt(px, py, n); i >= 0 {
			s.Dragging = true
			s.dragWaypoint = i
			s.dragDX = px - n.Waypoints[i].X
			s.dragDY = py - n.Waypoints[i].Y
			return
		}
	}
	o := t.ObjectAt(px, py)
	if o == nil {
		s.Selected = nil
		return
	}
	s.Selected = o
	s.Dragging = true
	s.dragWaypoint = -1
	s.dragDX = px - o.Base().X
	s.dragDY = py - o.Base().Y
}

// dragTo moves the dragged waypoint or object with the pointer. The move is
// live so the renderer shows it immediately; persistence waits for release.
func (s *Session) dragTo(px, py float64) {
	x, y := s.maybeSnap(px-s.dragDX, py-s.dragDY)
	if n := s.SelectedNpc(); n != nil && s.dragWaypoint >= 0 {
		if s.dragWaypoint < len(n.Waypoints) {
			n.Waypoints[s.dragWaypoint] = Waypoint{X: x, Y: y}
		}
		return
	}
	if s.Selected != nil {
		s.Selected.Base().X = x
		s.Selected.Base().Y = y
	}
}

// copyOrPaste handles a right click in select mode: copy the object under
// the cursor, or paste the clipboard onto empty space. Pasting with an empty
// clipboard is a no-op.
func (s *Session) copyOrPaste(px, py float64) {
	if o := s.hits().ObjectAt(px, py); o != nil {
		s.Clipboard.Copy(o)
		s.SetStatus("Copied " + o.Base().ID)
		return
	}
	x, y := s.maybeSnap(px, py)
	o := s.Clipboard.Paste(s.Layout, x, y)
	if o == nil {
		return
	}
	s.Selected = o
	s.persist()
}
