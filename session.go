package worldedit

import (
	"log"
	"time"

	"github.com/milk9111/worldedit/common"
)

// Tool is the editor's active interaction mode.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPlace
	ToolWaypoint
	ToolTilePaint
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "Select"
	case ToolPlace:
		return "Place"
	case ToolWaypoint:
		return "Waypoint"
	case ToolTilePaint:
		return "Tile Paint"
	default:
		return "Unknown"
	}
}

// Saver persists layouts after mutations. *Store implements it; tests
// substitute counting or failing writers.
type Saver interface {
	Save(*WorldLayout) error
}

// Preview is the uncommitted object tracked while placing. It follows the
// pointer and has no id until a confirming click commits it.
type Preview struct {
	Kind      Kind
	SpriteRef string
	X, Y      float64
	Scale     float64
}

// Brush is the armed tile stamp for the paint tool.
type Brush struct {
	TilesetPath string
	TileX       int
	TileY       int
	TileSize    int
}

const (
	minScale = 0.1
	maxScale = 10
)

// How long transient status messages stay visible.
const statusDuration = 2 * time.Second

// Session is the live state of one edit-mode visit: the active tool, the
// selection, drag and paint progress, the placement preview, modal flags and
// the clipboard. The caller creates it when edit mode opens and drops it on
// exit; it is never serialized. The renderer may read Layout and the public
// fields for highlighting, but only the session mutates them.
type Session struct {
	Layout *WorldLayout
	Assets SpriteSizer
	Store  Saver
	Config Config
	View   Viewport

	Tool     Tool
	Selected Object

	AssetBrowserOpen bool
	TilePickerOpen   bool
	AddingWaypoint   bool

	Dragging      bool
	PaintingTiles bool

	Preview     *Preview
	Brush       Brush
	GridEnabled bool
	Clipboard   Clipboard

	winW, winH int

	dragWaypoint   int
	dragDX, dragDY float64

	paintErase    bool
	havePaintCell bool
	lastPaintX    int
	lastPaintY    int

	status      string
	statusUntil time.Time
}

// NewSession builds the editing state for an opened layout. The grid starts
// enabled; the 'g' key toggles it.
func NewSession(layout *WorldLayout, assets SpriteSizer, store Saver, cfg Config) *Session {
	return &Session{
		Layout: layout,
		Assets: assets,
		Store:  store,
		Config: cfg,
		View: Viewport{
			DesignWidth:  float64(cfg.DesignWidth),
			DesignHeight: float64(cfg.DesignHeight),
		},
		GridEnabled:  true,
		dragWaypoint: -1,
	}
}

// SetStatus shows a transient message in the editor chrome.
func (s *Session) SetStatus(msg string) {
	s.status = msg
	s.statusUntil = time.Now().Add(statusDuration)
}

// Status returns the current transient message, or "" once it expired.
func (s *Session) Status() string {
	if time.Now().After(s.statusUntil) {
		return ""
	}
	return s.status
}

// persist writes the layout after a mutation. A failed write keeps the
// in-memory edit, so a later save still picks it up; nothing is rolled back.
func (s *Session) persist() bool {
	if s.Store == nil {
		return true
	}
	if err := s.Store.Save(s.Layout); err != nil {
		log.Printf("save layout: %v", err)
		s.SetStatus("Save failed: " + err.Error())
		return false
	}
	return true
}

// SaveNow forces a write outside the usual save-on-mutation flow, as from
// Ctrl+S or the toolbar button.
func (s *Session) SaveNow() bool {
	if s.persist() {
		s.SetStatus("Saved")
		return true
	}
	return false
}

// SelectedNpc returns the selection as an NPC, or nil.
func (s *Session) SelectedNpc() *Npc {
	n, _ := s.Selected.(*Npc)
	return n
}

func (s *Session) hits() HitTester {
	return HitTester{
		Layout:         s.Layout,
		Sizes:          s.Assets,
		WaypointRadius: s.Config.WaypointPickRadius,
	}
}

// BeginPlacement opens a placement preview for the chosen sprite and switches
// to the place tool. Called by the asset browser once a sprite and a kind are
// picked.
func (s *Session) BeginPlacement(kind Kind, spriteRef string) {
	s.Preview = &Preview{Kind: kind, SpriteRef: spriteRef, Scale: 1}
	s.Tool = ToolPlace
	s.AssetBrowserOpen = false
	s.AddingWaypoint = false
}

// ArmBrush stores the tile stamp picked in the tile dialog and enters the
// paint tool.
func (s *Session) ArmBrush(b Brush) {
	if b.TileSize <= 0 {
		b.TileSize = s.Config.TileSize
	}
	s.Brush = b
	s.Tool = ToolTilePaint
	s.TilePickerOpen = false
}

// SelectTool switches tools directly, as from the toolbar. Returning to
// select drops any pending preview and leaves waypoint mode. The waypoint
// tool needs a selected patrol NPC; the paint tool without an armed brush
// opens the tile picker instead.
func (s *Session) SelectTool(t Tool) {
	switch t {
	case ToolSelect:
		s.Preview = nil
		s.AddingWaypoint = false
	case ToolWaypoint:
		n := s.SelectedNpc()
		if n == nil || n.Behavior != BehaviorPatrol {
			return
		}
		s.AddingWaypoint = true
	case ToolTilePaint:
		if s.Brush.TileSize <= 0 {
			s.TilePickerOpen = true
			return
		}
	}
	s.Tool = t
}

// ToggleAddWaypoint enters or leaves waypoint-adding mode for the selected
// patrol NPC. While on, every world click appends a waypoint; the mode stays
// on so several can be added in a row.
func (s *Session) ToggleAddWaypoint() {
	n := s.SelectedNpc()
	if n == nil || n.Behavior != BehaviorPatrol {
		return
	}
	s.AddingWaypoint = !s.AddingWaypoint
	if s.AddingWaypoint {
		s.Tool = ToolWaypoint
	} else {
		s.Tool = ToolSelect
	}
}

// SetBehavior switches the selected NPC's behavior with the configured
// wander seed and persists. The seed lands mid-range so it is visible at
// either clamp extreme.
func (s *Session) SetBehavior(n *Npc, b Behavior) {
	if n == nil {
		return
	}
	seed := (s.Config.WanderRadiusMin + s.Config.WanderRadiusMax) / 2
	s.Layout.SetBehavior(n, b, seed)
	s.persist()
}

// SetWanderRadius clamps and applies the wander radius, then persists.
func (s *Session) SetWanderRadius(n *Npc, r float64) {
	if n == nil {
		return
	}
	n.Radius = common.Clamp(r, s.Config.WanderRadiusMin, s.Config.WanderRadiusMax)
	s.persist()
}

// SetScale clamps and applies an object's scale, then persists.
func (s *Session) SetScale(o Object, v float64) {
	if o == nil {
		return
	}
	o.Base().Scale = common.Clamp(v, minScale, maxScale)
	s.persist()
}

// SetFrameCount applies an edited frame count, floored at one, and persists.
// This is the escape hatch for sprites the spritesheet guess got wrong.
func (s *Session) SetFrameCount(o Object, frames int) {
	if frames < 1 {
		frames = 1
	}
	switch t := o.(type) {
	case *Decoration:
		t.FrameCount = frames
	case *Npc:
		t.FrameCount = frames
	default:
		return
	}
	s.persist()
}

// SetFPS applies an edited animation rate, floored at one, and persists.
func (s *Session) SetFPS(o Object, fps int) {
	if fps < 1 {
		fps = 1
	}
	switch t := o.(type) {
	case *Decoration:
		t.FPS = fps
	case *Npc:
		t.FPS = fps
	default:
		return
	}
	s.persist()
}

// Apply runs a free-form inspector edit against the layout and persists it.
// Use the typed setters for fields with invariants.
func (s *Session) Apply(mutate func()) {
	if mutate == nil {
		return
	}
	mutate()
	s.persist()
}
