package worldedit

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Version is the current world layout document version.
const Version = 2

// Default z-order tiers per kind. Higher layers draw later.
const (
	LayerDecoration = 1
	LayerBuilding   = 2
	LayerNpc        = 3
)

const (
	defaultFPS      = 8
	defaultNpcSpeed = 40
)

// Metadata records who touched the layout last, stamped on every save.
type Metadata struct {
	LastModified time.Time `json:"lastModified"`
	ModifiedBy   string    `json:"modifiedBy"`
}

// WorldLayout is the persisted scene document: every placed object and
// painted tile, plus modification metadata. The renderer reads the same
// instance the editor mutates, so all slices stay non-nil.
type WorldLayout struct {
	Version     int           `json:"version"`
	Buildings   []*Building   `json:"buildings"`
	Decorations []*Decoration `json:"decorations"`
	Npcs        []*Npc        `json:"npcs"`
	Tiles       []Tile        `json:"tiles"`
	Metadata    Metadata      `json:"metadata"`

	// Per-kind id counters. Seeded from existing ids by Normalize and only
	// ever incremented, so deleted ids are never handed out again.
	nextID [3]int
}

// NewWorldLayout returns an empty current-version layout ready for editing.
func NewWorldLayout() *WorldLayout {
	w := &WorldLayout{
		Version:     Version,
		Buildings:   []*Building{},
		Decorations: []*Decoration{},
		Npcs:        []*Npc{},
		Tiles:       []Tile{},
	}
	w.seedCounters()
	return w
}

// Normalize repairs a freshly decoded layout: nil slices become empty, stale
// versions are lifted to the current one, out-of-range object fields are
// clamped to their invariants, and the id counters are reseeded. Call it once
// after every load.
func (w *WorldLayout) Normalize() {
	if w.Version < Version {
		w.Version = Version
	}
	if w.Buildings == nil {
		w.Buildings = []*Building{}
	}
	if w.Decorations == nil {
		w.Decorations = []*Decoration{}
	}
	if w.Npcs == nil {
		w.Npcs = []*Npc{}
	}
	if w.Tiles == nil {
		w.Tiles = []Tile{}
	}
	for _, b := range w.Buildings {
		normalizeBase(&b.Placeable, LayerBuilding)
	}
	for _, d := range w.Decorations {
		normalizeBase(&d.Placeable, LayerDecoration)
		if d.FrameCount < 1 {
			d.FrameCount = 1
		}
		if d.FPS < 1 {
			d.FPS = defaultFPS
		}
	}
	for _, n := range w.Npcs {
		normalizeBase(&n.Placeable, LayerNpc)
		if n.FrameCount < 1 {
			n.FrameCount = 1
		}
		if n.FPS < 1 {
			n.FPS = defaultFPS
		}
		if n.Behavior == "" {
			n.Behavior = BehaviorIdle
		}
		if n.Behavior == BehaviorPatrol && len(n.Waypoints) == 0 {
			n.Waypoints = []Waypoint{{X: n.X, Y: n.Y}}
		}
	}
	w.seedCounters()
}

func normalizeBase(p *Placeable, defaultLayer int) {
	if p.Scale <= 0 {
		p.Scale = 1
	}
	if p.Layer == 0 {
		p.Layer = defaultLayer
	}
}

func (w *WorldLayout) seedCounters() {
	w.nextID = [3]int{1, 1, 1}
	for _, b := range w.Buildings {
		w.bumpCounter(KindBuilding, b.ID)
	}
	for _, d := range w.Decorations {
		w.bumpCounter(KindDecoration, d.ID)
	}
	for _, n := range w.Npcs {
		w.bumpCounter(KindNpc, n.ID)
	}
}

func (w *WorldLayout) bumpCounter(k Kind, id string) {
	n, ok := idSuffix(id)
	if ok && n >= w.nextID[k] {
		w.nextID[k] = n + 1
	}
}

// idSuffix parses the numeric tail of ids like "npc_014".
func idSuffix(id string) (int, bool) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (w *WorldLayout) allocID(k Kind) string {
	n := w.nextID[k]
	if n < 1 {
		n = 1
	}
	w.nextID[k] = n + 1
	return fmt.Sprintf("%s_%03d", k, n)
}

// AddBuilding appends a new building anchored top-center at (x, y) and
// returns it.
func (w *WorldLayout) AddBuilding(spriteRef string, x, y float64) *Building {
	b := &Building{Placeable: Placeable{
		ID:        w.allocID(KindBuilding),
		SpriteRef: spriteRef,
		X:         x,
		Y:         y,
		Scale:     1,
		Layer:     LayerBuilding,
	}}
	w.Buildings = append(w.Buildings, b)
	return b
}

// AddDecoration appends a new decoration anchored bottom-center at (x, y).
// spriteW and spriteH feed the spritesheet guess: an image wider than tall is
// assumed to be a horizontal strip of square-ish frames.
func (w *WorldLayout) AddDecoration(spriteRef string, x, y float64, spriteW, spriteH int) *Decoration {
	d := &Decoration{
		Placeable: Placeable{
			ID:        w.allocID(KindDecoration),
			SpriteRef: spriteRef,
			X:         x,
			Y:         y,
			Scale:     1,
			Layer:     LayerDecoration,
		},
		AnimOffset: rand.Float64(),
		FrameCount: 1,
		FPS:        defaultFPS,
	}
	if frames := sheetFrames(spriteW, spriteH); frames > 1 {
		d.Animated = true
		d.FrameCount = frames
	}
	w.Decorations = append(w.Decorations, d)
	return d
}

// AddNpc appends a new idle NPC anchored bottom-center at (x, y). The
// spritesheet guess works as in AddDecoration.
func (w *WorldLayout) AddNpc(spriteRef string, x, y float64, spriteW, spriteH int) *Npc {
	n := &Npc{
		Placeable: Placeable{
			ID:        w.allocID(KindNpc),
			SpriteRef: spriteRef,
			X:         x,
			Y:         y,
			Scale:     1,
			Layer:     LayerNpc,
		},
		Behavior:   BehaviorIdle,
		Speed:      defaultNpcSpeed,
		Facing:     FacingRight,
		FrameCount: 1,
		FPS:        defaultFPS,
	}
	if frames := sheetFrames(spriteW, spriteH); frames > 1 {
		n.Animated = true
		n.FrameCount = frames
	}
	w.Npcs = append(w.Npcs, n)
	return n
}

// sheetFrames guesses the frame count of a horizontal sprite strip from its
// aspect ratio. Anything not wider than tall counts as a single frame; a tall
// strip of wide frames will fool it, which is why the frame count stays
// editable afterwards.
func sheetFrames(w, h int) int {
	if h <= 0 || w <= h {
		return 1
	}
	return w / h
}

// FindObject returns the object with the given id, or nil.
func (w *WorldLayout) FindObject(kind Kind, id string) Object {
	switch kind {
	case KindBuilding:
		for _, b := range w.Buildings {
			if b.ID == id {
				return b
			}
		}
	case KindDecoration:
		for _, d := range w.Decorations {
			if d.ID == id {
				return d
			}
		}
	case KindNpc:
		for _, n := range w.Npcs {
			if n.ID == id {
				return n
			}
		}
	}
	return nil
}

// DeleteObject removes the object with the given id from its kind's
// collection. Waypoints are embedded in their NPC, so nothing cascades.
// Returns false when no such object exists.
func (w *WorldLayout) DeleteObject(kind Kind, id string) bool {
	switch kind {
	case KindBuilding:
		for i, b := range w.Buildings {
			if b.ID == id {
				w.Buildings = append(w.Buildings[:i], w.Buildings[i+1:]...)
				return true
			}
		}
	case KindDecoration:
		for i, d := range w.Decorations {
			if d.ID == id {
				w.Decorations = append(w.Decorations[:i], w.Decorations[i+1:]...)
				return true
			}
		}
	case KindNpc:
		for i, n := range w.Npcs {
			if n.ID == id {
				w.Npcs = append(w.Npcs[:i], w.Npcs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// SetBehavior switches an NPC's movement behavior. Entering patrol with no
// waypoints seeds one at the NPC's position; entering wander with no radius
// seeds defaultRadius. Fields belonging to other behaviors are left dormant
// rather than cleared.
func (w *WorldLayout) SetBehavior(n *Npc, b Behavior, defaultRadius float64) {
	n.Behavior = b
	switch b {
	case BehaviorPatrol:
		if len(n.Waypoints) == 0 {
			n.Waypoints = []Waypoint{{X: n.X, Y: n.Y}}
		}
	case BehaviorWander:
		if n.Radius <= 0 {
			n.Radius = defaultRadius
		}
	}
}
