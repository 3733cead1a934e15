package worldedit

import (
	"math"

	"github.com/jakecoffman/cp"
)

// SpriteSizer reports pixel dimensions for sprite refs. The asset index
// implements it; anything it cannot measure falls back to a fixed hit box so
// objects with broken refs stay selectable.
type SpriteSizer interface {
	SpriteSize(ref string) (w, h int, ok bool)
}

// Side of the substitute hit box used when a sprite cannot be measured.
const fallbackBoxSize = 64

const defaultWaypointRadius = 15

// hitOrder is the scan priority. NPCs come first, then decorations, then
// buildings, so small foreground entities stay clickable on top of the large
// background ones they usually overlap. Within a kind the collection order
// decides; the first containing box wins.
var hitOrder = [...]Kind{KindNpc, KindDecoration, KindBuilding}

// HitTester resolves design-space points against a layout.
type HitTester struct {
	Layout *WorldLayout
	Sizes  SpriteSizer
	// WaypointRadius is the Chebyshev pick distance for patrol waypoints.
	// Zero means the default of 15 design units.
	WaypointRadius float64
}

// ObjectAt returns the topmost object whose bounding box contains the point,
// or nil.
func (h HitTester) ObjectAt(x, y float64) Object {
	pt := cp.Vector{X: x, Y: y}
	for _, k := range hitOrder {
		switch k {
		case KindNpc:
			for _, n := range h.Layout.Npcs {
				if h.bounds(n).ContainsVect(pt) {
					return n
				}
			}
		case KindDecoration:
			for _, d := range h.Layout.Decorations {
				if h.bounds(d).ContainsVect(pt) {
					return d
				}
			}
		case KindBuilding:
			for _, b := range h.Layout.Buildings {
				if h.bounds(b).ContainsVect(pt) {
					return b
				}
			}
		}
	}
	return nil
}

// WaypointAt returns the index of the first waypoint of n within the pick
// radius of the point, measured as Chebyshev distance, or -1. Only patrol
// NPCs carry waypoints.
func (h HitTester) WaypointAt(x, y float64, n *Npc) int {
	if n == nil || n.Behavior != BehaviorPatrol {
		return -1
	}
	r := h.WaypointRadius
	if r <= 0 {
		r = defaultWaypointRadius
	}
	for i, wp := range n.Waypoints {
		if math.Max(math.Abs(wp.X-x), math.Abs(wp.Y-y)) <= r {
			return i
		}
	}
	return -1
}

func (h HitTester) bounds(o Object) cp.BB {
	if h.Sizes != nil {
		if w, hh, ok := h.Sizes.SpriteSize(o.Base().SpriteRef); ok {
			return Bounds(o, w, hh)
		}
	}
	return FallbackBounds(o)
}

// Bounds returns the object's design-space bounding box for the given sprite
// dimensions. Buildings hang below their top-center anchor; decorations and
// NPCs stand above their bottom-center anchor. Animated strips count one
// frame of width, not the whole sheet. The box fields follow the convention
// used for screen space: B is the top edge, T the bottom.
func Bounds(o Object, spriteW, spriteH int) cp.BB {
	p := o.Base()
	w := float64(spriteW)
	h := float64(spriteH)
	if frames := frameCountOf(o); frames > 1 {
		w /= float64(frames)
	}
	w *= p.Scale
	h *= p.Scale
	if o.Kind() == KindBuilding {
		return cp.BB{L: p.X - w/2, B: p.Y, R: p.X + w/2, T: p.Y + h}
	}
	return cp.BB{L: p.X - w/2, B: p.Y - h, R: p.X + w/2, T: p.Y}
}

// FallbackBounds is the fixed square used when sprite dimensions are
// unavailable. Scale is deliberately ignored so broken refs keep a
// predictable clickable size.
func FallbackBounds(o Object) cp.BB {
	p := o.Base()
	const half = float64(fallbackBoxSize) / 2
	if o.Kind() == KindBuilding {
		return cp.BB{L: p.X - half, B: p.Y, R: p.X + half, T: p.Y + fallbackBoxSize}
	}
	return cp.BB{L: p.X - half, B: p.Y - fallbackBoxSize, R: p.X + half, T: p.Y}
}

func frameCountOf(o Object) int {
	switch t := o.(type) {
	case *Decoration:
		if t.Animated && t.FrameCount > 1 {
			return t.FrameCount
		}
	case *Npc:
		if t.Animated && t.FrameCount > 1 {
			return t.FrameCount
		}
	}
	return 1
}
