// Package worldedit implements the in-game scene editor core: the world
// layout model, the edit-mode tool state machine, hit-testing, clipboard and
// persistence. Rendering and input collection live in cmd/editmode; this
// package is engine-free.
package worldedit

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which collection a placeable object belongs to.
type Kind int

const (
	KindBuilding Kind = iota
	KindDecoration
	KindNpc
)

func (k Kind) String() string {
	switch k {
	case KindBuilding:
		return "building"
	case KindDecoration:
		return "decoration"
	case KindNpc:
		return "npc"
	default:
		return "unknown"
	}
}

// ParseKind maps the serialized kind tag back to its enum value.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "building":
		return KindBuilding, nil
	case "decoration":
		return KindDecoration, nil
	case "npc":
		return KindNpc, nil
	default:
		return 0, fmt.Errorf("unknown object kind %q", s)
	}
}

// Behavior is an NPC's movement mode.
type Behavior string

const (
	BehaviorIdle   Behavior = "idle"
	BehaviorPatrol Behavior = "patrol"
	BehaviorWander Behavior = "wander"
)

// Facing is the idle direction an NPC looks in.
type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Placeable carries the fields shared by every object kind. The meaning of
// (X, Y) depends on the kind: buildings anchor at the sprite's top-center,
// decorations and NPCs at their bottom-center (the "feet").
type Placeable struct {
	ID        string  `json:"id"`
	SpriteRef string  `json:"sprite"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
	Layer     int     `json:"layer"`
}

// Object is implemented by the three placeable kinds stored in a WorldLayout.
type Object interface {
	Kind() Kind
	Base() *Placeable
	Clone() Object
}

// Building is a clickable town structure anchored at its top-center.
type Building struct {
	Placeable
	Name        string `json:"name,omitempty"`
	Clickable   bool   `json:"clickable"`
	MenuTarget  string `json:"menuTarget,omitempty"`
	Description string `json:"description,omitempty"`
}

func (b *Building) Kind() Kind       { return KindBuilding }
func (b *Building) Base() *Placeable { return &b.Placeable }

func (b *Building) Clone() Object {
	c := *b
	return &c
}

// Decoration is a scenery object anchored at its bottom-center. Animated
// decorations play a horizontal sprite strip; AnimOffset desynchronizes
// copies of the same strip.
type Decoration struct {
	Placeable
	AnimOffset float64 `json:"animOffset"`
	Animated   bool    `json:"animated"`
	FrameCount int     `json:"frameCount"`
	FPS        int     `json:"fps"`
}

func (d *Decoration) Kind() Kind       { return KindDecoration }
func (d *Decoration) Base() *Placeable { return &d.Placeable }

func (d *Decoration) Clone() Object {
	c := *d
	return &c
}

// Npc is a character anchored at its bottom-center. Behavior-specific fields
// stay in place when the behavior switches away, so switching back restores
// the previous settings.
type Npc struct {
	Placeable
	Behavior   Behavior   `json:"behavior"`
	Speed      float64    `json:"speed"`
	Animated   bool       `json:"animated"`
	FrameCount int        `json:"frameCount"`
	FPS        int        `json:"fps"`
	Facing     Facing     `json:"facing,omitempty"`
	Waypoints  []Waypoint `json:"waypoints,omitempty"`
	Loop       bool       `json:"loop,omitempty"`
	Radius     float64    `json:"wanderRadius,omitempty"`
}

func (n *Npc) Kind() Kind       { return KindNpc }
func (n *Npc) Base() *Placeable { return &n.Placeable }

func (n *Npc) Clone() Object {
	c := *n
	if n.Waypoints != nil {
		c.Waypoints = make([]Waypoint, len(n.Waypoints))
		copy(c.Waypoints, n.Waypoints)
	}
	return &c
}

// Waypoint is one stop on a patrol route, stored in design space.
type Waypoint struct {
	X float64
	Y float64
}

// MarshalJSON writes the waypoint as the two-element [x, y] array the
// renderer consumes.
func (w Waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{w.X, w.Y})
}

func (w *Waypoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("unmarshal waypoint: %w", err)
	}
	w.X, w.Y = pair[0], pair[1]
	return nil
}

// Segment is one straight piece of a patrol path.
type Segment struct {
	From Waypoint
	To   Waypoint
}

// PatrolSegments returns the segments between consecutive waypoints, plus a
// closing segment from the last waypoint back to the first when the route
// loops. Non-patrol NPCs and routes with fewer than two waypoints have none.
func PatrolSegments(n *Npc) []Segment {
	if n == nil || n.Behavior != BehaviorPatrol || len(n.Waypoints) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(n.Waypoints))
	for i := 0; i < len(n.Waypoints)-1; i++ {
		segs = append(segs, Segment{From: n.Waypoints[i], To: n.Waypoints[i+1]})
	}
	if n.Loop {
		segs = append(segs, Segment{From: n.Waypoints[len(n.Waypoints)-1], To: n.Waypoints[0]})
	}
	return segs
}
