package worldedit

import "testing"

// stubSizer maps sprite refs to fixed dimensions.
type stubSizer map[string][2]int

func (s stubSizer) SpriteSize(ref string) (int, int, bool) {
	d, ok := s[ref]
	return d[0], d[1], ok
}

func TestObjectAtPriority(t *testing.T) {
	sizes := stubSizer{
		"town/forge.png": {200, 200},
		"deco/tree.png":  {100, 100},
		"npc/guard.png":  {40, 60},
	}
	// All three overlap the point (500, 300). The building hangs below its
	// top-center anchor, the other two stand above their bottom-center one.
	newLayout := func() *WorldLayout {
		w := NewWorldLayout()
		w.AddBuilding("town/forge.png", 500, 200)
		w.AddDecoration("deco/tree.png", 500, 350, 100, 100)
		w.AddNpc("npc/guard.png", 500, 320, 40, 60)
		return w
	}

	w := newLayout()
	h := HitTester{Layout: w, Sizes: sizes}

	got := h.ObjectAt(500, 300)
	if got == nil || got.Kind() != KindNpc {
		t.Fatalf("expected the npc on top, got %v", got)
	}

	w.Npcs = nil
	if got := h.ObjectAt(500, 300); got == nil || got.Kind() != KindDecoration {
		t.Fatalf("expected the decoration under the npc, got %v", got)
	}

	w.Decorations = nil
	if got := h.ObjectAt(500, 300); got == nil || got.Kind() != KindBuilding {
		t.Fatalf("expected the building at the bottom, got %v", got)
	}

	w.Buildings = nil
	if got := h.ObjectAt(500, 300); got != nil {
		t.Fatalf("expected nil on empty space, got %v", got)
	}
}

func TestObjectAtFirstMatchWithinKind(t *testing.T) {
	sizes := stubSizer{"deco/tree.png": {100, 100}}
	w := NewWorldLayout()
	first := w.AddDecoration("deco/tree.png", 500, 350, 100, 100)
	w.AddDecoration("deco/tree.png", 510, 350, 100, 100)

	h := HitTester{Layout: w, Sizes: sizes}
	got := h.ObjectAt(505, 320)
	if got == nil || got.Base().ID != first.ID {
		t.Fatalf("expected the first overlapping decoration, got %v", got)
	}
}

func TestBoundsAnchors(t *testing.T) {
	cases := []struct {
		name        string
		obj         Object
		w, h        int
		l, b, r, tp float64
	}{
		{
			name: "building_hangs_below_top_center",
			obj:  &Building{Placeable: Placeable{X: 100, Y: 100, Scale: 1}},
			w:    50, h: 80,
			l: 75, b: 100, r: 125, tp: 180,
		},
		{
			name: "decoration_stands_above_bottom_center",
			obj:  &Decoration{Placeable: Placeable{X: 100, Y: 100, Scale: 1}},
			w:    40, h: 60,
			l: 80, b: 40, r: 120, tp: 100,
		},
		{
			name: "npc_scale_doubles_box",
			obj:  &Npc{Placeable: Placeable{X: 100, Y: 100, Scale: 2}},
			w:    40, h: 60,
			l: 60, b: -20, r: 140, tp: 100,
		},
		{
			name: "animated_strip_counts_one_frame",
			obj: &Npc{
				Placeable:  Placeable{X: 100, Y: 100, Scale: 1},
				Animated:   true,
				FrameCount: 4,
			},
			w: 256, h: 64,
			l: 68, b: 36, r: 132, tp: 100,
		},
		{
			name: "inanimate_sheet_uses_full_width",
			obj: &Decoration{
				Placeable:  Placeable{X: 100, Y: 100, Scale: 1},
				FrameCount: 4,
			},
			w: 256, h: 64,
			l: -28, b: 36, r: 228, tp: 100,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bb := Bounds(c.obj, c.w, c.h)
			if bb.L != c.l || bb.B != c.b || bb.R != c.r || bb.T != c.tp {
				t.Fatalf("expected box (%v, %v, %v, %v), got (%v, %v, %v, %v)",
					c.l, c.b, c.r, c.tp, bb.L, bb.B, bb.R, bb.T)
			}
		})
	}
}

func TestFallbackBounds(t *testing.T) {
	w := NewWorldLayout()
	d := w.AddDecoration("deco/broken.png", 0, 0, 0, 0)
	d.Scale = 3 // the fallback box ignores scale

	h := HitTester{Layout: w, Sizes: stubSizer{}}
	if got := h.ObjectAt(30, -30); got == nil {
		t.Fatalf("expected a hit inside the fallback box")
	}
	if got := h.ObjectAt(40, -30); got != nil {
		t.Fatalf("expected a miss outside the fallback box, got %v", got)
	}
	if got := h.ObjectAt(0, 10); got != nil {
		t.Fatalf("decoration box should not extend below its anchor")
	}
}

func TestWaypointAt(t *testing.T) {
	patrol := &Npc{
		Placeable: Placeable{ID: "npc_001", X: 100, Y: 100},
		Behavior:  BehaviorPatrol,
		Waypoints: []Waypoint{{X: 100, Y: 100}, {X: 300, Y: 100}},
	}

	cases := []struct {
		name string
		x, y float64
		npc  *Npc
		r    float64
		want int
	}{
		{"dead_center", 100, 100, patrol, 0, 0},
		{"inside_default_radius", 110, 114, patrol, 0, 0},
		{"on_radius_edge", 115, 100, patrol, 0, 0},
		{"just_outside", 116, 100, patrol, 0, -1},
		{"diagonal_chebyshev", 114, 114, patrol, 0, 0},
		{"second_waypoint", 305, 95, patrol, 0, 1},
		{"custom_radius", 130, 100, patrol, 30, 0},
		{"nil_npc", 100, 100, nil, 0, -1},
		{"idle_npc", 100, 100, &Npc{Waypoints: []Waypoint{{X: 100, Y: 100}}}, 0, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := HitTester{Layout: NewWorldLayout(), WaypointRadius: c.r}
			if got := h.WaypointAt(c.x, c.y, c.npc); got != c.want {
				t.Fatalf("expected index %d, got %d", c.want, got)
			}
		})
	}
}
