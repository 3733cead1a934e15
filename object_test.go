package worldedit

import (
	"encoding/json"
	"testing"
)

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindBuilding, KindDecoration, KindNpc} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("expected %v, got %v", k, got)
		}
	}
	if _, err := ParseKind("ghost"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if s := Kind(99).String(); s != "unknown" {
		t.Fatalf("expected unknown, got %q", s)
	}
}

func TestCloneIsolation(t *testing.T) {
	t.Run("npc_waypoints", func(t *testing.T) {
		n := &Npc{
			Placeable: Placeable{ID: "npc_001", SpriteRef: "npc/guard.png", X: 100, Y: 200, Scale: 1},
			Behavior:  BehaviorPatrol,
			Waypoints: []Waypoint{{X: 100, Y: 200}, {X: 300, Y: 200}},
		}
		c := n.Clone().(*Npc)
		c.Waypoints[0].X = -1
		c.X = 999
		if n.Waypoints[0].X != 100 {
			t.Fatalf("clone shares waypoint storage with source")
		}
		if n.X != 100 {
			t.Fatalf("clone shares base fields with source")
		}
	})

	t.Run("building", func(t *testing.T) {
		b := &Building{Placeable: Placeable{ID: "building_001", X: 10}, Name: "Forge"}
		c := b.Clone().(*Building)
		c.Name = "Inn"
		c.X = 20
		if b.Name != "Forge" || b.X != 10 {
			t.Fatalf("building clone leaked into source: %+v", b)
		}
	})

	t.Run("decoration", func(t *testing.T) {
		d := &Decoration{Placeable: Placeable{ID: "decoration_001"}, AnimOffset: 0.5}
		c := d.Clone().(*Decoration)
		c.AnimOffset = 0.9
		if d.AnimOffset != 0.5 {
			t.Fatalf("decoration clone leaked into source")
		}
	})
}

func TestWaypointJSON(t *testing.T) {
	t.Run("marshal_pair", func(t *testing.T) {
		data, err := json.Marshal(Waypoint{X: 320, Y: 480.5})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != "[320,480.5]" {
			t.Fatalf("expected [320,480.5], got %s", data)
		}
	})

	t.Run("unmarshal_pair", func(t *testing.T) {
		var w Waypoint
		if err := json.Unmarshal([]byte("[12, 34]"), &w); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if w.X != 12 || w.Y != 34 {
			t.Fatalf("expected (12, 34), got (%v, %v)", w.X, w.Y)
		}
	})

	t.Run("reject_object_form", func(t *testing.T) {
		var w Waypoint
		if err := json.Unmarshal([]byte(`{"x":1,"y":2}`), &w); err == nil {
			t.Fatalf("expected error for object-form waypoint")
		}
	})

	t.Run("npc_field", func(t *testing.T) {
		n := &Npc{
			Placeable: Placeable{ID: "npc_001", SpriteRef: "npc/cat.png"},
			Behavior:  BehaviorPatrol,
			Waypoints: []Waypoint{{X: 1, Y: 2}, {X: 3, Y: 4}},
		}
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		var back Npc
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if len(back.Waypoints) != 2 || back.Waypoints[1] != (Waypoint{X: 3, Y: 4}) {
			t.Fatalf("waypoints did not survive the round trip: %+v", back.Waypoints)
		}
	})
}

func TestPatrolSegments(t *testing.T) {
	wps := []Waypoint{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}

	cases := []struct {
		name string
		npc  *Npc
		want int
	}{
		{"nil_npc", nil, 0},
		{"idle_with_waypoints", &Npc{Behavior: BehaviorIdle, Waypoints: wps}, 0},
		{"patrol_no_waypoints", &Npc{Behavior: BehaviorPatrol}, 0},
		{"patrol_single_waypoint", &Npc{Behavior: BehaviorPatrol, Waypoints: wps[:1]}, 0},
		{"patrol_open", &Npc{Behavior: BehaviorPatrol, Waypoints: wps}, 2},
		{"patrol_loop", &Npc{Behavior: BehaviorPatrol, Waypoints: wps, Loop: true}, 3},
		{"patrol_pair_loop", &Npc{Behavior: BehaviorPatrol, Waypoints: wps[:2], Loop: true}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			segs := PatrolSegments(c.npc)
			if len(segs) != c.want {
				t.Fatalf("expected %d segments, got %d", c.want, len(segs))
			}
		})
	}

	t.Run("loop_closes_route", func(t *testing.T) {
		n := &Npc{Behavior: BehaviorPatrol, Waypoints: wps, Loop: true}
		segs := PatrolSegments(n)
		last := segs[len(segs)-1]
		if last.From != wps[2] || last.To != wps[0] {
			t.Fatalf("expected closing segment %v -> %v, got %v -> %v", wps[2], wps[0], last.From, last.To)
		}
	})

	t.Run("segments_are_consecutive", func(t *testing.T) {
		n := &Npc{Behavior: BehaviorPatrol, Waypoints: wps}
		segs := PatrolSegments(n)
		for i, s := range segs {
			if s.From != wps[i] || s.To != wps[i+1] {
				t.Fatalf("segment %d is %v -> %v, expected %v -> %v", i, s.From, s.To, wps[i], wps[i+1])
			}
		}
	})
}
