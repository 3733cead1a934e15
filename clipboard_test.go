package worldedit

import (
	"strings"
	"testing"
)

func TestClipboardCopyIsDeep(t *testing.T) {
	w := NewWorldLayout()
	n := w.AddNpc("npc/guard.png", 100, 100, 32, 32)
	w.SetBehavior(n, BehaviorPatrol, 200)
	n.Waypoints = append(n.Waypoints, Waypoint{X: 200, Y: 100})

	var c Clipboard
	if !c.Empty() {
		t.Fatalf("fresh clipboard should be empty")
	}
	c.Copy(n)
	if c.Empty() {
		t.Fatalf("clipboard should hold the copy")
	}

	// Mangle the source after copying; the paste must not see it.
	n.Waypoints[0] = Waypoint{X: -500, Y: -500}
	n.X = -500

	got := c.Paste(w, 100, 100).(*Npc)
	if got.Waypoints[0] != (Waypoint{X: 100, Y: 100}) {
		t.Fatalf("paste sees post-copy edits to the source: %+v", got.Waypoints)
	}
}

func TestClipboardPaste(t *testing.T) {
	t.Run("fresh_id_and_position", func(t *testing.T) {
		w := NewWorldLayout()
		b := w.AddBuilding("town/forge.png", 100, 200)

		var c Clipboard
		c.Copy(b)
		got := c.Paste(w, 500, 600)
		if got.Base().ID != "building_002" {
			t.Fatalf("expected building_002, got %s", got.Base().ID)
		}
		if got.Base().X != 500 || got.Base().Y != 600 {
			t.Fatalf("expected paste at (500, 600), got (%v, %v)", got.Base().X, got.Base().Y)
		}
		if len(w.Buildings) != 2 {
			t.Fatalf("expected 2 buildings, got %d", len(w.Buildings))
		}
	})

	t.Run("waypoints_translate_with_npc", func(t *testing.T) {
		w := NewWorldLayout()
		n := w.AddNpc("npc/guard.png", 100, 100, 32, 32)
		w.SetBehavior(n, BehaviorPatrol, 200)
		n.Waypoints = append(n.Waypoints, Waypoint{X: 300, Y: 150})

		var c Clipboard
		c.Copy(n)
		got := c.Paste(w, 1100, 600).(*Npc)
		want := []Waypoint{{X: 1100, Y: 600}, {X: 1300, Y: 650}}
		if len(got.Waypoints) != 2 || got.Waypoints[0] != want[0] || got.Waypoints[1] != want[1] {
			t.Fatalf("expected translated route %v, got %v", want, got.Waypoints)
		}
	})

	t.Run("decoration_gets_new_phase", func(t *testing.T) {
		w := NewWorldLayout()
		d := w.AddDecoration("deco/torch.png", 100, 100, 128, 32)
		d.AnimOffset = 5 // out of the generator's range, so any reroll shows

		var c Clipboard
		c.Copy(d)
		got := c.Paste(w, 200, 200).(*Decoration)
		if got.AnimOffset < 0 || got.AnimOffset >= 1 {
			t.Fatalf("expected rerolled offset in [0, 1), got %v", got.AnimOffset)
		}
	})

	t.Run("empty_clipboard_pastes_nothing", func(t *testing.T) {
		w := NewWorldLayout()
		var c Clipboard
		if got := c.Paste(w, 100, 100); got != nil {
			t.Fatalf("expected nil paste, got %v", got)
		}
		if len(w.Buildings)+len(w.Decorations)+len(w.Npcs) != 0 {
			t.Fatalf("empty paste must not touch the layout")
		}
	})

	t.Run("repeated_paste_allocates_new_ids", func(t *testing.T) {
		w := NewWorldLayout()
		b := w.AddBuilding("town/forge.png", 0, 0)

		var c Clipboard
		c.Copy(b)
		p1 := c.Paste(w, 100, 0)
		p2 := c.Paste(w, 200, 0)
		if p1.Base().ID == p2.Base().ID {
			t.Fatalf("pastes share id %s", p1.Base().ID)
		}
	})
}

func TestClipboardEnvelope(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		n := &Npc{
			Placeable: Placeable{ID: "npc_004", SpriteRef: "npc/cat.png", X: 10, Y: 20, Scale: 1},
			Behavior:  BehaviorPatrol,
			Waypoints: []Waypoint{{X: 10, Y: 20}, {X: 50, Y: 20}},
			Loop:      true,
		}
		data, err := EncodeSlot(n)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		got, err := DecodeSlot(data)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		back, ok := got.(*Npc)
		if !ok {
			t.Fatalf("expected *Npc, got %T", got)
		}
		if back.ID != n.ID || !back.Loop || len(back.Waypoints) != 2 {
			t.Fatalf("npc did not survive the envelope: %+v", back)
		}
	})

	t.Run("empty_slot_errors", func(t *testing.T) {
		var c Clipboard
		if _, err := c.Encode(); err == nil {
			t.Fatalf("expected error encoding an empty slot")
		}
	})

	t.Run("unknown_kind_errors", func(t *testing.T) {
		if _, err := DecodeSlot([]byte(`{"kind":"portal","object":{}}`)); err == nil {
			t.Fatalf("expected error for unknown kind")
		} else if !strings.Contains(err.Error(), "portal") {
			t.Fatalf("error should name the kind, got %v", err)
		}
	})

	t.Run("import_then_paste", func(t *testing.T) {
		data, err := EncodeSlot(&Building{Placeable: Placeable{ID: "building_009", SpriteRef: "town/inn.png", X: 1, Y: 2, Scale: 1}})
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		w := NewWorldLayout()
		var c Clipboard
		if err := c.Import(data); err != nil {
			t.Fatalf("import failed: %v", err)
		}
		got := c.Paste(w, 300, 400)
		if got == nil || got.Kind() != KindBuilding {
			t.Fatalf("expected a building paste, got %v", got)
		}
		if got.Base().ID != "building_001" {
			t.Fatalf("imported paste should get a local id, got %s", got.Base().ID)
		}
	})
}
