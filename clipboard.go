package worldedit

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// Clipboard holds at most one copied object. Copying replaces the previous
// slot contents; the slot keeps its own deep copy so later edits to the
// source never leak into a paste.
type Clipboard struct {
	obj Object
}

// Copy stores a deep copy of the object in the slot.
func (c *Clipboard) Copy(o Object) {
	if o == nil {
		return
	}
	c.obj = o.Clone()
}

// Empty reports whether nothing has been copied.
func (c *Clipboard) Empty() bool { return c.obj == nil }

// Paste instantiates the slot contents into the layout at (x, y) with a fresh
// id. Patrol waypoints shift by the paste delta so the route keeps its shape;
// pasted decorations get a new animation phase so copies do not move in
// lockstep with the source. Returns nil when the clipboard is empty.
func (c *Clipboard) Paste(w *WorldLayout, x, y float64) Object {
	if c.obj == nil {
		return nil
	}
	o := c.obj.Clone()
	p := o.Base()
	dx := x - p.X
	dy := y - p.Y
	p.ID = w.allocID(o.Kind())
	p.X = x
	p.Y = y
	switch t := o.(type) {
	case *Building:
		w.Buildings = append(w.Buildings, t)
	case *Decoration:
		t.AnimOffset = rand.Float64()
		w.Decorations = append(w.Decorations, t)
	case *Npc:
		for i := range t.Waypoints {
			t.Waypoints[i].X += dx
			t.Waypoints[i].Y += dy
		}
		w.Npcs = append(w.Npcs, t)
	}
	return o
}

// Encode serializes the slot for transport outside the process, for example
// to the system clipboard.
func (c *Clipboard) Encode() ([]byte, error) {
	return EncodeSlot(c.obj)
}

// Import replaces the slot with an object decoded from an EncodeSlot
// envelope.
func (c *Clipboard) Import(data []byte) error {
	o, err := DecodeSlot(data)
	if err != nil {
		return err
	}
	c.obj = o
	return nil
}

// slotEnvelope tags the serialized object with its kind so the receiver can
// pick the right concrete type.
type slotEnvelope struct {
	Kind   string          `json:"kind"`
	Object json.RawMessage `json:"object"`
}

// EncodeSlot serializes an object with its kind tag.
func EncodeSlot(o Object) ([]byte, error) {
	if o == nil {
		return nil, fmt.Errorf("encode clipboard: empty slot")
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode clipboard: %w", err)
	}
	return json.Marshal(slotEnvelope{Kind: o.Kind().String(), Object: raw})
}

// DecodeSlot parses an envelope produced by EncodeSlot.
func DecodeSlot(data []byte) (Object, error) {
	var env slotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode clipboard: %w", err)
	}
	k, err := ParseKind(env.Kind)
	if err != nil {
		return nil, fmt.Errorf("decode clipboard: %w", err)
	}
	var o Object
	switch k {
	case KindBuilding:
		o = &Building{}
	case KindDecoration:
		o = &Decoration{}
	case KindNpc:
		o = &Npc{}
	}
	if err := json.Unmarshal(env.Object, o); err != nil {
		return nil, fmt.Errorf("decode clipboard %s: %w", env.Kind, err)
	}
	return o, nil
}
