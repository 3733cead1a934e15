package worldedit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStoreLoadMissing(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "world_layout.json")}
	w, fresh, err := s.Load()
	if err != nil {
		t.Fatalf("missing layout should not error: %v", err)
	}
	if !fresh {
		t.Fatalf("missing layout should report fresh")
	}
	if w.Version != Version {
		t.Fatalf("expected version %d, got %d", Version, w.Version)
	}
	if w.Buildings == nil || w.Decorations == nil || w.Npcs == nil || w.Tiles == nil {
		t.Fatalf("default layout must have non-nil slices")
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatalf("load alone must not create the file")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "world_layout.json")}

	w := NewWorldLayout()
	b := w.AddBuilding("town/forge.png", 512, 288)
	b.Name = "Forge"
	b.Clickable = true
	b.MenuTarget = "blacksmith"
	n := w.AddNpc("npc/guard.png", 800, 416, 256, 64)
	w.SetBehavior(n, BehaviorPatrol, 200)
	n.Waypoints = append(n.Waypoints, Waypoint{X: 900, Y: 416})
	n.Loop = true
	w.AddDecoration("deco/torch.png", 600, 300, 128, 32)
	w.PaintTile(100, 110, "tiles/ground.png", 0, 0, 32)

	if err := s.Save(w); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if w.Metadata.ModifiedBy != "EditMode" || w.Metadata.LastModified.IsZero() {
		t.Fatalf("save should stamp metadata, got %+v", w.Metadata)
	}

	got, fresh, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if fresh {
		t.Fatalf("saved layout should not report fresh")
	}
	if len(got.Buildings) != 1 || len(got.Decorations) != 1 || len(got.Npcs) != 1 || len(got.Tiles) != 1 {
		t.Fatalf("collections did not survive: %d/%d/%d/%d",
			len(got.Buildings), len(got.Decorations), len(got.Npcs), len(got.Tiles))
	}
	gb := got.Buildings[0]
	if gb.ID != b.ID || gb.Name != "Forge" || !gb.Clickable || gb.MenuTarget != "blacksmith" {
		t.Fatalf("building fields did not survive: %+v", gb)
	}
	gn := got.Npcs[0]
	if gn.Behavior != BehaviorPatrol || !gn.Loop || len(gn.Waypoints) != 2 {
		t.Fatalf("npc fields did not survive: %+v", gn)
	}
	if !gn.Animated || gn.FrameCount != 4 {
		t.Fatalf("spritesheet guess did not survive: animated=%v frames=%d", gn.Animated, gn.FrameCount)
	}
	if got.Tiles[0] != (Tile{X: 96, Y: 96, TilesetPath: "tiles/ground.png", TileSize: 32}) {
		t.Fatalf("tile did not survive: %+v", got.Tiles[0])
	}

	// New ids continue after the loaded ones.
	if id := got.AddBuilding("town/inn.png", 0, 0).ID; id != "building_002" {
		t.Fatalf("expected building_002 after reload, got %s", id)
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world_layout.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := &Store{Path: path}
	w, fresh, err := s.Load()
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !fresh {
		t.Fatalf("corrupt layout should report fresh so the next save recreates it")
	}
	if w == nil || w.Version != Version || len(w.Buildings) != 0 {
		t.Fatalf("expected an empty default layout, got %+v", w)
	}
}

func TestStoreLoadLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world_layout.json")
	legacy := `{"version": 1, "buildings": [{"id": "building_004", "sprite": "town/forge.png", "x": 10, "y": 20}]}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	s := &Store{Path: path}
	w, fresh, err := s.Load()
	if err != nil {
		t.Fatalf("legacy layout should load: %v", err)
	}
	if fresh {
		t.Fatalf("legacy layout is still a real document")
	}
	if w.Version != Version {
		t.Fatalf("expected version lifted to %d, got %d", Version, w.Version)
	}
	if w.Npcs == nil || w.Tiles == nil {
		t.Fatalf("missing collections should come back empty, not nil")
	}
	b := w.Buildings[0]
	if b.Scale != 1 || b.Layer != LayerBuilding {
		t.Fatalf("legacy building not normalized: %+v", b)
	}
	if id := w.AddBuilding("town/inn.png", 0, 0).ID; id != "building_005" {
		t.Fatalf("counter should continue past loaded ids, got %s", id)
	}
}

func TestStoreBackupRotation(t *testing.T) {
	dir := t.TempDir()
	s := &Store{Path: filepath.Join(dir, "world_layout.json"), Backups: 2}
	w := NewWorldLayout()

	for i := 0; i < 5; i++ {
		w.AddBuilding("town/forge.png", float64(i)*100, 0)
		if err := s.Save(w); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		// Backup names carry millisecond stamps; keep them distinct.
		time.Sleep(2 * time.Millisecond)
	}

	backups, err := filepath.Glob(filepath.Join(dir, "backups", "world_layout-*.json.zst"))
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected rotation pruned to 2 backups, got %d", len(backups))
	}

	// The newest backup holds the state before the final save: 4 buildings.
	data, err := ReadBackup(backups[len(backups)-1])
	if err != nil {
		t.Fatalf("read backup failed: %v", err)
	}
	var snap WorldLayout
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("backup is not a layout document: %v", err)
	}
	if len(snap.Buildings) != 4 {
		t.Fatalf("expected 4 buildings in newest backup, got %d", len(snap.Buildings))
	}
}

func TestStoreBackupsDisabled(t *testing.T) {
	dir := t.TempDir()
	s := &Store{Path: filepath.Join(dir, "world_layout.json")}
	w := NewWorldLayout()
	for i := 0; i < 3; i++ {
		if err := s.Save(w); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "backups")); !os.IsNotExist(err) {
		t.Fatalf("backups directory should not exist when disabled")
	}
}

func TestStoreSaveError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the create fail.
	path := filepath.Join(dir, "world_layout.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	s := &Store{Path: path}
	if err := s.Save(NewWorldLayout()); err == nil {
		t.Fatalf("expected save into a directory to fail")
	}
}

func TestSavedFileIsIndented(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "world_layout.json")}
	if err := s.Save(NewWorldLayout()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"version\": 2") {
		t.Fatalf("expected two-space indented document, got %q", string(data[:min(len(data), 80)]))
	}
}
