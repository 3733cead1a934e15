// Package assets catalogs the on-disk sprite directory for the editor: a
// navigable folder tree, sprite dimensions read from image headers, and a
// lazy drawable cache.
package assets

import (
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// Entry is one node of the scanned sprite tree. Paths are slash-separated
// and relative to the scan root, so they can be stored in layouts directly.
// Children hold folders first, then files, both alphabetically. A tree is
// never mutated after Scan returns; a rescan builds a new one.
type Entry struct {
	Name     string
	Path     string
	IsDir    bool
	Children []*Entry
}

// Scan reads the sprite directory into an immutable tree. Hidden entries and
// non-image files are skipped.
func Scan(root string) (*Entry, error) {
	node, err := scanDir(root, "")
	if err != nil {
		return nil, err
	}
	node.Name = filepath.Base(root)
	return node, nil
}

func scanDir(root, rel string) (*Entry, error) {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("scan sprites %s: %w", abs, err)
	}
	node := &Entry{Name: path.Base(rel), Path: rel, IsDir: true}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		childRel := path.Join(rel, name)
		if e.IsDir() {
			child, err := scanDir(root, childRel)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
			continue
		}
		if !isImageFile(name) {
			continue
		}
		node.Children = append(node.Children, &Entry{Name: name, Path: childRel})
	}
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	return node, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

// Index is the editor's view of the sprite directory. Dimensions come from
// image headers alone, so the index works without a graphics context; full
// decodes happen lazily in Image.
type Index struct {
	root   string
	tree   *Entry
	sizes  map[string]image.Point
	images map[string]*ebiten.Image
}

// NewIndex scans root and returns the catalog.
func NewIndex(root string) (*Index, error) {
	idx := &Index{root: root}
	if err := idx.Rescan(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Rescan rebuilds the tree after the directory changed. Cached sizes and
// images are dropped so edited files reload.
func (i *Index) Rescan() error {
	tree, err := Scan(i.root)
	if err != nil {
		return err
	}
	i.tree = tree
	i.sizes = map[string]image.Point{}
	i.images = map[string]*ebiten.Image{}
	return nil
}

// Root returns the directory the index was built from.
func (i *Index) Root() string { return i.root }

// Tree returns the current catalog root.
func (i *Index) Tree() *Entry { return i.tree }

// Leaves returns every file ref in the subtree, in display order.
func (e *Entry) Leaves() []string {
	if e == nil {
		return nil
	}
	if !e.IsDir {
		return []string{e.Path}
	}
	var refs []string
	for _, c := range e.Children {
		refs = append(refs, c.Leaves()...)
	}
	return refs
}

// SpriteSize reports a sprite's pixel dimensions by decoding only its
// header. Unknown or undecodable refs report ok=false; failures are cached
// so a broken ref is probed once per rescan.
func (i *Index) SpriteSize(ref string) (int, int, bool) {
	if p, ok := i.sizes[ref]; ok {
		return p.X, p.Y, p != image.Point{}
	}
	f, err := os.Open(filepath.Join(i.root, filepath.FromSlash(ref)))
	if err != nil {
		i.sizes[ref] = image.Point{}
		return 0, 0, false
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		i.sizes[ref] = image.Point{}
		return 0, 0, false
	}
	i.sizes[ref] = image.Point{X: cfg.Width, Y: cfg.Height}
	return cfg.Width, cfg.Height, true
}
