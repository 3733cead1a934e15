package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Image returns the drawable sprite for ref, decoding and caching it on
// first use. The cache lives until the next Rescan.
func (i *Index) Image(ref string) (*ebiten.Image, error) {
	if img, ok := i.images[ref]; ok {
		return img, nil
	}
	f, err := os.Open(filepath.Join(i.root, filepath.FromSlash(ref)))
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", ref, err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", ref, err)
	}
	img := ebiten.NewImageFromImage(src)
	i.images[ref] = img
	i.sizes[ref] = src.Bounds().Size()
	return img, nil
}
