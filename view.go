package worldedit

import "math"

// Viewport maps window coordinates onto a fixed design resolution. The design
// space scales uniformly to fit the window and is centered, leaving letterbox
// bars when the aspect ratios differ. All editor logic runs in design space;
// only the draw layer converts back.
type Viewport struct {
	DesignWidth  float64
	DesignHeight float64
}

// Transform is the window-to-design mapping for one window size. It is cheap
// to build, so rebuild it with Fit whenever the window may have resized
// instead of caching it across frames.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit computes the transform for the given window size.
func (v Viewport) Fit(winW, winH int) Transform {
	if v.DesignWidth <= 0 || v.DesignHeight <= 0 || winW <= 0 || winH <= 0 {
		return Transform{Scale: 1}
	}
	s := math.Min(float64(winW)/v.DesignWidth, float64(winH)/v.DesignHeight)
	return Transform{
		Scale:   s,
		OffsetX: (float64(winW) - v.DesignWidth*s) / 2,
		OffsetY: (float64(winH) - v.DesignHeight*s) / 2,
	}
}

// ToDesign converts a window-space point into design space.
func (t Transform) ToDesign(sx, sy float64) (float64, float64) {
	return (sx - t.OffsetX) / t.Scale, (sy - t.OffsetY) / t.Scale
}

// ToWindow converts a design-space point back into window space.
func (t Transform) ToWindow(dx, dy float64) (float64, float64) {
	return dx*t.Scale + t.OffsetX, dy*t.Scale + t.OffsetY
}
