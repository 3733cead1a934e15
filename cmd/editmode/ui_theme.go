package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditModeTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.White,
				Selected:            color.RGBA{255, 220, 120, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{70, 76, 92, 255},
				SelectedBackground:  color.RGBA{58, 64, 80, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{34, 38, 46, 255}),
				Mask: solidNineSlice(color.RGBA{34, 38, 46, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{28, 31, 38, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{66, 72, 88, 255}),
				Hover:   solidNineSlice(color.RGBA{84, 92, 110, 255}),
				Pressed: solidNineSlice(color.RGBA{48, 53, 66, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.White,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.RGBA{66, 72, 88, 255}),
				Hover: solidNineSlice(color.RGBA{84, 92, 110, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{130, 138, 156, 255}),
				Hover:   solidNineSlice(color.RGBA{160, 168, 186, 255}),
				Pressed: solidNineSlice(color.RGBA{110, 118, 136, 255}),
			},
		},
	}
}
