package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldedit"
	"github.com/milk9111/worldedit/assets"
)

func buildTilePicker(s *worldedit.Session, idx *assets.Index, theme *widget.Theme, fontFace *text.Face, refs []string) *TilePickerUI {
	picker := &TilePickerUI{}

	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide
	picker.Overlay = overlay

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 380),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{34, 38, 46, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	overlay.AddChild(dialog)

	dialog.AddChild(newPanelLabel("Pick a tile", fontFace))

	listHolder := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			),
		),
	)
	dialog.AddChild(listHolder)
	picker.listHolder = listHolder

	picker.makeList = func(refs []string) *widget.List {
		entries := make([]any, 0, len(refs))
		for _, r := range refs {
			entries = append(entries, r)
		}
		list := widget.NewList(
			widget.ListOpts.Entries(entries),
			widget.ListOpts.EntryLabelFunc(func(e any) string {
				if ref, ok := e.(string); ok {
					return ref
				}
				return ""
			}),
			widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
				if ref, ok := args.Entry.(string); ok {
					picker.ShowTileset(ref)
				}
			}),
		)
		list.GetWidget().MinHeight = 140
		return list
	}
	picker.SetEntries(refs)

	gridHolder := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			),
		),
	)
	dialog.AddChild(gridHolder)
	picker.gridHolder = gridHolder

	picker.makeGrid = func(ref string) *widget.Container {
		img, err := idx.Image(ref)
		if err != nil {
			log.Printf("load tileset %s: %v", ref, err)
			return widget.NewContainer()
		}
		return NewTileGrid(img, s.Config.TileSize, func(tx, ty int) {
			s.ArmBrush(worldedit.Brush{
				TilesetPath: ref,
				TileX:       tx,
				TileY:       ty,
				TileSize:    s.Config.TileSize,
			})
		})
	}

	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Close", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 32),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.TilePickerOpen = false
		}),
	)
	dialog.AddChild(closeBtn)

	return picker
}
