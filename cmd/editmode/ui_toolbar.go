package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldedit"
)

func buildToolBar(s *worldedit.Session, theme *widget.Theme, fontFace *text.Face) (*widget.Container, *ToolBar) {
	tools := []worldedit.Tool{
		worldedit.ToolSelect,
		worldedit.ToolPlace,
		worldedit.ToolWaypoint,
		worldedit.ToolTilePaint,
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.White,
		Hover:    color.White,
		Pressed:  color.RGBA{255, 220, 120, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{28, 31, 38, 230})),
	)

	tb := &ToolBar{tools: tools}
	for _, t := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.String(), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(72, 40),
			),
		)
		tb.buttons = append(tb.buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(tb.buttons))
	for _, b := range tb.buttons {
		elements = append(elements, b)
	}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range tb.buttons {
				if args.Active != b {
					continue
				}
				tb.active = tb.tools[i]
				if tb.tools[i] == s.Tool {
					return
				}
				// Picking the place tool with nothing armed means the user
				// wants to choose a sprite first.
				if tb.tools[i] == worldedit.ToolPlace && s.Preview == nil {
					s.AssetBrowserOpen = true
					return
				}
				s.SelectTool(tb.tools[i])
				return
			}
		}),
	)
	tb.SetTool(s.Tool)

	saveBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Save", fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.SaveNow()
		}),
	)
	toolbar.AddChild(saveBtn)

	spritesBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Sprites", fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.AssetBrowserOpen = !s.AssetBrowserOpen
		}),
	)
	toolbar.AddChild(spritesBtn)

	tilesBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Tiles", fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 40),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.TilePickerOpen = !s.TilePickerOpen
		}),
	)
	toolbar.AddChild(tilesBtn)

	return toolbar, tb
}
