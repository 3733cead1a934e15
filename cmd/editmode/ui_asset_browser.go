package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldedit"
)

func buildAssetBrowser(s *worldedit.Session, theme *widget.Theme, fontFace *text.Face, refs []string) *AssetBrowserUI {
	browser := &AssetBrowserUI{kind: worldedit.KindBuilding}

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(260, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{28, 31, 38, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	browser.Container = panel

	panel.AddChild(newPanelLabel("Place as", fontFace))

	kinds := []worldedit.Kind{worldedit.KindBuilding, worldedit.KindDecoration, worldedit.KindNpc}
	kindRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	var kindButtons []*widget.Button
	for _, k := range kinds {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(k.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(76, 28),
			),
		)
		kindButtons = append(kindButtons, btn)
		kindRow.AddChild(btn)
	}
	panel.AddChild(kindRow)

	elements := make([]widget.RadioGroupElement, 0, len(kindButtons))
	for _, b := range kindButtons {
		elements = append(elements, b)
	}
	kindGroup := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, b := range kindButtons {
				if args.Active == b {
					browser.kind = kinds[i]
					return
				}
			}
		}),
	)
	kindGroup.SetActive(kindButtons[0])

	panel.AddChild(newPanelLabel("Sprites", fontFace))

	listHolder := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			),
		),
	)
	panel.AddChild(listHolder)
	browser.listHolder = listHolder

	browser.makeList = func(refs []string) *widget.List {
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
					s.BeginPlacement(browser.kind, ref)
				}
			}),
		)
		list.GetWidget().MinHeight = 320
		return list
	}
	browser.SetEntries(refs)

	panel.GetWidget().Visibility = widget.Visibility_Hide
	return browser
}
