package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/worldedit"
	"github.com/milk9111/worldedit/assets"
)

// EditModeUI bundles the chrome panels so the game loop can sync them
// against session state once per frame.
type EditModeUI struct {
	UI        *ebitenui.UI
	ToolBar   *ToolBar
	Browser   *AssetBrowserUI
	Picker    *TilePickerUI
	Inspector *InspectorUI
}

func BuildEditModeUI(s *worldedit.Session, idx *assets.Index) *EditModeUI {
	ui := &ebitenui.UI{}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 14}
	ui.PrimaryTheme = newEditModeTheme(&fontFace)

	refs := idx.Tree().Leaves()

	browser := buildAssetBrowser(s, ui.PrimaryTheme, &fontFace, refs)
	inspector := buildInspector(s, ui.PrimaryTheme, &fontFace)
	toolbarContainer, toolBar := buildToolBar(s, ui.PrimaryTheme, &fontFace)
	picker := buildTilePicker(s, idx, ui.PrimaryTheme, &fontFace, refs)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	browser.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	inspector.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	// Toolbar: top center
	toolbarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(browser.Container)
	root.AddChild(inspector.Container)
	root.AddChild(toolbarContainer)
	// The picker is modal, so it goes on top and stretches over everything.
	root.AddChild(picker.Overlay)
	picker.Overlay.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchHorizontal:  true,
		StretchVertical:    true,
	}

	ui.Container = root

	return &EditModeUI{
		UI:        ui,
		ToolBar:   toolBar,
		Browser:   browser,
		Picker:    picker,
		Inspector: inspector,
	}
}
