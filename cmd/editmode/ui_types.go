package main

import (
	"image/color"
	"strconv"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldedit"
)

type hasWidget interface {
	GetWidget() *widget.Widget
}

// setShown flips a widget's visibility. Callers batch several of these and
// then request a relayout once, since visibility changes preferred sizes.
func setShown(w hasWidget, v bool) {
	if v {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func setButtonLabel(b *widget.Button, label string) {
	if t := b.Text(); t != nil {
		t.Label = label
	}
}

func onOffLabel(name string, v bool) string {
	if v {
		return name + ": On"
	}
	return name + ": Off"
}

func newPanelLabel(label string, fontFace *text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(label, fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ToolBar holds the radio-group state for the tool buttons so the game loop
// can snap the active button back to the session's actual tool after a
// refused or hotkey-driven switch.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	tools   []worldedit.Tool
	active  worldedit.Tool
}

func (tb *ToolBar) SetTool(t worldedit.Tool) {
	if tb == nil || tb.group == nil {
		return
	}
	for i, tool := range tb.tools {
		if tool == t {
			tb.group.SetActive(tb.buttons[i])
			return
		}
	}
}

// Active reports the tool the radio group currently shows, which can lag the
// session when a switch was refused.
func (tb *ToolBar) Active() worldedit.Tool { return tb.active }

// AssetBrowserUI is the sprite catalog panel: a kind selector above the
// scrollable ref list.
type AssetBrowserUI struct {
	Container *widget.Container

	listHolder *widget.Container
	list       *widget.List
	makeList   func(refs []string) *widget.List

	kind worldedit.Kind
}

func (b *AssetBrowserUI) SetVisible(v bool) {
	if b == nil {
		return
	}
	setShown(b.Container, v)
	b.Container.RequestRelayout()
}

// SetEntries swaps in a fresh sprite list, as after a rescan.
func (b *AssetBrowserUI) SetEntries(refs []string) {
	if b == nil || b.makeList == nil {
		return
	}
	if b.list != nil {
		b.listHolder.RemoveChild(b.list)
	}
	b.list = b.makeList(refs)
	b.listHolder.AddChild(b.list)
	b.listHolder.RequestRelayout()
}

// TilePickerUI is the modal dialog for choosing the tile stamp: a tileset
// list on top and the clickable tile grid below.
type TilePickerUI struct {
	Overlay *widget.Container

	listHolder *widget.Container
	list       *widget.List
	makeList   func(refs []string) *widget.List

	gridHolder *widget.Container
	grid       *widget.Container
	makeGrid   func(ref string) *widget.Container
}

func (p *TilePickerUI) SetVisible(v bool) {
	if p == nil {
		return
	}
	setShown(p.Overlay, v)
	p.Overlay.RequestRelayout()
}

// SetEntries swaps in a fresh tileset list, as after a rescan.
func (p *TilePickerUI) SetEntries(refs []string) {
	if p == nil || p.makeList == nil {
		return
	}
	if p.list != nil {
		p.listHolder.RemoveChild(p.list)
	}
	p.list = p.makeList(refs)
	p.listHolder.AddChild(p.list)
	p.listHolder.RequestRelayout()
}

// ShowTileset swaps in the tile grid for the picked tileset.
func (p *TilePickerUI) ShowTileset(ref string) {
	if p == nil || p.makeGrid == nil {
		return
	}
	if p.grid != nil {
		p.gridHolder.RemoveChild(p.grid)
	}
	p.grid = p.makeGrid(ref)
	p.gridHolder.AddChild(p.grid)
	p.gridHolder.RequestRelayout()
}

// InspectorUI is the right-hand panel editing the selected object. Refresh
// sets suppress so programmatic SetText and SetActive calls do not echo back
// into the session as edits.
type InspectorUI struct {
	Container *widget.Container

	session  *worldedit.Session
	fontFace *text.Face

	header       *widget.Container
	headerLabels []*widget.Label

	form       *widget.Container
	scaleInput *widget.TextInput

	buildingSection *widget.Container
	nameInput       *widget.TextInput
	menuInput       *widget.TextInput
	descInput       *widget.TextInput
	clickableBtn    *widget.Button

	animSection *widget.Container
	animatedBtn *widget.Button
	framesInput *widget.TextInput
	fpsInput    *widget.TextInput

	npcSection   *widget.Container
	behaviorGrp  *widget.RadioGroup
	behaviorBtns []*widget.Button
	speedInput   *widget.TextInput
	radiusRow    *widget.Container
	radiusInput  *widget.TextInput
	facingBtn    *widget.Button
	waypointBtn  *widget.Button

	suppress bool
	current  worldedit.Object
}

// inspectorBehaviors is the radio-button order in the behavior row.
var inspectorBehaviors = []worldedit.Behavior{
	worldedit.BehaviorIdle,
	worldedit.BehaviorWander,
	worldedit.BehaviorPatrol,
}

// Refresh points the inspector at the selection and reloads every field.
func (ui *InspectorUI) Refresh(o worldedit.Object) {
	ui.current = o
	ui.suppress = true
	defer func() { ui.suppress = false }()

	for _, l := range ui.headerLabels {
		ui.header.RemoveChild(l)
	}
	ui.headerLabels = ui.headerLabels[:0]
	addLine := func(line string) {
		l := newPanelLabel(line, ui.fontFace)
		ui.header.AddChild(l)
		ui.headerLabels = append(ui.headerLabels, l)
	}

	if o == nil {
		addLine("Nothing selected")
		setShown(ui.form, false)
		ui.Container.RequestRelayout()
		return
	}

	p := o.Base()
	addLine(p.ID)
	addLine(p.SpriteRef)
	setShown(ui.form, true)

	ui.scaleInput.SetText(formatFloat(p.Scale))

	b, isBuilding := o.(*worldedit.Building)
	setShown(ui.buildingSection, isBuilding)
	if isBuilding {
		ui.nameInput.SetText(b.Name)
		ui.menuInput.SetText(b.MenuTarget)
		ui.descInput.SetText(b.Description)
		setButtonLabel(ui.clickableBtn, onOffLabel("Clickable", b.Clickable))
	}

	setShown(ui.animSection, !isBuilding)
	switch t := o.(type) {
	case *worldedit.Decoration:
		setButtonLabel(ui.animatedBtn, onOffLabel("Animated", t.Animated))
		ui.framesInput.SetText(strconv.Itoa(t.FrameCount))
		ui.fpsInput.SetText(strconv.Itoa(t.FPS))
	case *worldedit.Npc:
		setButtonLabel(ui.animatedBtn, onOffLabel("Animated", t.Animated))
		ui.framesInput.SetText(strconv.Itoa(t.FrameCount))
		ui.fpsInput.SetText(strconv.Itoa(t.FPS))
	}

	n, isNpc := o.(*worldedit.Npc)
	setShown(ui.npcSection, isNpc)
	if isNpc {
		for i, bh := range inspectorBehaviors {
			if bh == n.Behavior {
				ui.behaviorGrp.SetActive(ui.behaviorBtns[i])
			}
		}
		ui.speedInput.SetText(formatFloat(n.Speed))
		setShown(ui.radiusRow, n.Behavior == worldedit.BehaviorWander)
		ui.radiusInput.SetText(formatFloat(n.Radius))
		setButtonLabel(ui.facingBtn, "Facing: "+string(n.Facing))
		setShown(ui.waypointBtn, n.Behavior == worldedit.BehaviorPatrol)
		setButtonLabel(ui.waypointBtn, onOffLabel("Add waypoints", ui.session.AddingWaypoint))
	}

	ui.form.RequestRelayout()
	ui.Container.RequestRelayout()
}
