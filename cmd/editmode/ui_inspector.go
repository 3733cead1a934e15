package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/worldedit"
)

func buildInspector(s *worldedit.Session, theme *widget.Theme, fontFace *text.Face) *InspectorUI {
	insp := &InspectorUI{session: s, fontFace: fontFace}

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
	insp.Container = panel

	panel.AddChild(newPanelLabel("Inspector", fontFace))

	insp.header = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(2),
			),
		),
	)
	panel.AddChild(insp.header)

	form := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	panel.AddChild(form)
	insp.form = form

	field := func(parent *widget.Container, label string, commit func(raw string)) *widget.TextInput {
		parent.AddChild(newPanelLabel(label, fontFace))
		input := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(200, 28),
			),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			}),
			widget.TextInputOpts.Face(fontFace),
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				if insp.suppress {
					return
				}
				commit(args.InputText)
			}),
		)
		parent.AddChild(input)
		return input
	}

	button := func(parent *widget.Container, label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(140, 28),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		parent.AddChild(btn)
		return btn
	}

	// Numeric commits re-run Refresh so the input echoes the clamped value
	// the session actually applied.
	floatArg := func(raw string, apply func(v float64)) {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			s.SetStatus("Not a number: " + raw)
			return
		}
		apply(v)
		insp.Refresh(s.Selected)
	}
	intArg := func(raw string, apply func(v int)) {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			s.SetStatus("Not a number: " + raw)
			return
		}
		apply(v)
		insp.Refresh(s.Selected)
	}

	insp.scaleInput = field(form, "Scale", func(raw string) {
		floatArg(raw, func(v float64) {
			if s.Selected != nil {
				s.SetScale(s.Selected, v)
			}
		})
	})

	bsec := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	form.AddChild(bsec)
	insp.buildingSection = bsec

	insp.nameInput = field(bsec, "Name", func(raw string) {
		if b, ok := s.Selected.(*worldedit.Building); ok {
			s.Apply(func() { b.Name = raw })
		}
	})
	insp.menuInput = field(bsec, "Menu", func(raw string) {
		if b, ok := s.Selected.(*worldedit.Building); ok {
			s.Apply(func() { b.MenuTarget = raw })
		}
	})
	insp.descInput = field(bsec, "Description", func(raw string) {
		if b, ok := s.Selected.(*worldedit.Building); ok {
			s.Apply(func() { b.Description = raw })
		}
	})
	insp.clickableBtn = button(bsec, "Clickable: Off", func() {
		if b, ok := s.Selected.(*worldedit.Building); ok {
			s.Apply(func() { b.Clickable = !b.Clickable })
			insp.Refresh(s.Selected)
		}
	})

	asec := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	form.AddChild(asec)
	insp.animSection = asec

	insp.animatedBtn = button(asec, "Animated: Off", func() {
		switch t := s.Selected.(type) {
		case *worldedit.Decoration:
			s.Apply(func() { t.Animated = !t.Animated })
		case *worldedit.Npc:
			s.Apply(func() { t.Animated = !t.Animated })
		default:
			return
		}
		insp.Refresh(s.Selected)
	})
	insp.framesInput = field(asec, "Frames", func(raw string) {
		intArg(raw, func(v int) {
			if s.Selected != nil {
				s.SetFrameCount(s.Selected, v)
			}
		})
	})
	insp.fpsInput = field(asec, "FPS", func(raw string) {
		intArg(raw, func(v int) {
			if s.Selected != nil {
				s.SetFPS(s.Selected, v)
			}
		})
	})

	nsec := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	form.AddChild(nsec)
	insp.npcSection = nsec

	nsec.AddChild(newPanelLabel("Behavior", fontFace))
	behaviorRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	for _, bh := range inspectorBehaviors {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(string(bh), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(68, 28),
			),
		)
		insp.behaviorBtns = append(insp.behaviorBtns, btn)
		behaviorRow.AddChild(btn)
	}
	nsec.AddChild(behaviorRow)

	elements := make([]widget.RadioGroupElement, 0, len(insp.behaviorBtns))
	for _, b := range insp.behaviorBtns {
		elements = append(elements, b)
	}
	insp.behaviorGrp = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if insp.suppress {
				return
			}
			n := s.SelectedNpc()
			if n == nil {
				return
			}
			for i, b := range insp.behaviorBtns {
				if args.Active == b {
					s.SetBehavior(n, inspectorBehaviors[i])
					insp.Refresh(s.Selected)
					return
				}
			}
		}),
	)

	insp.speedInput = field(nsec, "Speed", func(raw string) {
		floatArg(raw, func(v float64) {
			n := s.SelectedNpc()
			if n == nil {
				return
			}
			if v <= 0 {
				s.SetStatus("Speed must be positive")
				return
			}
			s.Apply(func() { n.Speed = v })
		})
	})

	radiusRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	nsec.AddChild(radiusRow)
	insp.radiusRow = radiusRow
	insp.radiusInput = field(radiusRow, "Wander radius", func(raw string) {
		floatArg(raw, func(v float64) {
			s.SetWanderRadius(s.SelectedNpc(), v)
		})
	})

	insp.facingBtn = button(nsec, "Facing: right", func() {
		n := s.SelectedNpc()
		if n == nil {
			return
		}
		s.Apply(func() {
			if n.Facing == worldedit.FacingLeft {
				n.Facing = worldedit.FacingRight
			} else {
				n.Facing = worldedit.FacingLeft
			}
		})
		insp.Refresh(s.Selected)
	})

	insp.waypointBtn = button(nsec, "Add waypoints: Off", func() {
		s.ToggleAddWaypoint()
		insp.Refresh(s.Selected)
	})

	button(form, "Delete", func() {
		s.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyDelete})
		insp.Refresh(s.Selected)
	})

	insp.Refresh(nil)
	return insp
}
