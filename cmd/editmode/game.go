package main

import (
	"log"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/worldedit"
	"github.com/milk9111/worldedit/assets"
)

// EditModeGame is the ebiten glue around a Session. It translates raw input
// into session events, mirrors session state back into the UI panels, and
// draws the scene. All editing decisions live in the session.
type EditModeGame struct {
	session *worldedit.Session
	index   *assets.Index
	watcher *assets.Watcher
	ui      *EditModeUI
	clip    *sysClipboard

	winW, winH int
	tick       int

	// last pushed chrome state, so panels only rebuild on change
	lastSel      worldedit.Object
	lastAdding   bool
	browserShown bool
	pickerShown  bool

	gridPixel *ebiten.Image
}

func NewEditModeGame(s *worldedit.Session, idx *assets.Index, w *assets.Watcher) *EditModeGame {
	return &EditModeGame{
		session: s,
		index:   idx,
		watcher: w,
		ui:      BuildEditModeUI(s, idx),
		clip:    newSysClipboard(),
	}
}

func (g *EditModeGame) Update() error {
	g.tick++
	g.drainWatcher()

	// If the UI has a focused text widget (user is typing), suppress hotkeys.
	suppressHotkeys := false
	if fw := g.ui.UI.GetFocusedWidget(); fw != nil {
		switch fw.(type) {
		case *widget.TextInput:
			suppressHotkeys = true
		}
	}

	if !suppressHotkeys {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyEscape})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyDelete})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyA) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
			g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyA})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyG})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
			g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventKeyDown, Key: worldedit.KeyS, Ctrl: true})
		}
	}

	g.ui.UI.Update()
	g.pumpMouse()
	g.syncChrome()
	return nil
}

// pumpMouse turns raw mouse state into session events. Releases go out before
// the hover guard so a paint stroke or drag that ends over a panel still ends.
func (g *EditModeGame) pumpMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	s := g.session

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		s.HandleEvent(worldedit.Event{Kind: worldedit.EventMouseUp, X: x, Y: y})
	}

	// If the UI is hovered, presses and moves belong to the chrome, so panel
	// clicks don't also edit the scene underneath.
	if ebuiinput.UIHovered {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.HandleEvent(worldedit.Event{Kind: worldedit.EventMouseDown, X: x, Y: y, Button: worldedit.MouseLeft})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clip.pull(&s.Clipboard)
		s.HandleEvent(worldedit.Event{Kind: worldedit.EventMouseDown, X: x, Y: y, Button: worldedit.MouseRight})
		g.clip.push(&s.Clipboard)
	}
	s.HandleEvent(worldedit.Event{Kind: worldedit.EventMouseMove, X: x, Y: y})
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.HandleEvent(worldedit.Event{Kind: worldedit.EventScroll, X: x, Y: y, ScrollY: wy})
	}
}

// syncChrome mirrors session state into the panels after the frame's events.
// The session never touches widgets itself, so this is the only direction
// state flows into the UI.
func (g *EditModeGame) syncChrome() {
	s := g.session
	if g.ui.ToolBar.Active() != s.Tool {
		g.ui.ToolBar.SetTool(s.Tool)
	}
	if g.browserShown != s.AssetBrowserOpen {
		g.browserShown = s.AssetBrowserOpen
		g.ui.Browser.SetVisible(g.browserShown)
	}
	if g.pickerShown != s.TilePickerOpen {
		g.pickerShown = s.TilePickerOpen
		g.ui.Picker.SetVisible(g.pickerShown)
	}
	if g.lastSel != s.Selected || g.lastAdding != s.AddingWaypoint {
		g.lastSel = s.Selected
		g.lastAdding = s.AddingWaypoint
		g.ui.Inspector.Refresh(s.Selected)
	}
}

// drainWatcher folds any sprite directory changes since last frame into one
// rescan and refreshes both sprite lists.
func (g *EditModeGame) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case <-g.watcher.Events:
			changed = true
		case err := <-g.watcher.Errors:
			log.Printf("sprite watch: %v", err)
		default:
			if changed {
				if err := g.index.Rescan(); err != nil {
					log.Printf("rescan sprites: %v", err)
					return
				}
				refs := g.index.Tree().Leaves()
				g.ui.Browser.SetEntries(refs)
				g.ui.Picker.SetEntries(refs)
				g.session.SetStatus("Sprites reloaded")
			}
			return
		}
	}
}

func (g *EditModeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		g.session.HandleEvent(worldedit.Event{Kind: worldedit.EventResize, W: outsideWidth, H: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

func (g *EditModeGame) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	g.ui.UI.Draw(screen)
	g.drawStatus(screen)
}
