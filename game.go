package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/OpticalFlyer/rcade/config"
	"github.com/OpticalFlyer/rcade/ui"
)

// Scene is the screen currently shown.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	}
	return "unknown"
}

// Rcade implements ebiten.Game interface.
type Rcade struct {
	settings  *config.Config
	ui        *ui.Controller
	font      *ui.Font
	scene     Scene
	debugMode bool
	win       window

	// Settings reloaded from disk, nil when not watching.
	changes <-chan config.WindowSettings

	handlers map[string]func() error
}

// NewRcade builds the game on the main menu. A nil pointer source reads the mouse and
// touch screen.
func NewRcade(settings *config.Config, font *ui.Font, win window, source ui.PointerSource) *Rcade {
	g := &Rcade{
		settings: settings,
		ui:       ui.NewController(source),
		font:     font,
		win:      win,
	}
	g.handlers = map[string]func() error{
		actionStart: func() error {
			g.setScene(ScenePlaying)
			return nil
		},
		actionBack: func() error {
			g.setScene(SceneMenu)
			return nil
		},
		actionFullscreen: func() error {
			g.toggleFullscreen()
			return nil
		},
		actionQuit: func() error {
			return ebiten.Termination
		},
	}
	g.setScene(SceneMenu)
	return g
}

func (g *Rcade) setScene(s Scene) {
	g.scene = s
	switch s {
	case ScenePlaying:
		g.ui.SetRoot(playScreen(g.font))
	default:
		g.ui.SetRoot(mainMenu(g.font))
	}
	log.Info().Stringer("scene", s).Msg("scene changed")
}

// toggleFullscreen flips, applies and persists the fullscreen flag. A failed write is
// logged and otherwise ignored.
func (g *Rcade) toggleFullscreen() {
	on := g.settings.ToggleFullscreen()
	g.win.SetFullscreen(on)
	if err := g.settings.Write(); err != nil {
		log.Error().Err(err).Str("path", g.settings.Path()).Msg("could not save window settings")
		return
	}
	log.Info().Bool("fullscreen", on).Msg("fullscreen toggled")
}

// applyChanges applies the most recent settings reloaded from disk, if any.
func (g *Rcade) applyChanges() {
	select {
	case s := <-g.changes:
		if s.Equal(g.settings.Window) {
			return
		}
		g.settings.Window = s
		g.win.Apply(s)
		log.Info().Floats64("res", s.Res).Bool("fullscreen", s.IsFullscreen()).Msg("window settings reloaded")
	default:
	}
}

func (g *Rcade) activate(id string) error {
	h, ok := g.handlers[id]
	if !ok {
		log.Warn().Str("id", id).Msg("no handler for activated node")
		return nil
	}
	log.Debug().Str("id", id).Msg("activated")
	return h()
}

func (g *Rcade) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	return g.step()
}

// step runs the parts of Update that do not read the keyboard.
func (g *Rcade) step() error {
	g.applyChanges()
	if id, ok := g.ui.Update(); ok {
		if err := g.activate(id); err != nil {
			return err
		}
	}
	log.Trace().Stringer("scene", g.scene).Msg("tick")
	return nil
}

func (g *Rcade) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.ui.Draw(screen)

	if g.debugMode {
		// Crosshair on the sampled pointer
		p := g.ui.Pointer().Pos
		x, y := float32(p.X), float32(p.Y)
		red := color.RGBA{R: 255, A: 255}
		vector.StrokeLine(screen, x-10, y, x+10, y, 1, red, false)
		vector.StrokeLine(screen, x, y-10, x, y+10, 1, red, false)
		g.ui.ShowDebugInfo(screen)
	}
}

func (g *Rcade) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
