package main

import "github.com/OpticalFlyer/rcade/ui"

// Activation IDs.
const (
	actionStart      = "start"
	actionFullscreen = "fullscreen"
	actionQuit       = "quit"
	actionBack       = "back"
)

func gray(v float32) ui.Color {
	return ui.Color{v, v, v, 0.5}
}

// mainMenu is the title banner, which also starts the game, above a column of buttons.
func mainMenu(font *ui.Font) *ui.Node {
	title := ui.New(ui.Options{
		ID:              actionStart,
		Origin:          &ui.Vec2{0.1, 0.05},
		Size:            &ui.Vec2{0.8, 0.1},
		Text:            "RCADE",
		Font:            font,
		FontSize:        32,
		Align:           ui.AlignCenter,
		Color:           &ui.Color{1, 0, 0, 1},
		ColorHover:      &ui.Color{0, 1, 0, 1},
		ColorClick:      &ui.Color{0, 0, 1, 1},
		Background:      ui.Ptr(gray(0.1)),
		BackgroundHover: ui.Ptr(gray(0.2)),
		BackgroundClick: ui.Ptr(gray(0.3)),
	})

	style := ui.DefaultButtonStyle(font)
	buttons := ui.Column(ui.Vec2{0.3, 0.3}, ui.Vec2{0.4, 0.5}, 0.1,
		ui.NewButton(actionStart, "START", ui.Vec2{}, ui.Vec2{}, style),
		ui.NewButton(actionFullscreen, "FULLSCREEN", ui.Vec2{}, ui.Vec2{}, style),
		ui.NewButton(actionQuit, "QUIT", ui.Vec2{}, ui.Vec2{}, style),
	)

	return ui.New(ui.Options{}).Push(title, buttons)
}

func playScreen(font *ui.Font) *ui.Node {
	label := ui.New(ui.Options{
		Origin:   &ui.Vec2{0.1, 0.4},
		Size:     &ui.Vec2{0.8, 0.2},
		Text:     "PLAYING",
		Font:     font,
		FontSize: 48,
		Align:    ui.AlignCenter,
		Color:    ui.Ptr(ui.White),
	})
	back := ui.NewButton(actionBack, "BACK", ui.Vec2{0.02, 0.88}, ui.Vec2{0.2, 0.1}, ui.DefaultButtonStyle(font))
	return ui.New(ui.Options{}).Push(label, back)
}
