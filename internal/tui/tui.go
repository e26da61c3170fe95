package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdpal/internal/palette"
)

// Options configures the palette UI.
type Options struct {
	// Prompt is drawn before the query text. Defaults to "> ".
	Prompt string

	// Limit caps how many results are shown. Defaults to the visible
	// height when <= 0.
	Limit int
}

// UI renders a command palette on a tcell screen and maps keyboard input
// onto a palette session: runes and backspace edit the query, up/down move
// the selection with wrap-around, enter confirms, escape cancels.
type UI struct {
	screen  tcell.Screen
	session *palette.Session
	prompt  string
}

// New creates a palette UI on the given screen. The screen must not be
// initialized yet; Run owns its lifecycle.
func New(pal *palette.Palette, screen tcell.Screen, opts Options) *UI {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}
	return &UI{
		screen:  screen,
		session: pal.OpenSession(opts.Limit),
		prompt:  prompt,
	}
}

// Run initializes the screen and drives the event loop until the session
// closes. It returns the confirmed command's execution error, if any;
// cancelling returns nil.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer u.screen.Fini()

	for {
		u.draw()

		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			done, err := u.handleKey(ev)
			if done {
				return err
			}
		}
	}
}

// handleKey applies one key event to the session. It reports whether the
// session closed, along with the confirmed action's error.
func (u *UI) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		u.session.Cancel()
		return true, nil
	case tcell.KeyEnter:
		err := u.session.Confirm()
		return u.session.Closed(), err
	case tcell.KeyDown, tcell.KeyCtrlN:
		u.session.Next()
	case tcell.KeyUp, tcell.KeyCtrlP:
		u.session.Prev()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.session.Backspace()
	case tcell.KeyRune:
		u.session.Insert(ev.Rune())
	}
	return false, nil
}

// draw renders the query line and the ranked result list.
func (u *UI) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()

	queryStyle := tcell.StyleDefault.Bold(true)
	u.drawText(0, 0, width, queryStyle, u.prompt+u.session.Query())

	results := u.session.Results()
	if len(results) == 0 && u.session.Query() != "" {
		u.drawText(0, 1, width, tcell.StyleDefault.Dim(true), "no matching commands")
	}

	visible := height - 1
	if visible < 0 {
		visible = 0
	}
	for i, r := range results {
		if i >= visible {
			break
		}
		style := tcell.StyleDefault
		if i == u.session.SelectedIndex() {
			style = style.Reverse(true)
		}
		line := r.Command.Title
		if r.Command.Keybinding != "" {
			line += "  [" + r.Command.Keybinding + "]"
		}
		u.drawText(0, i+1, width, style, line)
	}

	u.screen.ShowCursor(utf8.RuneCountInString(u.prompt)+utf8.RuneCountInString(u.session.Query()), 0)
	u.screen.Show()
}

// drawText writes a string starting at (x, y), clipped to maxWidth cells.
func (u *UI) drawText(x, y, maxWidth int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= x+maxWidth {
			return
		}
		u.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
