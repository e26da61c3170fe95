// Package tui renders the command palette in a terminal using tcell.
//
// The UI is a thin shell over a palette session: every keystroke edits the
// session query (which re-ranks synchronously), arrow keys move the
// wrapping selection, enter executes the selected command and closes the
// palette, escape closes without executing.
//
//	screen, err := tcell.NewScreen()
//	if err != nil {
//	    return err
//	}
//	ui := tui.New(pal, screen, tui.Options{Limit: 15})
//	return ui.Run()
//
// Run owns the screen lifecycle; the screen is finalized on every exit
// path. Tests drive the same code with tcell's SimulationScreen.
package tui
