package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cmdpal/internal/palette"
)

func testPalette(t *testing.T, executed *string) *palette.Palette {
	t.Helper()
	p := palette.New()
	record := func(id string) func() error {
		return func() error {
			if executed != nil {
				*executed = id
			}
			return nil
		}
	}
	err := p.RegisterAll([]*palette.Command{
		{ID: "git.commit", Title: "Git: Commit", Keywords: []string{"git"}, Action: record("git.commit")},
		{ID: "file.new", Title: "New File", Keybinding: "ctrl+n", Action: record("file.new")},
	})
	if err != nil {
		t.Fatalf("RegisterAll() error = %v", err)
	}
	return p
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestHandleKeyTypeAndConfirm(t *testing.T) {
	var executed string
	ui := New(testPalette(t, &executed), tcell.NewSimulationScreen("UTF-8"), Options{})

	for _, r := range "git" {
		done, err := ui.handleKey(keyEvent(tcell.KeyRune, r))
		if done || err != nil {
			t.Fatalf("typing closed the session: done=%v err=%v", done, err)
		}
	}
	if got := ui.session.Query(); got != "git" {
		t.Fatalf("query = %q, want git", got)
	}

	done, err := ui.handleKey(keyEvent(tcell.KeyEnter, 0))
	if !done || err != nil {
		t.Fatalf("Enter: done=%v err=%v", done, err)
	}
	if executed != "git.commit" {
		t.Errorf("executed %q, want git.commit", executed)
	}
}

func TestHandleKeyNavigationWraps(t *testing.T) {
	ui := New(testPalette(t, nil), tcell.NewSimulationScreen("UTF-8"), Options{})

	// Empty query: two results in ID order.
	if got := len(ui.session.Results()); got != 2 {
		t.Fatalf("results = %d, want 2", got)
	}

	ui.handleKey(keyEvent(tcell.KeyDown, 0))
	if ui.session.SelectedIndex() != 1 {
		t.Errorf("selection = %d, want 1", ui.session.SelectedIndex())
	}
	ui.handleKey(keyEvent(tcell.KeyDown, 0))
	if ui.session.SelectedIndex() != 0 {
		t.Errorf("selection after wrap = %d, want 0", ui.session.SelectedIndex())
	}
	ui.handleKey(keyEvent(tcell.KeyCtrlP, 0))
	if ui.session.SelectedIndex() != 1 {
		t.Errorf("selection after reverse wrap = %d, want 1", ui.session.SelectedIndex())
	}
}

func TestHandleKeyEscapeCancels(t *testing.T) {
	var executed string
	ui := New(testPalette(t, &executed), tcell.NewSimulationScreen("UTF-8"), Options{})

	ui.handleKey(keyEvent(tcell.KeyRune, 'g'))
	done, err := ui.handleKey(keyEvent(tcell.KeyEscape, 0))
	if !done || err != nil {
		t.Fatalf("Escape: done=%v err=%v", done, err)
	}
	if executed != "" {
		t.Errorf("Escape executed %q", executed)
	}
}

func TestHandleKeyEnterWithoutResultsStaysOpen(t *testing.T) {
	ui := New(testPalette(t, nil), tcell.NewSimulationScreen("UTF-8"), Options{})

	for _, r := range "zzzqqq" {
		ui.handleKey(keyEvent(tcell.KeyRune, r))
	}
	done, err := ui.handleKey(keyEvent(tcell.KeyEnter, 0))
	if done || err != nil {
		t.Errorf("Enter with no results: done=%v err=%v, want open session", done, err)
	}
}

func TestHandleKeyBackspace(t *testing.T) {
	ui := New(testPalette(t, nil), tcell.NewSimulationScreen("UTF-8"), Options{})

	ui.handleKey(keyEvent(tcell.KeyRune, 'g'))
	ui.handleKey(keyEvent(tcell.KeyBackspace2, 0))
	if got := ui.session.Query(); got != "" {
		t.Errorf("query = %q, want empty", got)
	}
}

func TestDraw(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer sim.Fini()
	sim.SetSize(40, 10)

	ui := New(testPalette(t, nil), sim, Options{})
	ui.handleKey(keyEvent(tcell.KeyRune, 'g'))
	ui.draw()

	contents, width, _ := sim.GetContents()
	row := func(y int) string {
		var line []rune
		for x := 0; x < width; x++ {
			cell := contents[y*width+x]
			if len(cell.Runes) > 0 {
				line = append(line, cell.Runes[0])
			}
		}
		return string(line)
	}

	if got := row(0); len(got) < 3 || got[:3] != "> g" {
		t.Errorf("query line = %q, want prefix %q", got, "> g")
	}
	// "g" matches only Git: Commit.
	if got := row(1); len(got) < 11 || got[:11] != "Git: Commit" {
		t.Errorf("result line = %q, want prefix %q", got, "Git: Commit")
	}
}
