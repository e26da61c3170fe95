package palette

import "fmt"

// Command represents a registered command in the palette.
type Command struct {
	// ID is the unique command identifier (e.g., "editor.save"). It is
	// the stable key used for execution and for deterministic result
	// ordering, so it must not change over the command's lifetime.
	ID string

	// Title is the display name shown and searched in the palette.
	Title string

	// Description provides additional context about the command.
	// Display only; it does not participate in search.
	Description string

	// Keywords are extra search terms for the command.
	Keywords []string

	// Category groups related commands (e.g., "File", "Edit", "View").
	Category string

	// Keybinding shows the keyboard shortcut (for display only).
	Keybinding string

	// Source indicates where the command was registered.
	// e.g., "core", "descriptor:commands.json", "lua"
	Source string

	// Action executes the command. It takes no arguments: descriptor
	// hydration binds any parameters into the closure up front.
	Action func() error
}

// validate checks the fields required for registration.
func (c *Command) validate() error {
	if c == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if c.ID == "" {
		return fmt.Errorf("command ID cannot be empty")
	}
	if c.Title == "" {
		return fmt.Errorf("command %q: title cannot be empty", c.ID)
	}
	return nil
}

// run invokes the command's action.
func (c *Command) run() error {
	if c.Action == nil {
		return fmt.Errorf("command %q has no action", c.ID)
	}
	return c.Action()
}
