package hydrate

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/cmdpal/internal/palette"
)

// EncodeDescriptors serializes commands back to descriptor JSON for tooling
// (listing, documentation, scaffolding a descriptor file from built-ins).
// Actions are live closures and cannot round-trip; the action node is
// emitted as a placeholder for the user to fill in.
func EncodeDescriptors(commands []*palette.Command) ([]byte, error) {
	out := []byte("[]")
	for _, cmd := range commands {
		obj := []byte("{}")
		var err error

		if obj, err = sjson.SetBytes(obj, "id", cmd.ID); err != nil {
			return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
		}
		if obj, err = sjson.SetBytes(obj, "title", cmd.Title); err != nil {
			return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
		}
		if cmd.Description != "" {
			if obj, err = sjson.SetBytes(obj, "description", cmd.Description); err != nil {
				return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
			}
		}
		if len(cmd.Keywords) > 0 {
			if obj, err = sjson.SetBytes(obj, "keywords", cmd.Keywords); err != nil {
				return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
			}
		}
		if cmd.Category != "" {
			if obj, err = sjson.SetBytes(obj, "category", cmd.Category); err != nil {
				return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
			}
		}
		if cmd.Keybinding != "" {
			if obj, err = sjson.SetBytes(obj, "keybinding", cmd.Keybinding); err != nil {
				return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
			}
		}
		if obj, err = sjson.SetBytes(obj, "action.type", ""); err != nil {
			return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
		}

		if out, err = sjson.SetRawBytes(out, "-1", obj); err != nil {
			return nil, fmt.Errorf("encode %q: %w", cmd.ID, err)
		}
	}
	return out, nil
}
