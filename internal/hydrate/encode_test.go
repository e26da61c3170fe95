package hydrate

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/cmdpal/internal/palette"
)

func TestEncodeDescriptors(t *testing.T) {
	commands := []*palette.Command{
		{
			ID:          "git.commit",
			Title:       "Git: Commit",
			Description: "Commit staged changes",
			Keywords:    []string{"git", "save"},
			Category:    "Git",
			Keybinding:  "ctrl+k c",
		},
		{ID: "file.new", Title: "New File"},
	}

	data, err := EncodeDescriptors(commands)
	if err != nil {
		t.Fatalf("EncodeDescriptors() error = %v", err)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		t.Fatalf("output is not a JSON array: %s", data)
	}
	descs := parsed.Array()
	if len(descs) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(descs))
	}

	first := descs[0]
	if first.Get("id").String() != "git.commit" || first.Get("title").String() != "Git: Commit" {
		t.Errorf("first descriptor = %s", first.Raw)
	}
	if kw := first.Get("keywords").Array(); len(kw) != 2 || kw[0].String() != "git" {
		t.Errorf("keywords = %s", first.Get("keywords").Raw)
	}
	if first.Get("category").String() != "Git" || first.Get("keybinding").String() != "ctrl+k c" {
		t.Errorf("first descriptor = %s", first.Raw)
	}
	// The action node is a placeholder to fill in.
	if !first.Get("action.type").Exists() {
		t.Error("action placeholder missing")
	}

	// Optional fields are omitted entirely when unset.
	second := descs[1]
	if second.Get("description").Exists() || second.Get("keywords").Exists() {
		t.Errorf("unset fields should be omitted: %s", second.Raw)
	}
}

func TestEncodeDescriptorsEmpty(t *testing.T) {
	data, err := EncodeDescriptors(nil)
	if err != nil {
		t.Fatalf("EncodeDescriptors() error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, want []", data)
	}
}
