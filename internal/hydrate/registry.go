package hydrate

import (
	"fmt"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/dshills/cmdpal/internal/palette"
)

// Action is an executable produced by hydration. Any parameters from the
// descriptor are bound into the closure; invocation takes no arguments.
type Action func() error

// Factory constructs an Action from the descriptor's action object.
// The spec argument is the full action node, e.g. {"type":"exec","argv":[...]}.
type Factory func(spec gjson.Result) (Action, error)

// Registry maps action-type tags to factories. It is populated at startup;
// hydrating a descriptor whose action type has no factory is an error.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory for an action type tag.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return fmt.Errorf("action type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("action type %q: factory cannot be nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("action type %q already registered", kind)
	}
	r.factories[kind] = factory
	return nil
}

// Kinds returns the registered action type tags.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	return kinds
}

// Hydrate turns one command descriptor into an executable command.
// Required fields: id, title, action.type. The source string records where
// the descriptor came from (e.g. "descriptor:commands.json").
func (r *Registry) Hydrate(desc gjson.Result, source string) (*palette.Command, error) {
	id := desc.Get("id").String()
	if id == "" {
		return nil, fmt.Errorf("descriptor missing id: %s", desc.Raw)
	}
	title := desc.Get("title").String()
	if title == "" {
		return nil, fmt.Errorf("descriptor %q: missing title", id)
	}

	actionSpec := desc.Get("action")
	if !actionSpec.Exists() {
		return nil, fmt.Errorf("descriptor %q: missing action", id)
	}
	kind := actionSpec.Get("type").String()
	if kind == "" {
		return nil, fmt.Errorf("descriptor %q: missing action type", id)
	}

	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("descriptor %q: unrecognized action type %q", id, kind)
	}

	action, err := factory(actionSpec)
	if err != nil {
		return nil, fmt.Errorf("descriptor %q: %w", id, err)
	}

	var keywords []string
	for _, kw := range desc.Get("keywords").Array() {
		if kw.String() != "" {
			keywords = append(keywords, kw.String())
		}
	}

	return &palette.Command{
		ID:          id,
		Title:       title,
		Description: desc.Get("description").String(),
		Keywords:    keywords,
		Category:    desc.Get("category").String(),
		Keybinding:  desc.Get("keybinding").String(),
		Source:      source,
		Action:      action,
	}, nil
}

// HydrateAll parses a JSON array of command descriptors and hydrates each
// one. The first invalid descriptor aborts the whole load so a typo cannot
// silently drop commands.
func (r *Registry) HydrateAll(data []byte, source string) ([]*palette.Command, error) {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("descriptors must be a JSON array")
	}

	descs := parsed.Array()
	commands := make([]*palette.Command, 0, len(descs))
	for _, desc := range descs {
		cmd, err := r.Hydrate(desc, source)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}
