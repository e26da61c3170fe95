package palette

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/cmdpal/internal/search"
)

// ErrUnknownCommand is returned by Execute for an unregistered ID.
var ErrUnknownCommand = errors.New("unknown command")

// SearchResult is a matched command with its relevance score in [0,1].
type SearchResult struct {
	Command *Command
	Score   float64
}

// Palette provides searchable access to registered commands.
//
// The palette owns the search index for its command set: the index is
// rebuilt lazily after any registration change and shared read-only across
// searches, which keeps per-keystroke queries cheap. Query results are
// additionally cached per query string and invalidated on every change.
type Palette struct {
	mu       sync.RWMutex
	commands map[string]*Command

	// Search index, rebuilt when dirty. records and index are parallel
	// views over the same command set.
	records []*search.Record
	index   []search.IndexedRecord
	dirty   bool

	cache   *search.Cache
	weights search.Weights
	history *History

	// onChange callbacks fire after commands are added or removed.
	onChange []func()
}

// New creates an empty palette with default scoring weights.
func New() *Palette {
	return &Palette{
		commands: make(map[string]*Command),
		cache:    search.NewCache(200),
		weights:  search.DefaultWeights(),
		history:  NewHistory(100),
		dirty:    true,
	}
}

// NewWithWeights creates a palette with custom scoring weights.
func NewWithWeights(weights search.Weights) *Palette {
	p := New()
	p.weights = weights
	return p
}

// Register adds a command to the palette.
// A command with the same ID replaces the existing one.
func (p *Palette) Register(cmd *Command) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	p.mu.Lock()
	p.commands[cmd.ID] = cmd
	p.markDirtyLocked()
	p.mu.Unlock()

	p.notifyChange()
	return nil
}

// RegisterAll adds multiple commands, stopping at the first invalid one.
func (p *Palette) RegisterAll(commands []*Command) error {
	for _, cmd := range commands {
		if err := p.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes a command. Reports whether it existed.
func (p *Palette) Unregister(id string) bool {
	p.mu.Lock()
	_, exists := p.commands[id]
	if exists {
		delete(p.commands, id)
		p.markDirtyLocked()
	}
	p.mu.Unlock()

	if exists {
		p.notifyChange()
	}
	return exists
}

// UnregisterBySource removes all commands registered from source.
// Returns the number removed.
func (p *Palette) UnregisterBySource(source string) int {
	p.mu.Lock()
	count := 0
	for id, cmd := range p.commands {
		if cmd.Source == source {
			delete(p.commands, id)
			count++
		}
	}
	if count > 0 {
		p.markDirtyLocked()
	}
	p.mu.Unlock()

	if count > 0 {
		p.notifyChange()
	}
	return count
}

// Get retrieves a command by ID, or nil.
func (p *Palette) Get(id string) *Command {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.commands[id]
}

// Has checks if a command exists.
func (p *Palette) Has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, exists := p.commands[id]
	return exists
}

// All returns all registered commands, sorted by ID.
func (p *Palette) All() []*Command {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]*Command, 0, len(p.commands))
	for _, cmd := range p.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Count returns the number of registered commands.
func (p *Palette) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.commands)
}

// Categories returns all unique, non-empty command categories, sorted.
func (p *Palette) Categories() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, cmd := range p.commands {
		if cmd.Category != "" && !seen[cmd.Category] {
			seen[cmd.Category] = true
			result = append(result, cmd.Category)
		}
	}
	sort.Strings(result)
	return result
}

// Search ranks commands against the query. An empty query returns every
// command with score zero in ID order; otherwise results carry nonzero
// scores ordered by score descending, ID ascending. A positive limit
// truncates the result.
func (p *Palette) Search(query string, limit int) []SearchResult {
	if cached := p.cache.Get(query); cached != nil {
		return p.toSearchResults(cached, limit)
	}

	records, index := p.searchIndex()
	results := search.Search(query, records, 0, &search.Options{
		Index:   index,
		Weights: &p.weights,
	})
	p.cache.Set(query, results)

	return p.toSearchResults(results, limit)
}

// Execute runs a command by ID. The execution is recorded in history only
// when the action succeeds.
func (p *Palette) Execute(id string) error {
	p.mu.RLock()
	cmd, exists := p.commands[id]
	p.mu.RUnlock()

	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}

	if err := cmd.run(); err != nil {
		return err
	}
	p.history.Add(id)
	return nil
}

// Recent returns IDs of recently executed commands, most recent first.
// Recency never influences search ranking; it is display-only state.
func (p *Palette) Recent(limit int) []string {
	return p.history.Recent(limit)
}

// OnChange registers a callback for command set changes. Callbacks run
// after registration or removal, without the palette lock held; they must
// not register or unregister commands.
func (p *Palette) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = append(p.onChange, fn)
}

// Clear removes all commands and execution history.
func (p *Palette) Clear() {
	p.mu.Lock()
	p.commands = make(map[string]*Command)
	p.markDirtyLocked()
	p.mu.Unlock()

	p.history.Clear()
	p.notifyChange()
}

// searchIndex returns the current records and index, rebuilding if a
// registration change has occurred since the last search.
func (p *Palette) searchIndex() ([]*search.Record, []search.IndexedRecord) {
	p.mu.RLock()
	if !p.dirty {
		records, index := p.records, p.index
		p.mu.RUnlock()
		return records, index
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.dirty {
		p.rebuildLocked()
	}
	return p.records, p.index
}

// rebuildLocked recomputes the search records and index. Lock must be held.
func (p *Palette) rebuildLocked() {
	records := make([]*search.Record, 0, len(p.commands))
	for _, cmd := range p.commands {
		records = append(records, &search.Record{
			ID:       cmd.ID,
			Title:    cmd.Title,
			Keywords: cmd.Keywords,
			Data:     cmd,
		})
	}
	p.records = records
	p.index = search.BuildIndex(records)
	p.dirty = false
}

// markDirtyLocked invalidates the index and result cache. Lock must be held.
func (p *Palette) markDirtyLocked() {
	p.dirty = true
	p.cache.Clear()
}

func (p *Palette) toSearchResults(results []search.Result, limit int) []SearchResult {
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Command: r.Record.Data.(*Command), //nolint:errcheck // records carry only *Command
			Score:   r.Score,
		}
	}
	return out
}

// notifyChange calls registered change callbacks without holding locks.
func (p *Palette) notifyChange() {
	p.mu.RLock()
	callbacks := make([]func(), len(p.onChange))
	copy(callbacks, p.onChange)
	p.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
