// Package palette provides a searchable, executable command registry: the
// layer between the fuzzy ranking engine and a user interface.
//
// Key pieces:
//
//   - Command: an executable entry with ID, title, keywords, and a
//     zero-argument action
//   - Palette: thread-safe registry that owns the search index for its
//     command set and a per-query result cache
//   - Session: selection state for one interactive opening of the palette
//   - History: in-memory record of recently executed commands
//
// # Usage
//
// Register commands and search:
//
//	p := palette.New()
//	p.Register(&palette.Command{
//	    ID:       "editor.save",
//	    Title:    "Save File",
//	    Keywords: []string{"write", "disk"},
//	    Category: "File",
//	    Action:   func() error { return saveFile() },
//	})
//
//	results := p.Search("save", 10)
//	err := p.Execute("editor.save")
//
// Drive keyboard interaction through a session:
//
//	s := p.OpenSession(10)
//	s.Insert('s')   // re-ranks on every keystroke
//	s.Next()        // selection wraps modulo result count
//	err := s.Confirm() // executes, resets, closes
//
// # Ranking
//
// Search delegates to the internal/search engine unchanged: results are
// ordered by score descending with command ID as the tie-break, and an
// empty query lists every command in ID order. Execution history is
// exposed via Recent but never alters ranking, so identical queries always
// produce identical orderings.
//
// # Thread Safety
//
// Palette methods are safe for concurrent use. The palette rebuilds its
// search index lazily after registration changes; searches in flight keep
// reading the index they started with. A Session is single-goroutine state
// and belongs to the UI event loop that created it.
package palette
