package palette

// Session drives one interactive opening of the palette: it holds the
// in-progress query text, the ranked results for that query, and the
// current selection, and maps navigation and confirmation onto them.
//
// The session re-runs the search synchronously on every query edit, so
// there is never a stale in-flight result to discard. It is intended for a
// single goroutine (the UI event loop).
type Session struct {
	pal      *Palette
	limit    int
	query    string
	results  []SearchResult
	selected int
	closed   bool
}

// OpenSession starts an interactive session with an empty query. A positive
// limit caps how many results are held; limit <= 0 keeps all matches.
func (p *Palette) OpenSession(limit int) *Session {
	s := &Session{pal: p, limit: limit}
	s.refresh()
	return s
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query
}

// Results returns the ranked results for the current query.
// The slice is owned by the session; treat it as read-only.
func (s *Session) Results() []SearchResult {
	return s.results
}

// SetQuery replaces the query text, re-ranks, and resets the selection to
// the top result.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.refresh()
}

// Insert appends a rune to the query.
func (s *Session) Insert(r rune) {
	s.SetQuery(s.query + string(r))
}

// Backspace removes the last rune of the query. No-op on an empty query.
func (s *Session) Backspace() {
	if s.query == "" {
		return
	}
	runes := []rune(s.query)
	s.SetQuery(string(runes[:len(runes)-1]))
}

// Selected returns the currently selected result, or nil when there are no
// results.
func (s *Session) Selected() *SearchResult {
	if len(s.results) == 0 {
		return nil
	}
	return &s.results[s.selected]
}

// SelectedIndex returns the selection index (0 when there are no results).
func (s *Session) SelectedIndex() int {
	return s.selected
}

// Next moves the selection forward, wrapping past the last result.
func (s *Session) Next() {
	if len(s.results) == 0 {
		return
	}
	s.selected = (s.selected + 1) % len(s.results)
}

// Prev moves the selection backward, wrapping past the first result.
func (s *Session) Prev() {
	if len(s.results) == 0 {
		return
	}
	s.selected = (s.selected - 1 + len(s.results)) % len(s.results)
}

// Confirm executes the selected command, then resets the query and
// selection and closes the session. With no selection it is a no-op and the
// session stays open. The execution error, if any, is returned after the
// session state has been reset; the command itself ran exactly once.
func (s *Session) Confirm() error {
	sel := s.Selected()
	if sel == nil {
		return nil
	}

	id := sel.Command.ID
	err := s.pal.Execute(id)
	s.reset()
	s.closed = true
	return err
}

// Cancel resets the session without executing and closes it.
func (s *Session) Cancel() {
	s.reset()
	s.closed = true
}

// Closed reports whether the session ended via Confirm or Cancel.
func (s *Session) Closed() bool {
	return s.closed
}

// reset returns the session to its initial state: empty query, top
// selection.
func (s *Session) reset() {
	s.query = ""
	s.refresh()
}

// refresh re-runs the search for the current query and clamps selection.
func (s *Session) refresh() {
	s.results = s.pal.Search(s.query, s.limit)
	s.selected = 0
}
