package tutorials

import "strings"

// PostEntry is the listing view of a post: the rendered fields a reader sees
// in the post list plus the text a query is matched against.
type PostEntry struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Date     string   `json:"date"`
	Keywords []string `json:"keywords"`

	// SearchableText is the visible rendered text of the entry.
	SearchableText string `json:"searchableText"`
}

// VisibilitySet maps entry IDs to whether the entry is visible.
type VisibilitySet map[string]bool

// Visible reports whether the entry with the given ID is visible.
func (v VisibilitySet) Visible(id string) bool {
	return v[id]
}

// Count returns the number of visible entries.
func (v VisibilitySet) Count() int {
	n := 0
	for _, visible := range v {
		if visible {
			n++
		}
	}
	return n
}

// AllHidden reports whether every entry in the set is hidden.
// An empty set has nothing visible, so it reports true.
func (v VisibilitySet) AllHidden() bool {
	for _, visible := range v {
		if visible {
			return false
		}
	}
	return true
}

// VisibleEntries returns the visible entries in their original order.
func VisibleEntries(entries []PostEntry, set VisibilitySet) []PostEntry {
	visible := make([]PostEntry, 0, len(entries))
	for _, e := range entries {
		if set.Visible(e.ID) {
			visible = append(visible, e)
		}
	}
	return visible
}

// Matcher reports whether a lower-cased text matches a lower-cased,
// non-empty query.
type Matcher func(text, query string) bool

// ContainsMatch matches when the query occurs anywhere in the text.
func ContainsMatch(text, query string) bool {
	return strings.Contains(text, query)
}

// LegacyMatch matches only when the first occurrence of the query starts
// after the first byte of the text, so text beginning with the query is
// hidden. Earlier revisions of the listing page filtered this way.
func LegacyMatch(text, query string) bool {
	return strings.Index(text, query) > 0
}

// FilterState is the state of a FilterEngine.
type FilterState int

const (
	// FilterIdle shows every entry.
	FilterIdle FilterState = iota
	// FilterFiltered shows entries matching the current query.
	FilterFiltered
)

// String returns the state name.
func (s FilterState) String() string {
	switch s {
	case FilterIdle:
		return "idle"
	case FilterFiltered:
		return "filtered"
	default:
		return "unknown"
	}
}

// FilterEngine holds the current query and keyword selection and decides
// which post entries are visible. The zero value is not usable; create one
// with NewFilterEngine.
type FilterEngine struct {
	query    string
	keyword  string
	filtered bool
	match    Matcher
}

// FilterOption configures a FilterEngine.
type FilterOption func(*FilterEngine)

// WithMatcher sets the matcher used for non-empty queries.
// Defaults to ContainsMatch.
func WithMatcher(m Matcher) FilterOption {
	return func(e *FilterEngine) {
		if m != nil {
			e.match = m
		}
	}
}

// NewFilterEngine creates an idle FilterEngine.
func NewFilterEngine(opts ...FilterOption) *FilterEngine {
	e := &FilterEngine{match: ContainsMatch}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetQuery sets a free-text query. The query is lower-cased; the empty
// string shows every entry. Typing a query clears the active keyword.
func (e *FilterEngine) SetQuery(text string) {
	e.query = strings.ToLower(text)
	e.keyword = ""
	e.filtered = true
}

// SelectKeyword sets the keyword as the query and marks it as the only
// active keyword.
func (e *FilterEngine) SelectKeyword(keyword string) {
	e.SetQuery(keyword)
	e.keyword = keyword
}

// Reset clears the query and the active keyword.
func (e *FilterEngine) Reset() {
	e.query = ""
	e.keyword = ""
	e.filtered = false
}

// Query returns the normalized current query.
func (e *FilterEngine) Query() string {
	return e.query
}

// ActiveKeyword returns the selected keyword, or "" when none is active.
func (e *FilterEngine) ActiveKeyword() string {
	return e.keyword
}

// State returns FilterIdle after Reset and FilterFiltered after SetQuery
// or SelectKeyword.
func (e *FilterEngine) State() FilterState {
	if e.filtered {
		return FilterFiltered
	}
	return FilterIdle
}

// Evaluate computes the visibility of every entry for the current query.
// Entries are never reordered; a nil slice yields an empty set.
func (e *FilterEngine) Evaluate(entries []PostEntry) VisibilitySet {
	set := make(VisibilitySet, len(entries))
	for _, entry := range entries {
		set[entry.ID] = e.matches(entry)
	}
	return set
}

// AllHidden reports whether set has no visible entry.
func (e *FilterEngine) AllHidden(set VisibilitySet) bool {
	return set.AllHidden()
}

func (e *FilterEngine) matches(entry PostEntry) bool {
	if e.query == "" {
		return true
	}
	return e.match(strings.ToLower(entry.SearchableText), e.query)
}
