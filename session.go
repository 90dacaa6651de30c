package tutorials

import "sync"

// Snapshot is the outcome of a query change: the query that produced it and
// the visibility it derived.
type Snapshot struct {
	// Seq increases by one on every dispatch. Observers holding a snapshot
	// with a higher Seq must ignore older ones.
	Seq           uint64
	Query         string
	ActiveKeyword string
	State         FilterState
	Visibility    VisibilitySet
	AllHidden     bool
}

// Session is the single shared query of a listing. Controls (search box,
// keyword list, reset) dispatch SetQuery, SelectKeyword and Reset; every
// dispatch recomputes visibility with the FilterEngine and delivers the new
// Snapshot to subscribers in dispatch order.
//
// Subscribers run synchronously and must not dispatch to the same Session.
type Session struct {
	mu          sync.Mutex
	engine      *FilterEngine
	entries     []PostEntry
	last        Snapshot
	subscribers map[int]func(Snapshot)
	nextSubID   int

	// publish serializes dispatches so subscribers see snapshots in Seq order.
	publish sync.Mutex
}

// NewSession creates an idle Session over entries.
func NewSession(entries []PostEntry, opts ...FilterOption) *Session {
	s := &Session{
		engine:      NewFilterEngine(opts...),
		entries:     entries,
		subscribers: make(map[int]func(Snapshot)),
	}
	s.last = s.snapshot()
	return s
}

// Subscribe registers fn to receive every future Snapshot.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// SetQuery dispatches a free-text query.
func (s *Session) SetQuery(text string) Snapshot {
	return s.dispatch(func(e *FilterEngine) { e.SetQuery(text) })
}

// SelectKeyword dispatches a keyword selection.
func (s *Session) SelectKeyword(keyword string) Snapshot {
	return s.dispatch(func(e *FilterEngine) { e.SelectKeyword(keyword) })
}

// Reset dispatches a reset.
func (s *Session) Reset() Snapshot {
	return s.dispatch(func(e *FilterEngine) { e.Reset() })
}

// SetEntries replaces the entries and re-evaluates the current query.
func (s *Session) SetEntries(entries []PostEntry) Snapshot {
	return s.dispatchLocked(func() { s.entries = entries })
}

// Snapshot returns the most recent Snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Entries returns the entries the session filters.
func (s *Session) Entries() []PostEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// Keywords returns the distinct sorted keywords of the entries.
func (s *Session) Keywords() []string {
	return Keywords(s.Entries())
}

func (s *Session) dispatch(apply func(*FilterEngine)) Snapshot {
	return s.dispatchLocked(func() { apply(s.engine) })
}

func (s *Session) dispatchLocked(apply func()) Snapshot {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	apply()
	snap := s.snapshot()
	snap.Seq = s.last.Seq + 1
	s.last = snap
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// snapshot must be called with mu held.
func (s *Session) snapshot() Snapshot {
	set := s.engine.Evaluate(s.entries)
	return Snapshot{
		Seq:           s.last.Seq,
		Query:         s.engine.Query(),
		ActiveKeyword: s.engine.ActiveKeyword(),
		State:         s.engine.State(),
		Visibility:    set,
		AllHidden:     set.AllHidden(),
	}
}
