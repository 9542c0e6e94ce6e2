package views

import (
	"sync"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/core/domain"
)

// sessionViews is the view state one browser session keeps between requests.
type sessionViews struct {
	ledger        *PagedView
	journals      *PagedView
	journalSearch *Loader[*domain.JournalList]
}

// Registry hands out view state per session. Forget must be called when a
// session ends.
type Registry struct {
	searchDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionViews
}

// NewRegistry returns an empty registry whose search loaders wait searchDelay.
func NewRegistry(searchDelay time.Duration) *Registry {
	return &Registry{searchDelay: searchDelay, sessions: make(map[string]*sessionViews)}
}

func (r *Registry) get(sessionID string) *sessionViews {
	r.mu.Lock()
	defer r.mu.Unlock()
	sv, ok := r.sessions[sessionID]
	if !ok {
		sv = &sessionViews{
			ledger:        NewPagedView(domain.LedgerPageSize),
			journals:      NewPagedView(domain.JournalPageSize),
			journalSearch: NewLoader[*domain.JournalList](r.searchDelay),
		}
		r.sessions[sessionID] = sv
	}
	return sv
}

// Ledger is the session's ledger page state.
func (r *Registry) Ledger(sessionID string) *PagedView {
	return r.get(sessionID).ledger
}

// Journals is the session's journal list page state.
func (r *Registry) Journals(sessionID string) *PagedView {
	return r.get(sessionID).journals
}

// JournalSearch is the session's debounced journal search loader.
func (r *Registry) JournalSearch(sessionID string) *Loader[*domain.JournalList] {
	return r.get(sessionID).journalSearch
}

// Forget drops the session's view state and any pending search.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	sv, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	if ok {
		sv.journalSearch.Stop()
	}
}

// Len is the number of sessions with view state.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
