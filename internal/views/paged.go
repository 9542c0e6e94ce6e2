package views

import (
	"sync"

	"github.com/SscSPs/ledger_dashboard/internal/platform/live"
	"github.com/SscSPs/ledger_dashboard/internal/utils/pagination"
)

// Nav is a paging move requested by the browser.
type Nav string

const (
	NavNone Nav = ""
	NavNext Nav = "next"
	NavPrev Nav = "prev"
)

// Request is one fetch issued by a PagedView. Token identifies it against
// later requests of the same view.
type Request struct {
	Token  uint64
	Page   int
	Limit  int
	Offset int
}

// PagedView holds the page state of one listing for one session. The filter
// key is whatever identifies the listing's filters; a new key starts over on
// page 1.
type PagedView struct {
	mu     sync.Mutex
	began  bool
	key    string
	page   *pagination.PageState
	seq    live.Sequence
	before snapshot
}

// snapshot is the state a view had before its latest Begin.
type snapshot struct {
	began bool
	key   string
	page  pagination.PageState
}

// NewPagedView returns a view on page 1 with the given page size.
func NewPagedView(limit int) *PagedView {
	return &PagedView{page: pagination.New(limit)}
}

// Begin positions the view for a fetch and returns the request to issue.
// A changed key always lands on page 1. Otherwise an explicit page wins over
// nav, and moves the server has not allowed are ignored.
func (v *PagedView) Begin(key string, nav Nav, page int) Request {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.before = snapshot{began: v.began, key: v.key, page: *v.page}
	changed := v.began && key != v.key
	v.began = true
	v.key = key
	if changed {
		v.page.Reset()
		return v.request()
	}
	switch {
	case page > 0:
		v.page.Goto(page)
	case nav == NavNext:
		v.page.Next()
	case nav == NavPrev:
		v.page.Prev()
	}
	return v.request()
}

// request must be called with mu held.
func (v *PagedView) request() Request {
	return Request{
		Token:  v.seq.Next(),
		Page:   v.page.Page(),
		Limit:  v.page.Limit(),
		Offset: v.page.Offset(),
	}
}

// Abort undoes the move made by the Begin that issued req, for a fetch that
// failed. It does nothing once a newer request has been issued.
func (v *PagedView) Abort(req Request) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.IsCurrent(req.Token) {
		return
	}
	v.began = v.before.began
	v.key = v.before.key
	*v.page = v.before.page
}

// Commit records the server's paging flags for req. It returns false, and
// changes nothing, when a newer request has been issued since.
func (v *PagedView) Commit(req Request, hasNext, hasPrev bool) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.IsCurrent(req.Token) {
		return false
	}
	v.page.Observe(hasNext, hasPrev)
	return true
}

// CommitTotal is Commit for listings that only report a total.
func (v *PagedView) CommitTotal(req Request, total int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seq.IsCurrent(req.Token) {
		return false
	}
	v.page.ObserveTotal(total)
	return true
}

// State returns the current page and the last committed flags.
func (v *PagedView) State() (page int, hasNext, hasPrev bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page.Page(), v.page.HasNext(), v.page.HasPrev()
}
