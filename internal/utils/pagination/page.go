package pagination

// PageState tracks the 1-based page of an offset-paginated listing. Movement
// is gated by what the server last reported, never by local arithmetic.
type PageState struct {
	page    int
	limit   int
	hasNext bool
	hasPrev bool
}

// New returns a state positioned on page 1.
func New(limit int) *PageState {
	if limit <= 0 {
		limit = 1
	}
	return &PageState{page: 1, limit: limit}
}

// Page is the current 1-based page.
func (p *PageState) Page() int { return p.page }

// Limit is the page size.
func (p *PageState) Limit() int { return p.limit }

// Offset is the number of rows before the current page.
func (p *PageState) Offset() int { return (p.page - 1) * p.limit }

// HasNext reports whether the server said a next page exists.
func (p *PageState) HasNext() bool { return p.hasNext }

// HasPrev reports whether the server said a previous page exists.
func (p *PageState) HasPrev() bool { return p.hasPrev }

// Reset returns to page 1 and forgets the server flags. Call it whenever a
// filter changes.
func (p *PageState) Reset() {
	p.page = 1
	p.hasNext = false
	p.hasPrev = false
}

// Observe records the server's paging flags for the current page.
func (p *PageState) Observe(hasNext, hasPrev bool) {
	p.hasNext = hasNext
	p.hasPrev = hasPrev
}

// ObserveTotal derives the flags from a total row count, for listings whose
// server reports only a total.
func (p *PageState) ObserveTotal(total int) {
	p.hasNext = p.page*p.limit < total
	p.hasPrev = p.page > 1
}

// Next advances one page if the server allowed it.
func (p *PageState) Next() bool {
	if !p.hasNext {
		return false
	}
	p.page++
	p.hasNext, p.hasPrev = false, true
	return true
}

// Prev goes back one page if the server allowed it.
func (p *PageState) Prev() bool {
	if !p.hasPrev || p.page <= 1 {
		return false
	}
	p.page--
	p.hasNext = true
	p.hasPrev = p.page > 1
	return true
}

// Goto jumps to page, clamped to 1.
func (p *PageState) Goto(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// PageForOffset converts an offset into a 1-based page number.
func PageForOffset(offset, limit int) int {
	if limit <= 0 || offset < 0 {
		return 1
	}
	return offset/limit + 1
}
