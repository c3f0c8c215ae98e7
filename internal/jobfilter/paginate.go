package jobfilter

// PublicPageSize is the fixed page size of the public job listing.
const PublicPageSize = 9

// Ellipsis marks a collapsed run of pages in a page window.
const Ellipsis = -1

// Pager couples filter state with the current page. Any filter change
// resets the page to 1.
type Pager struct {
	filters Filters
	page    int
}

func NewPager() *Pager {
	return &Pager{page: 1}
}

func (p *Pager) Filters() Filters { return p.filters }
func (p *Pager) Page() int        { return p.page }

// SetFilters replaces the filter state and resets to page 1 if anything
// actually changed.
func (p *Pager) SetFilters(f Filters) {
	if p.filters != f {
		p.filters = f
		p.page = 1
	}
}

func (p *Pager) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// PageCount returns the number of pages for n items at the given size.
func PageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// PageBounds returns the [lo, hi) slice bounds for a page. Pages past
// the end come back empty.
func PageBounds(n, page, size int) (lo, hi int) {
	if page < 1 || size <= 0 {
		return 0, 0
	}
	lo = (page - 1) * size
	if lo >= n {
		return n, n
	}
	hi = lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}

// PageWindow produces the page numbers to render: the first and last
// page always, pages within ±2 of the current page, and Ellipsis where
// a run is collapsed.
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var out []int
	out = append(out, 1)
	lo, hi := current-2, current+2
	if lo < 2 {
		lo = 2
	}
	if hi > total-1 {
		hi = total - 1
	}
	if lo > 2 {
		out = append(out, Ellipsis)
	}
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	if hi < total-1 {
		out = append(out, Ellipsis)
	}
	if total > 1 {
		out = append(out, total)
	}
	return out
}
