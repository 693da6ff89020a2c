package vxfw

// Pager is the position of a paginated widget: the current page and the
// number of pages
type Pager struct {
	Current int
	Total   int
}

// SinglePage is the pager of content which fits on one page
func SinglePage() Pager {
	return Pager{Current: 0, Total: 1}
}

func (p Pager) IsFirst() bool {
	return p.Current == 0
}

func (p Pager) IsLast() bool {
	return p.Current+1 >= p.Total
}

func (p Pager) HasPrev() bool {
	return !p.IsFirst()
}

func (p Pager) HasNext() bool {
	return !p.IsLast()
}

// Next returns the index of the following page, or the last page
func (p Pager) Next() int {
	if p.IsLast() {
		return p.Current
	}
	return p.Current + 1
}

// Prev returns the index of the preceding page, or the first page
func (p Pager) Prev() int {
	if p.IsFirst() {
		return 0
	}
	return p.Current - 1
}

// Paginate is implemented by widgets whose content is split into pages
type Paginate interface {
	// Pager returns the current page position
	Pager() Pager
	// ChangePage navigates to the page at index
	ChangePage(index int)
}
