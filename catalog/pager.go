package catalog

// Item is anything that can be filtered by category.
type Item interface {
	CategoryKey() string
}

// Pager derives the visible slice of a static catalog list from an active
// category filter and a visible-count cap. Changing the category resets
// the count to the pager's initial default.
type Pager[T Item] struct {
	data      []T
	active    string
	visible   int
	initial   int
	increment int
}

func NewPager[T Item](data []T, initial, increment int) *Pager[T] {
	return &Pager[T]{data: data, active: "all", visible: initial, initial: initial, increment: increment}
}

func (p *Pager[T]) ActiveCategory() string { return p.active }
func (p *Pager[T]) VisibleCount() int      { return p.visible }

// SetCategory changes the active filter and resets the visible count, so
// switching category never reveals more than the configured first page.
func (p *Pager[T]) SetCategory(category string) {
	p.active = category
	p.visible = p.initial
}

func (p *Pager[T]) filtered() []T {
	if p.active == "all" {
		return p.data
	}
	out := make([]T, 0, len(p.data))
	for _, item := range p.data {
		if item.CategoryKey() == p.active {
			out = append(out, item)
		}
	}
	return out
}

// Visible returns the filtered list truncated to the visible count.
func (p *Pager[T]) Visible() []T {
	items := p.filtered()
	if p.visible < len(items) {
		return items[:p.visible]
	}
	return items
}

// LoadMore grows the visible count by the increment, never past the true
// filtered count.
func (p *Pager[T]) LoadMore() {
	total := len(p.filtered())
	p.visible += p.increment
	if p.visible > total {
		p.visible = total
	}
}

func (p *Pager[T]) CanLoadMore() bool {
	return p.visible < len(p.filtered())
}
