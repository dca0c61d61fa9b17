package pagination

import "strconv"

// Window layout constants.
const (
	maxVisiblePages = 7
	edgeSpan        = 5
	nearStart       = 4
	nearEnd         = 3
)

// Item is one slot in the page-button row: a page number or an ellipsis.
type Item struct {
	Page     int
	Ellipsis bool
}

func (i Item) String() string {
	if i.Ellipsis {
		return "..."
	}
	return strconv.Itoa(i.Page)
}

// Window returns the page buttons to show for current out of total pages.
//
// Up to seven pages are listed in full. Beyond that the first and last page
// are always shown, with the current page's neighborhood between ellipses:
//
//	1 2 3 4 5 ... 20       (current ≤ 4)
//	1 ... 16 17 18 19 20   (current ≥ total-3)
//	1 ... 9 10 11 ... 20   (otherwise)
func Window(current, total int) []Item {
	if total <= 0 {
		return nil
	}

	items := make([]Item, 0, maxVisiblePages)
	pages := func(from, to int) {
		for p := from; p <= to; p++ {
			items = append(items, Item{Page: p})
		}
	}
	ellipsis := func() { items = append(items, Item{Ellipsis: true}) }

	switch {
	case total <= maxVisiblePages:
		pages(1, total)
	case current <= nearStart:
		pages(1, edgeSpan)
		ellipsis()
		pages(total, total)
	case current >= total-nearEnd:
		pages(1, 1)
		ellipsis()
		pages(total-edgeSpan+1, total)
	default:
		pages(1, 1)
		ellipsis()
		pages(current-1, current+1)
		ellipsis()
		pages(total, total)
	}
	return items
}
