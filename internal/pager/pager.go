// Package pager computes the visible window of the project carousel
package pager

// Breakpoints for the viewport-derived page size
const (
	SmallWidth  = 640
	MediumWidth = 960
)

// PageSizeForWidth maps a viewport width to the number of visible slides.
// An unknown width (<= 0) is treated as a wide screen
func PageSizeForWidth(width int) int {
	switch {
	case width <= 0:
		return 3
	case width <= SmallWidth:
		return 1
	case width <= MediumWidth:
		return 2
	default:
		return 3
	}
}

// Pager is the paging geometry of a list of a given length
type Pager struct {
	length  int
	visible int
}

// New builds a pager for length items shown size at a time.
// The visible count never exceeds the list length (minimum 1)
func New(length, size int) Pager {
	if length < 0 {
		length = 0
	}
	if size < 1 {
		size = 1
	}
	return Pager{length: length, visible: min(size, max(length, 1))}
}

// Len returns the list length
func (p Pager) Len() int { return p.length }

// Visible returns the number of items shown at once
func (p Pager) Visible() int { return p.visible }

// PageCount is max(0, length - visible) + 1
func (p Pager) PageCount() int {
	return max(0, p.length-p.visible) + 1
}

// MaxIndex is the last valid page index
func (p Pager) MaxIndex() int {
	return p.PageCount() - 1
}

// Clamp brings index back into [0, MaxIndex]
func (p Pager) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if m := p.MaxIndex(); index > m {
		return m
	}
	return index
}

// Move steps index by step pages, wrapping around in both directions
func (p Pager) Move(index, step int) int {
	n := p.PageCount()
	i := (p.Clamp(index) + step) % n
	if i < 0 {
		i += n
	}
	return i
}

// Next advances one page, wrapping to the first page after the last
func (p Pager) Next(index int) int { return p.Move(index, 1) }

// Prev goes back one page, wrapping to the last page before the first
func (p Pager) Prev(index int) int { return p.Move(index, -1) }

// SlotWidth is the percentage width of one slide
func (p Pager) SlotWidth() float64 {
	return 100 / float64(p.visible)
}

// Offset is the percentage translation of the track for index
func (p Pager) Offset(index int) float64 {
	return float64(p.Clamp(index)) * p.SlotWidth()
}

// Window returns the [start, end) bounds of the items visible at index
func (p Pager) Window(index int) (start, end int) {
	start = p.Clamp(index)
	end = min(start+p.visible, p.length)
	return start, end
}
