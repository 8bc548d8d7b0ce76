package grid

// Cell is the state of one grid cell. The zero value is [Background].
type Cell struct{ rank uint8 }

// The four cell states, in promotion order.
var (
	Background = Cell{0}
	Floor      = Cell{1}
	Wall       = Cell{2}
	Door       = Cell{3}
)

// String returns the state name.
func (c Cell) String() string {
	switch c {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Door:
		return "door"
	}
	return "background"
}

// Rune returns the character used in text dumps.
func (c Cell) Rune() rune {
	switch c {
	case Floor:
		return '.'
	case Wall:
		return '#'
	case Door:
		return '+'
	}
	return ' '
}

// Passable reports whether a walker can stand on the cell.
func (c Cell) Passable() bool { return c == Floor || c == Door }

// CanBecome reports whether c may be promoted to next. Staying put is allowed.
func (c Cell) CanBecome(next Cell) bool { return next.rank >= c.rank }
