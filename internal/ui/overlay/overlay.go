// Package overlay renders the modal option list a dropdown shows while open:
// a backdrop covering the whole screen with a centred, scrollable box of rows.
package overlay

// Rect is a screen-space rectangle in terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Fallback screen size used before the first window size message arrives
const (
	DefaultScreenWidth  = 80
	DefaultScreenHeight = 24
)

func screenSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultScreenWidth
	}
	if height <= 0 {
		height = DefaultScreenHeight
	}
	return width, height
}
