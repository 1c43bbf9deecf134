package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromMidBottom builds a rect of size w×h whose bottom edge is centered on (x, y).
func RectFromMidBottom(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

// RectFromCenter builds a rect of size w×h centered on (x, y).
func RectFromCenter(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Recenter changes the size while keeping the center point.
func (r Rect) Recenter(w, h float64) Rect {
	return RectFromCenter(r.CenterX(), r.CenterY(), w, h)
}
