package ui

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Inner returns the rect inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Width:  max(r.Width-2, 0),
		Height: max(r.Height-2, 0),
	}
}

// Constraint sizes one row band of a vertical split.
type Constraint struct {
	min   bool
	value int
}

// Length is a band of exactly n rows.
func Length(n int) Constraint { return Constraint{value: n} }

// Min is a band taking the rows left by the fixed bands, at least n.
func Min(n int) Constraint { return Constraint{min: true, value: n} }

// SplitVertical divides area into horizontal bands, top to bottom. When the
// area is too short, bands are filled in order and the rest are clipped to zero.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	fixed := 0
	for _, c := range constraints {
		if !c.min {
			fixed += c.value
		}
	}

	out := make([]Rect, len(constraints))
	y := area.Y
	remaining := max(area.Height, 0)
	for i, c := range constraints {
		want := c.value
		if c.min {
			want = max(c.value, area.Height-fixed)
		}
		h := min(want, remaining)
		out[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
		remaining -= h
	}
	return out
}

// CenteredRect returns a rect of percentX by percentY of area, centered in it.
func CenteredRect(area Rect, percentX, percentY int) Rect {
	w := area.Width * percentX / 100
	h := area.Height * percentY / 100
	return Rect{
		X:      area.X + (area.Width-w)/2,
		Y:      area.Y + (area.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Clamp shrinks r to fit inside bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	x := max(r.X, bounds.X)
	y := max(r.Y, bounds.Y)
	right := min(r.X+r.Width, bounds.X+bounds.Width)
	bottom := min(r.Y+r.Height, bounds.Y+bounds.Height)
	return Rect{X: x, Y: y, Width: max(right-x, 0), Height: max(bottom-y, 0)}
}
