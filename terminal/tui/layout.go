package tui

import "fmt"

// Rect is a rectangle in absolute buffer coordinates
type Rect struct {
	X, Y, W, H int
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the absolute point lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rect by n on every side, never below zero size
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Direction is the axis a Split divides along
type Direction uint8

const (
	Horizontal Direction = iota // side by side, divides width
	Vertical                    // stacked, divides height
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ConstraintKind selects how a Constraint claims space
type ConstraintKind uint8

const (
	KindLength ConstraintKind = iota
	KindMin
	KindFill
)

// Constraint sizes one region of a Split
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Length claims exactly n cells, clamped to what is left
func Length(n int) Constraint { return Constraint{Kind: KindLength, Value: n} }

// Min claims at least n cells and shares leftover space when no Fill is present
func Min(n int) Constraint { return Constraint{Kind: KindMin, Value: n} }

// Fill shares leftover space in proportion to weight
func Fill(weight int) Constraint { return Constraint{Kind: KindFill, Value: weight} }

func (c Constraint) String() string {
	switch c.Kind {
	case KindLength:
		return fmt.Sprintf("len(%d)", c.Value)
	case KindMin:
		return fmt.Sprintf("min(%d)", c.Value)
	case KindFill:
		return fmt.Sprintf("fill(%d)", c.Value)
	default:
		return "invalid"
	}
}

// Split divides area along dir into len(cs) rects, in order, tiling area without overlap.
// Length and Min entries are served first in listed order, each clamped to the space left.
// The leftover goes to Fill entries by weight; with no Fill it is shared evenly among Min
// entries; with neither it is appended to the last rect.
func Split(area Rect, dir Direction, cs ...Constraint) []Rect {
	if len(cs) == 0 {
		return nil
	}
	if area.W < 0 {
		area.W = 0
	}
	if area.H < 0 {
		area.H = 0
	}

	total := area.W
	if dir == Vertical {
		total = area.H
	}

	sizes := make([]int, len(cs))
	remaining := total
	for i, c := range cs {
		if c.Kind != KindLength && c.Kind != KindMin {
			continue
		}
		n := c.Value
		if n < 0 {
			n = 0
		}
		if n > remaining {
			n = remaining
		}
		sizes[i] = n
		remaining -= n
	}

	if remaining > 0 {
		weights := make([]int, len(cs))
		sum := 0
		for i, c := range cs {
			if c.Kind == KindFill && c.Value > 0 {
				weights[i] = c.Value
				sum += c.Value
			}
		}
		if sum == 0 {
			for i, c := range cs {
				if c.Kind == KindMin {
					weights[i] = 1
					sum++
				}
			}
		}
		if sum == 0 {
			sizes[len(sizes)-1] += remaining
		} else {
			distribute(sizes, weights, sum, remaining)
		}
	}

	rects := make([]Rect, len(cs))
	offset := 0
	for i, n := range sizes {
		if dir == Vertical {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: n}
		} else {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, W: n, H: area.H}
		}
		offset += n
	}
	return rects
}

// distribute adds amount to sizes by weight using largest-remainder rounding.
// Ties go to the earlier index.
func distribute(sizes, weights []int, sum, amount int) {
	given := 0
	fracs := make([]int, len(weights))
	for i, w := range weights {
		if w == 0 {
			continue
		}
		share := amount * w / sum
		sizes[i] += share
		given += share
		fracs[i] = amount * w % sum
	}
	for left := amount - given; left > 0; left-- {
		best := -1
		for i, w := range weights {
			if w == 0 {
				continue
			}
			if best < 0 || fracs[i] > fracs[best] {
				best = i
			}
		}
		sizes[best]++
		fracs[best] = -1
	}
}

// Split divides the region along dir, returning one sub-region per constraint
func (r Region) Split(dir Direction, cs ...Constraint) []Region {
	rects := Split(r.Rect(), dir, cs...)
	regions := make([]Region, len(rects))
	for i, rect := range rects {
		regions[i] = r.Within(rect)
	}
	return regions
}

// SplitH splits region side by side by ratios, normalized against their sum
func SplitH(r Region, ratios ...float64) []Region {
	return r.Split(Horizontal, ratioConstraints(ratios)...)
}

// SplitV splits region top to bottom by ratios
func SplitV(r Region, ratios ...float64) []Region {
	return r.Split(Vertical, ratioConstraints(ratios)...)
}

// ratioConstraints maps ratios to Fill weights at per-mille resolution
func ratioConstraints(ratios []float64) []Constraint {
	cs := make([]Constraint, len(ratios))
	for i, ratio := range ratios {
		w := int(ratio*1000 + 0.5)
		if w < 0 {
			w = 0
		}
		cs[i] = Fill(w)
	}
	return cs
}

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	cols := outer.Split(Horizontal, Fill(1), Length(w), Fill(1))
	rows := cols[1].Split(Vertical, Fill(1), Length(h), Fill(1))
	return rows[1]
}
