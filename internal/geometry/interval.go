package geometry

import "slices"

// Epsilon is the shared tolerance for every interval comparison in the planner.
// Near-touching intervals (closer than this) are treated as touching so that
// obstacles tangent to a sweep line resolve deterministically instead of
// flickering between "blocked" and "free" on rounding noise.
const Epsilon = 1e-6

// Interval is a closed 1-D range [Start, End] on an axis.
type Interval struct {
	Start float64
	End   float64
}

func (iv Interval) Width() float64 { return iv.End - iv.Start }

// Merge combines a set of intervals into the minimal sorted set of disjoint
// intervals. Touching and overlapping inputs (within Epsilon) are fused.
// The input slice is not modified.
func Merge(intervals []Interval) []Interval {
	in := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Width() > -Epsilon {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}

	slices.SortFunc(in, func(a, b Interval) int {
		if a.Start < b.Start {
			return -1
		}
		if a.Start > b.Start {
			return 1
		}
		return 0
	})

	out := make([]Interval, 0, len(in))
	current := in[0]
	for _, iv := range in[1:] {
		if iv.Start <= current.End+Epsilon {
			if iv.End > current.End {
				current.End = iv.End
			}
			continue
		}
		out = append(out, current)
		current = iv
	}
	out = append(out, current)

	return out
}

// Subtract removes the hole intervals from the universe and returns the
// remaining intervals in ascending order. Holes are merged first, so they may
// be unsorted and overlapping. Results narrower than Epsilon are discarded.
func Subtract(universe Interval, holes []Interval) []Interval {
	if universe.Width() <= Epsilon {
		return nil
	}

	merged := Merge(holes)
	out := make([]Interval, 0, len(merged)+1)

	cursor := universe.Start
	for _, h := range merged {
		if h.End < universe.Start || h.Start > universe.End {
			continue
		}
		if h.Start > cursor+Epsilon {
			end := min(h.Start, universe.End)
			out = append(out, Interval{Start: cursor, End: end})
		}
		if h.End > cursor {
			cursor = h.End
		}
		if cursor >= universe.End-Epsilon {
			return out
		}
	}

	if cursor < universe.End-Epsilon {
		out = append(out, Interval{Start: cursor, End: universe.End})
	}

	return out
}
