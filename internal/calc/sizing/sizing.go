// Package sizing holds the standard-size ladder lookups shared by the
// calculation engines. A ladder is an ascending sequence of manufacturable
// sizes (duct diameters, breaker amperages, pipe diameters); real quantities
// are snapped onto it.
package sizing

import "math"

// Entry is one rung of a capacity ladder: a size with the demand it can
// carry.
type Entry struct {
	Capacity float64
	Size     float64
}

// NextAtLeast returns the first ladder value >= req. If req exceeds the
// whole ladder, the largest value is returned instead of an error.
func NextAtLeast(ladder []float64, req float64) float64 {
	for _, v := range ladder {
		if v >= req {
			return v
		}
	}
	return ladder[len(ladder)-1]
}

// Closest returns the ladder value nearest to v. Ties resolve to the
// smaller size.
func Closest(ladder []float64, v float64) float64 {
	best := ladder[0]
	bestDiff := math.Abs(v - best)
	for _, s := range ladder[1:] {
		d := math.Abs(v - s)
		if d < bestDiff {
			best = s
			bestDiff = d
		}
	}
	return best
}

// SelectEntry returns the first entry whose capacity >= req, or the last
// entry when the ladder is exhausted.
func SelectEntry(entries []Entry, req float64) Entry {
	for _, e := range entries {
		if e.Capacity >= req {
			return e
		}
	}
	return entries[len(entries)-1]
}
