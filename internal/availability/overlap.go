package availability

import "time"

// Interval is an obstruction window [Start, End) in absolute time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Conflicts reports whether the candidate [start, end) collides with the obstruction.
//
// Boundary rules:
//   - a candidate starting exactly when the obstruction starts collides;
//   - a candidate starting exactly when the obstruction ends is free;
//   - a candidate ending exactly when the obstruction starts is free;
//   - a candidate ending exactly when the obstruction ends collides.
//
// These four cases alone would let a long candidate straddle a short obstruction
// (a 60-minute slot around a 15-minute block). The containment clause below
// deliberately goes beyond them and treats a candidate that strictly contains
// the obstruction as a collision; none of the boundary cases above change.
func (o Interval) Conflicts(start, end time.Time) bool {
	startsInside := !start.Before(o.Start) && start.Before(o.End)
	endsInside := end.After(o.Start) && !end.After(o.End)
	covers := start.Before(o.Start) && end.After(o.End)
	return startsInside || endsInside || covers
}

func conflictsAny(start, end time.Time, obstructions []Interval) bool {
	for _, o := range obstructions {
		if o.Conflicts(start, end) {
			return true
		}
	}
	return false
}
