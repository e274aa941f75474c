package dates

import "time"

// Within reports whether day falls inside [start, end], inclusive on
// both ends, at day granularity. A nil bound means the record never
// matches.
func Within(day time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	d := Midnight(day)
	s := Midnight(*start)
	e := Midnight(*end)
	return !d.Before(s) && !d.After(e)
}

// Overlaps reports whether [start, end] shares at least one day with
// [periodStart, periodEnd]. All three cases count: the record starts
// inside the period, ends inside it, or spans it entirely.
func Overlaps(start, end *time.Time, periodStart, periodEnd time.Time) bool {
	if start == nil || end == nil {
		return false
	}
	s := Midnight(*start)
	e := Midnight(*end)
	ps := Midnight(periodStart)
	pe := Midnight(periodEnd)

	startsInside := !s.Before(ps) && !s.After(pe)
	endsInside := !e.Before(ps) && !e.After(pe)
	spans := s.Before(ps) && e.After(pe)

	return startsInside || endsInside || spans
}
