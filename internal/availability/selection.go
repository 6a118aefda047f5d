package availability

// SelectionState is the state of an interactive date-range selection.
type SelectionState int

const (
	SelectionEmpty SelectionState = iota
	SelectionOne
	SelectionRange
)

func (s SelectionState) String() string {
	switch s {
	case SelectionEmpty:
		return "empty"
	case SelectionOne:
		return "one_selected"
	case SelectionRange:
		return "range_selected"
	}
	return "unknown"
}

// Selection holds up to two chosen dates. The zero value is the empty
// selection. With two dates chosen, First <= Second.
type Selection struct {
	First  Date `json:"first,omitempty"`
	Second Date `json:"second,omitempty"`
}

func (s Selection) State() SelectionState {
	switch {
	case s.First.IsZero():
		return SelectionEmpty
	case s.Second.IsZero():
		return SelectionOne
	default:
		return SelectionRange
	}
}

// Interval returns the selected range. Valid only in the SelectionRange state.
func (s Selection) Interval() Interval {
	return NewInterval(s.First, s.Second)
}

// Click is the selection reducer. Clicking a blocked date changes nothing.
// From empty or a full range, the clicked date starts a fresh single-date
// selection; from a single date, the click completes the range with the
// endpoints in chronological order. No availability validation happens here:
// a completed range must still pass CheckInterval before a booking is
// confirmed.
func Click(s Selection, clicked Date, blocked func(Date) bool) Selection {
	if blocked != nil && blocked(clicked) {
		return s
	}
	switch s.State() {
	case SelectionOne:
		if clicked.Before(s.First) {
			return Selection{First: clicked, Second: s.First}
		}
		return Selection{First: s.First, Second: clicked}
	default:
		return Selection{First: clicked}
	}
}
