package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverBlocked(Date) bool { return false }

func TestClickFromEmpty(t *testing.T) {
	d := NewDate(2025, time.June, 10)

	s := Click(Selection{}, d, neverBlocked)
	assert.Equal(t, SelectionOne, s.State())
	assert.True(t, s.First.Equal(d))
	assert.True(t, s.Second.IsZero())
}

func TestClickCompletesRangeSorted(t *testing.T) {
	a := NewDate(2025, time.June, 15)
	b := NewDate(2025, time.June, 10)

	// Click later date first, earlier second: endpoints still come out sorted.
	s := Click(Selection{}, a, neverBlocked)
	s = Click(s, b, neverBlocked)
	require.Equal(t, SelectionRange, s.State())
	assert.Equal(t, "2025-06-10", s.First.String())
	assert.Equal(t, "2025-06-15", s.Second.String())

	// Opposite click order lands in the same range.
	s2 := Click(Click(Selection{}, b, neverBlocked), a, neverBlocked)
	assert.Equal(t, s, s2)
}

func TestClickFromRangeStartsOver(t *testing.T) {
	s := Selection{First: NewDate(2025, time.June, 10), Second: NewDate(2025, time.June, 15)}
	clicked := NewDate(2025, time.July, 1)

	next := Click(s, clicked, neverBlocked)
	assert.Equal(t, SelectionOne, next.State())
	assert.True(t, next.First.Equal(clicked))
	assert.True(t, next.Second.IsZero())
}

func TestClickBlockedDateIsNoOp(t *testing.T) {
	blockedDate := NewDate(2025, time.June, 20)
	blocked := func(d Date) bool { return d.Equal(blockedDate) }

	for _, s := range []Selection{
		{},
		{First: NewDate(2025, time.June, 10)},
		{First: NewDate(2025, time.June, 10), Second: NewDate(2025, time.June, 15)},
	} {
		assert.Equal(t, s, Click(s, blockedDate, blocked))
	}
}

func TestClickNilBlockedFn(t *testing.T) {
	d := NewDate(2025, time.June, 10)
	s := Click(Selection{}, d, nil)
	assert.Equal(t, SelectionOne, s.State())
}

func TestClickSameDateTwiceIsSingleDayRange(t *testing.T) {
	d := NewDate(2025, time.June, 10)
	s := Click(Click(Selection{}, d, neverBlocked), d, neverBlocked)
	require.Equal(t, SelectionRange, s.State())
	assert.Equal(t, 1, s.Interval().Days())
}

func TestSelectionStateString(t *testing.T) {
	assert.Equal(t, "empty", SelectionEmpty.String())
	assert.Equal(t, "one_selected", SelectionOne.String())
	assert.Equal(t, "range_selected", SelectionRange.String())
}
