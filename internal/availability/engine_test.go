package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestBookedDatesForVehicle(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-06-10"), End: mustDate(t, "2025-06-12")},
		{VehicleID: 2, Start: mustDate(t, "2025-06-11"), End: mustDate(t, "2025-06-11")},
	}

	booked := BookedDatesForVehicle(1, bookings)
	assert.Len(t, booked, 3)
	for _, s := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
		_, ok := booked[mustDate(t, s)]
		assert.True(t, ok, "expected %s booked", s)
	}
	_, ok := booked[mustDate(t, "2025-06-13")]
	assert.False(t, ok)
}

func TestBookedDatesForUnknownVehicle(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-06-10"), End: mustDate(t, "2025-06-12")},
	}
	assert.Empty(t, BookedDatesForVehicle(99, bookings))
}

// Every interval with start <= end yields exactly end-start+1 dates, all
// inside the interval.
func TestBookedDatesCountProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := NewDate(2025, time.January, 1)

	for i := 0; i < 100; i++ {
		start := base.AddDays(rng.Intn(300))
		length := rng.Intn(40)
		end := start.AddDays(length)
		bookings := []Booking{{VehicleID: 7, Start: start, End: end}}

		booked := BookedDatesForVehicle(7, bookings)
		require.Len(t, booked, length+1)
		iv := Interval{Start: start, End: end}
		for d := range booked {
			assert.True(t, iv.Contains(d))
		}
	}
}

func TestBookedDatesNormalizesReversedInterval(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-06-12"), End: mustDate(t, "2025-06-10")},
	}
	assert.Len(t, BookedDatesForVehicle(1, bookings), 3)
}

func TestIsDateFullyBooked(t *testing.T) {
	vehicles := []Vehicle{{ID: 1, Trim: "XLT"}, {ID: 2, Trim: "PRO"}}
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-07-01"), End: mustDate(t, "2025-07-01")},
	}

	// Only V1 booked: not fully booked across {V1, V2}.
	assert.False(t, IsDateFullyBooked(mustDate(t, "2025-07-01"), vehicles, bookings))

	bookings = append(bookings, Booking{VehicleID: 2, Start: mustDate(t, "2025-07-01"), End: mustDate(t, "2025-07-02")})
	assert.True(t, IsDateFullyBooked(mustDate(t, "2025-07-01"), vehicles, bookings))
	assert.False(t, IsDateFullyBooked(mustDate(t, "2025-07-02"), vehicles, bookings))
}

func TestIsDateFullyBookedEmptyCandidates(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-07-01"), End: mustDate(t, "2025-07-10")},
	}
	assert.False(t, IsDateFullyBooked(mustDate(t, "2025-07-01"), nil, bookings))
	assert.False(t, IsDateFullyBooked(mustDate(t, "2025-07-01"), []Vehicle{}, bookings))
}

func TestCheckIntervalConflictRange(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-06-10"), End: mustDate(t, "2025-06-12")},
	}

	check := CheckInterval(1, NewInterval(mustDate(t, "2025-06-11"), mustDate(t, "2025-06-13")), bookings)
	assert.False(t, check.Available)
	assert.Equal(t, "2025-06-11", check.ConflictStart.String())
	assert.Equal(t, "2025-06-12", check.ConflictEnd.String())
}

func TestCheckIntervalAvailable(t *testing.T) {
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-06-10"), End: mustDate(t, "2025-06-12")},
	}

	check := CheckInterval(1, NewInterval(mustDate(t, "2025-06-13"), mustDate(t, "2025-06-15")), bookings)
	assert.True(t, check.Available)
	assert.True(t, check.ConflictStart.IsZero())
	assert.True(t, check.ConflictEnd.IsZero())

	// Another vehicle's booking never blocks.
	assert.True(t, IsIntervalAvailable(2, NewInterval(mustDate(t, "2025-06-10"), mustDate(t, "2025-06-12")), bookings))
}

// IsIntervalAvailable must be the exact negation of interval intersection
// against the vehicle's bookings.
func TestIntervalAvailabilityMatchesIntersection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := NewDate(2025, time.March, 1)

	randomInterval := func() Interval {
		start := base.AddDays(rng.Intn(120))
		return Interval{Start: start, End: start.AddDays(rng.Intn(14))}
	}

	for i := 0; i < 200; i++ {
		existing := randomInterval()
		requested := randomInterval()
		bookings := []Booking{{VehicleID: 3, Start: existing.Start, End: existing.End}}

		intersects := !requested.End.Before(existing.Start) && !requested.Start.After(existing.End)
		got := IsIntervalAvailable(3, requested, bookings)
		require.Equal(t, !intersects, got,
			"existing [%s,%s] requested [%s,%s]",
			existing.Start, existing.End, requested.Start, requested.End)
	}
}

func TestFindSoonestAvailable(t *testing.T) {
	vehicles := []Vehicle{{ID: 1, Trim: "XLT"}, {ID: 2, Trim: "PRO"}}
	start := mustDate(t, "2025-08-01")
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-08-01"), End: mustDate(t, "2025-08-03")},
		{VehicleID: 2, Start: mustDate(t, "2025-08-01"), End: mustDate(t, "2025-08-02")},
	}

	// 08-03: V1 still booked, V2 free. Earliest date wins over vehicle order.
	slot, found := FindSoonestAvailable(vehicles, bookings, start, DefaultHorizonDays)
	require.True(t, found)
	assert.Equal(t, 2, slot.VehicleID)
	assert.Equal(t, "2025-08-03", slot.Date.String())
}

func TestFindSoonestAvailablePrefersCandidateOrder(t *testing.T) {
	vehicles := []Vehicle{{ID: 5}, {ID: 6}}
	start := mustDate(t, "2025-08-01")

	// Both free immediately: first candidate wins.
	slot, found := FindSoonestAvailable(vehicles, nil, start, DefaultHorizonDays)
	require.True(t, found)
	assert.Equal(t, 5, slot.VehicleID)
	assert.Equal(t, start.String(), slot.Date.String())
}

func TestFindSoonestAvailableHorizonBounds(t *testing.T) {
	vehicles := []Vehicle{{ID: 1}}
	start := mustDate(t, "2025-08-01")
	bookings := []Booking{
		{VehicleID: 1, Start: start, End: start.AddDays(9)},
	}

	slot, found := FindSoonestAvailable(vehicles, bookings, start, 30)
	require.True(t, found)
	assert.False(t, slot.Date.Before(start))
	assert.False(t, slot.Date.After(start.AddDays(30)))
	assert.Equal(t, start.AddDays(10).String(), slot.Date.String())
}

func TestFindSoonestAvailableNotFound(t *testing.T) {
	vehicles := []Vehicle{{ID: 1}}
	start := mustDate(t, "2025-08-01")
	bookings := []Booking{
		{VehicleID: 1, Start: start, End: start.AddDays(DefaultHorizonDays)},
	}

	_, found := FindSoonestAvailable(vehicles, bookings, start, DefaultHorizonDays)
	assert.False(t, found)

	// No candidates at all: nothing can ever be free.
	_, found = FindSoonestAvailable(nil, nil, start, DefaultHorizonDays)
	assert.False(t, found)
}

func TestFindSoonestAvailableInclusiveHorizonEdge(t *testing.T) {
	vehicles := []Vehicle{{ID: 1}}
	start := mustDate(t, "2025-08-01")
	bookings := []Booking{
		// Booked through day start+maxDaysAhead-1; the last offset is free.
		{VehicleID: 1, Start: start, End: start.AddDays(4)},
	}

	slot, found := FindSoonestAvailable(vehicles, bookings, start, 5)
	require.True(t, found)
	assert.Equal(t, start.AddDays(5).String(), slot.Date.String())
}

func TestFilterByCategory(t *testing.T) {
	vehicles := []Vehicle{
		{ID: 1, Trim: "XLT Sport"},
		{ID: 2, Trim: "PRO"},
		{ID: 3, Trim: "XLT"},
	}

	assert.Len(t, FilterByCategory(vehicles, "ALL"), 3)
	assert.Len(t, FilterByCategory(vehicles, "all"), 3)
	assert.Len(t, FilterByCategory(vehicles, ""), 3)

	xlt := FilterByCategory(vehicles, "XLT")
	require.Len(t, xlt, 2)
	assert.Equal(t, 1, xlt[0].ID)
	assert.Equal(t, 3, xlt[1].ID)

	pro := FilterByCategory(vehicles, "PRO")
	require.Len(t, pro, 1)
	assert.Equal(t, 2, pro[0].ID)

	assert.Empty(t, FilterByCategory(vehicles, "LIMITED"))
}

func TestIndexMatchesOneShotQueries(t *testing.T) {
	vehicles := []Vehicle{{ID: 1}, {ID: 2}}
	bookings := []Booking{
		{VehicleID: 1, Start: mustDate(t, "2025-09-01"), End: mustDate(t, "2025-09-05")},
		{VehicleID: 2, Start: mustDate(t, "2025-09-03"), End: mustDate(t, "2025-09-04")},
	}

	ix := NewIndex(bookings)
	for d := mustDate(t, "2025-08-30"); !d.After(mustDate(t, "2025-09-07")); d = d.AddDays(1) {
		assert.Equal(t, IsDateFullyBooked(d, vehicles, bookings), ix.IsDateFullyBooked(d, vehicles))
		for _, v := range vehicles {
			_, booked := BookedDatesForVehicle(v.ID, bookings)[d]
			assert.Equal(t, booked, ix.IsBooked(v.ID, d))
		}
	}
}
