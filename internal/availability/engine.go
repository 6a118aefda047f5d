package availability

import "strings"

// DefaultHorizonDays is how far ahead FindSoonestAvailable scans when the
// caller does not pick a horizon.
const DefaultHorizonDays = 365

// CategoryAll disables the trim filter.
const CategoryAll = "ALL"

// Vehicle is the engine's view of a fleet member.
type Vehicle struct {
	ID   int
	Trim string
}

// Booking is the engine's view of a reservation: one vehicle held for a
// closed date range.
type Booking struct {
	VehicleID int
	Start     Date
	End       Date
}

// Interval returns the booking's date range with endpoints sorted.
func (b Booking) Interval() Interval {
	return NewInterval(b.Start, b.End)
}

// BookedDatesForVehicle returns every date covered by a booking of the given
// vehicle. Intervals are walked day by day, both ends inclusive. A vehicle id
// no booking references yields an empty set.
func BookedDatesForVehicle(vehicleID int, bookings []Booking) map[Date]struct{} {
	booked := make(map[Date]struct{})
	for _, b := range bookings {
		if b.VehicleID != vehicleID {
			continue
		}
		iv := b.Interval()
		for d := iv.Start; !d.After(iv.End); d = d.AddDays(1) {
			booked[d] = struct{}{}
		}
	}
	return booked
}

// dayKey identifies one vehicle-day of occupancy.
type dayKey struct {
	vehicleID int
	date      Date
}

// Index is the (vehicle_id, date) occupancy set for one snapshot of the
// booking collection. Build it once per snapshot and reuse it across queries.
type Index struct {
	booked map[dayKey]struct{}
}

func NewIndex(bookings []Booking) *Index {
	booked := make(map[dayKey]struct{})
	for _, b := range bookings {
		iv := b.Interval()
		for d := iv.Start; !d.After(iv.End); d = d.AddDays(1) {
			booked[dayKey{vehicleID: b.VehicleID, date: d}] = struct{}{}
		}
	}
	return &Index{booked: booked}
}

// IsBooked reports whether the vehicle has a booking covering the date.
func (ix *Index) IsBooked(vehicleID int, d Date) bool {
	_, ok := ix.booked[dayKey{vehicleID: vehicleID, date: d}]
	return ok
}

// IsDateFullyBooked reports whether every candidate vehicle is booked on the
// date. An empty candidate set is never fully booked.
func (ix *Index) IsDateFullyBooked(d Date, candidates []Vehicle) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, v := range candidates {
		if !ix.IsBooked(v.ID, d) {
			return false
		}
	}
	return true
}

// IsDateFullyBooked is the one-shot form of Index.IsDateFullyBooked.
func IsDateFullyBooked(d Date, candidates []Vehicle, bookings []Booking) bool {
	return NewIndex(bookings).IsDateFullyBooked(d, candidates)
}

// IntervalCheck is the result of an availability check for one vehicle and
// one requested interval. When Available is false, ConflictStart and
// ConflictEnd are the earliest and latest already-booked dates inside the
// requested interval.
type IntervalCheck struct {
	Available     bool
	ConflictStart Date
	ConflictEnd   Date
}

// CheckInterval is the authoritative overlap check run before a booking is
// accepted. The interval is walked day by day against the vehicle's booked
// dates; the first and last colliding dates are reported so a caller can show
// which sub-range conflicts.
func CheckInterval(vehicleID int, iv Interval, bookings []Booking) IntervalCheck {
	booked := BookedDatesForVehicle(vehicleID, bookings)
	check := IntervalCheck{Available: true}
	for d := iv.Start; !d.After(iv.End); d = d.AddDays(1) {
		if _, ok := booked[d]; !ok {
			continue
		}
		check.Available = false
		if check.ConflictStart.IsZero() {
			check.ConflictStart = d
		}
		check.ConflictEnd = d
	}
	return check
}

// IsIntervalAvailable reports whether no date of the interval is booked for
// the vehicle.
func IsIntervalAvailable(vehicleID int, iv Interval, bookings []Booking) bool {
	return CheckInterval(vehicleID, iv, bookings).Available
}

// Slot is a vehicle free on a given date.
type Slot struct {
	VehicleID int  `json:"vehicle_id"`
	Date      Date `json:"date"`
}

// FindSoonestAvailable scans dates from searchStart through maxDaysAhead
// offsets inclusive and returns the first free (vehicle, date) pair. Earliest
// date wins; within a date, the first vehicle in candidate order wins. The
// second result is false when nothing is free inside the horizon; the search
// is never widened past it.
func FindSoonestAvailable(candidates []Vehicle, bookings []Booking, searchStart Date, maxDaysAhead int) (Slot, bool) {
	ix := NewIndex(bookings)
	for offset := 0; offset <= maxDaysAhead; offset++ {
		d := searchStart.AddDays(offset)
		for _, v := range candidates {
			if !ix.IsBooked(v.ID, d) {
				return Slot{VehicleID: v.ID, Date: d}, true
			}
		}
	}
	return Slot{}, false
}

// FilterByCategory narrows the fleet to a trim category. The category is a
// free-text tag matched by substring containment against Vehicle.Trim;
// "ALL" (any case) or an empty category keeps the whole fleet.
func FilterByCategory(vehicles []Vehicle, category string) []Vehicle {
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return vehicles
	}
	var filtered []Vehicle
	for _, v := range vehicles {
		if strings.Contains(v.Trim, category) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
