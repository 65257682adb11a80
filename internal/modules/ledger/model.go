// README: Ride ledger entries and derived per-driver aggregates.
package ledger

import (
	"time"

	"savaari/internal/types"
)

// BalancePerRide is the amount a driver owes the platform per unpaid,
// non-cancelled ride.
const BalancePerRide = 10

// Ride is one confirmed booking. Rides are append-only: after a successful
// booking writes one, nothing in this service mutates it. PaymentStatus and
// Cancelled exist in the schema for a settlement path that lives outside this
// service; both default to false at creation.
type Ride struct {
	DriverID       types.ID  `json:"-"`
	Pickup         string    `json:"pickup"`
	Drop           string    `json:"drop"`
	Passengers     int       `json:"passengers"`
	Time           string    `json:"time"`
	Date           string    `json:"date"`
	Night          bool      `json:"isNight"`
	Hostel         bool      `json:"isHostel"`
	Fare           int64     `json:"fare"`
	BookedAt       time.Time `json:"bookedAt"`
	PassengerName  string    `json:"passengerName"`
	PassengerPhone string    `json:"passengerPhone"`
	PaymentStatus  bool      `json:"paymentStatus"`
	Cancelled      bool      `json:"cancelled"`
}

// Summary holds the aggregates derived from a driver's ride sequence. They are
// computed on read and never stored.
type Summary struct {
	TotalRides  int
	RidesPaid   int
	UnpaidCount int
	BalanceDue  int64
}

// DriverSummary is the full rides query result: aggregates, display name, and
// the ride sequence in insertion order.
type DriverSummary struct {
	DriverID   types.ID
	DriverName string
	Summary
	Rides []Ride
}

// Summarize derives the aggregates from a ride sequence. Cancelled rides and
// paid rides carry no balance.
func Summarize(rides []Ride) Summary {
	s := Summary{TotalRides: len(rides)}
	for _, r := range rides {
		if !r.PaymentStatus && !r.Cancelled {
			s.UnpaidCount++
		}
	}
	s.RidesPaid = s.TotalRides - s.UnpaidCount
	s.BalanceDue = int64(s.UnpaidCount) * BalancePerRide
	return s
}
