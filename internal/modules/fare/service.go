// README: Fare resolver and verifier over the route catalog.
package fare

import (
	"errors"
	"fmt"
	"strconv"

	"savaari/internal/modules/catalog"
)

var (
	// ErrPassengerCount rejects counts outside [1,5].
	ErrPassengerCount = errors.New("passenger count must be between 1 and 5")
	// ErrFareUnavailable marks a route with no price cell for the derived fare code.
	ErrFareUnavailable = errors.New("fare unavailable for this passenger count on this route")
	// ErrBadFareData marks a price cell that is not a valid integer literal.
	// This is a data authoring bug, not a client error.
	ErrBadFareData = errors.New("malformed fare data")
)

// MismatchError reports a client-claimed fare that disagrees with the
// server-computed one. Both values ride along for the response payload.
type MismatchError struct {
	Claimed  int64
	Computed int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("claimed fare %d does not match computed fare %d", e.Claimed, e.Computed)
}

// Resolver computes quotes from catalog routes. It holds no mutable state;
// Resolve is pure and deterministic for a fixed catalog.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// fareCode derives the 2-character price cell selector. Counts 1 and 2 share
// a cell; the N-prefixed variant applies at night.
func fareCode(passengers int, night bool) (string, bool) {
	if passengers < MinPassengers || passengers > MaxPassengers {
		return "", false
	}
	n := passengers
	if n == 1 {
		n = 2
	}
	code := strconv.Itoa(n)
	if night {
		code = "N" + code
	}
	return code, true
}

// Resolve computes the fare for a route: base fare from the price cell
// selected by passenger count and the night flag, plus the hostel surcharge.
// The per-person share keeps the real division result.
func (r *Resolver) Resolve(route catalog.Route, passengers int, night, hostel bool) (*Quote, error) {
	code, ok := fareCode(passengers, night)
	if !ok {
		return nil, ErrPassengerCount
	}
	cell, ok := route.Cell(code)
	if !ok || cell == "" {
		return nil, ErrFareUnavailable
	}
	base, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("price cell %q for code %s on %s-%s: %w", cell, code, route.Pickup, route.Drop, ErrBadFareData)
	}
	total := base
	if hostel {
		total += HostelSurcharge
	}
	return &Quote{
		Pickup:      route.Pickup,
		Drop:        route.Drop,
		Distance:    route.Distance,
		Passengers:  passengers,
		Night:       night,
		Hostel:      hostel,
		BaseFare:    base,
		Total:       total,
		PerPerson:   float64(total) / float64(passengers),
		PlatformFee: PlatformFee,
	}, nil
}

// Verify recomputes the fare and compares it against the client-claimed value
// with exact integer equality. On success the computed total is returned and
// becomes the authoritative fare; the claimed value is never trusted further.
func (r *Resolver) Verify(route catalog.Route, passengers int, night, hostel bool, claimed int64) (int64, error) {
	q, err := r.Resolve(route, passengers, night, hostel)
	if err != nil {
		return 0, err
	}
	if q.Total != claimed {
		return 0, &MismatchError{Claimed: claimed, Computed: q.Total}
	}
	return q.Total, nil
}
