// README: Fare quote model and pricing constants.
package fare

const (
	// HostelSurcharge is the flat add-on when the trip ends at a hostel.
	HostelSurcharge = 50
	// PlatformFee is informational only; it is never part of the verified total.
	PlatformFee = 15

	MinPassengers = 1
	MaxPassengers = 5
)

// Quote is the resolved result of a fare request.
type Quote struct {
	Pickup     string
	Drop       string
	Distance   string
	Passengers int
	Night      bool
	Hostel     bool

	BaseFare    int64
	Total       int64
	PerPerson   float64
	PlatformFee int64
}
