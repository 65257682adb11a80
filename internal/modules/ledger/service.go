// README: Ledger service; appends confirmed rides and derives driver summaries.
package ledger

import (
	"context"
	"errors"

	"savaari/internal/modules/directory"
	"savaari/internal/types"
)

// ErrNoRides means the driver has no ledger entry yet.
var ErrNoRides = errors.New("no rides recorded for driver")

// UnknownDriverName is used when the ledger holds rides for an id the driver
// directory does not know. Ledger and directory are independent stores and
// may disagree.
const UnknownDriverName = "Unknown Driver"

type Service struct {
	store     *Store
	directory *directory.Directory
}

func NewService(store *Store, dir *directory.Directory) *Service {
	return &Service{store: store, directory: dir}
}

// Append records a confirmed ride. A driver's ledger is created implicitly by
// its first ride; no uniqueness check is applied, so a duplicate submission
// appends a duplicate entry.
func (s *Service) Append(ctx context.Context, ride *Ride) error {
	return s.store.AppendRide(ctx, ride)
}

// DriverSummary loads the driver's ride sequence and derives the aggregates.
func (s *Service) DriverSummary(ctx context.Context, driverID types.ID) (*DriverSummary, error) {
	rides, err := s.store.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if len(rides) == 0 {
		return nil, ErrNoRides
	}
	name := UnknownDriverName
	if drv, ok := s.directory.FindByID(driverID); ok {
		name = drv.Name
	}
	return &DriverSummary{
		DriverID:   driverID,
		DriverName: name,
		Summary:    Summarize(rides),
		Rides:      rides,
	}, nil
}
