// README: Booking service; verifies the claimed fare, appends to the ledger, then dispatches gateways.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"savaari/internal/modules/catalog"
	"savaari/internal/modules/directory"
	"savaari/internal/modules/fare"
	"savaari/internal/modules/ledger"
	"savaari/internal/types"
)

var (
	ErrMissingLocations = errors.New("both pickup and drop locations must be provided")
	ErrRouteNotFound    = errors.New("route not found")
	ErrDriverNotFound   = errors.New("driver not found")
)

// DispatchError reports a post-commit gateway failure. The ledger append has
// already committed when one of these is returned; nothing is rolled back.
type DispatchError struct {
	Gateway string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s dispatch failed after booking was recorded: %v", e.Gateway, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Notifier delivers a text payload to a driver device.
type Notifier interface {
	Notify(ctx context.Context, deviceToken, text string) error
}

// TripLogger appends a flat key-value record to the external booking log.
type TripLogger interface {
	AppendRecord(ctx context.Context, record map[string]string) error
}

// Ledger is the slice of the ride ledger this service needs.
type Ledger interface {
	Append(ctx context.Context, ride *ledger.Ride) error
}

// DispatchRecorder tracks which bookings have had their notification sent.
type DispatchRecorder interface {
	RecordDispatch(ctx context.Context, ref string) error
}

type Service struct {
	catalog   *catalog.Catalog
	resolver  *fare.Resolver
	directory *directory.Directory
	ledger    Ledger
	notifier  Notifier
	tripLog   TripLogger
	dispatch  DispatchRecorder
}

func NewService(
	cat *catalog.Catalog,
	resolver *fare.Resolver,
	dir *directory.Directory,
	led Ledger,
	notifier Notifier,
	tripLog TripLogger,
	dispatch DispatchRecorder,
) *Service {
	return &Service{
		catalog:   cat,
		resolver:  resolver,
		directory: dir,
		ledger:    led,
		notifier:  notifier,
		tripLog:   tripLog,
		dispatch:  dispatch,
	}
}

type BookCommand struct {
	Pickup         string
	Drop           string
	Passengers     int
	Time           string
	Date           string
	Night          bool
	Hostel         bool
	DriverID       types.ID
	ClaimedFare    int64
	PassengerName  string
	PassengerPhone string
}

// Confirmation echoes the resolved driver and the recorded trip.
type Confirmation struct {
	Ref    string
	Driver directory.Driver
	Ride   ledger.Ride
}

// Book runs the booking pipeline: re-derive the fare and compare it against
// the claimed one, then append to the driver's ledger, then notify. Any
// rejection happens before the append; gateway failures happen after it and
// are reported without undoing the write.
func (s *Service) Book(ctx context.Context, cmd BookCommand) (*Confirmation, error) {
	if cmd.Pickup == "" || cmd.Drop == "" {
		return nil, ErrMissingLocations
	}
	route, ok := s.catalog.FindRoute(cmd.Pickup, cmd.Drop)
	if !ok {
		return nil, ErrRouteNotFound
	}
	total, err := s.resolver.Verify(route, cmd.Passengers, cmd.Night, cmd.Hostel, cmd.ClaimedFare)
	if err != nil {
		return nil, err
	}
	drv, ok := s.directory.FindByID(cmd.DriverID)
	if !ok {
		return nil, ErrDriverNotFound
	}

	ride := &ledger.Ride{
		DriverID:       cmd.DriverID,
		Pickup:         route.Pickup,
		Drop:           route.Drop,
		Passengers:     cmd.Passengers,
		Time:           cmd.Time,
		Date:           cmd.Date,
		Night:          cmd.Night,
		Hostel:         cmd.Hostel,
		Fare:           total,
		BookedAt:       time.Now().UTC(),
		PassengerName:  cmd.PassengerName,
		PassengerPhone: cmd.PassengerPhone,
	}
	if err := s.ledger.Append(ctx, ride); err != nil {
		return nil, fmt.Errorf("append ride: %w", err)
	}

	ref := newRef()
	conf := &Confirmation{Ref: ref, Driver: drv, Ride: *ride}

	text := fmt.Sprintf("New booking %s: %s to %s, %s %s, %d passengers, fare %d Rs",
		ref, ride.Pickup, ride.Drop, ride.Date, ride.Time, ride.Passengers, ride.Fare)
	if err := s.notifier.Notify(ctx, drv.DeviceToken, text); err != nil {
		return conf, &DispatchError{Gateway: "notification", Err: err}
	}
	_ = s.dispatch.RecordDispatch(ctx, ref)

	if err := s.tripLog.AppendRecord(ctx, logRecord(ref, drv, ride)); err != nil {
		return conf, &DispatchError{Gateway: "trip log", Err: err}
	}
	return conf, nil
}

func logRecord(ref string, drv directory.Driver, ride *ledger.Ride) map[string]string {
	return map[string]string{
		"ref":             ref,
		"driver_id":       string(drv.ID),
		"driver_name":     drv.Name,
		"pickup":          ride.Pickup,
		"drop":            ride.Drop,
		"passengers":      fmt.Sprintf("%d", ride.Passengers),
		"time":            ride.Time,
		"date":            ride.Date,
		"night":           fmt.Sprintf("%t", ride.Night),
		"hostel":          fmt.Sprintf("%t", ride.Hostel),
		"fare":            fmt.Sprintf("%d", ride.Fare),
		"booked_at":       ride.BookedAt.Format(time.RFC3339),
		"passenger_name":  ride.PassengerName,
		"passenger_phone": ride.PassengerPhone,
	}
}

func newRef() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
