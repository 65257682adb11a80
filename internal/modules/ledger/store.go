// README: Ride ledger store backed by PostgreSQL.
package ledger

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"savaari/internal/types"
)

// Store persists rides one row per ride. Appending is a single INSERT inside
// its own transaction, so concurrent bookings for the same driver cannot lose
// writes; ordering within a driver follows the serial row id.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) AppendRide(ctx context.Context, ride *Ride) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO rides (
			driver_id, pickup, drop_off, passengers,
			ride_time, ride_date, is_night, is_hostel,
			fare, booked_at, passenger_name, passenger_phone,
			payment_status, cancelled
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14
		)`,
		string(ride.DriverID),
		ride.Pickup,
		ride.Drop,
		ride.Passengers,
		ride.Time,
		ride.Date,
		ride.Night,
		ride.Hostel,
		ride.Fare,
		ride.BookedAt,
		ride.PassengerName,
		ride.PassengerPhone,
		ride.PaymentStatus,
		ride.Cancelled,
	)
	return err
}

// ListByDriver returns the driver's full ride sequence in insertion order.
// An empty slice means the driver has never had a booking.
func (s *Store) ListByDriver(ctx context.Context, driverID types.ID) ([]Ride, error) {
	rows, err := s.db.Query(ctx, `
		SELECT driver_id, pickup, drop_off, passengers,
		       ride_time, ride_date, is_night, is_hostel,
		       fare, booked_at, passenger_name, passenger_phone,
		       payment_status, cancelled
		FROM rides
		WHERE driver_id = $1
		ORDER BY id`, string(driverID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rides []Ride
	for rows.Next() {
		var r Ride
		err := rows.Scan(
			&r.DriverID, &r.Pickup, &r.Drop, &r.Passengers,
			&r.Time, &r.Date, &r.Night, &r.Hostel,
			&r.Fare, &r.BookedAt, &r.PassengerName, &r.PassengerPhone,
			&r.PaymentStatus, &r.Cancelled,
		)
		if err != nil {
			return nil, err
		}
		rides = append(rides, r)
	}
	return rides, rows.Err()
}
