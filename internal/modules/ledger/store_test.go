package ledger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"savaari/internal/modules/directory"
	"savaari/internal/types"
)

func TestAppendIsMonotonic(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	driverID := types.ID("d_monotonic")

	const n = 4
	for i := 0; i < n; i++ {
		if err := store.AppendRide(ctx, testRide(driverID, fmt.Sprintf("passenger %d", i))); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		rides, err := store.ListByDriver(ctx, driverID)
		if err != nil {
			t.Fatalf("list after append %d: %v", i, err)
		}
		if len(rides) != i+1 {
			t.Fatalf("expected %d rides after %d appends, got %d", i+1, i+1, len(rides))
		}
	}

	// Insertion order is preserved.
	rides, err := store.ListByDriver(ctx, driverID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, r := range rides {
		if want := fmt.Sprintf("passenger %d", i); r.PassengerName != want {
			t.Fatalf("ride %d: expected %q, got %q", i, want, r.PassengerName)
		}
		if r.PaymentStatus || r.Cancelled {
			t.Fatalf("ride %d: expected fresh ride unpaid and not cancelled", i)
		}
	}
}

func TestDuplicateSubmissionsAppendDuplicates(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	driverID := types.ID("d_dup")

	ride := testRide(driverID, "same passenger")
	for i := 0; i < 2; i++ {
		if err := store.AppendRide(ctx, ride); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	rides, err := store.ListByDriver(ctx, driverID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("expected duplicate submission to create 2 entries, got %d", len(rides))
	}
}

func TestConcurrentAppendsForSameDriver(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	driverID := types.ID("d_concurrent")

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- store.AppendRide(ctx, testRide(driverID, fmt.Sprintf("p%d", i)))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent append: %v", err)
		}
	}

	rides, err := store.ListByDriver(ctx, driverID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rides) != n {
		t.Fatalf("expected %d rides after %d concurrent appends, got %d", n, n, len(rides))
	}
}

func TestDriverSummary(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	dir := directory.New([]directory.Driver{{ID: "d_sum", Name: "Ramesh Kumar"}})
	svc := NewService(store, dir)

	if _, err := svc.DriverSummary(ctx, "d_sum"); !errors.Is(err, ErrNoRides) {
		t.Fatalf("expected ErrNoRides before first booking, got %v", err)
	}

	if err := svc.Append(ctx, testRide("d_sum", "first passenger")); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := svc.DriverSummary(ctx, "d_sum")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.DriverName != "Ramesh Kumar" {
		t.Fatalf("expected directory name, got %q", got.DriverName)
	}
	if got.TotalRides != 1 || got.RidesPaid != 0 || got.BalanceDue != 10 {
		t.Fatalf("unexpected aggregates: %+v", got.Summary)
	}
	if len(got.Rides) != 1 {
		t.Fatalf("expected ride sequence in summary, got %d entries", len(got.Rides))
	}
}

func TestDriverSummaryUnknownDriverName(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	// Ledger and directory are independent stores; the ledger may hold rides
	// for an id the directory never heard of.
	svc := NewService(store, directory.New(nil))

	if err := svc.Append(ctx, testRide("d_ghost", "somebody")); err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := svc.DriverSummary(ctx, "d_ghost")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.DriverName != UnknownDriverName {
		t.Fatalf("expected %q fallback, got %q", UnknownDriverName, got.DriverName)
	}
}

func testRide(driverID types.ID, passenger string) *Ride {
	return &Ride{
		DriverID:       driverID,
		Pickup:         "Campus Gate",
		Drop:           "Railway Station",
		Passengers:     2,
		Time:           "18:30",
		Date:           "2026-09-01",
		Fare:           100,
		BookedAt:       time.Now().UTC(),
		PassengerName:  passenger,
		PassengerPhone: "+91-9876500000",
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("SAVAARI_TEST_DSN")
	if dsn == "" {
		t.Skip("SAVAARI_TEST_DSN not set; skipping DB-backed ledger tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE rides"); err != nil {
		t.Fatalf("truncate rides: %v", err)
	}

	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(stripSQLComments(string(content))) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
