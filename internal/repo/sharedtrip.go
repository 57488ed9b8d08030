// Package repo contains all database access for the trip sync server.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"tripmate/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting it instead of *pgxpool.Pool lets integration tests
// pass a transaction that is rolled back after each test, giving free
// per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SharedTripRepo defines the persistence operations for shared trip records.
// The service layer depends on this interface, not the Postgres
// implementation, so it can be unit-tested with a mock.
type SharedTripRepo interface {
	// Create inserts a new shared trip with empty expenses and itinerary
	// and returns the persisted record (with DB-generated id and updated_at).
	Create(ctx context.Context, trip domain.NewSharedTrip) (domain.SharedTrip, error)

	// GetByID retrieves a shared trip by its UUID primary key.
	// Returns domain.ErrNotFound if no record with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.SharedTrip, error)

	// Update applies a field-group partial update: only the set fields of
	// the patch are written, and updated_at is always refreshed — even for
	// an empty patch. Returns domain.ErrNotFound if the id matches no row.
	Update(ctx context.Context, id uuid.UUID, patch domain.SharedTripPatch) (domain.SharedTrip, error)
}

// pgSharedTripRepo is the Postgres implementation of SharedTripRepo.
type pgSharedTripRepo struct {
	db db
}

// NewSharedTripRepo constructs a SharedTripRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewSharedTripRepo(db db) SharedTripRepo {
	return &pgSharedTripRepo{db: db}
}

const sharedTripColumns = "id, destination, start_date, end_date, places, expenses, itinerary, updated_at"

// Create inserts a new record. Expenses and itinerary start as empty
// arrays regardless of input; only the places snapshot travels with
// creation.
func (r *pgSharedTripRepo) Create(ctx context.Context, trip domain.NewSharedTrip) (domain.SharedTrip, error) {
	const q = `
		INSERT INTO shared_trips (destination, start_date, end_date, places, expenses, itinerary)
		VALUES (@destination, @start_date, @end_date, @places, '[]', '[]')
		RETURNING ` + sharedTripColumns

	places := trip.Places
	if places == nil {
		places = json.RawMessage("[]")
	}

	args := pgx.NamedArgs{
		"destination": trip.Destination,
		"start_date":  dateArg(trip.StartDate),
		"end_date":    dateArg(trip.EndDate),
		"places":      []byte(places),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSharedTrip(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.SharedTripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a record by primary key.
func (r *pgSharedTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SharedTrip, error) {
	const q = `SELECT ` + sharedTripColumns + ` FROM shared_trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanSharedTrip(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.SharedTripRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update writes only the field-groups set on the patch, building the SET
// list dynamically so omitted columns keep their current value. updated_at
// is stamped unconditionally: a successful update always moves it, even
// when no content field changed.
func (r *pgSharedTripRepo) Update(ctx context.Context, id uuid.UUID, patch domain.SharedTripPatch) (domain.SharedTrip, error) {
	set := []string{"updated_at = now()"}
	args := pgx.NamedArgs{"id": id}

	if patch.Places.Valid {
		set = append(set, "places = @places")
		args["places"] = patchValue(patch.Places)
	}
	if patch.Expenses.Valid {
		set = append(set, "expenses = @expenses")
		args["expenses"] = patchValue(patch.Expenses)
	}
	if patch.Itinerary.Valid {
		set = append(set, "itinerary = @itinerary")
		args["itinerary"] = patchValue(patch.Itinerary)
	}

	q := fmt.Sprintf(`UPDATE shared_trips SET %s WHERE id = @id RETURNING %s`,
		strings.Join(set, ", "), sharedTripColumns)

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSharedTrip(row)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("repo.SharedTripRepo.Update: %w", err)
	}
	return result, nil
}

// patchValue returns the bytes to store for a set patch field.
// A set field with no value stores JSON null, mirroring a client that
// explicitly sent null.
func patchValue(f domain.PatchField) []byte {
	if f.Value == nil {
		return []byte("null")
	}
	return []byte(f.Value)
}

// dateArg maps a zero time to NULL so records without dates store NULL
// rather than year 1.
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanSharedTrip maps a database row into a domain.SharedTrip,
// handling the UUID and the nullable date columns.
func scanSharedTrip(s scanner) (domain.SharedTrip, error) {
	var (
		t         domain.SharedTrip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
		places    []byte
		expenses  []byte
		itinerary []byte
	)

	err := s.Scan(&id, &t.Destination, &startDate, &endDate, &places, &expenses, &itinerary, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SharedTrip{}, domain.ErrNotFound
		}
		return domain.SharedTrip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if startDate.Valid {
		t.StartDate = startDate.Time
	}
	if endDate.Valid {
		t.EndDate = endDate.Time
	}
	t.Places = json.RawMessage(places)
	t.Expenses = json.RawMessage(expenses)
	t.Itinerary = json.RawMessage(itinerary)

	return t, nil
}
