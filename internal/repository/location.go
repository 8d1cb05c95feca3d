package repository

import (
	"context"
	"database/sql"

	"github.com/skycast/skycast-go/internal/model"
)

// LocationRepository persists per-user saved locations.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new LocationRepository.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Add inserts a location for a user and sets the generated ID on the struct.
func (r *LocationRepository) Add(ctx context.Context, loc *model.Location) error {
	query := `INSERT INTO locations (user_id, name) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, loc.UserID, loc.Name)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	loc.ID = id
	return nil
}

// ListByUser retrieves all locations owned by a user, ordered by insertion.
func (r *LocationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Location, error) {
	query := `SELECT id, user_id, name FROM locations WHERE user_id = ? ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		var loc model.Location
		if err := rows.Scan(&loc.ID, &loc.UserID, &loc.Name); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// Delete removes a location by id, scoped to its owning user. Deleting a
// location that does not exist or belongs to another user is not an error;
// the boolean reports whether a row actually went away.
func (r *LocationRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM locations WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
