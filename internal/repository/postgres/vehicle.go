package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/pkg/errors"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) vehicle.Repository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `
		INSERT INTO vehicles (id, plate, make, model, year, kind, color, mileage, state,
			soat_expiry, roadworthiness_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Plate, v.Make, v.Model, v.Year, v.Kind, v.Color, v.Mileage, v.State,
		v.SOATExpiry, v.RoadworthinessExpiry, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create vehicle", err)
	}

	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	query := `
		SELECT id, plate, make, model, year, kind, color, mileage, state,
			soat_expiry, roadworthiness_expiry, created_at, updated_at
		FROM vehicles WHERE id = ?
	`

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Vehicle")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get vehicle", err)
	}

	return v, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	v.UpdatedAt = time.Now()

	query := `
		UPDATE vehicles SET plate = ?, make = ?, model = ?, year = ?, kind = ?, color = ?,
			mileage = ?, state = ?, soat_expiry = ?, roadworthiness_expiry = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		v.Plate, v.Make, v.Model, v.Year, v.Kind, v.Color,
		v.Mileage, v.State, v.SOATExpiry, v.RoadworthinessExpiry, v.UpdatedAt.Format(time.RFC3339), v.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update vehicle", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Vehicle")
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete vehicle", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Vehicle")
	}

	return nil
}

func (r *VehicleRepository) List(ctx context.Context, filter vehicle.Filter) ([]*vehicle.Vehicle, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.State != "" {
		where = append(where, "state = ?")
		args = append(args, filter.State)
	}
	if filter.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, filter.Kind)
	}

	query := fmt.Sprintf(`
		SELECT id, plate, make, model, year, kind, color, mileage, state,
			soat_expiry, roadworthiness_expiry, created_at, updated_at
		FROM vehicles WHERE %s ORDER BY plate
	`, strings.Join(where, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list vehicles", err)
	}
	defer rows.Close()

	vehicles := make([]*vehicle.Vehicle, 0, 50)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan vehicle", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func scanVehicle(row rowScanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	var createdAt string
	var updatedAt sql.NullString

	err := row.Scan(
		&v.ID, &v.Plate, &v.Make, &v.Model, &v.Year, &v.Kind, &v.Color, &v.Mileage, &v.State,
		&v.SOATExpiry, &v.RoadworthinessExpiry, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if updatedAt.Valid {
		v.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt.String)
	}

	return &v, nil
}
