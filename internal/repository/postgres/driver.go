package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/pkg/errors"
)

type DriverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) driver.Repository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	query := `
		INSERT INTO drivers (id, name, national_id, license_number, license_category,
			phone, email, license_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.NationalID, d.LicenseNumber, d.LicenseCategory,
		d.Phone, d.Email, d.LicenseExpiry, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create driver", err)
	}

	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id string) (*driver.Driver, error) {
	query := `
		SELECT id, name, national_id, license_number, license_category,
			phone, email, license_expiry, created_at, updated_at
		FROM drivers WHERE id = ?
	`

	d, err := scanDriver(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Driver")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get driver", err)
	}

	return d, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	d.UpdatedAt = time.Now()

	query := `
		UPDATE drivers SET name = ?, national_id = ?, license_number = ?, license_category = ?,
			phone = ?, email = ?, license_expiry = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		d.Name, d.NationalID, d.LicenseNumber, d.LicenseCategory,
		d.Phone, d.Email, d.LicenseExpiry, d.UpdatedAt.Format(time.RFC3339), d.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update driver", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Driver")
	}

	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM drivers WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete driver", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Driver")
	}

	return nil
}

func (r *DriverRepository) List(ctx context.Context) ([]*driver.Driver, error) {
	query := `
		SELECT id, name, national_id, license_number, license_category,
			phone, email, license_expiry, created_at, updated_at
		FROM drivers ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list drivers", err)
	}
	defer rows.Close()

	drivers := make([]*driver.Driver, 0, 50)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan driver", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, rows.Err()
}

func scanDriver(row rowScanner) (*driver.Driver, error) {
	var d driver.Driver
	var createdAt string
	var updatedAt sql.NullString

	err := row.Scan(
		&d.ID, &d.Name, &d.NationalID, &d.LicenseNumber, &d.LicenseCategory,
		&d.Phone, &d.Email, &d.LicenseExpiry, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if updatedAt.Valid {
		d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt.String)
	}

	return &d, nil
}
