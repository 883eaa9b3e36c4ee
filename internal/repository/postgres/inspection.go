package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/preflight/internal/domain/inspection"
	"github.com/fleetops/preflight/internal/pkg/errors"
)

type InspectionRepository struct {
	db *sql.DB
}

func NewInspectionRepository(db *sql.DB) inspection.Repository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, insp *inspection.Inspection) error {
	insp.CreatedAt = time.Now()

	health, err := json.Marshal(insp.Health)
	if err != nil {
		return errors.Internal("Failed to encode health data", err)
	}
	sections, err := json.Marshal(insp.Sections)
	if err != nil {
		return errors.Internal("Failed to encode checklist sections", err)
	}

	query := `
		INSERT INTO inspections (id, vehicle_id, driver_id, date, time, mileage, destination,
			health, sections, observations, signature_ref, document_ref, verdict, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		insp.ID, insp.VehicleID, insp.DriverID, insp.Date, insp.Time, insp.Mileage, insp.Destination,
		string(health), string(sections), insp.Observations, insp.SignatureRef, insp.DocumentRef,
		insp.Verdict, insp.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create inspection", err)
	}

	return nil
}

func (r *InspectionRepository) GetByID(ctx context.Context, id string) (*inspection.Inspection, error) {
	query := `
		SELECT id, vehicle_id, driver_id, date, time, mileage, destination,
			health, sections, observations, signature_ref, document_ref, verdict, created_at
		FROM inspections WHERE id = ?
	`

	insp, err := scanInspection(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Inspection")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get inspection", err)
	}

	return insp, nil
}

func (r *InspectionRepository) ListWithPagination(ctx context.Context, filter inspection.Filter, limit, offset int) ([]*inspection.Inspection, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.VehicleID != "" {
		where = append(where, "vehicle_id = ?")
		args = append(args, filter.VehicleID)
	}
	if filter.DriverID != "" {
		where = append(where, "driver_id = ?")
		args = append(args, filter.DriverID)
	}
	if filter.Verdict != "" {
		where = append(where, "verdict = ?")
		args = append(args, filter.Verdict)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM inspections WHERE %s", whereClause)
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count inspections", err)
	}

	query := fmt.Sprintf(`
		SELECT id, vehicle_id, driver_id, date, time, mileage, destination,
			health, sections, observations, signature_ref, document_ref, verdict, created_at
		FROM inspections WHERE %s ORDER BY created_at DESC LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list inspections", err)
	}
	defer rows.Close()

	inspections := make([]*inspection.Inspection, 0, limit)
	for rows.Next() {
		insp, err := scanInspection(rows)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan inspection", err)
		}
		inspections = append(inspections, insp)
	}

	return inspections, total, rows.Err()
}

func (r *InspectionRepository) AttachDocument(ctx context.Context, id, ref string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE inspections SET document_ref = ? WHERE id = ?", ref, id)
	if err != nil {
		return errors.DatabaseError("Failed to attach document", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Inspection")
	}

	return nil
}

func scanInspection(row rowScanner) (*inspection.Inspection, error) {
	var insp inspection.Inspection
	var health, sections, createdAt string

	err := row.Scan(
		&insp.ID, &insp.VehicleID, &insp.DriverID, &insp.Date, &insp.Time, &insp.Mileage, &insp.Destination,
		&health, &sections, &insp.Observations, &insp.SignatureRef, &insp.DocumentRef, &insp.Verdict, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(health), &insp.Health); err != nil {
		return nil, fmt.Errorf("failed to decode health data: %w", err)
	}
	if err := json.Unmarshal([]byte(sections), &insp.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode checklist sections: %w", err)
	}
	insp.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &insp, nil
}
