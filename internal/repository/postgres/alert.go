package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/pkg/errors"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) alert.Repository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	items, err := json.Marshal(a.AffectedItems)
	if err != nil {
		return errors.Internal("Failed to encode affected items", err)
	}

	query := `
		INSERT INTO alerts (id, vehicle_id, driver_id, inspection_id, type, priority, title, description,
			affected_items, status, detected_at, resolved_at, notes, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.VehicleID, a.DriverID, a.InspectionID, a.Type, a.Priority, a.Title, a.Description,
		string(items), a.Status, a.DetectedAt.Format(time.RFC3339), nullableTime(a.ResolvedAt),
		a.Notes, a.CreatedBy, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create alert", err)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	query := `
		SELECT id, vehicle_id, driver_id, inspection_id, type, priority, title, description,
			affected_items, status, detected_at, resolved_at, notes, created_by, created_at, updated_at
		FROM alerts WHERE id = ?
	`

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Alert")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get alert", err)
	}

	return a, nil
}

func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	a.UpdatedAt = time.Now()

	items, err := json.Marshal(a.AffectedItems)
	if err != nil {
		return errors.Internal("Failed to encode affected items", err)
	}

	query := `
		UPDATE alerts SET type = ?, priority = ?, title = ?, description = ?, affected_items = ?,
			status = ?, resolved_at = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Type, a.Priority, a.Title, a.Description, string(items),
		a.Status, nullableTime(a.ResolvedAt), a.Notes, a.UpdatedAt.Format(time.RFC3339), a.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update alert", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Alert")
	}

	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM alerts WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete alert", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Alert")
	}

	return nil
}

func (r *AlertRepository) ListWithPagination(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.Alert, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.Priority != "" {
		where = append(where, "priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.VehicleID != "" {
		where = append(where, "vehicle_id = ?")
		args = append(args, filter.VehicleID)
	}
	if filter.DriverID != "" {
		where = append(where, "driver_id = ?")
		args = append(args, filter.DriverID)
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM alerts WHERE %s", whereClause)
	err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to count alerts", err)
	}

	query := fmt.Sprintf(`
		SELECT id, vehicle_id, driver_id, inspection_id, type, priority, title, description,
			affected_items, status, detected_at, resolved_at, notes, created_by, created_at, updated_at
		FROM alerts WHERE %s ORDER BY detected_at DESC LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list alerts", err)
	}
	defer rows.Close()

	alerts := make([]*alert.Alert, 0, limit)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan alert", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, total, rows.Err()
}

func (r *AlertRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM alerts GROUP BY status")
	if err != nil {
		return nil, errors.DatabaseError("Failed to count alerts by status", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, errors.DatabaseError("Failed to scan count", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *AlertRepository) ExistsOpen(ctx context.Context, vehicleID, driverID string, t alert.Type, document string) (bool, error) {
	where := []string{"type = ?", "status IN ('pending', 'in_progress')"}
	args := []interface{}{t}

	if vehicleID != "" {
		where = append(where, "vehicle_id = ?")
		args = append(args, vehicleID)
	}
	if driverID != "" {
		where = append(where, "driver_id = ?")
		args = append(args, driverID)
	}
	if document != "" {
		// Affected items are stored as a JSON array of strings
		where = append(where, "affected_items LIKE ?")
		args = append(args, "%"+document+"%")
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM alerts WHERE %s", strings.Join(where, " AND "))

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.DatabaseError("Failed to check open alerts", err)
	}

	return count > 0, nil
}

func (r *AlertRepository) CountPendingByPriority(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT priority, COUNT(*) FROM alerts WHERE status = 'pending' GROUP BY priority")
	if err != nil {
		return nil, errors.DatabaseError("Failed to count pending alerts", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, errors.DatabaseError("Failed to scan count", err)
		}
		counts[priority] = count
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAlert(row rowScanner) (*alert.Alert, error) {
	var a alert.Alert
	var items string
	var detectedAt, createdAt string
	var resolvedAt, updatedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.VehicleID, &a.DriverID, &a.InspectionID, &a.Type, &a.Priority, &a.Title, &a.Description,
		&items, &a.Status, &detectedAt, &resolvedAt, &a.Notes, &a.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if items != "" {
		if err := json.Unmarshal([]byte(items), &a.AffectedItems); err != nil {
			return nil, fmt.Errorf("failed to decode affected items: %w", err)
		}
	}

	a.DetectedAt, _ = time.Parse(time.RFC3339, detectedAt)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if updatedAt.Valid {
		a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt.String)
	}
	if resolvedAt.Valid && resolvedAt.String != "" {
		t, err := time.Parse(time.RFC3339, resolvedAt.String)
		if err == nil {
			a.ResolvedAt = &t
		}
	}

	return &a, nil
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
