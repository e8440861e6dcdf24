package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/samediff/internal/core/domain"
	"github.com/custodia-labs/samediff/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// Save stores or updates a report record.
func (s *reportStore) Save(ctx context.Context, record *domain.ReportRecord) error {
	namesJSON, err := json.Marshal(record.Names)
	if err != nil {
		return fmt.Errorf("marshalling names: %w", err)
	}

	var body sql.NullString
	if record.Report != nil {
		bodyJSON, err := json.Marshal(record.Report)
		if err != nil {
			return fmt.Errorf("marshalling report: %w", err)
		}
		body = sql.NullString{String: string(bodyJSON), Valid: true}
	}

	now := time.Now().UTC()
	createdAt := record.CreatedAt.UTC()
	if record.CreatedAt.IsZero() {
		createdAt = now
	}
	updatedAt := record.UpdatedAt.UTC()
	if record.UpdatedAt.IsZero() {
		updatedAt = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO reports (id, status, origin, names, body, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			origin = excluded.origin,
			names = excluded.names,
			body = excluded.body,
			error = excluded.error,
			updated_at = excluded.updated_at
	`, record.ID, string(record.Status), string(record.Origin), string(namesJSON),
		body, record.Error, createdAt, updatedAt)
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// Get retrieves a report record by ID.
func (s *reportStore) Get(ctx context.Context, id string) (*domain.ReportRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, status, origin, names, body, error, created_at, updated_at
		FROM reports WHERE id = ?
	`, id)

	record, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// List returns all report records, newest first.
func (s *reportStore) List(ctx context.Context) ([]domain.ReportRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, status, origin, names, body, error, created_at, updated_at
		FROM reports ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var records []domain.ReportRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return records, nil
}

// Delete removes a report record.
func (s *reportStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (*domain.ReportRecord, error) {
	var record domain.ReportRecord
	var status, origin, namesJSON string
	var body sql.NullString
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&record.ID, &status, &origin, &namesJSON, &body,
		&record.Error, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	record.Status = domain.ReportStatus(status)
	record.Origin = domain.ReportOrigin(origin)

	if err := json.Unmarshal([]byte(namesJSON), &record.Names); err != nil {
		return nil, fmt.Errorf("unmarshaling names: %w", err)
	}

	if body.Valid && body.String != "" && body.String != jsonNull {
		var report domain.Report
		if err := json.Unmarshal([]byte(body.String), &report); err != nil {
			return nil, fmt.Errorf("unmarshaling report: %w", err)
		}
		record.Report = &report
	}

	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time
	}
	return &record, nil
}
