package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned for an unknown report ID.
var ErrReportNotFound = errors.New("report not found")

// timeLayout keeps stored timestamps sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Report is a generated dashboard view saved for later.
type Report struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Params    json.RawMessage `json:"params"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ReportStore implements report persistence on SQLite.
type ReportStore struct {
	db  DBTX
	now func() time.Time
}

// NewReportStore stores reports through conn.
func NewReportStore(conn DBTX) *ReportStore {
	return &ReportStore{db: conn, now: time.Now}
}

// Save stores payload under a new ID. params and payload are encoded as
// JSON.
func (s *ReportStore) Save(ctx context.Context, kind string, params, payload any) (*Report, error) {
	p, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encoding report params: %w", err)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding report payload: %w", err)
	}

	r := &Report{
		ID:        uuid.New().String(),
		Kind:      kind,
		Params:    p,
		Payload:   data,
		CreatedAt: s.now().UTC(),
	}
	query := `INSERT INTO report (id, kind, params, payload, created_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, r.ID, r.Kind, string(r.Params), string(r.Payload), r.CreatedAt.Format(timeLayout)); err != nil {
		return nil, fmt.Errorf("inserting report: %w", err)
	}
	return r, nil
}

// Get returns the report with id, payload included.
func (s *ReportStore) Get(ctx context.Context, id string) (*Report, error) {
	query := `SELECT id, kind, params, payload, created_at FROM report WHERE id = ?`
	var r Report
	var params, payload, created string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Kind, &params, &payload, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, ErrReportNotFound)
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}
	r.Params = json.RawMessage(params)
	r.Payload = json.RawMessage(payload)
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("parsing report time: %w", err)
	}
	return &r, nil
}

// List returns report metadata, newest first. Payloads are left out.
func (s *ReportStore) List(ctx context.Context) ([]Report, error) {
	query := `SELECT id, kind, params, created_at FROM report ORDER BY created_at DESC, id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	reports := []Report{}
	for rows.Next() {
		var r Report
		var params, created string
		if err := rows.Scan(&r.ID, &r.Kind, &params, &created); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		r.Params = json.RawMessage(params)
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parsing report time: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}
	return reports, nil
}

// Delete removes the report with id.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM report WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("report %s: %w", id, ErrReportNotFound)
	}
	return nil
}
