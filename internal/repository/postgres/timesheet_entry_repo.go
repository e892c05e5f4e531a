package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

type timesheetEntryRepo struct {
	db *sqlx.DB
}

// NewTimesheetEntryRepo creates a new PostgreSQL-backed TimesheetEntryRepository.
func NewTimesheetEntryRepo(db *sqlx.DB) port.TimesheetEntryRepository {
	return &timesheetEntryRepo{db: db}
}

// ReplaceForDocument swaps a document's extracted entries inside one
// transaction, so a re-extraction never leaves rows from the previous run.
func (r *timesheetEntryRepo) ReplaceForDocument(ctx context.Context, docID int64, entries []domain.TimesheetEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("timesheetEntryRepo.ReplaceForDocument begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, "DELETE FROM timesheet_entries WHERE document_id = $1", docID)
	if err != nil {
		return fmt.Errorf("timesheetEntryRepo.ReplaceForDocument delete: %w", err)
	}

	query := `INSERT INTO timesheet_entries (
		user_id, document_id, work_date, shift_type, hours, job_name, earnings, location, ship
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, e := range entries {
		_, err = tx.ExecContext(ctx, query,
			e.UserID, docID, e.Date, e.ShiftType, e.Hours, e.JobName, e.Earnings, e.Location, e.Ship)
		if err != nil {
			return fmt.Errorf("timesheetEntryRepo.ReplaceForDocument insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("timesheetEntryRepo.ReplaceForDocument commit: %w", err)
	}
	return nil
}

func (r *timesheetEntryRepo) ListByUser(ctx context.Context, userID int64, from, to string) ([]domain.TimesheetEntry, error) {
	query := "SELECT * FROM timesheet_entries WHERE user_id = $1"
	args := []interface{}{userID}
	if from != "" {
		args = append(args, from)
		query += fmt.Sprintf(" AND work_date >= $%d", len(args))
	}
	if to != "" {
		args = append(args, to)
		query += fmt.Sprintf(" AND work_date <= $%d", len(args))
	}
	query += " ORDER BY work_date"

	var entries []domain.TimesheetEntry
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("timesheetEntryRepo.ListByUser: %w", err)
	}
	return entries, nil
}
