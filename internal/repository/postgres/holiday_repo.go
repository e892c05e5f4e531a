package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"docklogger/internal/domain"
	"docklogger/internal/port"
)

type holidayRepo struct {
	db *sqlx.DB
}

// NewHolidayRepo creates a new PostgreSQL-backed HolidayRepository.
func NewHolidayRepo(db *sqlx.DB) port.HolidayRepository {
	return &holidayRepo{db: db}
}

// ReplaceYear swaps a year's holiday schedule in one transaction, so an
// updated schedule upload fully supersedes the previous one.
func (r *holidayRepo) ReplaceYear(ctx context.Context, year int, holidays []domain.StatHoliday) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("holidayRepo.ReplaceYear begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, "DELETE FROM stat_holidays WHERE year = $1", year)
	if err != nil {
		return fmt.Errorf("holidayRepo.ReplaceYear delete: %w", err)
	}

	query := `INSERT INTO stat_holidays (
		year, name, holiday_date, qualification_start, qualification_end, pay_date
	) VALUES ($1, $2, $3, $4, $5, $6)`

	for _, h := range holidays {
		_, err = tx.ExecContext(ctx, query,
			year, h.Name, h.Date, h.QualificationStart, h.QualificationEnd, h.PayDate)
		if err != nil {
			return fmt.Errorf("holidayRepo.ReplaceYear insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("holidayRepo.ReplaceYear commit: %w", err)
	}
	return nil
}

func (r *holidayRepo) ListByYear(ctx context.Context, year int) ([]domain.StatHoliday, error) {
	var holidays []domain.StatHoliday
	err := r.db.SelectContext(ctx, &holidays,
		"SELECT * FROM stat_holidays WHERE year = $1 ORDER BY holiday_date", year)
	if err != nil {
		return nil, fmt.Errorf("holidayRepo.ListByYear: %w", err)
	}
	return holidays, nil
}
