package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/intermittent/are-simulator/internal/domain"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// SQLite persists the simulation log to a SQLite database.
// Amounts are stored as decimal text so edits round-trip exactly.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (or creates) the database and runs migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulations (
			seq               INTEGER PRIMARY KEY AUTOINCREMENT,
			id                TEXT NOT NULL UNIQUE,
			recorded_at       INTEGER NOT NULL,
			kind              TEXT NOT NULL,
			category          INTEGER NOT NULL,
			cachets           INTEGER NOT NULL DEFAULT 0,
			rehearsal_cachets INTEGER NOT NULL DEFAULT 0,
			hours             TEXT NOT NULL,
			reference_salary  TEXT,
			daily_benefit     TEXT NOT NULL,
			monthly_benefit   TEXT,
			contract_details  TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_recorded ON simulations(recorded_at)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

const selectColumns = `id, recorded_at, kind, category, cachets, rehearsal_cachets,
	hours, reference_salary, daily_benefit, monthly_benefit, contract_details`

func (s *SQLite) Append(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = ensureID(entry)
	_, err := s.db.ExecContext(ctx, `INSERT INTO simulations
		(id, recorded_at, kind, category, cachets, rehearsal_cachets,
		 hours, reference_salary, daily_benefit, monthly_benefit, contract_details)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		entry.ID, entry.RecordedAt.UnixNano(), string(entry.Kind), int(entry.Category),
		entry.Cachets, entry.RehearsalCachets,
		entry.Hours.String(), nullDecimal(entry.ReferenceSalary), entry.DailyBenefit.String(),
		nullDecimal(entry.MonthlyBenefit), entry.ContractDetails,
	)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("insert simulation: %w", err)
	}
	return entry, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM simulations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLite) Get(ctx context.Context, id string) (domain.HistoryEntry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM simulations WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HistoryEntry{}, ErrNotFound
	}
	return entry, err
}

func (s *SQLite) Update(ctx context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `UPDATE simulations SET
		recorded_at = ?, kind = ?, category = ?, cachets = ?, rehearsal_cachets = ?,
		hours = ?, reference_salary = ?, daily_benefit = ?, monthly_benefit = ?, contract_details = ?
		WHERE id = ?`,
		entry.RecordedAt.UnixNano(), string(entry.Kind), int(entry.Category),
		entry.Cachets, entry.RehearsalCachets,
		entry.Hours.String(), nullDecimal(entry.ReferenceSalary), entry.DailyBenefit.String(),
		nullDecimal(entry.MonthlyBenefit), entry.ContractDetails,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("update simulation %s: %w", entry.ID, err)
	}
	return expectOneRow(res)
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM simulations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete simulation %s: %w", id, err)
	}
	return expectOneRow(res)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (domain.HistoryEntry, error) {
	var (
		entry                    domain.HistoryEntry
		recordedAt               int64
		kind                     string
		category                 int
		hours, daily             string
		referenceSalary, monthly sql.NullString
	)
	err := sc.Scan(&entry.ID, &recordedAt, &kind, &category, &entry.Cachets, &entry.RehearsalCachets,
		&hours, &referenceSalary, &daily, &monthly, &entry.ContractDetails)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entry, err
		}
		return entry, fmt.Errorf("scan simulation: %w", err)
	}

	entry.RecordedAt = time.Unix(0, recordedAt).UTC()
	entry.Kind = domain.EntryKind(kind)
	entry.Category = domain.Category(category)
	if entry.Hours, err = decimal.NewFromString(hours); err != nil {
		return entry, fmt.Errorf("simulation %s hours: %w", entry.ID, err)
	}
	if entry.DailyBenefit, err = decimal.NewFromString(daily); err != nil {
		return entry, fmt.Errorf("simulation %s daily benefit: %w", entry.ID, err)
	}
	if entry.ReferenceSalary, err = parseNullDecimal(referenceSalary); err != nil {
		return entry, fmt.Errorf("simulation %s reference salary: %w", entry.ID, err)
	}
	if entry.MonthlyBenefit, err = parseNullDecimal(monthly); err != nil {
		return entry, fmt.Errorf("simulation %s monthly benefit: %w", entry.ID, err)
	}
	return entry, nil
}

func nullDecimal(d *decimal.Decimal) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func parseNullDecimal(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
