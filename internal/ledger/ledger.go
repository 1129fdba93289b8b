// Package ledger keeps the verdict tally for the current run. The default
// database lives in memory and disappears when the process exits.
package ledger

import (
	"database/sql"
	"diabetes-intake/internal/patient"
	"fmt"

	_ "modernc.org/sqlite"
)

type Ledger struct {
	db *sql.DB
}

type ReasonCount struct {
	Reason string
	Count  int
}

type Stats struct {
	Total       int
	Eligible    int
	PendingLabs int
	AbnormalA1C int
	ByReason    []ReasonCount
}

func Open(dsn string) (*Ledger, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open ledger: %w", err)
	}
	// Every connection to ":memory:" gets its own database.
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger init: %w", err)
	}
	return &Ledger{db: db}, nil
}

func createTables(db *sql.DB) error {
	sqlStmt := `
	CREATE TABLE IF NOT EXISTS intakes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		intake_id TEXT UNIQUE NOT NULL,
		eligible INTEGER NOT NULL,
		rule TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		a1c TEXT NOT NULL,
		glucose TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// Record stores the outcome of one intake. Demographics are not kept.
func (l *Ledger) Record(r patient.Record, v patient.Verdict) error {
	_, err := l.db.Exec(
		`INSERT INTO intakes (intake_id, eligible, rule, reason, a1c, glucose) VALUES (?, ?, ?, ?, ?, ?)`,
		r.IntakeID, v.Eligible(), v.Rule.String(), v.Reason, string(r.A1C), string(r.Glucose),
	)
	if err != nil {
		return fmt.Errorf("record intake %s: %w", r.IntakeID, err)
	}
	return nil
}

func (l *Ledger) Summary() (Stats, error) {
	var s Stats
	err := l.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(eligible), 0),
			COALESCE(SUM(CASE WHEN a1c = ? OR glucose = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN a1c = ? THEN 1 ELSE 0 END), 0)
		FROM intakes
	`, string(patient.LabUnknown), string(patient.LabUnknown), string(patient.LabAbnormal)).
		Scan(&s.Total, &s.Eligible, &s.PendingLabs, &s.AbnormalA1C)
	if err != nil {
		return Stats{}, fmt.Errorf("summary counts: %w", err)
	}

	rows, err := l.db.Query(`
		SELECT reason, COUNT(*)
		FROM intakes
		WHERE eligible = 0
		GROUP BY reason
		ORDER BY MIN(id)
	`)
	if err != nil {
		return Stats{}, fmt.Errorf("summary by reason: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rc ReasonCount
		if err := rows.Scan(&rc.Reason, &rc.Count); err != nil {
			return Stats{}, err
		}
		s.ByReason = append(s.ByReason, rc)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}
	return s, nil
}
