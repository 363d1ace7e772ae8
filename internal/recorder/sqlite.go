package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can query while a run is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_history (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			date             TEXT NOT NULL,
			battery_grade    REAL,
			industrial_grade REAL,
			spot_change      REAL,
			spot_fallback    INTEGER NOT NULL DEFAULT 0,
			futures_price    REAL,
			futures_change   REAL,
			futures_fallback INTEGER NOT NULL DEFAULT 0,
			analysis         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_ts ON price_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Timestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}

	_, err := r.db.Exec(`INSERT INTO price_history
		(timestamp, date, battery_grade, industrial_grade, spot_change, spot_fallback,
		 futures_price, futures_change, futures_fallback, analysis)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		ts, rec.Date, rec.BatteryGrade, rec.IndustrialGrade, rec.SpotChange, boolToInt(rec.SpotFallback),
		rec.FuturesPrice, rec.FuturesChange, boolToInt(rec.FuturesFallback), rec.Analysis,
	)
	return err
}

// RecentRuns returns up to limit records, newest first.
func (r *SQLiteRecorder) RecentRuns(limit int) ([]RunRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, date, battery_grade, industrial_grade, spot_change, spot_fallback,
		futures_price, futures_change, futures_fallback, analysis
		FROM price_history ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var spotFb, futFb int
		if err := rows.Scan(&rec.Timestamp, &rec.Date, &rec.BatteryGrade, &rec.IndustrialGrade,
			&rec.SpotChange, &spotFb, &rec.FuturesPrice, &rec.FuturesChange, &futFb, &rec.Analysis); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		rec.SpotFallback = spotFb != 0
		rec.FuturesFallback = futFb != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
