package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Manager persists the outcome of filesystem operations
type Manager struct {
	db *sql.DB
}

// OperationRecord represents a single recorded operation
type OperationRecord struct {
	ID          int64
	Op          string // "upload", "download", "backup", "mkdir", "rmdir"
	Source      string
	Destination string
	StartTime   time.Time
	EndTime     time.Time
	Status      string // "success", "failed"
	Error       string
}

// NewManager creates a new operation journal
func NewManager(dataDir string) (*Manager, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fileporter.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Limit connection pool to prevent "database is locked" errors
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Enable WAL mode for better concurrency and set busy timeout
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode and busy timeout: %w", err)
	}

	manager := &Manager{db: db}

	// Initialize schema
	if err := manager.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return manager, nil
}

// initSchema creates the database schema
func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		op TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		error TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_operations_op_time ON operations(op, start_time DESC);
	CREATE INDEX IF NOT EXISTS idx_operations_status ON operations(status);
	`

	_, err := m.db.Exec(schema)
	return err
}

// SaveOperation records an operation outcome
func (m *Manager) SaveOperation(record OperationRecord) error {
	// Validate status
	if record.Status != "success" && record.Status != "failed" {
		return fmt.Errorf("invalid status: %s (must be 'success' or 'failed')", record.Status)
	}
	if record.Op == "" {
		return fmt.Errorf("operation kind cannot be empty")
	}

	query := `
		INSERT INTO operations (op, source, destination, start_time, end_time, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := m.db.Exec(query,
		record.Op,
		record.Source,
		record.Destination,
		record.StartTime,
		record.EndTime,
		record.Status,
		record.Error,
	)

	if err != nil {
		return fmt.Errorf("failed to save operation record: %w", err)
	}

	return nil
}

// GetHistory retrieves recorded outcomes for an operation kind
func (m *Manager) GetHistory(op string, limit int) ([]OperationRecord, error) {
	// Validate limit
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, op, source, destination, start_time, end_time, status, error
		FROM operations
		WHERE op = ?
		ORDER BY start_time DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, op, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetAllHistory retrieves recorded outcomes for all operation kinds
func (m *Manager) GetAllHistory(limit int) ([]OperationRecord, error) {
	// Validate limit
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, op, source, destination, start_time, end_time, status, error
		FROM operations
		ORDER BY start_time DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query all history: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetLastSuccess retrieves the most recent successful outcome for an
// operation kind, or nil when there is none
func (m *Manager) GetLastSuccess(op string) (*OperationRecord, error) {
	query := `
		SELECT id, op, source, destination, start_time, end_time, status, error
		FROM operations
		WHERE op = ? AND status = 'success'
		ORDER BY start_time DESC
		LIMIT 1
	`

	var record OperationRecord
	err := m.db.QueryRow(query, op).Scan(
		&record.ID,
		&record.Op,
		&record.Source,
		&record.Destination,
		&record.StartTime,
		&record.EndTime,
		&record.Status,
		&record.Error,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No successful operation found
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query last success: %w", err)
	}

	return &record, nil
}

// scanRecords reads all rows into operation records
func scanRecords(rows *sql.Rows) ([]OperationRecord, error) {
	var records []OperationRecord
	for rows.Next() {
		var record OperationRecord
		err := rows.Scan(
			&record.ID,
			&record.Op,
			&record.Source,
			&record.Destination,
			&record.StartTime,
			&record.EndTime,
			&record.Status,
			&record.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
