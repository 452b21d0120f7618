package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iliyamo/seat-booking/internal/model"
)

// MySQLRepository keeps one row per storage key holding the JSON list.
type MySQLRepository struct {
	db *sql.DB
}

// NewMySQLRepository wraps an open database handle.
func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// EnsureSchema creates the ledger_records table when missing.
func (r *MySQLRepository) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS ledger_records (
	             storage_key VARCHAR(191) NOT NULL PRIMARY KEY,
	             payload     JSON NOT NULL,
	             updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	           ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *MySQLRepository) Load(ctx context.Context, key string) ([]model.Booking, error) {
	const q = `SELECT payload FROM ledger_records WHERE storage_key = ?`
	var payload []byte
	err := r.db.QueryRowContext(ctx, q, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []model.Booking
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return records, nil
}

// Save replaces the whole list for key in a single upsert.
func (r *MySQLRepository) Save(ctx context.Context, key string, records []model.Booking) error {
	if records == nil {
		records = []model.Booking{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	const q = `INSERT INTO ledger_records (storage_key, payload) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE payload = VALUES(payload)`
	_, err = r.db.ExecContext(ctx, q, key, payload)
	return err
}
