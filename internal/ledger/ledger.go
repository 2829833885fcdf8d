/**
 * Copyright 2025-present Tickwise, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ledger persists results computed by the money engine. The engine
// itself never imports this package; the ledger is a collaborator that
// records what the engine produced, as exact decimal strings.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/tickwise/finmoney-go/money"
)

// Store handles tick-snap result persistence
type Store struct {
	db *sql.DB
}

// EntryRecord is one recorded quantization: a raw price, the tick it was
// snapped to, the three snap results and the fee charged. Amounts are
// stored as TEXT for exact decimal precision.
type EntryRecord struct {
	Id        string // uuid
	Symbol    string // e.g. "BTC-USD"
	Side      string // "BUY" or "SELL"
	Currency  string // currency code of all price fields
	RawPrice  string
	TickSize  string
	Nearest   string // price snapped to the nearest tick
	SnapDown  string // price floored to the tick lattice
	SnapUp    string // price ceiled to the tick lattice
	Qty       string
	FeeAmount string

	RecordedAt time.Time
}

// NewStore opens (creating if needed) a ledger database at the given path
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrent write performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout to handle concurrent writes
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	store := &Store{db: db}

	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates the database schema
func (s *Store) createTables() error {
	// Append-only log of quantization results, one row per computation
	entriesTable := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		currency TEXT NOT NULL,

		-- Engine inputs and outputs (TEXT for exact decimal precision)
		raw_price TEXT NOT NULL,
		tick_size TEXT NOT NULL,
		nearest TEXT NOT NULL,
		snap_down TEXT NOT NULL,
		snap_up TEXT NOT NULL,
		qty TEXT NOT NULL DEFAULT '0',
		fee_amount TEXT NOT NULL DEFAULT '0',

		recorded_at TIMESTAMP NOT NULL
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_entries_symbol ON entries(symbol);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_recorded ON entries(recorded_at);`,
	}

	if _, err := s.db.Exec(entriesTable); err != nil {
		return fmt.Errorf("failed to create entries table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// NewEntry builds an EntryRecord from engine values. The snap results and
// fee must all share the raw price's currency; mismatches are rejected so
// the ledger can never record cross-currency rows.
func NewEntry(symbol, side string, raw, nearest, down, up, fee money.Money, tick, qty string) (*EntryRecord, error) {
	for _, m := range []money.Money{nearest, down, up, fee} {
		if !raw.SameCurrency(m) {
			return nil, &money.CurrencyMismatchError{Expected: raw.Currency(), Actual: m.Currency()}
		}
	}

	return &EntryRecord{
		Id:         uuid.New().String(),
		Symbol:     symbol,
		Side:       side,
		Currency:   raw.CurrencyCode(),
		RawPrice:   raw.Amount().String(),
		TickSize:   tick,
		Nearest:    nearest.Amount().String(),
		SnapDown:   down.Amount().String(),
		SnapUp:     up.Amount().String(),
		Qty:        qty,
		FeeAmount:  fee.Amount().String(),
		RecordedAt: time.Now().UTC(),
	}, nil
}

// InsertEntry appends a quantization result to the ledger
func (s *Store) InsertEntry(entry *EntryRecord) error {
	query := `
	INSERT INTO entries (
		id, symbol, side, currency,
		raw_price, tick_size, nearest, snap_down, snap_up,
		qty, fee_amount, recorded_at
	) VALUES (
		?, ?, ?, ?,
		?, ?, ?, ?, ?,
		?, ?, ?
	)
	`

	_, err := s.db.Exec(query,
		entry.Id, entry.Symbol, entry.Side, entry.Currency,
		entry.RawPrice, entry.TickSize, entry.Nearest, entry.SnapDown, entry.SnapUp,
		entry.Qty, entry.FeeAmount, entry.RecordedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	zap.L().Debug("recorded ledger entry",
		zap.String("id", entry.Id),
		zap.String("symbol", entry.Symbol),
		zap.String("nearest", entry.Nearest))

	return nil
}

// GetEntry retrieves a single entry by id, or nil if not found
func (s *Store) GetEntry(id string) (*EntryRecord, error) {
	query := `
	SELECT id, symbol, side, currency,
		raw_price, tick_size, nearest, snap_down, snap_up,
		qty, fee_amount, recorded_at
	FROM entries WHERE id = ?
	`

	entry := &EntryRecord{}
	err := s.db.QueryRow(query, id).Scan(
		&entry.Id, &entry.Symbol, &entry.Side, &entry.Currency,
		&entry.RawPrice, &entry.TickSize, &entry.Nearest, &entry.SnapDown, &entry.SnapUp,
		&entry.Qty, &entry.FeeAmount, &entry.RecordedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns the most recent entries for a symbol, newest first
func (s *Store) ListEntries(symbol string, limit int) ([]*EntryRecord, error) {
	query := `
	SELECT id, symbol, side, currency,
		raw_price, tick_size, nearest, snap_down, snap_up,
		qty, fee_amount, recorded_at
	FROM entries WHERE symbol = ?
	ORDER BY recorded_at DESC, id
	LIMIT ?
	`

	rows, err := s.db.Query(query, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*EntryRecord
	for rows.Next() {
		entry := &EntryRecord{}
		if err := rows.Scan(
			&entry.Id, &entry.Symbol, &entry.Side, &entry.Currency,
			&entry.RawPrice, &entry.TickSize, &entry.Nearest, &entry.SnapDown, &entry.SnapUp,
			&entry.Qty, &entry.FeeAmount, &entry.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
