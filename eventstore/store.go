// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventstore archives decoded receipt logs in sqlite for off chain readers.
package eventstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/33cn/rps/common"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // sqlite driver
)

var elog = log15.New("module", "eventstore")

// Event one receipt log of a stored transaction
type Event = rpctypes.Event

// Store sqlite archive
type Store struct {
	db *sql.DB
}

// New opens or creates the database at path, ":memory:" is accepted
func New(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open eventstore %s", path)
	}
	// 单连接写入, sqlite 不支持并发写
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			height INTEGER NOT NULL,
			tx_hash TEXT NOT NULL,
			execer TEXT NOT NULL,
			sender TEXT NOT NULL,
			log_index INTEGER NOT NULL,
			ty INTEGER NOT NULL,
			ty_name TEXT NOT NULL,
			log TEXT NOT NULL,
			block_time INTEGER NOT NULL,
			UNIQUE(tx_hash, log_index)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_height ON events(height);`,
		`CREATE INDEX IF NOT EXISTS idx_events_name ON events(ty_name, height);`,
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "eventstore migrate")
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			tx.Rollback()
			return errors.Wrap(err, "eventstore migrate")
		}
	}
	return tx.Commit()
}

// Save stores every log of res, a transaction already stored is ignored
func (s *Store) Save(ctx context.Context, res *types.TxResult) error {
	out := rpctypes.DecodeTxResult(res)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "eventstore save")
	}
	for i, l := range out.Logs {
		data := l.RawLog
		if len(l.Log) > 0 {
			data = string(l.Log)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO events(height, tx_hash, execer, sender, log_index, ty, ty_name, log, block_time)
			 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			out.Height, out.Hash, out.Execer, out.From, i, l.Ty, l.TyName, data, out.BlockTime)
		if err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "eventstore save %s", out.Hash)
		}
	}
	return tx.Commit()
}

// Subscriber adapts Save to the chain subscription, failures are logged
func (s *Store) Subscriber() func(res *types.TxResult) {
	return func(res *types.TxResult) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Save(ctx, res); err != nil {
			elog.Error("Subscriber", "height", res.Height, "err", err)
		}
	}
}

const selectEvents = `SELECT id, height, tx_hash, execer, sender, log_index, ty, ty_name, log, block_time FROM events`

// ByTx logs of one transaction in receipt order
func (s *Store) ByTx(ctx context.Context, hash []byte) ([]*Event, error) {
	return s.query(ctx, selectEvents+` WHERE tx_hash = ? ORDER BY log_index`, common.ToHex(hash))
}

// ByName logs named name with height >= fromHeight, at most limit rows
func (s *Store) ByName(ctx context.Context, name string, fromHeight int64, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.query(ctx, selectEvents+` WHERE ty_name = ? AND height >= ? ORDER BY height, log_index LIMIT ?`,
		name, fromHeight, limit)
}

// Since logs of the executor with height >= fromHeight
func (s *Store) Since(ctx context.Context, execer string, fromHeight int64, limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.query(ctx, selectEvents+` WHERE execer = ? AND height >= ? ORDER BY height, log_index LIMIT ?`,
		execer, fromHeight, limit)
}

// LastHeight highest archived height, -1 for an empty store
func (s *Store) LastHeight(ctx context.Context) (int64, error) {
	var h sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(height) FROM events`).Scan(&h); err != nil {
		return 0, errors.Wrap(err, "eventstore last height")
	}
	if !h.Valid {
		return -1, nil
	}
	return h.Int64, nil
}

func (s *Store) query(ctx context.Context, q string, args ...interface{}) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "eventstore query")
	}
	defer rows.Close()
	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Height, &e.TxHash, &e.Execer, &e.From, &e.LogIndex,
			&e.Ty, &e.TyName, &e.Log, &e.BlockTime); err != nil {
			return nil, errors.Wrap(err, "eventstore scan")
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
