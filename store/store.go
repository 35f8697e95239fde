/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package store is an optional MySQL-backed sink for run history,
// following genes_ucsc.go's sql.Open("mysql", ...) + prepared-query
// pattern. Persisted state is not part of the core (§7: "Persisted
// state: none") -- this package is wired only by tools/sbhbenchmark's
// "--db" flag, never by the reconstruct path itself.
package store

/* -------------------------------------------------------------------------- */

import (
  "database/sql"
  "fmt"

  _ "github.com/go-sql-driver/mysql"
)

/* -------------------------------------------------------------------------- */

// Row is one trial's worth of the §6 CSV columns.
type Row struct {
  K                  int
  N                  int
  SeqLength          int
  ErrorRate          float64
  OriginalLength     int
  ReconstructedLength int
  Coverage           float64
  Accuracy           float64
  EditDistance       int
  RuntimeMs          int64
  IsValid            bool
  Success            bool
  Repeat             int
}

// Store is a thin wrapper around a MySQL connection pool holding run
// history rows.
type Store struct {
  db *sql.DB
}

/* -------------------------------------------------------------------------- */

// Open connects to dsn (a standard go-sql-driver/mysql data source
// name) and ensures the run_history table exists, mirroring
// ImportGenesFromUCSC's sql.Open + db.Ping() sequence.
func Open(dsn string) (*Store, error) {
  db, err := sql.Open("mysql", dsn)
  if err != nil {
    return nil, err
  }
  if err := db.Ping(); err != nil {
    db.Close()
    return nil, err
  }
  s := &Store{db: db}
  if err := s.createTable(); err != nil {
    db.Close()
    return nil, err
  }
  return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
  return s.db.Close()
}

func (s *Store) createTable() error {
  _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS run_history (
    id                   INT AUTO_INCREMENT PRIMARY KEY,
    k                    INT,
    n                    INT,
    seq_length           INT,
    error_rate           DOUBLE,
    original_length      INT,
    reconstructed_length INT,
    coverage             DOUBLE,
    accuracy             DOUBLE,
    edit_distance        INT,
    runtime_ms           BIGINT,
    is_valid             BOOLEAN,
    success              BOOLEAN,
    repeat_index         INT
  )`)
  return err
}

// InsertRun persists one trial row, following the same column order as
// the §6 CSV rows so the two sinks stay in lockstep.
func (s *Store) InsertRun(row Row) error {
  _, err := s.db.Exec(
    `INSERT INTO run_history
     (k, n, seq_length, error_rate, original_length, reconstructed_length,
      coverage, accuracy, edit_distance, runtime_ms, is_valid, success, repeat_index)
     VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
    row.K, row.N, row.SeqLength, row.ErrorRate, row.OriginalLength, row.ReconstructedLength,
    row.Coverage, row.Accuracy, row.EditDistance, row.RuntimeMs, row.IsValid, row.Success, row.Repeat,
  )
  if err != nil {
    return fmt.Errorf("store: insert run: %w", err)
  }
  return nil
}
