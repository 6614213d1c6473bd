package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lab2439/uuidx"
)

// Demonstrates UUIDv7 values as MySQL primary keys. Because v7 encodes its
// creation time in the most significant bits, a BINARY(16) primary key
// index stays append-mostly and rows come back in insertion order when
// sorted by key.

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         BINARY(16) PRIMARY KEY,
	payload    VARCHAR(255) NOT NULL,
	created_at BIGINT NOT NULL
)`

// EventStore wraps the database handle and the UUID generator used for keys.
type EventStore struct {
	db  *sql.DB
	gen *uuidx.Generator
}

// NewEventStore opens a MySQL connection with sane pool settings and
// prepares the demo table.
func NewEventStore(dsn string) (*EventStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &EventStore{
		db:  db,
		gen: uuidx.NewGenerator(),
	}, nil
}

// Close releases the database handle.
func (s *EventStore) Close() error {
	return s.db.Close()
}

// Insert mints a fresh v7 key and stores one row, returning the key.
func (s *EventStore) Insert(payload string) (uuidx.UUID, error) {
	id, err := s.gen.New()
	if err != nil {
		return uuidx.Nil, err
	}

	_, err = s.db.Exec(
		"INSERT INTO events (id, payload, created_at) VALUES (?, ?, ?)",
		id.Bytes(), payload, id.Timestamp(),
	)
	if err != nil {
		return uuidx.Nil, err
	}
	return id, nil
}

// ListOrdered returns all event keys in primary-key order.
func (s *EventStore) ListOrdered() ([]uuidx.UUID, error) {
	rows, err := s.db.Query("SELECT id FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuidx.UUID
	for rows.Next() {
		var id uuidx.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func main() {
	dsn := flag.String("dsn", "root:root@tcp(127.0.0.1:3306)/uuidx_demo?parseTime=false", "MySQL DSN")
	count := flag.Int("count", 100, "number of rows to insert")
	flag.Parse()

	store, err := NewEventStore(*dsn)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	inserted := make([]uuidx.UUID, 0, *count)
	for i := 0; i < *count; i++ {
		id, err := store.Insert(fmt.Sprintf("event-%d", i))
		if err != nil {
			log.Fatalf("insert: %v", err)
		}
		inserted = append(inserted, id)
	}
	log.Printf("inserted %d rows with v7 primary keys", len(inserted))

	ids, err := store.ListOrdered()
	if err != nil {
		log.Fatalf("list: %v", err)
	}

	// Key order must match insertion order: this is the whole point of
	// time-sorted primary keys.
	ordered := true
	for i := range ids {
		if i > 0 && ids[i].Compare(ids[i-1]) <= 0 {
			ordered = false
			break
		}
	}
	log.Printf("scanned %d rows, key order matches time order: %v", len(ids), ordered)

	if len(ids) > 0 {
		last := ids[len(ids)-1]
		log.Printf("newest key %s created at %s (ULID %s)",
			last, last.Time().Format(time.RFC3339Nano), last.ULID())
	}
}
