// Package store keeps a journal of polled console events in a bbolt
// database.
package store

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/deadpad/wininp/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

const bucketEvent = "event"

// ErrNoMatchingEvent is returned when a query for an event has no result.
var ErrNoMatchingEvent = errors.New("no matching event")

// Functions that initialize the database, keyed by description.
var initDB = map[string](func(*bolt.Tx) error){
	"initialize event journal": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEvent))
		return err
	},
}

// Store is a journal of events backed by a bbolt database.
type Store struct {
	db *bolt.DB
}

// NewStore opens the database file at dbname, creating it if needed.
func NewStore(dbname string) (*Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened", dbname)
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
