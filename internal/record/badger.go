package record

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/ilygor/chessjerk/internal/errors"
)

const tablePrefix = "table/"

// BadgerSink stores tables in a Badger database keyed by table ID.
type BadgerSink struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a store in dir.
func OpenBadger(dir string) (*BadgerSink, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", dir, err, errors.ErrRecordSink)
	}
	return &BadgerSink{db: db}, nil
}

// Write stores t, replacing any table with the same ID.
func (s *BadgerSink) Write(t *Table) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal table %s: %v: %w", t.ID, err, errors.ErrRecordSink)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tablePrefix+t.ID), data)
	})
	if err != nil {
		return fmt.Errorf("store table %s: %v: %w", t.ID, err, errors.ErrRecordSink)
	}
	return nil
}

// Load returns the table with the given ID, or nil if none is stored.
func (s *BadgerSink) Load(id string) (*Table, error) {
	var t *Table
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tablePrefix + id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			t = &Table{}
			return json.Unmarshal(val, t)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load table %s: %v: %w", id, err, errors.ErrRecordSink)
	}
	return t, nil
}

// IDs lists stored table IDs in key order.
func (s *BadgerSink) IDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(tablePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().KeyCopy(nil)[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tables: %v: %w", err, errors.ErrRecordSink)
	}
	return ids, nil
}

// Close closes the database.
func (s *BadgerSink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
