// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is an interface missing in original LevelDB design.
// It contains methods common for the LevelDB instance and its Transactions.
// It allows for easy switching between transactional and non-transactional accesses.
type LevelDB interface {
	// Get gets the value for the given key. It returns ErrNotFound if the
	// DB does not contain the key.
	Get(key []byte, ro *opt.ReadOptions) (value []byte, err error)

	// NewIterator returns an iterator over the given key range.
	// The iterator must be released after use, by calling Release method.
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator

	// Put sets the value for the given key.
	Put(key, value []byte, wo *opt.WriteOptions) error

	// Delete deletes the value for the given key.
	Delete(key []byte, wo *opt.WriteOptions) error
}

// Config holds the configuration of a LevelDB backed state store.
type Config struct {
	// Options are passed to LevelDB when opening the database. nil selects
	// the LevelDB defaults.
	Options *opt.Options

	// Sync forces every write outside of a transaction to be flushed to
	// stable storage before it is reported as completed.
	Sync bool
}

// DefaultConfig returns the configuration used by the tools of this module.
func DefaultConfig() Config {
	return Config{}
}

// Store is a LevelDB based state.StateStore implementation. Entries are
// stored in the StateTableSpace, see ToDBKey for the key layout.
type Store struct {
	view
	db *leveldb.DB
}

// Open opens or creates the LevelDB database in the given directory.
func Open(path string, config Config) (*Store, error) {
	db, err := leveldb.OpenFile(path, config.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB in %s: %w", path, err)
	}
	return &Store{
		view: view{db: db, write: &opt.WriteOptions{Sync: config.Sync}},
		db:   db,
	}, nil
}

// Begin starts a transaction. Updates made through the transaction become
// visible to other users of the store only after Commit. While a
// transaction is open, writes to the Store itself are blocked.
func (s *Store) Begin() (*Transaction, error) {
	tx, err := s.db.OpenTransaction()
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction: %w", err)
	}
	return &Transaction{
		view: view{db: tx},
		tx:   tx,
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Transaction is a state.StateStore view on an open LevelDB transaction.
// Exactly one of Commit or Discard must be called to end it.
type Transaction struct {
	view
	tx *leveldb.Transaction
}

// Commit makes the updates of the transaction durable.
func (t *Transaction) Commit() error {
	return t.tx.Commit()
}

// Discard drops all updates of the transaction. Discarding a committed
// transaction has no effect.
func (t *Transaction) Discard() {
	t.tx.Discard()
}

// view implements the state.StateStore interface on top of a LevelDB
// instance or transaction.
type view struct {
	db    LevelDB
	write *opt.WriteOptions
}

func (v *view) GetState(key, field string) ([]byte, error) {
	value, err := v.db.Get(StateTableSpace.ToDBKey(key, field), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (v *view) PutState(key, field string, value []byte) state.ResultCode {
	if err := v.db.Put(StateTableSpace.ToDBKey(key, field), value, v.write); err != nil {
		return state.FailureCode
	}
	return state.SuccessCode
}

func (v *view) DeleteState(key, field string) state.ResultCode {
	if err := v.db.Delete(StateTableSpace.ToDBKey(key, field), v.write); err != nil {
		return state.FailureCode
	}
	return state.SuccessCode
}

func (v *view) NewIteratorPrefixWithKey(prefix string) (state.ResultSet, state.ResultCode) {
	iter := v.db.NewIterator(util.BytesPrefix(StateTableSpace.ToDBPrefix(prefix)), nil)
	if err := iter.Error(); err != nil {
		iter.Release()
		return nil, state.FailureCode
	}
	return newResultSet(iter), state.SuccessCode
}

// resultSet adapts a LevelDB iterator to the state.ResultSet interface. The
// iterator is kept one element ahead to be able to answer HasNext.
type resultSet struct {
	iter     iterator.Iterator
	hasNext  bool
	released bool
}

func newResultSet(iter iterator.Iterator) *resultSet {
	return &resultSet{
		iter:    iter,
		hasNext: iter.Next(),
	}
}

func (r *resultSet) HasNext() bool {
	return r.hasNext
}

func (r *resultSet) Next() (state.Entry, error) {
	if !r.hasNext {
		if err := r.iter.Error(); err != nil {
			return state.Entry{}, err
		}
		return state.Entry{}, state.ErrIteratorExhausted
	}
	key, field, err := StateTableSpace.FromDBKey(r.iter.Key())
	if err != nil {
		return state.Entry{}, err
	}
	// The iterator reuses its buffers, so the value needs to be copied.
	value := make([]byte, len(r.iter.Value()))
	copy(value, r.iter.Value())
	r.hasNext = r.iter.Next()
	return state.Entry{Key: key, Field: field, Value: value}, nil
}

func (r *resultSet) Close() error {
	if r.released {
		return nil
	}
	err := r.iter.Error()
	r.iter.Release()
	r.released = true
	r.hasNext = false
	return err
}
