// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storemap

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Fantom-foundation/storemap/state"
)

// StoreMap is a map with composite keys of a fixed depth stored in a
// state.StateStore. Name, depth, and encoding are immutable, so a StoreMap
// may be shared for read-only use across goroutines as long as the
// underlying store supports this.
type StoreMap struct {
	store    state.StateStore
	name     string
	depth    int
	encoding Encoding
}

// Open obtains the map with the given name from the store, creating it with
// the given depth if it does not exist yet. If the map exists, its persisted
// name and depth are used and the depth argument is ignored.
//
// Open performs no synchronization; concurrent calls creating the same map
// must be serialized by the caller.
func Open(store state.StateStore, name string, depth int) (*StoreMap, error) {
	return OpenWithConfig(store, name, depth, DefaultConfig())
}

// OpenWithConfig is like Open but creates missing maps using the given
// configuration.
func OpenWithConfig(store state.StateStore, name string, depth int, config Config) (*StoreMap, error) {
	const op = "open"
	if depth <= 0 {
		return nil, validationError(op, name, nil, errInvalidDepth)
	}
	if name == "" {
		return nil, validationError(op, name, nil, errEmptyName)
	}
	if !utf8.ValidString(name) {
		return nil, validationError(op, name, nil, errInvalidName)
	}
	if err := config.validate(); err != nil {
		return nil, validationError(op, name, nil, err)
	}

	metadataKey := MetadataKey(name)
	data, err := store.GetState(metadataKey, MetadataField)
	if err != nil {
		return nil, storeError(op, name, nil, state.SuccessCode, err)
	}

	if len(data) != 0 {
		meta, err := unmarshalMetadata(data)
		if err != nil {
			return nil, &Error{Kind: KindCorruptMetadata, Op: op, Name: name, Err: err}
		}
		return &StoreMap{
			store:    store,
			name:     meta.Name,
			depth:    int(meta.Depth),
			encoding: meta.Encoding,
		}, nil
	}

	meta := metadata{Name: name, Depth: uint64(depth), Encoding: config.Encoding}
	data, err = meta.marshal()
	if err != nil {
		return nil, validationError(op, name, nil, err)
	}
	if code := store.PutState(metadataKey, MetadataField, data); code != state.SuccessCode {
		return nil, storeError(op, name, nil, code, errors.New("failed to store metadata"))
	}
	return &StoreMap{
		store:    store,
		name:     name,
		depth:    depth,
		encoding: config.Encoding,
	}, nil
}

// Name returns the name of the map.
func (m *StoreMap) Name() string {
	return m.name
}

// Depth returns the number of segments of the keys of the map.
func (m *StoreMap) Depth() int {
	return m.depth
}

// Encoding returns the storage key encoding of the map.
func (m *StoreMap) Encoding() Encoding {
	return m.encoding
}

func (m *StoreMap) String() string {
	return fmt.Sprintf("StoreMap(%q, depth=%d, encoding=%v)", m.name, m.depth, m.encoding)
}

// DeriveKey validates the given composite key and computes the state key and
// field addressing its entry.
func (m *StoreMap) DeriveKey(key []string) (stateKey, field string, err error) {
	return m.derive("derive", key)
}

func (m *StoreMap) derive(op string, key []string) (string, string, error) {
	if err := checkKey(key, m.depth); err != nil {
		return "", "", validationError(op, m.name, key, err)
	}
	return storageKey(m.name, key, m.encoding), deriveField(m.name, key), nil
}

// Get returns the value stored for the given key. Missing entries are
// reported as an empty value.
func (m *StoreMap) Get(key []string) ([]byte, error) {
	const op = "get"
	stateKey, field, err := m.derive(op, key)
	if err != nil {
		return nil, err
	}
	value, err := m.store.GetState(stateKey, field)
	if err != nil {
		return nil, storeError(op, m.name, key, state.SuccessCode, err)
	}
	return value, nil
}

// Set stores the value for the given key.
func (m *StoreMap) Set(key []string, value []byte) error {
	const op = "set"
	stateKey, field, err := m.derive(op, key)
	if err != nil {
		return err
	}
	if code := m.store.PutState(stateKey, field, value); code != state.SuccessCode {
		return storeError(op, m.name, key, code, nil)
	}
	return nil
}

// Delete removes the entry of the given key.
func (m *StoreMap) Delete(key []string) error {
	const op = "delete"
	stateKey, field, err := m.derive(op, key)
	if err != nil {
		return err
	}
	if code := m.store.DeleteState(stateKey, field); code != state.SuccessCode {
		return storeError(op, m.name, key, code, nil)
	}
	return nil
}

// Exists reports whether a non-empty value is stored for the given key.
func (m *StoreMap) Exists(key []string) (bool, error) {
	const op = "exists"
	stateKey, field, err := m.derive(op, key)
	if err != nil {
		return false, err
	}
	value, err := m.store.GetState(stateKey, field)
	if err != nil {
		return false, storeError(op, m.name, key, state.SuccessCode, err)
	}
	return len(value) > 0, nil
}

// NewIteratorPrefixWithKey creates an iterator over all entries of the state
// store whose key starts with the storage key of the given partial key. The
// prefix may have any number of segments, including none. The iterator must
// be closed after use.
//
// Entries are produced in their state store representation. With the
// ConcatEncoding, a prefix matches entries of keys whose segments merely
// start with the last prefix segment; e.g. ["al"] matches ["alice","bal"].
func (m *StoreMap) NewIteratorPrefixWithKey(prefix []string) (state.ResultSet, error) {
	set, code := m.store.NewIteratorPrefixWithKey(storageKey(m.name, prefix, m.encoding))
	if code != state.SuccessCode {
		return nil, storeError("iterate", m.name, prefix, code, nil)
	}
	return set, nil
}

// ForEach calls the given visitor for every entry with a key matching the
// given prefix, see NewIteratorPrefixWithKey. Iteration stops at the first
// error returned by the visitor. The iterator is always closed.
func (m *StoreMap) ForEach(prefix []string, visit func(state.Entry) error) (err error) {
	set, err := m.NewIteratorPrefixWithKey(prefix)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := set.Close(); closeErr != nil {
			err = errors.Join(err, storeError("iterate", m.name, prefix, state.SuccessCode, closeErr))
		}
	}()
	for set.HasNext() {
		entry, err := set.Next()
		if err != nil {
			return storeError("iterate", m.name, prefix, state.SuccessCode, err)
		}
		if err := visit(entry); err != nil {
			return err
		}
	}
	return nil
}
