// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"strings"
	"sync"

	"github.com/Fantom-foundation/storemap/state"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Memory is an in-memory state.StateStore implementation. It is intended for
// tests and for simulating a host environment; all data is lost on shutdown.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte // key -> field -> value
}

// NewMemory creates an empty in-memory state store.
func NewMemory() *Memory {
	return &Memory{
		data: map[string]map[string][]byte{},
	}
}

func (m *Memory) GetState(key, field string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.data[key][field]), nil
}

func (m *Memory) PutState(key, field string, value []byte) state.ResultCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	fields, found := m.data[key]
	if !found {
		fields = map[string][]byte{}
		m.data[key] = fields
	}
	fields[field] = slices.Clone(value)
	return state.SuccessCode
}

func (m *Memory) DeleteState(key, field string) state.ResultCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	fields, found := m.data[key]
	if !found {
		return state.SuccessCode
	}
	delete(fields, field)
	if len(fields) == 0 {
		delete(m.data, key)
	}
	return state.SuccessCode
}

// NewIteratorPrefixWithKey returns an iterator over a snapshot of all entries
// with a matching key, ordered by key and field.
func (m *Memory) NewIteratorPrefixWithKey(prefix string) (state.ResultSet, state.ResultCode) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := maps.Keys(m.data)
	slices.Sort(keys)
	var entries []state.Entry
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		fields := maps.Keys(m.data[key])
		slices.Sort(fields)
		for _, field := range fields {
			entries = append(entries, state.Entry{
				Key:   key,
				Field: field,
				Value: slices.Clone(m.data[key][field]),
			})
		}
	}
	return state.NewSliceResultSet(entries), state.SuccessCode
}

// Len returns the number of entries in the store.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := 0
	for _, fields := range m.data {
		res += len(fields)
	}
	return res
}
