// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import "errors"

// NewSliceResultSet creates a ResultSet producing the given entries in order.
func NewSliceResultSet(entries []Entry) ResultSet {
	return &sliceResultSet{entries: entries}
}

type sliceResultSet struct {
	entries []Entry
	pos     int
}

func (s *sliceResultSet) HasNext() bool {
	return s.pos < len(s.entries)
}

func (s *sliceResultSet) Next() (Entry, error) {
	if !s.HasNext() {
		return Entry{}, ErrIteratorExhausted
	}
	res := s.entries[s.pos]
	s.pos++
	return res, nil
}

func (s *sliceResultSet) Close() error {
	s.entries = nil
	s.pos = 0
	return nil
}

// Collect drains the given result set and closes it.
func Collect(set ResultSet) ([]Entry, error) {
	var res []Entry
	for set.HasNext() {
		entry, err := set.Next()
		if err != nil {
			return nil, errors.Join(err, set.Close())
		}
		res = append(res, entry)
	}
	return res, set.Close()
}
