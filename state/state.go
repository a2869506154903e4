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

import (
	"fmt"

	"github.com/Fantom-foundation/storemap/common"
)

//go:generate mockgen -source state.go -destination state_mocks.go -package state

// ResultCode is the status reported by the host for mutating state
// operations and iterator creation.
type ResultCode int32

const (
	// SuccessCode marks a successfully completed operation.
	SuccessCode ResultCode = 0
	// FailureCode marks a failed operation. Implementations may report other
	// non-zero codes; any value other than SuccessCode is a failure.
	FailureCode ResultCode = 1
)

// StateStore is the flat, two-component (key, field) state store exposed by a
// contract execution environment. Every call is scoped to the current
// transaction of the host and observes the effects of all prior calls made
// within the same transaction.
type StateStore interface {
	// GetState reads the value stored under the given key and field. An absent
	// entry is reported as an empty slice, not as an error.
	GetState(key, field string) ([]byte, error)

	// PutState stores the value under the given key and field.
	PutState(key, field string, value []byte) ResultCode

	// DeleteState removes the value stored under the given key and field.
	// Deleting an absent entry succeeds.
	DeleteState(key, field string) ResultCode

	// NewIteratorPrefixWithKey creates an iterator over all entries whose key
	// starts with the given prefix. The iterator must be closed after use.
	NewIteratorPrefixWithKey(prefix string) (ResultSet, ResultCode)
}

// ErrIteratorExhausted is returned by ResultSet.Next if no further entries
// are available.
const ErrIteratorExhausted = common.ConstError("no more entries in result set")

// ResultSet is an iterator over state entries.
type ResultSet interface {
	// HasNext reports whether a further entry can be obtained through Next.
	HasNext() bool

	// Next returns the next entry of the iteration, or ErrIteratorExhausted
	// if there is none.
	Next() (Entry, error)

	// Close releases resources held by the iterator. Closing an iterator
	// more than once is allowed.
	Close() error
}

// Entry is a single (key, field) -> value association of a state store.
type Entry struct {
	Key   string
	Field string
	Value []byte
}

func (c ResultCode) String() string {
	switch c {
	case SuccessCode:
		return "success"
	case FailureCode:
		return "failure"
	}
	return fmt.Sprintf("code(%d)", int32(c))
}
