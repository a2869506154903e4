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

import "strings"

// Namespace is a StateStore view confining all keys to a namespace of an
// underlying store. Keys passed to and returned by the view are relative to
// the namespace.
type Namespace struct {
	store  StateStore
	prefix string
}

// NewNamespace creates a view on the given store using the given prefix for
// all keys.
func NewNamespace(store StateStore, prefix string) *Namespace {
	return &Namespace{store: store, prefix: prefix}
}

func (n *Namespace) GetState(key, field string) ([]byte, error) {
	return n.store.GetState(n.prefix+key, field)
}

func (n *Namespace) PutState(key, field string, value []byte) ResultCode {
	return n.store.PutState(n.prefix+key, field, value)
}

func (n *Namespace) DeleteState(key, field string) ResultCode {
	return n.store.DeleteState(n.prefix+key, field)
}

func (n *Namespace) NewIteratorPrefixWithKey(prefix string) (ResultSet, ResultCode) {
	set, code := n.store.NewIteratorPrefixWithKey(n.prefix + prefix)
	if code != SuccessCode {
		return nil, code
	}
	return &namespaceResultSet{ResultSet: set, prefix: n.prefix}, SuccessCode
}

type namespaceResultSet struct {
	ResultSet
	prefix string
}

func (s *namespaceResultSet) Next() (Entry, error) {
	entry, err := s.ResultSet.Next()
	if err != nil {
		return entry, err
	}
	entry.Key = strings.TrimPrefix(entry.Key, s.prefix)
	return entry, nil
}
