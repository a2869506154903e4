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
	"bytes"
	"testing"
)

func TestTableSpace_KeysCanBeDecoded(t *testing.T) {
	tests := map[string]struct {
		key, field string
	}{
		"plain":          {"acctalicebal", "400650fa"},
		"empty-field":    {"acct648c", ""},
		"empty-key":      {"", "field"},
		"zero-in-key":    {"a\x00b", "f"},
		"zero-at-end":    {"a\x00", "f"},
		"zero-in-field":  {"a", "\x00\x01"},
		"escape-pattern": {"\x00\xff\x00\x01", "\x00\xff"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			dbKey := StateTableSpace.ToDBKey(test.key, test.field)
			key, field, err := StateTableSpace.FromDBKey(dbKey)
			if err != nil {
				t.Fatalf("failed to decode %x: %v", dbKey, err)
			}
			if key != test.key || field != test.field {
				t.Errorf("unexpected decoded key, wanted %q/%q, got %q/%q", test.key, test.field, key, field)
			}
		})
	}
}

func TestTableSpace_PrefixMatchesKeysWithPrefix(t *testing.T) {
	tests := []struct {
		prefix, key string
		match       bool
	}{
		{"acct", "acctalice", true},
		{"acct", "acct", true},
		{"", "anything", true},
		{"acctalice", "acct", false},
		{"a\x00", "a\x00b", true},
		{"a\x00", "a", false},
		{"a", "b", false},
	}
	for _, test := range tests {
		prefix := StateTableSpace.ToDBPrefix(test.prefix)
		dbKey := StateTableSpace.ToDBKey(test.key, "field")
		if got := bytes.HasPrefix(dbKey, prefix); got != test.match {
			t.Errorf("unexpected match of prefix %q for key %q, wanted %t, got %t", test.prefix, test.key, test.match, got)
		}
	}
}

func TestTableSpace_DatabaseKeysPreserveOrder(t *testing.T) {
	ordered := []struct{ key, field string }{
		{"a", ""},
		{"a", "x"},
		{"a\x00", "a"},
		{"a\x00\x00", ""},
		{"a\x01", ""},
		{"ab", ""},
		{"b", ""},
	}
	for i := 0; i+1 < len(ordered); i++ {
		a := StateTableSpace.ToDBKey(ordered[i].key, ordered[i].field)
		b := StateTableSpace.ToDBKey(ordered[i+1].key, ordered[i+1].field)
		if bytes.Compare(a, b) >= 0 {
			t.Errorf("order violated between %q/%q and %q/%q", ordered[i].key, ordered[i].field, ordered[i+1].key, ordered[i+1].field)
		}
	}
}

func TestTableSpace_DecodingRejectsInvalidKeys(t *testing.T) {
	tests := map[string][]byte{
		"empty":           {},
		"wrong-table":     {'X', 'a', 0x00, 0x01},
		"no-terminator":   {'S', 'a', 'b'},
		"dangling-escape": {'S', 'a', 0x00},
		"bad-escape":      {'S', 'a', 0x00, 0x02},
	}
	for name, dbKey := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := StateTableSpace.FromDBKey(dbKey); err == nil {
				t.Errorf("expected an error for %x", dbKey)
			}
		})
	}
}
