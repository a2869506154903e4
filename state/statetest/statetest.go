// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package statetest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/Fantom-foundation/storemap/state"
)

// NamedStateStoreFactory creates fresh, empty instances of a StateStore
// implementation for each test.
type NamedStateStoreFactory struct {
	ImplementationName string
	Open               func(t *testing.T) state.StateStore
}

// RunStateStoreTests runs a set of black-box unit tests against a StateStore
// implementation defined by the given factory. It is intended to be used in
// implementation specific unit test packages to cover the compliance
// properties imposed by the StateStore interface.
func RunStateStoreTests(t *testing.T, factory NamedStateStoreFactory) {
	wrap := func(test func(*testing.T, NamedStateStoreFactory)) func(*testing.T) {
		return func(t *testing.T) {
			t.Parallel()
			test(t, factory)
		}
	}
	t.Run("AbsentEntriesAreEmpty", wrap(testAbsentEntriesAreEmpty))
	t.Run("PutValuesCanBeRetrieved", wrap(testPutValuesCanBeRetrieved))
	t.Run("PutOverridesPreviousValue", wrap(testPutOverridesPreviousValue))
	t.Run("FieldsAreIndependent", wrap(testFieldsAreIndependent))
	t.Run("EmptyFieldIsSupported", wrap(testEmptyFieldIsSupported))
	t.Run("DeletedEntriesAreAbsent", wrap(testDeletedEntriesAreAbsent))
	t.Run("DeletingAbsentEntrySucceeds", wrap(testDeletingAbsentEntrySucceeds))
	t.Run("ReturnedValuesAreCopies", wrap(testReturnedValuesAreCopies))
	t.Run("KeysWithSpecialBytesAreDistinct", wrap(testKeysWithSpecialBytesAreDistinct))
	t.Run("PrefixIterationFiltersKeys", wrap(testPrefixIterationFiltersKeys))
	t.Run("PrefixIterationIsOrdered", wrap(testPrefixIterationIsOrdered))
	t.Run("EmptyPrefixIteratesAllEntries", wrap(testEmptyPrefixIteratesAllEntries))
	t.Run("EntriesWithEmptyValuesAreIterated", wrap(testEntriesWithEmptyValuesAreIterated))
	t.Run("IterationOfEmptyRangeIsEmpty", wrap(testIterationOfEmptyRangeIsEmpty))
	t.Run("ExhaustedIteratorReportsError", wrap(testExhaustedIteratorReportsError))
	t.Run("IteratorCanBeClosedTwice", wrap(testIteratorCanBeClosedTwice))
}

func mustPut(t *testing.T, store state.StateStore, key, field string, value []byte) {
	t.Helper()
	if code := store.PutState(key, field, value); code != state.SuccessCode {
		t.Fatalf("failed to put %q/%q: %v", key, field, code)
	}
}

func mustGet(t *testing.T, store state.StateStore, key, field string) []byte {
	t.Helper()
	value, err := store.GetState(key, field)
	if err != nil {
		t.Fatalf("failed to get %q/%q: %v", key, field, err)
	}
	return value
}

func mustCollect(t *testing.T, store state.StateStore, prefix string) []state.Entry {
	t.Helper()
	set, code := store.NewIteratorPrefixWithKey(prefix)
	if code != state.SuccessCode {
		t.Fatalf("failed to create iterator for prefix %q: %v", prefix, code)
	}
	entries, err := state.Collect(set)
	if err != nil {
		t.Fatalf("failed to iterate prefix %q: %v", prefix, err)
	}
	return entries
}

func describe(entries []state.Entry) []string {
	res := make([]string, 0, len(entries))
	for _, entry := range entries {
		res = append(res, fmt.Sprintf("%q/%q=%q", entry.Key, entry.Field, entry.Value))
	}
	return res
}

func testAbsentEntriesAreEmpty(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	if value := mustGet(t, store, "key", "field"); len(value) != 0 {
		t.Errorf("absent entry should be empty, got %v", value)
	}
}

func testPutValuesCanBeRetrieved(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "key", "field", []byte("value"))
	if got := mustGet(t, store, "key", "field"); !bytes.Equal(got, []byte("value")) {
		t.Errorf("unexpected value, wanted %q, got %q", "value", got)
	}
}

func testPutOverridesPreviousValue(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "key", "field", []byte("first"))
	mustPut(t, store, "key", "field", []byte("second"))
	if got := mustGet(t, store, "key", "field"); !bytes.Equal(got, []byte("second")) {
		t.Errorf("unexpected value, wanted %q, got %q", "second", got)
	}
}

func testFieldsAreIndependent(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "key", "a", []byte("1"))
	mustPut(t, store, "key", "b", []byte("2"))
	mustPut(t, store, "other", "a", []byte("3"))
	tests := []struct {
		key, field, want string
	}{
		{"key", "a", "1"},
		{"key", "b", "2"},
		{"other", "a", "3"},
		{"other", "b", ""},
	}
	for _, test := range tests {
		if got := mustGet(t, store, test.key, test.field); string(got) != test.want {
			t.Errorf("unexpected value for %q/%q, wanted %q, got %q", test.key, test.field, test.want, got)
		}
	}
}

func testEmptyFieldIsSupported(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "key", "", []byte("meta"))
	mustPut(t, store, "key", "x", []byte("data"))
	if got := mustGet(t, store, "key", ""); string(got) != "meta" {
		t.Errorf("unexpected value, wanted %q, got %q", "meta", got)
	}
	if got := mustGet(t, store, "key", "x"); string(got) != "data" {
		t.Errorf("unexpected value, wanted %q, got %q", "data", got)
	}
}

func testDeletedEntriesAreAbsent(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "key", "a", []byte("1"))
	mustPut(t, store, "key", "b", []byte("2"))
	if code := store.DeleteState("key", "a"); code != state.SuccessCode {
		t.Fatalf("failed to delete entry: %v", code)
	}
	if got := mustGet(t, store, "key", "a"); len(got) != 0 {
		t.Errorf("deleted entry should be empty, got %q", got)
	}
	if got := mustGet(t, store, "key", "b"); string(got) != "2" {
		t.Errorf("unrelated entry was modified, got %q", got)
	}
	if entries := mustCollect(t, store, "key"); len(entries) != 1 {
		t.Errorf("deleted entry should not be iterated, got %v", describe(entries))
	}
}

func testDeletingAbsentEntrySucceeds(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	if code := store.DeleteState("missing", "field"); code != state.SuccessCode {
		t.Errorf("deleting an absent entry should succeed, got %v", code)
	}
}

func testReturnedValuesAreCopies(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	value := []byte("value")
	mustPut(t, store, "key", "field", value)
	value[0] = 'X'
	got := mustGet(t, store, "key", "field")
	if string(got) != "value" {
		t.Fatalf("store retained the input slice, got %q", got)
	}
	got[0] = 'Y'
	if again := mustGet(t, store, "key", "field"); string(again) != "value" {
		t.Errorf("store exposed its internal slice, got %q", again)
	}
}

func testKeysWithSpecialBytesAreDistinct(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	keys := []string{"a", "a\x00", "a\x00\x01", "a\x01", "a\u00e9", "ab"}
	for i, key := range keys {
		mustPut(t, store, key, "f", []byte{byte('0' + i)})
	}
	for i, key := range keys {
		if got := mustGet(t, store, key, "f"); !bytes.Equal(got, []byte{byte('0' + i)}) {
			t.Errorf("unexpected value for key %q, got %q", key, got)
		}
	}
	entries := mustCollect(t, store, "a\x00")
	if len(entries) != 2 || entries[0].Key != "a\x00" || entries[1].Key != "a\x00\x01" {
		t.Errorf("unexpected entries for prefix a\\x00: %v", describe(entries))
	}
}

func testPrefixIterationFiltersKeys(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "acctalicebal", "f1", []byte("100"))
	mustPut(t, store, "acctalicenonce", "f2", []byte("1"))
	mustPut(t, store, "acctbobbal", "f3", []byte("5"))
	mustPut(t, store, "other", "f4", []byte("x"))

	entries := mustCollect(t, store, "acctalice")
	if len(entries) != 2 {
		t.Fatalf("unexpected entries: %v", describe(entries))
	}
	for _, entry := range entries {
		if entry.Key != "acctalicebal" && entry.Key != "acctalicenonce" {
			t.Errorf("unexpected entry %v", describe([]state.Entry{entry}))
		}
	}
	if got := len(mustCollect(t, store, "acct")); got != 3 {
		t.Errorf("unexpected number of entries for prefix acct, wanted 3, got %d", got)
	}
}

func testEntriesWithEmptyValuesAreIterated(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "e", "f", []byte{})
	mustPut(t, store, "e", "g", []byte("1"))

	if value := mustGet(t, store, "e", "f"); len(value) != 0 {
		t.Errorf("unexpected value %q", value)
	}
	entries := mustCollect(t, store, "e")
	if len(entries) != 2 {
		t.Fatalf("unexpected entries: %v", describe(entries))
	}
	if entries[0].Field != "f" || len(entries[0].Value) != 0 {
		t.Errorf("entry with empty value not iterated: %v", describe(entries))
	}
	if entries[1].Field != "g" || string(entries[1].Value) != "1" {
		t.Errorf("unexpected entry: %v", describe(entries))
	}
}

func testPrefixIterationIsOrdered(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "pc", "1", []byte("5"))
	mustPut(t, store, "pa", "2", []byte("2"))
	mustPut(t, store, "pa", "1", []byte("1"))
	mustPut(t, store, "pb", "", []byte("3"))
	mustPut(t, store, "pab", "0", []byte("4"))

	want := []string{"1", "2", "4", "3", "5"}
	entries := mustCollect(t, store, "p")
	if len(entries) != len(want) {
		t.Fatalf("unexpected entries: %v", describe(entries))
	}
	for i, entry := range entries {
		if string(entry.Value) != want[i] {
			t.Errorf("unexpected order of entries: %v", describe(entries))
			break
		}
	}
}

func testEmptyPrefixIteratesAllEntries(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "x", "1", []byte("1"))
	mustPut(t, store, "y", "2", []byte("2"))
	if got := len(mustCollect(t, store, "")); got != 2 {
		t.Errorf("unexpected number of entries, wanted 2, got %d", got)
	}
}

func testIterationOfEmptyRangeIsEmpty(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "x", "1", []byte("1"))
	if entries := mustCollect(t, store, "y"); len(entries) != 0 {
		t.Errorf("unexpected entries: %v", describe(entries))
	}
}

func testExhaustedIteratorReportsError(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	mustPut(t, store, "x", "1", []byte("1"))
	set, code := store.NewIteratorPrefixWithKey("x")
	if code != state.SuccessCode {
		t.Fatalf("failed to create iterator: %v", code)
	}
	defer set.Close()
	if !set.HasNext() {
		t.Fatalf("iterator should have an entry")
	}
	if _, err := set.Next(); err != nil {
		t.Fatalf("failed to fetch entry: %v", err)
	}
	if set.HasNext() {
		t.Fatalf("iterator should be exhausted")
	}
	if _, err := set.Next(); !errors.Is(err, state.ErrIteratorExhausted) {
		t.Errorf("unexpected error, wanted %v, got %v", state.ErrIteratorExhausted, err)
	}
}

func testIteratorCanBeClosedTwice(t *testing.T, factory NamedStateStoreFactory) {
	store := factory.Open(t)
	set, code := store.NewIteratorPrefixWithKey("")
	if code != state.SuccessCode {
		t.Fatalf("failed to create iterator: %v", code)
	}
	if err := set.Close(); err != nil {
		t.Errorf("failed to close iterator: %v", err)
	}
	if err := set.Close(); err != nil {
		t.Errorf("failed to close iterator twice: %v", err)
	}
}
