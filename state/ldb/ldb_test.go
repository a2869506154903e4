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
	"os"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/Fantom-foundation/storemap/state/statetest"
)

var _ state.StateStore = (*Store)(nil)
var _ state.StateStore = (*Transaction)(nil)

func openStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(dir, DefaultConfig())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return store
}

func TestStore_ComplianceTests(t *testing.T) {
	statetest.RunStateStoreTests(t, statetest.NamedStateStoreFactory{
		ImplementationName: "ldb",
		Open: func(t *testing.T) state.StateStore {
			store := openStore(t, t.TempDir())
			t.Cleanup(func() {
				if err := store.Close(); err != nil {
					t.Errorf("failed to close store: %v", err)
				}
			})
			return store
		},
	})
}

func TestTransaction_ComplianceTests(t *testing.T) {
	statetest.RunStateStoreTests(t, statetest.NamedStateStoreFactory{
		ImplementationName: "ldb-transaction",
		Open: func(t *testing.T) state.StateStore {
			store := openStore(t, t.TempDir())
			tx, err := store.Begin()
			if err != nil {
				t.Fatalf("failed to start transaction: %v", err)
			}
			t.Cleanup(func() {
				tx.Discard()
				if err := store.Close(); err != nil {
					t.Errorf("failed to close store: %v", err)
				}
			})
			return tx
		},
	})
}

func TestStore_DataIsPersistent(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, dir)
	if code := store.PutState("acctalicebal", "field", []byte("100")); code != state.SuccessCode {
		t.Fatalf("failed to put state: %v", code)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	store = openStore(t, dir)
	defer store.Close()
	value, err := store.GetState("acctalicebal", "field")
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	if string(value) != "100" {
		t.Errorf("unexpected value after reopening, wanted %q, got %q", "100", value)
	}
}

func TestStore_OpenFailsForInvalidDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "some_file.dat")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if _, err := Open(path, DefaultConfig()); err == nil {
		t.Fatalf("expected an error, got nothing")
	}
}

func TestStore_SyncedWritesAreSupported(t *testing.T) {
	store, err := Open(t.TempDir(), Config{Sync: true})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()
	if code := store.PutState("k", "f", []byte("v")); code != state.SuccessCode {
		t.Errorf("failed to put state: %v", code)
	}
	if code := store.DeleteState("k", "f"); code != state.SuccessCode {
		t.Errorf("failed to delete state: %v", code)
	}
}

func TestStore_WritesFailAfterClose(t *testing.T) {
	store := openStore(t, t.TempDir())
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	if code := store.PutState("k", "f", []byte("v")); code == state.SuccessCode {
		t.Errorf("writing to a closed store should fail")
	}
	if code := store.DeleteState("k", "f"); code == state.SuccessCode {
		t.Errorf("deleting from a closed store should fail")
	}
	if _, err := store.GetState("k", "f"); err == nil {
		t.Errorf("reading from a closed store should fail")
	}
}

func TestTransaction_CommittedUpdatesAreVisible(t *testing.T) {
	store := openStore(t, t.TempDir())
	defer store.Close()

	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("failed to start transaction: %v", err)
	}
	tx.PutState("k", "f", []byte("v"))
	if value, _ := store.GetState("k", "f"); len(value) != 0 {
		t.Errorf("uncommitted update should not be visible, got %q", value)
	}
	if value, _ := tx.GetState("k", "f"); string(value) != "v" {
		t.Errorf("update should be visible within the transaction, got %q", value)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("failed to commit transaction: %v", err)
	}
	if value, _ := store.GetState("k", "f"); string(value) != "v" {
		t.Errorf("committed update should be visible, got %q", value)
	}
}

func TestTransaction_DiscardedUpdatesAreDropped(t *testing.T) {
	store := openStore(t, t.TempDir())
	defer store.Close()

	store.PutState("k", "f", []byte("old"))
	tx, err := store.Begin()
	if err != nil {
		t.Fatalf("failed to start transaction: %v", err)
	}
	tx.PutState("k", "f", []byte("new"))
	tx.DeleteState("k", "f")
	tx.PutState("k2", "f", []byte("added"))
	tx.Discard()

	if value, _ := store.GetState("k", "f"); string(value) != "old" {
		t.Errorf("discarded transaction modified the store, got %q", value)
	}
	if value, _ := store.GetState("k2", "f"); len(value) != 0 {
		t.Errorf("discarded transaction added an entry, got %q", value)
	}
}
