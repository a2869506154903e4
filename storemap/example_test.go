// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storemap_test

import (
	"fmt"
	"log"
	"os"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/Fantom-foundation/storemap/state/ldb"
	"github.com/Fantom-foundation/storemap/state/memory"
	"github.com/Fantom-foundation/storemap/storemap"
)

func ExampleOpen() {
	balances, err := storemap.Open(memory.NewMemory(), "acct", 2)
	if err != nil {
		log.Fatalf("cannot open map: %v", err)
	}

	if err := balances.Set([]string{"alice", "bal"}, []byte("100")); err != nil {
		log.Fatalf("cannot set balance: %v", err)
	}
	value, err := balances.Get([]string{"alice", "bal"})
	if err != nil {
		log.Fatalf("cannot get balance: %v", err)
	}
	fmt.Printf("%s has depth %d, balance of alice is %s\n", balances.Name(), balances.Depth(), value)

	// Output: acct has depth 2, balance of alice is 100
}

func ExampleStoreMap_ForEach() {
	balances, err := storemap.Open(memory.NewMemory(), "acct", 2)
	if err != nil {
		log.Fatalf("cannot open map: %v", err)
	}
	balances.Set([]string{"alice", "bal"}, []byte("100"))
	balances.Set([]string{"alice", "nonce"}, []byte("7"))
	balances.Set([]string{"bob", "bal"}, []byte("5"))

	if err := balances.ForEach([]string{"alice"}, func(entry state.Entry) error {
		fmt.Printf("%s=%s\n", entry.Key, entry.Value)
		return nil
	}); err != nil {
		log.Fatalf("cannot iterate: %v", err)
	}

	// Output:
	// acctalicebal=100
	// acctalicenonce=7
}

func ExampleStoreMap_DeriveKey() {
	balances, err := storemap.Open(memory.NewMemory(), "acct", 2)
	if err != nil {
		log.Fatalf("cannot open map: %v", err)
	}
	key, _, err := balances.DeriveKey([]string{"alice", "bal"})
	if err != nil {
		log.Fatalf("cannot derive key: %v", err)
	}
	fmt.Println(key)

	// Output: acctalicebal
}

func ExampleOpen_transaction() {
	dir, err := os.MkdirTemp("", "storemap_*")
	if err != nil {
		log.Fatalf("cannot create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := ldb.Open(dir, ldb.DefaultConfig())
	if err != nil {
		log.Fatalf("cannot open store: %v", err)
	}

	tx, err := store.Begin()
	if err != nil {
		log.Fatalf("cannot begin transaction: %v", err)
	}
	users, err := storemap.Open(tx, "users", 3)
	if err != nil {
		log.Fatalf("cannot open map: %v", err)
	}
	if err := users.Set([]string{"alice", "profile", "email"}, []byte("alice@example.com")); err != nil {
		log.Fatalf("cannot set email: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("cannot commit transaction: %v", err)
	}

	// A map reopened on the committed state restores its depth.
	users, err = storemap.Open(store, "users", 1)
	if err != nil {
		log.Fatalf("cannot reopen map: %v", err)
	}
	email, err := users.Get([]string{"alice", "profile", "email"})
	if err != nil {
		log.Fatalf("cannot get email: %v", err)
	}
	fmt.Printf("depth %d, email %s\n", users.Depth(), email)

	if err := store.Close(); err != nil {
		log.Fatalf("cannot close store: %v", err)
	}

	// Output: depth 3, email alice@example.com
}
