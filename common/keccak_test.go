// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestKeccak256_KnownVectors(t *testing.T) {
	tests := map[string]string{
		"":     "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		"abc":  "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		"acct": "648c2732f453632d78943fdd8d05e6ec57f43537a42d28d817bb96051bcd9ae3",
	}
	for input, want := range tests {
		if got := Keccak256Hex(input); got != want {
			t.Errorf("unexpected hash of %q, wanted %v, got %v", input, want, got)
		}
	}
}

func TestKeccak256_ProducesSameHashAsGoEthereum(t *testing.T) {
	tests := [][]byte{
		nil,
		{},
		{1, 2, 3},
		[]byte("users"),
		make([]byte, 135),
		make([]byte, 136),
		make([]byte, 1024),
	}
	for _, test := range tests {
		want := Hash(crypto.Keccak256Hash(test))
		got := Keccak256(test)
		if want != got {
			t.Errorf("unexpected hash for %v, wanted %v, got %v", test, want, got)
		}
	}
}

func TestKeccak256_HexIsLowerCaseWithoutPrefix(t *testing.T) {
	hex := Keccak256Hex("abc")
	if len(hex) != 64 {
		t.Fatalf("unexpected length of hex string: %d", len(hex))
	}
	for _, c := range hex {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			t.Fatalf("unexpected character %q in %v", c, hex)
		}
	}
}

func TestKeccak256_CanBeUsedConcurrently(t *testing.T) {
	want := Keccak256([]byte("data"))
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Keccak256([]byte("data")); got != want {
					errs <- fmt.Errorf("unexpected hash %v, wanted %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestHashFromHex_ParsesHexEncoding(t *testing.T) {
	want := Keccak256([]byte("abc"))
	for _, input := range []string{want.Hex(), "0x" + want.Hex()} {
		got, err := HashFromHex(input)
		if err != nil {
			t.Fatalf("failed to parse %v: %v", input, err)
		}
		if got != want {
			t.Errorf("unexpected hash, wanted %v, got %v", want, got)
		}
	}
}

func TestHashFromHex_RejectsInvalidInput(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"too-short": "abcd",
		"not-hex":   "zz" + Keccak256([]byte{}).Hex()[2:],
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := HashFromHex(input); err == nil {
				t.Errorf("expected an error for %q", input)
			}
		})
	}
}

func BenchmarkKeccak256(b *testing.B) {
	for i := 1; i < 1<<14; i <<= 3 {
		b.Run(fmt.Sprintf("size=%d", i), func(b *testing.B) {
			data := make([]byte, i)
			for i := 0; i < b.N; i++ {
				Keccak256(data)
			}
		})
	}
}
