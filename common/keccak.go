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
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy (pre-NIST) Keccak-256 hash of the given data,
// as used by Ethereum-style execution environments.
func Keccak256(data []byte) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// Keccak256Hex returns the lowercase hex encoding of the Keccak-256 hash of
// the given string, without any 0x prefix.
func Keccak256Hex(data string) string {
	return Keccak256([]byte(data)).Hex()
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// Hex returns the lowercase hex encoding of the hash, without 0x prefix.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}
