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
	"fmt"
	"strings"
)

// Hash is a 256-bit cryptographic digest.
type Hash [32]byte

// HashFromHex parses a 64 digit hex string, with or without 0x prefix.
func HashFromHex(s string) (Hash, error) {
	var res Hash
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*len(res) {
		return res, fmt.Errorf("invalid hash length %d, expected %d hex digits", len(s), 2*len(res))
	}
	if _, err := hex.Decode(res[:], []byte(s)); err != nil {
		return Hash{}, fmt.Errorf("invalid hash %q: %w", s, err)
	}
	return res, nil
}

func (h Hash) String() string {
	return h.Hex()
}
