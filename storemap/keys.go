// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/storemap/common"
)

// MetadataKey returns the state key under which the metadata of the map with
// the given name is stored.
func MetadataKey(name string) string {
	return name + common.Keccak256Hex(name)
}

// checkKey verifies that the given key is a valid composite key for a map of
// the given depth.
func checkKey(key []string, depth int) error {
	for _, segment := range key {
		if segment == "" {
			return errEmptySegment
		}
	}
	if len(key) != depth {
		return fmt.Errorf("key has %d segments, map depth is %d", len(key), depth)
	}
	return nil
}

// deriveField computes the chained hash identifying an entry within its
// storage key.
func deriveField(name string, key []string) string {
	field := common.Keccak256Hex(name)
	for _, segment := range key {
		field = common.Keccak256Hex(field + segment)
	}
	return field
}

// storageKey combines the map name and the given, possibly partial, key into
// a state key.
func storageKey(name string, key []string, encoding Encoding) string {
	if encoding != LengthPrefixedEncoding {
		return name + KeysConnector + strings.Join(key, KeysConnector)
	}
	var b strings.Builder
	b.WriteString(name)
	for _, segment := range key {
		b.WriteString(strconv.Itoa(len(segment)))
		b.WriteByte(':')
		b.WriteString(segment)
	}
	return b.String()
}
