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
	"fmt"
)

// TableSpace divides the key-value storage into spaces by adding a prefix to
// the key.
type TableSpace byte

const (
	// StateTableSpace is the tablespace for (key, field) state entries.
	StateTableSpace TableSpace = 'S'
)

// Database keys are composed as
//
//	table || escape(key) || 0x00 0x01 || field
//
// where escape replaces each 0x00 byte with 0x00 0xFF. The terminator can not
// occur within an escaped key, so keys and fields may contain arbitrary bytes,
// and the byte order of database keys matches the (key, field) order.
const (
	escapeByte     = 0x00
	escapedZero    = 0xFF
	terminatorByte = 0x01
)

// ToDBKey converts a (key, field) pair into its database key.
func (t TableSpace) ToDBKey(key, field string) []byte {
	res := make([]byte, 0, 1+len(key)+2+len(field)+4)
	res = append(res, byte(t))
	res = appendEscaped(res, key)
	res = append(res, escapeByte, terminatorByte)
	return append(res, field...)
}

// ToDBPrefix converts a key prefix into the prefix of all database keys of
// entries with a matching key.
func (t TableSpace) ToDBPrefix(prefix string) []byte {
	res := make([]byte, 0, 1+len(prefix)+4)
	res = append(res, byte(t))
	return appendEscaped(res, prefix)
}

// FromDBKey splits a database key into its (key, field) components.
func (t TableSpace) FromDBKey(dbKey []byte) (key, field string, err error) {
	if len(dbKey) == 0 || dbKey[0] != byte(t) {
		return "", "", fmt.Errorf("database key %x is not in table space %c", dbKey, t)
	}
	rest := dbKey[1:]
	var buffer bytes.Buffer
	for i := 0; i < len(rest); i++ {
		if rest[i] != escapeByte {
			buffer.WriteByte(rest[i])
			continue
		}
		if i+1 >= len(rest) {
			break
		}
		switch rest[i+1] {
		case escapedZero:
			buffer.WriteByte(escapeByte)
			i++
		case terminatorByte:
			return buffer.String(), string(rest[i+2:]), nil
		default:
			return "", "", fmt.Errorf("invalid escape sequence at position %d of database key %x", i+1, dbKey)
		}
	}
	return "", "", fmt.Errorf("database key %x lacks a key terminator", dbKey)
}

func appendEscaped(trg []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if s[i] == escapeByte {
			trg = append(trg, escapeByte, escapedZero)
		} else {
			trg = append(trg, s[i])
		}
	}
	return trg
}
