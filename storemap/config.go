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

import "fmt"

const (
	// KeysConnector is placed between the map name and key segments when
	// forming storage keys.
	KeysConnector = ""

	// MetadataField is the field under which map metadata is stored.
	MetadataField = ""
)

// Encoding defines how key segments are combined into storage keys. The
// field identifiers of entries do not depend on the encoding.
type Encoding string

const (
	// ConcatEncoding joins segments using the KeysConnector. Distinct keys
	// may share a storage key, e.g. ["ab","c"] and ["a","bc"]; their fields
	// still differ.
	ConcatEncoding Encoding = ""

	// LengthPrefixedEncoding writes every segment as <length>:<segment>,
	// making storage keys unique for distinct composite keys.
	LengthPrefixedEncoding Encoding = "length-prefixed"
)

func (e Encoding) String() string {
	if e == ConcatEncoding {
		return "concat"
	}
	return string(e)
}

func (e Encoding) valid() bool {
	return e == ConcatEncoding || e == LengthPrefixedEncoding
}

// Config holds optional settings for creating maps. Settings only take
// effect when a map is created; opening an existing map uses the settings
// persisted with it.
type Config struct {
	Encoding Encoding
}

// DefaultConfig returns the configuration producing the storage layout of
// maps created by Open.
func DefaultConfig() Config {
	return Config{
		Encoding: ConcatEncoding,
	}
}

func (c Config) validate() error {
	if !c.Encoding.valid() {
		return fmt.Errorf("unsupported key encoding %q", string(c.Encoding))
	}
	return nil
}
