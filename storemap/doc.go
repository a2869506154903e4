// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package storemap provides nested maps with fixed-depth composite keys on
// top of a flat (key, field) state store.
//
// A StoreMap is identified by its name and has a fixed depth: every key used
// with the map is a sequence of exactly depth non-empty string segments.
// Entries are addressed in the state store as
//
//	key:   name || k_1 || ... || k_d
//	field: f_d, where f_0 = keccak(name) and f_i = keccak(f_{i-1} || k_i)
//
// with keccak producing lowercase hex strings. The key is suitable for prefix
// iteration over partial keys, the field makes lookups collision resistant.
//
// The name and depth of a map are persisted once under the key
// name || keccak(name) with an empty field. Opening a map with an existing
// name restores the persisted depth, independent of the requested one.
//
// All failures are reported as *Error values which can be classified using
// errors.Is with ErrValidation, ErrStore, and ErrCorruptMetadata.
package storemap
