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
	"strings"

	"github.com/Fantom-foundation/storemap/common"
	"github.com/Fantom-foundation/storemap/state"
)

const (
	// ErrValidation is matched by errors caused by invalid arguments. Such
	// errors are detected before the state store is accessed.
	ErrValidation = common.ConstError("invalid argument")
	// ErrStore is matched by errors reported by the state store.
	ErrStore = common.ConstError("state store failure")
	// ErrCorruptMetadata is matched by errors caused by persisted map
	// metadata that can not be decoded.
	ErrCorruptMetadata = common.ConstError("corrupt map metadata")
)

// Kind classifies errors produced by this package.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindStore
	KindCorruptMetadata
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStore:
		return "store"
	case KindCorruptMetadata:
		return "corrupt-metadata"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindStore:
		return ErrStore
	case KindCorruptMetadata:
		return ErrCorruptMetadata
	}
	return nil
}

// Error is the error type of all failing StoreMap operations.
type Error struct {
	Kind Kind
	// Op is the failing operation, e.g. "open" or "set".
	Op string
	// Name is the name of the involved map.
	Name string
	// Key is the composite key of the operation, if any.
	Key []string
	// Code is the result code reported by the state store. It is the
	// SuccessCode if the store reported the failure as an error.
	Code state.ResultCode
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("storemap: ")
	b.WriteString(e.Op)
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	if e.Key != nil {
		fmt.Fprintf(&b, " %q", e.Key)
	}
	fmt.Fprintf(&b, ": %v", e.Kind.sentinel())
	if e.Code != state.SuccessCode {
		fmt.Fprintf(&b, " (%v)", e.Code)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is reports whether the target is the sentinel error of the kind of e.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}

const (
	errEmptyName    = common.ConstError("name must not be empty")
	errInvalidName  = common.ConstError("name must be valid UTF-8")
	errInvalidDepth = common.ConstError("depth must be greater than zero")
	errEmptySegment = common.ConstError("key segment must not be empty")
)

func validationError(op, name string, key []string, cause error) *Error {
	return &Error{Kind: KindValidation, Op: op, Name: name, Key: key, Err: cause}
}

func storeError(op, name string, key []string, code state.ResultCode, cause error) *Error {
	return &Error{Kind: KindStore, Op: op, Name: name, Key: key, Code: code, Err: cause}
}
