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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// metadata is the persisted description of a map.
type metadata struct {
	Name     string   `json:"name"`
	Depth    uint64   `json:"depth"`
	Encoding Encoding `json:"encoding,omitempty"`
}

// marshal produces a compact JSON object with the fields in declaration
// order and without HTML escaping.
func (m *metadata) marshal() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// unmarshalMetadata decodes a metadata record. Member names are matched
// exactly and may appear at most once; unknown members are ignored.
func unmarshalMetadata(data []byte) (metadata, error) {
	res, err := decodeMetadata(json.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return metadata{}, err
	}
	if res.Name == "" {
		return metadata{}, errEmptyName
	}
	if res.Depth == 0 {
		return metadata{}, errInvalidDepth
	}
	if res.Depth > math.MaxInt {
		return metadata{}, fmt.Errorf("depth %d exceeds supported range", res.Depth)
	}
	if !res.Encoding.valid() {
		return metadata{}, fmt.Errorf("unsupported key encoding %q", string(res.Encoding))
	}
	return res, nil
}

func decodeMetadata(decoder *json.Decoder) (metadata, error) {
	var res metadata
	if err := expectDelim(decoder, '{'); err != nil {
		return res, err
	}
	seen := map[string]bool{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return res, err
		}
		member, _ := token.(string)
		var target any
		switch member {
		case "name":
			target = &res.Name
		case "depth":
			target = &res.Depth
		case "encoding":
			target = &res.Encoding
		default:
			target = new(json.RawMessage)
		}
		if _, ok := target.(*json.RawMessage); !ok {
			if seen[member] {
				return res, fmt.Errorf("duplicate member %q", member)
			}
			seen[member] = true
		}
		if err := decoder.Decode(target); err != nil {
			return res, err
		}
	}
	if err := expectDelim(decoder, '}'); err != nil {
		return res, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return res, errors.New("unexpected data after metadata object")
	}
	return res, nil
}

func expectDelim(decoder *json.Decoder, delim json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if token != delim {
		return fmt.Errorf("expected %v, got %v", delim, token)
	}
	return nil
}
