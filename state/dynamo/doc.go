// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package dynamo provides a state.StateStore implementation backed by a
// DynamoDB table.
//
// Every (key, field) entry is stored as one item of the form
//
//	{pk: S <key>, sk: S "#" <field>, value: B <value>}
//
// DynamoDB rejects empty strings as key attributes, so fields are stored with
// a '#' marker to support the empty field used for map metadata. The table
// must have a string hash key "pk" and a string range key "sk"; see
// CreateTable.
//
// Prefix iteration is implemented by a paginated, filtered Scan. It reads the
// whole table and is thus only suitable for moderate data sizes.
package dynamo
