// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"log"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/Fantom-foundation/storemap/storemap"
	"github.com/urfave/cli/v2"
)

var scanCommand = cli.Command{
	Action:    scan,
	Name:      "scan",
	Usage:     "lists all entries of a map whose state key starts with the given segments",
	ArgsUsage: "[<segment>...]",
	Flags:     mapFlags,
}

func scan(ctx *cli.Context) error {
	prefix := ctx.Args().Slice()
	return withMap(ctx, false, func(m *storemap.StoreMap) error {
		log.Printf("Scanning entries with prefix %q ...", prefix)
		count := 0
		err := m.ForEach(prefix, func(entry state.Entry) error {
			count++
			fmt.Fprintf(ctx.App.Writer, "%s %s %s\n", entry.Key, entry.Field, entry.Value)
			return nil
		})
		log.Printf("Found %d entries", count)
		return err
	})
}
