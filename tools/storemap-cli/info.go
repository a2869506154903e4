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

	"github.com/Fantom-foundation/storemap/storemap"
	"github.com/urfave/cli/v2"
)

var getInfoCommand = cli.Command{
	Action: getInfo,
	Name:   "info",
	Usage:  "opens or creates a map and prints its properties",
	Flags:  mapFlags,
}

func getInfo(ctx *cli.Context) error {
	return withMap(ctx, true, func(m *storemap.StoreMap) error {
		w := ctx.App.Writer
		fmt.Fprintf(w, "Name: %s\n", m.Name())
		fmt.Fprintf(w, "Depth: %d\n", m.Depth())
		fmt.Fprintf(w, "Encoding: %v\n", m.Encoding())
		fmt.Fprintf(w, "Metadata key: %s\n", storemap.MetadataKey(m.Name()))
		return nil
	})
}
