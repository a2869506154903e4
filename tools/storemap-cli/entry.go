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
	"errors"
	"fmt"
	"log"

	"github.com/Fantom-foundation/storemap/storemap"
	"github.com/urfave/cli/v2"
)

var valueFlag = cli.StringFlag{
	Name:     "value",
	Usage:    "the value to be stored",
	Required: true,
}

const keyArgsUsage = "<segment>..."

var getCommand = cli.Command{
	Action:    get,
	Name:      "get",
	Usage:     "prints the value stored for a key",
	ArgsUsage: keyArgsUsage,
	Flags:     mapFlags,
}

var setCommand = cli.Command{
	Action:    set,
	Name:      "set",
	Usage:     "stores a value for a key",
	ArgsUsage: keyArgsUsage,
	Flags:     append([]cli.Flag{&valueFlag}, mapFlags...),
}

var deleteCommand = cli.Command{
	Action:    del,
	Name:      "del",
	Usage:     "deletes the value stored for a key",
	ArgsUsage: keyArgsUsage,
	Flags:     mapFlags,
}

var existsCommand = cli.Command{
	Action:    exists,
	Name:      "exists",
	Usage:     "prints whether a non-empty value is stored for a key",
	ArgsUsage: keyArgsUsage,
	Flags:     mapFlags,
}

var locateCommand = cli.Command{
	Action:    locate,
	Name:      "locate",
	Usage:     "prints the state key and field an entry is stored under",
	ArgsUsage: keyArgsUsage,
	Flags:     mapFlags,
}

func keyArgs(ctx *cli.Context) ([]string, error) {
	if ctx.NArg() == 0 {
		return nil, errors.New("missing key segments")
	}
	return ctx.Args().Slice(), nil
}

func get(ctx *cli.Context) error {
	key, err := keyArgs(ctx)
	if err != nil {
		return err
	}
	return withMap(ctx, false, func(m *storemap.StoreMap) error {
		value, err := m.Get(key)
		if err != nil {
			return err
		}
		if len(value) == 0 {
			log.Printf("No value stored for %q", key)
			return nil
		}
		fmt.Fprintf(ctx.App.Writer, "%s\n", value)
		return nil
	})
}

func set(ctx *cli.Context) error {
	key, err := keyArgs(ctx)
	if err != nil {
		return err
	}
	return withMap(ctx, true, func(m *storemap.StoreMap) error {
		log.Printf("Setting %q ...", key)
		return m.Set(key, []byte(ctx.String(valueFlag.Name)))
	})
}

func del(ctx *cli.Context) error {
	key, err := keyArgs(ctx)
	if err != nil {
		return err
	}
	return withMap(ctx, true, func(m *storemap.StoreMap) error {
		log.Printf("Deleting %q ...", key)
		return m.Delete(key)
	})
}

func exists(ctx *cli.Context) error {
	key, err := keyArgs(ctx)
	if err != nil {
		return err
	}
	return withMap(ctx, false, func(m *storemap.StoreMap) error {
		exists, err := m.Exists(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%t\n", exists)
		return nil
	})
}

func locate(ctx *cli.Context) error {
	key, err := keyArgs(ctx)
	if err != nil {
		return err
	}
	return withMap(ctx, false, func(m *storemap.StoreMap) error {
		stateKey, field, err := m.DeriveKey(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "Key: %s\nField: %s\n", stateKey, field)
		return nil
	})
}
