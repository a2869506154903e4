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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/Fantom-foundation/storemap/state/dynamo"
	"github.com/Fantom-foundation/storemap/state/ldb"
	"github.com/Fantom-foundation/storemap/storemap"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/urfave/cli/v2"
)

var (
	dbDirectoryFlag = cli.StringFlag{
		Name:  "dir",
		Usage: "the LevelDB directory holding the state",
	}
	tableFlag = cli.StringFlag{
		Name:  "table",
		Usage: "the DynamoDB table holding the state, accessed using the default AWS configuration",
	}
	nameFlag = cli.StringFlag{
		Name:     "name",
		Usage:    "the name of the map",
		Required: true,
	}
	depthFlag = cli.IntFlag{
		Name:  "depth",
		Usage: "the number of key segments, only used when the map is created",
		Value: 1,
	}
	encodingFlag = cli.StringFlag{
		Name:  "encoding",
		Usage: "the storage key encoding (concat or length-prefixed), only used when the map is created",
		Value: storemap.ConcatEncoding.String(),
	}
)

var mapFlags = []cli.Flag{
	&dbDirectoryFlag,
	&tableFlag,
	&nameFlag,
	&depthFlag,
	&encodingFlag,
}

// backend is a state store opened by a command. Updates made through it
// become durable with commit; close releases it and drops uncommitted
// updates.
type backend struct {
	state.StateStore
	commit func() error
	close  func() error
}

func noop() error {
	return nil
}

func openBackend(ctx *cli.Context, update bool) (*backend, error) {
	dir := ctx.String(dbDirectoryFlag.Name)
	table := ctx.String(tableFlag.Name)
	switch {
	case dir != "" && table != "":
		return nil, fmt.Errorf("flags --%s and --%s can not be combined", dbDirectoryFlag.Name, tableFlag.Name)
	case dir != "":
		return openLevelDB(dir, update)
	case table != "":
		return openDynamoDB(ctx.Context, table)
	}
	return nil, fmt.Errorf("one of --%s or --%s is required", dbDirectoryFlag.Name, tableFlag.Name)
}

func openLevelDB(dir string, update bool) (*backend, error) {
	log.Printf("Opening state in %v ...", dir)
	store, err := ldb.Open(dir, ldb.DefaultConfig())
	if err != nil {
		return nil, err
	}
	if !update {
		return &backend{StateStore: store, commit: noop, close: store.Close}, nil
	}
	tx, err := store.Begin()
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	return &backend{
		StateStore: tx,
		commit:     tx.Commit,
		close: func() error {
			tx.Discard()
			return store.Close()
		},
	}, nil
}

func openDynamoDB(ctx context.Context, table string) (*backend, error) {
	log.Printf("Opening state in DynamoDB table %v ...", table)
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	config := dynamo.DefaultConfig()
	config.Table = table
	store := dynamo.New(dynamodb.NewFromConfig(cfg), config).WithContext(ctx)
	return &backend{StateStore: store, commit: noop, close: noop}, nil
}

func parseEncoding(s string) (storemap.Encoding, error) {
	for _, encoding := range []storemap.Encoding{storemap.ConcatEncoding, storemap.LengthPrefixedEncoding} {
		if s == encoding.String() {
			return encoding, nil
		}
	}
	return "", fmt.Errorf("invalid value %q for flag --%s, expected %v or %v", s, encodingFlag.Name, storemap.ConcatEncoding, storemap.LengthPrefixedEncoding)
}

// withMap opens the map selected by the command line flags and runs the
// given operation on it. Updates of the operation are committed if it
// succeeds.
func withMap(ctx *cli.Context, update bool, run func(*storemap.StoreMap) error) (err error) {
	encoding, err := parseEncoding(ctx.String(encodingFlag.Name))
	if err != nil {
		return err
	}
	store, err := openBackend(ctx, update)
	if err != nil {
		return err
	}
	defer func() {
		log.Printf("Closing state ...")
		if closeError := store.close(); closeError != nil {
			if err == nil {
				err = closeError
			} else {
				log.Printf("Failure closing state: %v", closeError)
			}
		}
	}()

	config := storemap.Config{Encoding: encoding}
	m, err := storemap.OpenWithConfig(store, ctx.String(nameFlag.Name), ctx.Int(depthFlag.Name), config)
	if err != nil {
		return err
	}
	if err := run(m); err != nil {
		return err
	}
	return store.commit()
}

func StartCPUProfile(profileName string) error {
	f, err := os.Create(profileName)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %s", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("could not start CPU profile: %s", err)
	}
	return nil
}

func StopCPUProfile() {
	pprof.StopCPUProfile()
}
