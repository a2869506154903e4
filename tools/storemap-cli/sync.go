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
	"time"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/urfave/cli/v2"
)

var (
	cpuProfilingFlag = cli.StringFlag{
		Name:  "cpu-profile",
		Usage: "enable the recording of a CPU profile",
	}
	dbSourceDirFlag = cli.StringFlag{
		Name:     "src-dir",
		Usage:    "the source of the synchronization",
		Required: true,
	}
	dbTargetDirFlag = cli.StringFlag{
		Name:     "trg-dir",
		Usage:    "the target of the synchronization",
		Required: true,
	}
)

var syncCommand = cli.Command{
	Action: sync,
	Name:   "sync",
	Usage:  "copies all state entries of one LevelDB directory into another",
	Flags: []cli.Flag{
		&dbSourceDirFlag,
		&dbTargetDirFlag,
		&cpuProfilingFlag,
	},
}

func sync(ctx *cli.Context) (err error) {

	profileTarget := ctx.String(cpuProfilingFlag.Name)
	if len(profileTarget) != 0 {
		if err := StartCPUProfile(profileTarget); err != nil {
			return err
		}
		defer StopCPUProfile()
	}

	srcDir := ctx.String(dbSourceDirFlag.Name)
	source, err := openLevelDB(srcDir, false)
	if err != nil {
		return err
	}
	defer func() {
		log.Printf("Closing source state in %v ...", srcDir)
		if closeError := source.close(); closeError != nil {
			if err == nil {
				err = closeError
			} else {
				log.Printf("Failure closing DB: %v", closeError)
			}
		}
	}()

	trgDir := ctx.String(dbTargetDirFlag.Name)
	target, err := openLevelDB(trgDir, true)
	if err != nil {
		return err
	}
	defer func() {
		log.Printf("Closing target state in %v ...", trgDir)
		if closeError := target.close(); closeError != nil {
			if err == nil {
				err = closeError
			} else {
				log.Printf("Failure closing DB: %v", closeError)
			}
		}
	}()

	log.Printf("Synching states ...")

	start := time.Now()
	copied, err := copyEntries(source, target)
	if err != nil {
		return err
	}
	if err := target.commit(); err != nil {
		return err
	}

	log.Printf("Synching complete")
	log.Printf("Synching took %.1f seconds", time.Since(start).Seconds())
	fmt.Fprintf(ctx.App.Writer, "Copied entries: %d\n", copied)
	return nil
}

// copyEntries writes all entries of the source store into the target store
// and returns the number of copied entries.
func copyEntries(source, target state.StateStore) (count int, err error) {
	set, code := source.NewIteratorPrefixWithKey("")
	if code != state.SuccessCode {
		return 0, fmt.Errorf("failed to iterate source state: %v", code)
	}
	defer func() {
		err = errors.Join(err, set.Close())
	}()
	for set.HasNext() {
		entry, err := set.Next()
		if err != nil {
			return count, err
		}
		if code := target.PutState(entry.Key, entry.Field, entry.Value); code != state.SuccessCode {
			return count, fmt.Errorf("failed to write entry %q/%q: %v", entry.Key, entry.Field, code)
		}
		count++
	}
	return count, nil
}
