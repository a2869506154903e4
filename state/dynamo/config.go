// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dynamo

// Config holds configuration for the Store.
type Config struct {
	// Table is the name of the DynamoDB table holding state entries.
	// Default: "storemap_state"
	Table string

	// ConsistentRead requests strongly consistent reads for lookups and
	// scans. Without it, a read may not reflect a recently completed write.
	// Default: true
	ConsistentRead bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Table:          "storemap_state",
		ConsistentRead: true,
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "storemap_state"
	}
}
