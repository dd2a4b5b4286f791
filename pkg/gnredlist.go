// Package gnredlist collects IUCN Red List assessment histories for a list
// of species and turns them into a single time-series table.
package gnredlist

import (
	"context"

	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/gnames/gnredlist/pkg/redlist"
)

var (
	// Version of gnredlist, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)

// Harvester downloads assessment histories for species and persists one
// wide row per species.
type Harvester interface {
	// Harvest processes every species from the list. It returns
	// without fetching anything when enough rows already exist on disk,
	// unless the configuration forces a new download.
	Harvest(ctx context.Context, species []redlist.Species) error
}

// Aggregator merges persisted per-species rows into the final table.
type Aggregator interface {
	// Aggregate reads all persisted rows, builds the time-series table
	// and writes it to its output destinations.
	Aggregate(ctx context.Context) error
}

// Exporter loads the time-series table into a relational database.
type Exporter interface {
	// Export creates missing tables and replaces the data of every
	// species found in the table.
	Export(ctx context.Context, t *aggregate.Table) error
}
