// Package ioaggregate implements the Aggregator interface. It reads all
// stored species rows, builds the time-series table and writes it as
// CSV and, optionally, as SQLite.
package ioaggregate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/internal/iostore"
	"github.com/gnames/gnredlist/internal/iotable"
	gnredlist "github.com/gnames/gnredlist/pkg"
	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/google/uuid"
)

type aggregator struct {
	cfg *config.Config
	agg *aggregate.Aggregator
}

// New creates an Aggregator for the rows directory of cfg.
func New(cfg *config.Config, agg *aggregate.Aggregator) gnredlist.Aggregator {
	return &aggregator{cfg: cfg, agg: agg}
}

// Load reads stored rows and merges them into a table.
func Load(cfg *config.Config, agg *aggregate.Aggregator) (*aggregate.Table, error) {
	dir := cfg.RowsDir()
	recs, err := iostore.New(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, NoRowsError(dir)
	}
	return agg.Table(recs), nil
}

// Aggregate creates the time-series table from stored rows.
func (a *aggregator) Aggregate(ctx context.Context) error {
	startTime := time.Now()
	t, err := Load(a.cfg, a.agg)
	if err != nil {
		return err
	}

	path := a.cfg.TablePath()
	if err = iotable.WriteCSV(path, t); err != nil {
		return err
	}
	slog.Info("Table saved", "path", path, "rows", len(t.Rows),
		"columns", len(t.Columns))

	if a.cfg.Output.SQLite {
		meta := iotable.Meta{
			RunID:     uuid.NewString(),
			SplitYear: a.agg.SplitYear(),
			Version:   a.cfg.Version,
		}
		path = a.cfg.SQLitePath()
		if err = iotable.WriteSQLite(ctx, path, t, meta); err != nil {
			return err
		}
		slog.Info("SQLite table saved", "path", path, "run_id", meta.RunID)
	}

	gn.Info(
		"Aggregated <em>%s</em> species into <em>%d</em> columns in %s",
		humanize.Comma(int64(len(t.Rows))),
		len(t.Columns),
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	gn.Info("Time series is saved to <em>%s</em>", a.cfg.TablePath())
	return nil
}
