// Package ioexport implements the Exporter interface. It creates tables
// with GORM AutoMigrate and replaces data of exported species in one
// transaction.
package ioexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	gnredlist "github.com/gnames/gnredlist/pkg"
	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/db"
	"github.com/gnames/gnredlist/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type exporter struct {
	cfg      *config.Config
	operator db.Operator
	agg      *aggregate.Aggregator
}

// New creates an Exporter that writes through a connected operator.
func New(
	cfg *config.Config,
	op db.Operator,
	agg *aggregate.Aggregator,
) gnredlist.Exporter {
	return &exporter{cfg: cfg, operator: op, agg: agg}
}

// Export loads the table into PostgreSQL. Previous data of the same
// species is deleted first.
func (e *exporter) Export(ctx context.Context, t *aggregate.Table) error {
	startTime := time.Now()
	pool := e.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}
	gormDB = gormDB.WithContext(ctx)

	if err = schema.Migrate(gormDB); err != nil {
		return SchemaError(err)
	}

	spp, vals := schema.FromTable(t, e.agg)
	ids := make([]string, len(spp))
	for i := range spp {
		ids[i] = spp[i].NameID
	}

	batch := e.cfg.Database.BatchSize
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if len(ids) == 0 {
			return nil
		}
		err := tx.Where("name_id IN ?", ids).
			Delete(&schema.AssessmentValue{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("name_id IN ?", ids).Delete(&schema.Species{}).Error
		if err != nil {
			return err
		}
		if err = tx.CreateInBatches(spp, batch).Error; err != nil {
			return err
		}
		if len(vals) == 0 {
			return nil
		}
		return tx.CreateInBatches(vals, batch).Error
	})
	if err != nil {
		return ExportError(err)
	}

	duration := gnfmt.TimeString(time.Since(startTime).Seconds())
	slog.Info("Export complete",
		"species", len(spp),
		"values", len(vals),
		"duration", duration,
	)
	gn.Info("Exported <em>%s</em> species and <em>%s</em> values in %s",
		humanize.Comma(int64(len(spp))),
		humanize.Comma(int64(len(vals))),
		duration,
	)
	return nil
}
