/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioaggregate"
	"github.com/gnames/gnredlist/internal/iodb"
	"github.com/gnames/gnredlist/internal/ioexport"
	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export time series to PostgreSQL",
		Long: `Export aggregated time series to PostgreSQL.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates species and assessment_values tables with GORM AutoMigrate
  3. Aggregates saved species rows
  4. Replaces data of exported species in one transaction

Examples:
  gnredlist export
  gnredlist export --split-year 2012`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(commandFlags(cmd))
			err := runExport(context.Background())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFlags(exportCmd, splitYearFlag)
	return exportCmd
}

func runExport(ctx context.Context) error {
	agg := aggregate.New(cfg.SplitYear, slog.Default())
	t, err := ioaggregate.Load(cfg, agg)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	return ioexport.New(cfg, op, agg).Export(ctx, t)
}
