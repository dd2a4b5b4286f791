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
	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/spf13/cobra"
)

// getAggregateCmd returns the aggregate command.
func getAggregateCmd() *cobra.Command {
	aggregateCmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Merge saved species rows into time series",
		Long: `Merge saved species rows into one time-series table.

For every species, the command:
  1. Normalizes per-year column names
  2. Adds severity weights of Red List categories
  3. Folds yearly habitats into habitat1 and habitat2
  4. Summarizes weights and threats before and after the split year

The table is saved as CSV and, unless --no-sqlite is given, as SQLite.

Examples:
  gnredlist aggregate
  gnredlist aggregate --split-year 2012
  gnredlist aggregate --no-sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(commandFlags(cmd))
			err := runAggregate(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFlags(aggregateCmd, splitYearFlag, noSQLiteFlag)
	return aggregateCmd
}

func runAggregate(ctx context.Context) error {
	agg := aggregate.New(cfg.SplitYear, slog.Default())
	return ioaggregate.New(cfg, agg).Aggregate(ctx)
}
