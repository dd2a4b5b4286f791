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
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioapi"
	"github.com/gnames/gnredlist/internal/ioharvest"
	"github.com/gnames/gnredlist/internal/iolist"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/spf13/cobra"
)

// getHarvestCmd returns the harvest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getHarvestCmd() *cobra.Command {
	harvestCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Download assessment history of species",
		Long: `Download assessment history of species from the IUCN Red List.

This command:
  1. Reads species names from list.txt
  2. Finds every species with the Red List search
  3. Downloads all assessments of the species
  4. Saves one row per species to red_list_assessment_details

The download is skipped when most of the species are already saved
(see harvest.reuse_threshold in config). Otherwise only species
without saved rows are downloaded. Use --force to download everything.

Ctrl-C stops the download, rows saved so far are kept.

Examples:
  gnredlist harvest
  gnredlist harvest --force --progress
  gnredlist harvest -j 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(commandFlags(cmd))
			ctx, stop := signal.NotifyContext(
				context.Background(), os.Interrupt, syscall.SIGTERM,
			)
			defer stop()

			err := runHarvest(ctx)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addFlags(harvestCmd, forceFlag, progressFlag, jobsFlag)
	return harvestCmd
}

func runHarvest(ctx context.Context) error {
	species, err := iolist.Read(cfg.ListPath())
	if err != nil {
		return err
	}
	gn.Info("Species list contains <em>%s</em> names",
		humanize.Comma(int64(len(species))))

	newClient := func() redlist.Client {
		return ioapi.New(cfg.API, slog.Default())
	}
	return ioharvest.New(cfg, newClient, slog.Default()).Harvest(ctx, species)
}
