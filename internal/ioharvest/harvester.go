// Package ioharvest implements the Harvester interface. It resolves
// species against the Red List API, collects all their assessments and
// saves one wide row per species.
package ioharvest

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/internal/iolist"
	"github.com/gnames/gnredlist/internal/iostore"
	gnredlist "github.com/gnames/gnredlist/pkg"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ClientFactory creates an API client. Every worker gets its own client.
type ClientFactory func() redlist.Client

type outcome int

const (
	saved outcome = iota
	notFound
	failed
)

type stats struct {
	saved, notFound, failed atomic.Int64
}

func (s *stats) add(o outcome) {
	switch o {
	case saved:
		s.saved.Add(1)
	case notFound:
		s.notFound.Add(1)
	default:
		s.failed.Add(1)
	}
}

type harvester struct {
	cfg       *config.Config
	store     *iostore.Store
	newClient ClientFactory
	log       *slog.Logger
}

// New creates a Harvester that saves rows to the rows directory of cfg.
// If log is nil slog.Default() is used.
func New(
	cfg *config.Config,
	newClient ClientFactory,
	log *slog.Logger,
) gnredlist.Harvester {
	if log == nil {
		log = slog.Default()
	}
	return &harvester{
		cfg:       cfg,
		store:     iostore.New(cfg.RowsDir()),
		newClient: newClient,
		log:       log,
	}
}

// Harvest downloads and saves rows of species. Nothing is downloaded
// when the share of saved species reaches the reuse threshold. Otherwise
// species without rows are processed by a pool of workers, with Force
// all species are processed. A species that fails is logged and skipped.
func (h *harvester) Harvest(
	ctx context.Context,
	species []redlist.Species,
) error {
	startTime := time.Now()
	runID := uuid.NewString()
	log := h.log.With("run_id", runID)

	if err := iofs.EnsureDataDirs(h.cfg); err != nil {
		return err
	}

	if h.reuse(species) {
		log.Info("Enough species rows exist, skipping harvest",
			"total", len(species),
			"dir", h.store.Dir(),
		)
		gn.Info("Species rows exist already in <em>%s</em>, skipping download",
			h.store.Dir())
		return nil
	}

	todo := h.pending(species)
	log.Info("Starting harvest",
		"species", len(todo),
		"skipped", len(species)-len(todo),
		"jobs", h.cfg.JobsNumber,
	)

	st, err := h.run(ctx, log, todo)
	duration := gnfmt.TimeString(time.Since(startTime).Seconds())
	log.Info("Harvest finished",
		"saved", st.saved.Load(),
		"not_found", st.notFound.Load(),
		"failed", st.failed.Load(),
		"duration", duration,
	)
	if err != nil {
		return CancelledError(err)
	}

	gn.Info(`Harvest complete
Species saved: %s, not found: %s, failed: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(st.saved.Load()),
		humanize.Comma(st.notFound.Load()),
		humanize.Comma(st.failed.Load()),
		duration,
	)

	if st.saved.Load() == 0 && st.failed.Load() > 0 {
		return AllFailedError(int(st.failed.Load()))
	}
	return nil
}

// reuse checks if enough rows exist to skip the harvest.
func (h *harvester) reuse(species []redlist.Species) bool {
	if h.cfg.Force {
		return false
	}
	existing := h.store.Count(iolist.Names(species))
	return float64(existing) >= h.cfg.Harvest.ReuseThreshold*float64(len(species))
}

// pending returns species that have to be downloaded.
func (h *harvester) pending(species []redlist.Species) []redlist.Species {
	if h.cfg.Force {
		return species
	}
	res := make([]redlist.Species, 0, len(species))
	for _, v := range species {
		if !h.store.Exists(v.Name) {
			res = append(res, v)
		}
	}
	return res
}

func (h *harvester) run(
	ctx context.Context,
	log *slog.Logger,
	species []redlist.Species,
) (*stats, error) {
	var st stats
	var bar *pb.ProgressBar
	if h.cfg.WithProgress {
		bar = pb.Full.Start(len(species))
		bar.Set("prefix", "Harvesting species: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)
	chIn := make(chan redlist.Species)

	g.Go(func() error {
		defer close(chIn)
		for _, v := range species {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chIn <- v:
			}
		}
		return nil
	})

	for range h.cfg.JobsNumber {
		g.Go(func() error {
			c := h.newClient()
			for sp := range chIn {
				st.add(h.species(ctx, log, c, sp))
				if bar != nil {
					bar.Increment()
				}
			}
			return nil
		})
	}

	return &st, g.Wait()
}

// species processes one species, its row is saved only if at least one
// assessment was collected.
func (h *harvester) species(
	ctx context.Context,
	log *slog.Logger,
	c redlist.Client,
	sp redlist.Species,
) outcome {
	found, ok, err := resolve(ctx, c, sp)
	if err != nil {
		log.Warn("Cannot resolve species", "name", sp.Name, "error", err)
		return failed
	}
	if !ok {
		log.Info("Species not found", "name", sp.Name)
		return notFound
	}

	row, err := h.row(ctx, log, c, found)
	if err != nil {
		log.Warn("Cannot collect assessments",
			"name", sp.Name,
			"id", found.ID,
			"error", err,
		)
		return failed
	}

	if err = h.store.Save(sp.Name, row.Record()); err != nil {
		log.Error("Cannot save species row", "name", sp.Name, "error", err)
		return failed
	}
	return saved
}

// row collects all assessments of a resolved species. Assessments that
// cannot be fetched are logged and skipped.
func (h *harvester) row(
	ctx context.Context,
	log *slog.Logger,
	c redlist.Client,
	sp redlist.Species,
) (*redlist.SpeciesRow, error) {
	d := newDocs(c)
	hist, err := history(ctx, d, sp.ID)
	if err != nil {
		return nil, err
	}

	res := redlist.NewSpeciesRow(sp)
	for _, v := range hist {
		tp, a, err := fetch(ctx, d, v.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("Skipping assessment",
				"name", sp.Name,
				"year", v.Year,
				"id", v.ID,
				"error", err,
			)
			continue
		}
		res.Add(tp, a)
	}

	if len(res.Assessments) == 0 {
		return nil, errNoAssessments
	}
	log.Debug("Species assessments collected",
		"name", sp.Name,
		"assessments", len(res.Assessments),
		"requests", d.calls,
	)
	return res, nil
}

var errNoAssessments = errors.New("no assessments collected")
