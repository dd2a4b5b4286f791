package ioharvest_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioharvest"
	"github.com/gnames/gnredlist/internal/iostore"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errRemote = errors.New("remote error")

// fakeClient serves canned search hits and assessments.
type fakeClient struct {
	mu       sync.Mutex
	hits     map[string][]redlist.SearchHit
	docs     map[string]*redlist.AssessmentDoc
	searches int
	fetches  int
}

func (f *fakeClient) SearchSpecies(
	ctx context.Context,
	name string,
) ([]redlist.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches++
	hits, ok := f.hits[name]
	if !ok {
		return nil, errRemote
	}
	return hits, nil
}

func (f *fakeClient) Assessment(
	ctx context.Context,
	id string,
) (*redlist.AssessmentDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	doc, ok := f.docs[id]
	if !ok {
		return nil, errRemote
	}
	return doc, nil
}

func (f *fakeClient) factory() ioharvest.ClientFactory {
	return func() redlist.Client { return f }
}

func newFake() *fakeClient {
	return &fakeClient{
		hits: map[string][]redlist.SearchHit{
			"Panthera leo": {
				{ID: "9", SisID: "99", ScientificName: "Panthera leo persica"},
				{ID: "123", SisID: "15951", ScientificName: "Panthera leo"},
			},
			"Acinonyx jubatus": {
				{ID: "200", SisID: "219", ScientificName: "Acinonyx jubatus"},
			},
			"Aus bus": {},
		},
		docs: map[string]*redlist.AssessmentDoc{
			"123": {
				ID: "123", Date: "12 March 2015",
				CitationFooter: "2015. The IUCN Red List",
				Kingdom:        "ANIMALIA", Class: "MAMMALIA",
				Category: "Vulnerable", CategoryCode: "VU",
				Systems:  []string{"Terrestrial"},
				Habitats: []string{"Savanna"},
				Threats: []redlist.ThreatNode{
					{Label: "Hunting", Children: []redlist.ThreatNode{
						{Label: "Intentional use"},
					}},
				},
				Previous: []redlist.PreviousAssessment{
					{ID: "100", Year: "2008"},
				},
			},
			"100": {
				ID: "100", Date: "2008",
				Kingdom: "ANIMALIA", Class: "MAMMALIA",
				Category: "Vulnerable", CategoryCode: "VU",
			},
			"200": {
				ID: "200", Date: "2022",
				CitationFooter: "2022. The IUCN Red List",
				Kingdom:        "ANIMALIA", Class: "MAMMALIA",
				CategoryCode:   "VU",
				Previous: []redlist.PreviousAssessment{
					{ID: "missing", Year: "2014"},
				},
			},
		},
	}
}

func testConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()
	cfg := config.New()
	opts = append([]config.Option{
		config.OptDataDir(filepath.Join(t.TempDir(), "data")),
		config.OptJobsNumber(2),
	}, opts...)
	cfg.Update(opts)
	return cfg
}

func species(names ...string) []redlist.Species {
	res := make([]redlist.Species, len(names))
	for i, v := range names {
		res[i] = redlist.Species{Name: v, Canonical: v}
	}
	return res
}

func TestHarvest(t *testing.T) {
	cfg := testConfig(t)
	fake := newFake()
	h := ioharvest.New(cfg, fake.factory(), nil)

	err := h.Harvest(context.Background(),
		species("Panthera leo", "Aus bus", "Acinonyx jubatus"))
	require.NoError(t, err)

	store := iostore.New(cfg.RowsDir())
	assert.True(t, store.Exists("Panthera leo"))
	assert.True(t, store.Exists("Acinonyx jubatus"),
		"failed previous assessment does not drop the species")
	assert.False(t, store.Exists("Aus bus"), "no hits, no file")

	rec, err := store.Load(store.Path("Panthera leo"))
	require.NoError(t, err)
	tests := []struct {
		col, val string
	}{
		{"scientific_name", "Panthera leo"},
		{"species_sis_id", "15951"},
		{"type", "MAMMALIA"},
		{"species_id_2015", "123"},
		{"species_id_2008", "100"},
		{"threats_2015", `["Hunting | Intentional use"]`},
		{"habitat2_2015", `["Savanna"]`},
		{"threats_2008", "[]"},
	}
	for _, v := range tests {
		val, ok := rec.Get(v.col)
		assert.True(t, ok, v.col)
		assert.Equal(t, v.val, val, v.col)
	}

	rec, err = store.Load(store.Path("Acinonyx jubatus"))
	require.NoError(t, err)
	_, ok := rec.Get("species_id_2014")
	assert.False(t, ok)

	// current assessment is fetched once per species
	assert.Equal(t, 4, fake.fetches)
}

func TestHarvestLogger(t *testing.T) {
	cfg := testConfig(t)
	fake := newFake()
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	err := ioharvest.New(cfg, fake.factory(), log).
		Harvest(context.Background(), species("Panthera leo", "Aus bus"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Species not found"`)
	assert.Contains(t, out, `"name":"Aus bus"`)
	assert.Contains(t, out, `"msg":"Harvest finished"`)
	assert.Contains(t, out, `"run_id"`)
}

func TestHarvestIsDeterministic(t *testing.T) {
	cfg := testConfig(t, config.OptForce(true))
	fake := newFake()
	h := ioharvest.New(cfg, fake.factory(), nil)
	store := iostore.New(cfg.RowsDir())

	list := species("Panthera leo", "Acinonyx jubatus")
	require.NoError(t, h.Harvest(context.Background(), list))
	first, err := os.ReadFile(store.Path("Panthera leo"))
	require.NoError(t, err)

	require.NoError(t, h.Harvest(context.Background(), list))
	second, err := os.ReadFile(store.Path("Panthera leo"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 4, fake.searches, "force downloads everything again")
}

func TestHarvestReuse(t *testing.T) {
	names := []string{"A a", "B b", "C c", "D d", "E e"}
	tests := []struct {
		msg      string
		existing int
		force    bool
		searches int
	}{
		{"80% on disk skips harvest", 4, false, 0},
		{"60% on disk harvests missing", 3, false, 2},
		{"force harvests all", 4, true, 5},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := testConfig(t, config.OptForce(v.force))
			store := iostore.New(cfg.RowsDir())
			require.NoError(t, os.MkdirAll(cfg.RowsDir(), 0755))
			for _, name := range names[:v.existing] {
				rec := redlist.NewSpeciesRow(redlist.Species{Name: name}).Record()
				require.NoError(t, store.Save(name, rec))
			}

			fake := newFake()
			for _, name := range names {
				fake.hits[name] = nil
			}
			err := ioharvest.New(cfg, fake.factory(), nil).
				Harvest(context.Background(), species(names...))
			require.NoError(t, err)
			assert.Equal(t, v.searches, fake.searches)
		})
	}
}

func TestHarvestAllFailed(t *testing.T) {
	cfg := testConfig(t)
	fake := newFake()
	err := ioharvest.New(cfg, fake.factory(), nil).
		Harvest(context.Background(), species("Unknown one", "Unknown two"))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.HarvestAllFailedError, gnErr.Code)
	assert.Equal(t, []any{2}, gnErr.Vars)
}

func TestHarvestCancelled(t *testing.T) {
	cfg := testConfig(t)
	fake := newFake()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ioharvest.New(cfg, fake.factory(), nil).
		Harvest(ctx, species("Panthera leo", "Acinonyx jubatus"))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.HarvestCancelledError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
	assert.Equal(t, 0, fake.searches)
}
