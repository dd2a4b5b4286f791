package ioaggregate_test

import (
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/ioaggregate"
	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/internal/iostore"
	"github.com/gnames/gnredlist/internal/iotable"
	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func testConfig(t *testing.T, sqlite bool) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDataDir(t.TempDir()),
		config.OptOutputSQLite(sqlite),
	})
	require.NoError(t, iofs.EnsureDataDirs(cfg))
	return cfg
}

func saveRows(t *testing.T, cfg *config.Config) {
	store := iostore.New(cfg.RowsDir())

	leo := redlist.NewRecord()
	leo.Set("scientific_name", "Panthera leo")
	leo.Set("type", "MAMMALIA")
	leo.Set("red_list_category_code_2008", "VU")
	leo.Set("red_list_category_code_2016", "VU")
	leo.Set("threats_2016", `["1 | 2 | 3"]`)
	require.NoError(t, store.Save("Panthera leo", leo))

	rosa := redlist.NewRecord()
	rosa.Set("scientific_name", "Rosa canina")
	rosa.Set("type", "Plantae")
	rosa.Set("2012_red_list_category_code", "LC")
	require.NoError(t, store.Save("Rosa canina", rosa))
}

func TestAggregate(t *testing.T) {
	cfg := testConfig(t, true)
	saveRows(t, cfg)

	agg := aggregate.New(cfg.SplitYear, nil)
	err := ioaggregate.New(cfg, agg).Aggregate(context.Background())
	require.NoError(t, err)

	f, err := os.Open(cfg.TablePath())
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, agg.BaseColumns(), rows[0][:len(agg.BaseColumns())])
	assert.Equal(t, "Panthera leo", rows[1][1])
	assert.Equal(t, "Rosa canina", rows[2][1])

	db, err := sql.Open("sqlite", cfg.SQLitePath())
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT count(*) FROM " + iotable.SQLiteTable).
		Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAggregateNoSQLite(t *testing.T) {
	cfg := testConfig(t, false)
	saveRows(t, cfg)

	agg := aggregate.New(cfg.SplitYear, nil)
	err := ioaggregate.New(cfg, agg).Aggregate(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, cfg.TablePath())
	assert.NoFileExists(t, cfg.SQLitePath())
}

func TestLoad(t *testing.T) {
	cfg := testConfig(t, false)
	saveRows(t, cfg)

	tbl, err := ioaggregate.Load(cfg, aggregate.New(2010, nil))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	v, ok := tbl.Cell(0, "red_list_category_weight_post_2010")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	v, ok = tbl.Cell(0, "threat_post_2010")
	assert.True(t, ok)
	assert.Equal(t, `["1 | 2"]`, v)
	_, ok = tbl.Cell(1, "threat_post_2010")
	assert.False(t, ok)
}

func TestLoadNoRows(t *testing.T) {
	cfg := testConfig(t, false)

	_, err := ioaggregate.Load(cfg, aggregate.New(2010, nil))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.NoRowsError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, ioaggregate.ErrNoRows)
}
