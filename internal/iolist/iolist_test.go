package iolist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iolist"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"Panthera leo",
		"",
		"  Aquila chrysaetos (Linnaeus, 1758)  ",
		"Panthera leo",
		"\t",
		"Quercus robur L.",
	}, "\n")

	res, err := iolist.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []redlist.Species{
		{Name: "Panthera leo", Canonical: "Panthera leo"},
		{Name: "Aquila chrysaetos (Linnaeus, 1758)",
			Canonical: "Aquila chrysaetos"},
		{Name: "Quercus robur L.", Canonical: "Quercus robur"},
	}, res)
	assert.Equal(t,
		[]string{"Panthera leo", "Aquila chrysaetos (Linnaeus, 1758)",
			"Quercus robur L."},
		iolist.Names(res))
}

func TestParseCommonNames(t *testing.T) {
	tests := []struct {
		name, canonical string
	}{
		{"Snow Leopard", "Snow Leopard"},
		{"Giant Panda", "Giant Panda"},
		{"Sea Otter", "Sea Otter"},
		{"Polar Bear", "Polar Bear"},
		{"Panthera", "Panthera"},
		{"Panthera leo (Linnaeus, 1758)", "Panthera leo"},
		{"Panthera leo persica Meyer, 1826", "Panthera leo persica"},
	}

	for _, v := range tests {
		res, err := iolist.Parse(strings.NewReader(v.name))
		require.NoError(t, err, v.name)
		require.Len(t, res, 1, v.name)
		assert.Equal(t, v.name, res[0].Name, v.name)
		assert.Equal(t, v.canonical, res[0].Canonical, v.name)
	}
}

func TestParseUnparsable(t *testing.T) {
	res, err := iolist.Parse(strings.NewReader("Not a name 123\n"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Not a name 123", res[0].Name)
	assert.NotEmpty(t, res[0].Canonical)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("Panthera leo\n"), 0644))

	res, err := iolist.Read(path)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = iolist.Read(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SpeciesListReadError, gnErr.Code)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("\n\n"), 0644))
	_, err = iolist.Read(empty)
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SpeciesListEmptyError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, iolist.ErrEmptyList)
}
