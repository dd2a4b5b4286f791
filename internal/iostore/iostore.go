// Package iostore keeps per-species rows on disk, one CSV file with a
// header and a single data row per species.
package iostore

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gnredlist/pkg/redlist"
)

const (
	filePrefix = "species_"
	fileSuffix = "_assessment_details.csv"
)

// Store reads and writes species rows in a directory.
type Store struct {
	dir string
}

// New creates a Store for dir. The directory must exist before rows
// are saved.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path of a species row.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, redlist.FileName(name))
}

// Exists checks if a row of the species is already saved.
func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// Count returns how many of the given species already have rows.
func (s *Store) Count(names []string) int {
	var res int
	for _, v := range names {
		if s.Exists(v) {
			res++
		}
	}
	return res
}

// Save writes a row of a species, replacing the previous one. The file
// is written to a temporary name first, so a row file is never
// incomplete.
func (s *Store) Save(name string, rec *redlist.Record) error {
	path := s.Path(name)
	tmp, err := os.CreateTemp(s.dir, ".row-*.csv")
	if err != nil {
		return RowWriteError(path, err)
	}
	defer os.Remove(tmp.Name())

	if err = writeRecord(tmp, rec); err != nil {
		tmp.Close()
		return RowWriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return RowWriteError(path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return RowWriteError(path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return RowWriteError(path, err)
	}
	return nil
}

func writeRecord(w io.Writer, rec *redlist.Record) error {
	vals := make([]string, len(rec.Columns))
	for i, c := range rec.Columns {
		vals[i] = rec.Values[c]
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(rec.Columns); err != nil {
		return err
	}
	if err := cw.Write(vals); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Load reads a row file.
func (s *Store) Load(path string) (*redlist.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, RowReadError(path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, RowReadError(path, err)
	}
	vals, err := cr.Read()
	if errors.Is(err, io.EOF) {
		err = ErrNoData
	}
	if err != nil {
		return nil, RowReadError(path, err)
	}

	res := redlist.NewRecord()
	for i, col := range header {
		res.Set(col, vals[i])
	}
	return res, nil
}

// Files returns paths of all row files sorted by name.
func (s *Store) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, RowReadError(s.dir, err)
	}

	var res []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() ||
			!strings.HasPrefix(name, filePrefix) ||
			!strings.HasSuffix(name, fileSuffix) {
			continue
		}
		res = append(res, filepath.Join(s.dir, name))
	}
	slices.Sort(res)
	return res, nil
}

// LoadAll reads all row files in the order of Files. The first file
// that cannot be read stops loading.
func (s *Store) LoadAll() ([]*redlist.Record, error) {
	paths, err := s.Files()
	if err != nil {
		return nil, err
	}

	res := make([]*redlist.Record, 0, len(paths))
	for _, v := range paths {
		rec, err := s.Load(v)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}
