// Package iolist reads the list of species to harvest.
package iolist

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnredlist/pkg/redlist"
)

// Read loads species names from a file with one name per line.
func Read(path string) ([]redlist.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, SpeciesListReadError(path, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, SpeciesListReadError(path, err)
	}
	if len(res) == 0 {
		return nil, SpeciesListEmptyError(path)
	}
	return res, nil
}

// Parse reads names from r. Blank lines are ignored, repeated names are
// kept once. Canonical forms of species and infraspecies come from
// gnparser. Other names, including common names that gnparser reads as
// a genus with an author, are their own canonical form.
func Parse(r io.Reader) ([]redlist.Species, error) {
	prs := gnparser.New(gnparser.NewConfig())
	seen := make(map[string]struct{})

	var res []redlist.Species
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(gnlib.FixUtf8(sc.Text()))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			slog.Warn("Duplicate species in the list", "name", name)
			continue
		}
		seen[name] = struct{}{}

		sp := redlist.Species{Name: name, Canonical: name}
		p := prs.ParseName(name)
		if p.Parsed && p.Cardinality >= 2 &&
			p.Canonical != nil && p.Canonical.Simple != "" {
			sp.Canonical = p.Canonical.Simple
		}
		res = append(res, sp)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Names returns verbatim names of species.
func Names(ss []redlist.Species) []string {
	res := make([]string, len(ss))
	for i, v := range ss {
		res[i] = v.Name
	}
	return res
}
