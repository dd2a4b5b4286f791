// Package aggregate turns wide per-species rows into the rows of the
// time-series table. It renames per-year columns to the canonical
// "<field>_<year>" form, adds severity weights, folds habitats of all
// years into one pair of columns and summarizes threats and weights
// before and after a split year.
package aggregate

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// Summary keywords. Each keyword produces "<keyword>_pre_<year>" and
// "<keyword>_post_<year>" columns.
const (
	KeywordWeight = redlist.FieldWeight
	KeywordThreat = "threat"
)

// Aggregated habitat columns.
const (
	ColHabitat1 = redlist.FieldHabitat1
	ColHabitat2 = redlist.FieldHabitat2
)

// Aggregator converts persisted rows. It keeps no state besides its
// settings.
type Aggregator struct {
	splitYear int
	log       *slog.Logger
}

// New creates an Aggregator for the given split year. If log is nil
// slog.Default() is used.
func New(splitYear int, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{splitYear: splitYear, log: log}
}

// SplitYear returns the year that separates summary periods.
func (a *Aggregator) SplitYear() int {
	return a.splitYear
}

// PreCol returns the name of the "before split year" column of a keyword.
func (a *Aggregator) PreCol(keyword string) string {
	return keyword + "_pre_" + strconv.Itoa(a.splitYear)
}

// PostCol returns the name of the "split year and later" column of
// a keyword.
func (a *Aggregator) PostCol(keyword string) string {
	return keyword + "_post_" + strconv.Itoa(a.splitYear)
}

// BaseColumns are the leading columns of the final table.
func (a *Aggregator) BaseColumns() []string {
	return []string{
		redlist.ColType,
		redlist.ColScientificName,
		redlist.ColSisID,
		redlist.ColNameID,
		ColHabitat1,
		ColHabitat2,
		a.PreCol(KeywordWeight),
		a.PostCol(KeywordWeight),
		a.PreCol(KeywordThreat),
		a.PostCol(KeywordThreat),
	}
}

// Row converts one persisted row into an aggregated row. The input is
// not modified.
func (a *Aggregator) Row(rec *redlist.Record) *redlist.Record {
	res := canonical(rec)
	addWeights(res)

	name, _ := res.Get(redlist.ColScientificName)
	for _, field := range []string{redlist.FieldHabitat1, redlist.FieldHabitat2} {
		keys := yearKeys(res, field)
		val, errs := MergeHabitats(values(res, keys))
		a.logMalformed(name, field, errs)
		for _, k := range keys {
			res.Delete(k)
		}
		res.Set(field, val)
	}

	var pre, post []string
	pre, post = a.partition(res, redlist.FieldWeight)
	a.setSummary(res, name, KeywordWeight, pre, post, MaxWeight)

	pre, post = a.partition(res, redlist.FieldThreats)
	a.setSummary(res, name, KeywordThreat, pre, post, ThreatSummary)

	return res
}

type summaryFunc func([]string) (string, bool, []error)

func (a *Aggregator) setSummary(
	rec *redlist.Record,
	name, keyword string,
	pre, post []string,
	fn summaryFunc,
) {
	cols := []string{a.PreCol(keyword), a.PostCol(keyword)}
	for i, vals := range [][]string{pre, post} {
		val, ok, errs := fn(vals)
		a.logMalformed(name, cols[i], errs)
		if ok {
			rec.Set(cols[i], val)
		}
	}
}

// partition splits values of a per-year field by the split year.
func (a *Aggregator) partition(
	rec *redlist.Record,
	field string,
) (pre, post []string) {
	for _, k := range yearKeys(rec, field) {
		_, y, _ := redlist.SplitKey(k)
		year, _ := strconv.Atoi(y)
		if year < a.splitYear {
			pre = append(pre, rec.Values[k])
		} else {
			post = append(post, rec.Values[k])
		}
	}
	return pre, post
}

func (a *Aggregator) logMalformed(name, col string, errs []error) {
	for _, err := range errs {
		a.log.Warn("Skipping malformed value",
			"scientific_name", name,
			"column", col,
			"error", err,
		)
	}
}

// canonical copies a record renaming per-year columns to the
// "<field>_<year>" form.
func canonical(rec *redlist.Record) *redlist.Record {
	res := redlist.NewRecord()
	for _, col := range rec.Columns {
		val, ok := rec.Get(col)
		if !ok {
			continue
		}
		if field, year, ok := redlist.SplitKey(col); ok {
			col = redlist.Key(field, year)
		}
		res.Set(col, val)
	}
	return res
}

// addWeights adds a weight column for every category code with a known
// severity. Unknown codes produce no column.
func addWeights(rec *redlist.Record) {
	for _, k := range yearKeys(rec, redlist.FieldCategoryCode) {
		_, year, _ := redlist.SplitKey(k)
		if w, ok := redlist.Weight(rec.Values[k]); ok {
			rec.Set(redlist.Key(redlist.FieldWeight, year), strconv.Itoa(w))
		}
	}
}

// yearKeys returns sorted per-year columns of a field.
func yearKeys(rec *redlist.Record, field string) []string {
	var res []string
	for _, col := range rec.Columns {
		if f, _, ok := redlist.SplitKey(col); ok && f == field {
			res = append(res, col)
		}
	}
	slices.Sort(res)
	return res
}

func values(rec *redlist.Record, keys []string) []string {
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = rec.Values[k]
	}
	return res
}
