package redlist

import (
	"slices"
	"strings"

	"github.com/gnames/gnuuid"
)

// Identity columns of a species row.
const (
	ColType           = "type"
	ColScientificName = "scientific_name"
	ColSisID          = "species_sis_id"
	ColNameID         = "name_id"
)

// Per-assessment fields. In a row every field is suffixed by the
// assessment year, for example "threats_2012".
const (
	FieldSpeciesID    = "species_id"
	FieldCategory     = "red_list_category"
	FieldCategoryCode = "red_list_category_code"
	FieldWeight       = "red_list_category_weight"
	FieldTrend        = "population_trend"
	FieldHabitat1     = "habitat1"
	FieldHabitat2     = "habitat2"
	FieldThreats      = "threats"
)

// IdentityColumns are the non-year columns of a row in their order.
var IdentityColumns = []string{
	ColScientificName, ColSisID, ColNameID, ColType,
}

// AssessmentFields are per-year fields in the order they are written.
var AssessmentFields = []string{
	FieldSpeciesID,
	FieldCategory,
	FieldCategoryCode,
	FieldTrend,
	FieldHabitat1,
	FieldHabitat2,
	FieldThreats,
}

// IsField checks if a name is a per-year field, including the weight
// derived during aggregation.
func IsField(name string) bool {
	return name == FieldWeight || slices.Contains(AssessmentFields, name)
}

// Key builds the canonical column name of a per-year field.
func Key(field, year string) string {
	return field + "_" + year
}

// SplitKey parses a per-year column name. Both canonical "field_2005"
// and legacy "2005_field" forms are recognised. The result is false for
// identity and summary columns.
func SplitKey(key string) (field, year string, ok bool) {
	if len(key) > 5 && key[len(key)-5] == '_' && IsYear(key[len(key)-4:]) {
		return key[:len(key)-5], key[len(key)-4:], true
	}
	if len(key) > 5 && key[4] == '_' && IsYear(key[:4]) {
		return key[5:], key[:4], true
	}
	return "", "", false
}

// Record is a flat row: ordered column names and their values.
// A column that is not in Values is null.
type Record struct {
	Columns []string
	Values  map[string]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{Values: make(map[string]string)}
}

// Set assigns a value, adding the column if it is new.
func (r *Record) Set(col, val string) {
	if _, ok := r.Values[col]; !ok {
		r.Columns = append(r.Columns, col)
	}
	r.Values[col] = val
}

// Get returns the value of a column and false if the column is null.
func (r *Record) Get(col string) (string, bool) {
	v, ok := r.Values[col]
	return v, ok
}

// Delete removes a column.
func (r *Record) Delete(col string) {
	if _, ok := r.Values[col]; !ok {
		return
	}
	delete(r.Values, col)
	r.Columns = slices.DeleteFunc(r.Columns, func(s string) bool {
		return s == col
	})
}

// SpeciesRow is the typed wide row of one species: its identity and all
// its assessments keyed by year.
type SpeciesRow struct {
	Species     Species
	Type        string
	Assessments map[string]Assessment
}

// NewSpeciesRow creates a row without assessments.
func NewSpeciesRow(sp Species) *SpeciesRow {
	return &SpeciesRow{
		Species:     sp,
		Assessments: make(map[string]Assessment),
	}
}

// Add stores an assessment under its year. The species type of the row
// is overwritten by every call.
func (r *SpeciesRow) Add(speciesType string, a Assessment) {
	r.Type = speciesType
	r.Assessments[a.Year] = a
}

// Years returns assessment years in ascending order.
func (r *SpeciesRow) Years() []string {
	res := make([]string, 0, len(r.Assessments))
	for k := range r.Assessments {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Record serializes the row into a flat Record. Columns have a fixed
// order, so the same row always produces the same Record.
func (r *SpeciesRow) Record() *Record {
	res := NewRecord()
	res.Set(ColScientificName, r.Species.Name)
	res.Set(ColSisID, r.Species.SisID)
	res.Set(ColNameID, NameID(r.Species.Name))
	res.Set(ColType, r.Type)

	for _, year := range r.Years() {
		a := r.Assessments[year]
		res.Set(Key(FieldSpeciesID, year), a.ID)
		res.Set(Key(FieldCategory, year), a.Category)
		res.Set(Key(FieldCategoryCode, year), a.CategoryCode)
		res.Set(Key(FieldTrend, year), a.PopulationTrend)
		res.Set(Key(FieldHabitat1, year), a.Habitat1)
		res.Set(Key(FieldHabitat2, year), EncodeList(a.Habitat2))
		res.Set(Key(FieldThreats, year), EncodeList(a.Threats))
	}
	return res
}

// NameID returns a UUID v5 generated from a scientific name.
func NameID(name string) string {
	return gnuuid.New(name).String()
}

// FileName converts a species name into the name of its row file.
// Spaces become underscores, characters not allowed in file names
// become dashes.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return '_'
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	return "species_" + name + "_assessment_details.csv"
}
