package redlist_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() *redlist.AssessmentDoc {
	return &redlist.AssessmentDoc{
		ID:              "123",
		Date:            "12 March 2015",
		CitationFooter:  "2015. The IUCN Red List of Threatened Species",
		Kingdom:         "Animalia",
		Class:           "Mammalia",
		Category:        "Vulnerable",
		CategoryCode:    "VU",
		PopulationTrend: "Decreasing",
		Systems:         []string{"Terrestrial", "Freshwater"},
		Habitats:        []string{"Forest", "Savanna"},
		Threats: []redlist.ThreatNode{
			node("Hunting", leaf("Intentional use")),
		},
		Previous: []redlist.PreviousAssessment{
			{ID: "100", Year: "2008"},
			{ID: "90", Year: "1996"},
			{ID: "80", Year: "n/a"},
		},
	}
}

func TestDocAssessment(t *testing.T) {
	doc := testDoc()
	assert.Equal(t, "Mammalia", doc.SpeciesType())

	a, err := doc.Assessment()
	require.NoError(t, err)
	assert.Equal(t, "2015", a.Year)
	assert.Equal(t, "123", a.ID)
	assert.Equal(t, "Vulnerable", a.Category)
	assert.Equal(t, "VU", a.CategoryCode)
	assert.Equal(t, "Decreasing", a.PopulationTrend)
	assert.Equal(t, "Terrestrial", a.Habitat1)
	assert.Equal(t, []string{"Forest", "Savanna"}, a.Habitat2)
	assert.Equal(t, []string{"Hunting | Intentional use"}, a.Threats)
}

func TestDocAssessmentEmpty(t *testing.T) {
	doc := &redlist.AssessmentDoc{ID: "1", Date: "2001", Kingdom: "Plantae",
		Class: "Magnoliopsida"}
	assert.Equal(t, "Plantae", doc.SpeciesType())

	a, err := doc.Assessment()
	require.NoError(t, err)
	assert.Empty(t, a.Habitat1)
	assert.NotNil(t, a.Habitat2)
	assert.Empty(t, a.Habitat2)
	assert.NotNil(t, a.Threats)
	assert.Empty(t, a.Threats)
}

func TestDocBadDate(t *testing.T) {
	for _, date := range []string{"", "May", "March 20x5"} {
		doc := &redlist.AssessmentDoc{ID: "1", Date: date}
		_, err := doc.Assessment()
		assertDateError(t, err)
	}
}

func TestDocHistory(t *testing.T) {
	h, err := testDoc().History()
	require.NoError(t, err)
	assert.Equal(t, redlist.History{
		{Year: "2015", ID: "123"},
		{Year: "2008", ID: "100"},
		{Year: "1996", ID: "90"},
	}, h)

	_, err = (&redlist.AssessmentDoc{ID: "1"}).History()
	assertDateError(t, err)
}

func TestDocHistoryFooterWithoutYear(t *testing.T) {
	doc := testDoc()
	doc.CitationFooter = "The IUCN Red List of Threatened Species"

	h, err := doc.History()
	require.NoError(t, err)
	assert.Equal(t, redlist.History{
		{Year: "2015", ID: "123"},
		{Year: "2008", ID: "100"},
		{Year: "1996", ID: "90"},
	}, h)

	doc.Date = "unknown"
	_, err = doc.History()
	assertDateError(t, err)
}

func assertDateError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.AssessmentDateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, redlist.ErrAssessmentDate)
}

func TestHistoryAdd(t *testing.T) {
	var h redlist.History
	h.Add("2015", "1")
	h.Add("2008", "2")
	h.Add("2015", "3")
	assert.Equal(t, redlist.History{
		{Year: "2015", ID: "3"},
		{Year: "2008", ID: "2"},
	}, h)
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key, field, year string
		ok               bool
	}{
		{"threats_2005", "threats", "2005", true},
		{"2005_threats", "threats", "2005", true},
		{"red_list_category_code_2012", "red_list_category_code", "2012", true},
		{"2012_red_list_category_code", "red_list_category_code", "2012", true},
		{"scientific_name", "", "", false},
		{"species_sis_id", "", "", false},
		{"habitat1", "", "", false},
	}
	for _, v := range tests {
		field, year, ok := redlist.SplitKey(v.key)
		assert.Equal(t, v.ok, ok, v.key)
		assert.Equal(t, v.field, field, v.key)
		assert.Equal(t, v.year, year, v.key)
	}
}

func TestIsField(t *testing.T) {
	assert.True(t, redlist.IsField("threats"))
	assert.True(t, redlist.IsField("red_list_category_weight"))
	assert.False(t, redlist.IsField("red_list_category_weight_pre"))
	assert.False(t, redlist.IsField("scientific_name"))
}

func TestSpeciesRowRecord(t *testing.T) {
	sp := redlist.Species{Name: "Panthera leo", Canonical: "Panthera leo",
		ID: "123", SisID: "15951"}
	row := redlist.NewSpeciesRow(sp)
	row.Add("Mammalia", redlist.Assessment{
		Year: "2015", ID: "123", Category: "Vulnerable", CategoryCode: "VU",
		Habitat1: "Terrestrial", Habitat2: []string{"Savanna"},
		Threats: []string{"Hunting & trapping | Intentional use"},
	})
	row.Add("Mammalia", redlist.Assessment{Year: "2008", ID: "100",
		CategoryCode: "VU"})

	rec := row.Record()
	assert.Equal(t, []string{
		"scientific_name", "species_sis_id", "name_id", "type",
		"species_id_2008", "red_list_category_2008",
		"red_list_category_code_2008", "population_trend_2008",
		"habitat1_2008", "habitat2_2008", "threats_2008",
		"species_id_2015", "red_list_category_2015",
		"red_list_category_code_2015", "population_trend_2015",
		"habitat1_2015", "habitat2_2015", "threats_2015",
	}, rec.Columns)

	v, ok := rec.Get("threats_2015")
	assert.True(t, ok)
	assert.Equal(t, `["Hunting & trapping | Intentional use"]`, v)
	v, _ = rec.Get("threats_2008")
	assert.Equal(t, "[]", v)
	v, _ = rec.Get("name_id")
	assert.Equal(t, redlist.NameID("Panthera leo"), v)
	v, _ = rec.Get("type")
	assert.Equal(t, "Mammalia", v)

	assert.Equal(t, rec, row.Record(), "serialization is deterministic")
}

func TestRecordDelete(t *testing.T) {
	rec := redlist.NewRecord()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "3")
	assert.Equal(t, []string{"a", "b"}, rec.Columns)
	rec.Delete("a")
	rec.Delete("missing")
	assert.Equal(t, []string{"b"}, rec.Columns)
	_, ok := rec.Get("a")
	assert.False(t, ok)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "species_Panthera_leo_assessment_details.csv",
		redlist.FileName("Panthera leo"))
	assert.Equal(t, "species_Aus_bus-cus_assessment_details.csv",
		redlist.FileName(" Aus bus/cus "))
}

func TestListEncoding(t *testing.T) {
	assert.Equal(t, "[]", redlist.EncodeList(nil))
	assert.Equal(t, `["A","B & C"]`, redlist.EncodeList([]string{"A", "B & C"}))

	l, err := redlist.DecodeList(`["A","B & C"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B & C"}, l)

	_, err = redlist.DecodeList("['A']")
	assert.Error(t, err)

	assert.True(t, redlist.IsList(" [1]"))
	assert.False(t, redlist.IsList("Forest"))
}
