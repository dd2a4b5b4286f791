package ioapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/gnredlist/pkg/redlist"
)

type multiMatch struct {
	MultiMatch matchParams `json:"multi_match"`
}

type matchParams struct {
	Query   string   `json:"query"`
	Type    string   `json:"type"`
	Fields  []string `json:"fields"`
	Lenient bool     `json:"lenient"`
}

type termsFilter struct {
	Terms map[string][]string `json:"terms"`
}

// filterClause is the inner bool filter, it lists terms only.
type filterClause struct {
	Bool struct {
		Filter []termsFilter `json:"filter"`
	} `json:"bool"`
}

// searchBody builds a phrase-prefix query over scientific and common
// names limited to global assessments of species.
func searchBody(name string) map[string]any {
	var filter filterClause
	filter.Bool.Filter = []termsFilter{
		{Terms: map[string][]string{"scopes.code": {"1"}}},
		{Terms: map[string][]string{"taxonLevel": {"Species"}}},
	}

	return map[string]any{
		"stored_fields": []string{"sisTaxonId", "scientificName"},
		"query": map[string]any{
			"bool": map[string]any{
				"must": []multiMatch{{
					MultiMatch: matchParams{
						Query:   name,
						Type:    "phrase_prefix",
						Fields:  []string{"scientificName^10", "commonName"},
						Lenient: true,
					},
				}},
				"filter": filter,
			},
		},
	}
}

// searchResult is the part of a search response gnredlist uses.
type searchResult struct {
	Hits struct {
		Hits []struct {
			ID     flexString `json:"_id"`
			Fields struct {
				ScientificName []string     `json:"scientificName"`
				SisTaxonID     []flexString `json:"sisTaxonId"`
			} `json:"fields"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r searchResult) hits() []redlist.SearchHit {
	res := make([]redlist.SearchHit, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		hit := redlist.SearchHit{ID: string(h.ID)}
		if len(h.Fields.ScientificName) > 0 {
			hit.ScientificName = h.Fields.ScientificName[0]
		}
		if len(h.Fields.SisTaxonID) > 0 {
			hit.SisID = string(h.Fields.SisTaxonID[0])
		}
		res = append(res, hit)
	}
	return res
}

// text is a localized label, only English is used.
type text struct {
	En string `json:"en"`
}

type described struct {
	Description text `json:"description"`
}

type threat struct {
	Description text     `json:"description"`
	Children    []threat `json:"children"`
}

// speciesDetail is the part of a species assessment response gnredlist
// uses. Absent objects decode to zero values.
type speciesDetail struct {
	Date     string `json:"date"`
	Citation struct {
		Footer string `json:"footer"`
	} `json:"citation"`
	PreviousAssessments []struct {
		ID            flexString `json:"id"`
		YearPublished flexString `json:"yearPublished"`
	} `json:"previousAssessments"`
	Taxon struct {
		Taxonomy struct {
			ClassName   string `json:"className"`
			KingdomName string `json:"kingdomName"`
		} `json:"taxonomy"`
	} `json:"taxon"`
	RedListCategory struct {
		Title text   `json:"title"`
		Code  string `json:"code"`
	} `json:"redListCategory"`
	PopulationTrend struct {
		Title text `json:"title"`
	} `json:"populationTrend"`
	Systems  []described `json:"systems"`
	Habitats []described `json:"habitats"`
	Threats  []threat    `json:"threats"`
}

func (d speciesDetail) doc(id string) *redlist.AssessmentDoc {
	res := &redlist.AssessmentDoc{
		ID:              id,
		Date:            d.Date,
		CitationFooter:  d.Citation.Footer,
		Kingdom:         d.Taxon.Taxonomy.KingdomName,
		Class:           label(d.Taxon.Taxonomy.ClassName),
		Category:        label(d.RedListCategory.Title.En),
		CategoryCode:    strings.TrimSpace(d.RedListCategory.Code),
		PopulationTrend: label(d.PopulationTrend.Title.En),
		Systems:         labels(d.Systems),
		Habitats:        labels(d.Habitats),
		Threats:         threatNodes(d.Threats),
	}
	for _, v := range d.PreviousAssessments {
		res.Previous = append(res.Previous, redlist.PreviousAssessment{
			ID:   string(v.ID),
			Year: string(v.YearPublished),
		})
	}
	return res
}

func label(s string) string {
	return strings.TrimSpace(gnlib.FixUtf8(s))
}

func labels(ds []described) []string {
	res := make([]string, 0, len(ds))
	for _, v := range ds {
		res = append(res, label(v.Description.En))
	}
	return res
}

func threatNodes(ts []threat) []redlist.ThreatNode {
	if len(ts) == 0 {
		return nil
	}
	res := make([]redlist.ThreatNode, len(ts))
	for i, v := range ts {
		res[i] = redlist.ThreatNode{
			Label:    label(v.Description.En),
			Children: threatNodes(v.Children),
		}
	}
	return res
}

// flexString accepts JSON strings and numbers. Null becomes an empty
// string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		*f = flexString(data)
	}
	return nil
}
