package redlist

import (
	"strings"
)

// PlantKingdom is reported as species type instead of a class name,
// classes of plants are not useful for grouping.
const PlantKingdom = "Plantae"

// SpeciesType returns the high-level type of the assessed species.
func (d *AssessmentDoc) SpeciesType() string {
	if strings.EqualFold(strings.TrimSpace(d.Kingdom), PlantKingdom) {
		return PlantKingdom
	}
	return d.Class
}

// Year returns the assessment year taken from the tail of the date.
func (d *AssessmentDoc) Year() (string, error) {
	date := strings.TrimSpace(d.Date)
	if len(date) < 4 {
		return "", AssessmentDateError(d.ID, d.Date)
	}
	year := date[len(date)-4:]
	if !IsYear(year) {
		return "", AssessmentDateError(d.ID, d.Date)
	}
	return year, nil
}

// Assessment extracts assessment fields from the document.
func (d *AssessmentDoc) Assessment() (Assessment, error) {
	var res Assessment
	year, err := d.Year()
	if err != nil {
		return res, err
	}

	threats, err := FlattenThreats(d.Threats)
	if err != nil {
		return res, err
	}

	res = Assessment{
		Year:            year,
		ID:              d.ID,
		Category:        d.Category,
		CategoryCode:    d.CategoryCode,
		PopulationTrend: d.PopulationTrend,
		Habitat2:        make([]string, 0, len(d.Habitats)),
		Threats:         threats,
	}
	if len(d.Systems) > 0 {
		res.Habitat1 = d.Systems[0]
	}
	res.Habitat2 = append(res.Habitat2, d.Habitats...)
	return res, nil
}

// History returns years and ids of this assessment and of all previous
// assessments listed in the document. The year of this assessment comes
// from the citation footer, or from the date if the footer does not
// start with a year. Previous assessments without a valid year are
// ignored.
func (d *AssessmentDoc) History() (History, error) {
	var res History
	footer := strings.TrimSpace(d.CitationFooter)
	if len(footer) >= 4 && IsYear(footer[:4]) {
		res.Add(footer[:4], d.ID)
	} else {
		year, err := d.Year()
		if err != nil {
			return nil, err
		}
		res.Add(year, d.ID)
	}

	for _, v := range d.Previous {
		year := strings.TrimSpace(v.Year)
		if !IsYear(year) || v.ID == "" {
			continue
		}
		res.Add(year, v.ID)
	}
	return res, nil
}

// IsYear checks if a string consists of exactly 4 digits.
func IsYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := range 4 {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
