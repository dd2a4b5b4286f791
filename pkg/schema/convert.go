package schema

import (
	"database/sql"
	"strconv"

	"github.com/gnames/gnredlist/pkg/aggregate"
	"github.com/gnames/gnredlist/pkg/redlist"
)

// FromTable converts the time-series table into database models. Rows
// without a scientific name are skipped. A row without name_id gets one
// generated from its name.
func FromTable(
	t *aggregate.Table,
	agg *aggregate.Aggregator,
) ([]Species, []AssessmentValue) {
	spp := make([]Species, 0, len(t.Rows))
	var vals []AssessmentValue
	for _, row := range t.Rows {
		name, _ := row.Get(redlist.ColScientificName)
		if name == "" {
			continue
		}
		id, _ := row.Get(redlist.ColNameID)
		if id == "" {
			id = redlist.NameID(name)
		}

		sp := Species{
			NameID:         id,
			ScientificName: name,
			SplitYear:      agg.SplitYear(),
		}
		sp.SisID, _ = row.Get(redlist.ColSisID)
		sp.Type, _ = row.Get(redlist.ColType)
		sp.Habitat1, _ = row.Get(aggregate.ColHabitat1)
		sp.Habitat2, _ = row.Get(aggregate.ColHabitat2)
		sp.WeightPre = nullInt(row.Get(agg.PreCol(aggregate.KeywordWeight)))
		sp.WeightPost = nullInt(row.Get(agg.PostCol(aggregate.KeywordWeight)))
		sp.ThreatPre = nullStr(row.Get(agg.PreCol(aggregate.KeywordThreat)))
		sp.ThreatPost = nullStr(row.Get(agg.PostCol(aggregate.KeywordThreat)))
		spp = append(spp, sp)

		for _, col := range row.Columns {
			field, year, ok := redlist.SplitKey(col)
			if !ok || !redlist.IsField(field) {
				continue
			}
			y, _ := strconv.Atoi(year)
			vals = append(vals, AssessmentValue{
				NameID: id,
				Year:   y,
				Field:  field,
				Value:  row.Values[col],
			})
		}
	}
	return spp, vals
}

func nullStr(s string, ok bool) sql.NullString {
	return sql.NullString{String: s, Valid: ok}
}

func nullInt(s string, ok bool) sql.NullInt16 {
	if !ok {
		return sql.NullInt16{}
	}
	i, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return sql.NullInt16{}
	}
	return sql.NullInt16{Int16: int16(i), Valid: true}
}
