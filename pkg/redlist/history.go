package redlist

// YearID connects a publication year with an assessment id.
type YearID struct {
	Year string
	ID   string
}

// History is a list of assessments of one species keyed by year.
// It keeps the order in which years were added.
type History []YearID

// Add appends a year. If the year is already known, its id is replaced
// and its position stays the same.
func (h *History) Add(year, id string) {
	for i := range *h {
		if (*h)[i].Year == year {
			(*h)[i].ID = id
			return
		}
	}
	*h = append(*h, YearID{Year: year, ID: id})
}
