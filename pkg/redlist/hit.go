package redlist

// PickHit selects the search result that represents the species name.
// The first hit with a scientific name exactly equal to name wins. If
// there is no exact match the top hit is used. The boolean is false only
// when hits is empty.
func PickHit(hits []SearchHit, name string) (SearchHit, bool) {
	if len(hits) == 0 {
		return SearchHit{}, false
	}
	for _, h := range hits {
		if h.ScientificName == name {
			return h, true
		}
	}
	return hits[0], true
}
