package ioharvest

import (
	"context"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// resolve finds the API identifiers of a species. The canonical form of
// the name is used for search and exact matching. The result is false
// when the search returns nothing.
func resolve(
	ctx context.Context,
	c redlist.Client,
	sp redlist.Species,
) (redlist.Species, bool, error) {
	query := sp.Canonical
	if query == "" {
		query = sp.Name
	}

	hits, err := c.SearchSpecies(ctx, query)
	if err != nil {
		return sp, false, err
	}

	hit, ok := redlist.PickHit(hits, query)
	if !ok {
		return sp, false, nil
	}
	sp.ID = hit.ID
	sp.SisID = hit.SisID
	return sp, true, nil
}
