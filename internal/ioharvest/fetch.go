package ioharvest

import (
	"context"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// fetch returns the species type and the fields of one assessment.
func fetch(
	ctx context.Context,
	d *docs,
	id string,
) (string, redlist.Assessment, error) {
	doc, err := d.get(ctx, id)
	if err != nil {
		return "", redlist.Assessment{}, err
	}
	a, err := doc.Assessment()
	if err != nil {
		return "", redlist.Assessment{}, err
	}
	return doc.SpeciesType(), a, nil
}
