package ioharvest

import (
	"context"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// docs caches assessment documents of one species, so the current
// assessment is downloaded only once.
type docs struct {
	c     redlist.Client
	byID  map[string]*redlist.AssessmentDoc
	calls int
}

func newDocs(c redlist.Client) *docs {
	return &docs{c: c, byID: make(map[string]*redlist.AssessmentDoc)}
}

func (d *docs) get(
	ctx context.Context,
	id string,
) (*redlist.AssessmentDoc, error) {
	if doc, ok := d.byID[id]; ok {
		return doc, nil
	}
	doc, err := d.c.Assessment(ctx, id)
	if err != nil {
		return nil, err
	}
	d.calls++
	d.byID[id] = doc
	return doc, nil
}

// history returns publication years and ids of the current and all
// previous assessments of a species.
func history(
	ctx context.Context,
	d *docs,
	id string,
) (redlist.History, error) {
	doc, err := d.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.History()
}
