package ioaggregate

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// ErrNoRows means there is nothing to aggregate.
var ErrNoRows = errors.New("no species rows")

// NoRowsError is returned when the rows directory has no species files.
func NoRowsError(dir string) error {
	msg := `No species rows found in <em>%s</em>

<em>How to fix:</em>
  Run 'gnredlist harvest' first`
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.NoRowsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w in %s", ErrNoRows, dir),
	}
}
