package iostore

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// ErrNoData means a row file has a header but no values.
var ErrNoData = errors.New("row file has no data")

func RowWriteError(path string, err error) error {
	msg := "Cannot save species row <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RowWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

func RowReadError(path string, err error) error {
	msg := "Cannot read species row <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.RowReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
