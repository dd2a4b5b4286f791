package iotable

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

func TableWriteError(path string, err error) error {
	msg := "Cannot write table <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.TableWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write table %s: %w", path, err),
	}
}

func SQLiteWriteError(path string, err error) error {
	msg := "Cannot write SQLite file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SQLiteWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write sqlite %s: %w", path, err),
	}
}
