package iolist

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// ErrEmptyList means the species list has no names.
var ErrEmptyList = errors.New("species list is empty")

func SpeciesListReadError(path string, err error) error {
	msg := "Cannot read species list <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SpeciesListReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

func SpeciesListEmptyError(path string) error {
	msg := "Species list <em>%s</em> has no names"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SpeciesListEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", path, ErrEmptyList),
	}
}
