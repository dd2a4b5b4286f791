package ioharvest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// CancelledError creates an error for when harvest is interrupted.
func CancelledError(err error) error {
	msg := "Harvest was cancelled"

	return &gn.Error{
		Code: errcode.HarvestCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("harvest cancelled: %w", err),
	}
}

// AllFailedError creates an error for when no species could be saved.
func AllFailedError(count int) error {
	msg := `Failed number of species: <em>%d</em>`

	vars := []any{count}

	return &gn.Error{
		Code: errcode.HarvestAllFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d species failed to process", count),
	}
}
