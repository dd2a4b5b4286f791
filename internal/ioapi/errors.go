package ioapi

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// ErrStatus is wrapped when the API answers with a non-success status.
var ErrStatus = errors.New("unexpected response status")

// FetchError reports a request that failed or returned a non-success
// status. The status is 0 when no response was received.
func FetchError(path string, status int, err error) error {
	msg := "Cannot get data from <em>%s</em>"
	vars := []any{path}
	if err == nil {
		err = fmt.Errorf("%w %d", ErrStatus, status)
	}
	return &gn.Error{
		Code: errcode.FetchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("request to %s failed: %w", path, err),
	}
}

// DecodeError reports a response body that does not match the expected
// JSON structure.
func DecodeError(path string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.DecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode response of %s: %w", path, err),
	}
}
