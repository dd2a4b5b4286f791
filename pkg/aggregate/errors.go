package aggregate

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

// ErrMalformedField is wrapped by errors about values that cannot be
// decoded.
var ErrMalformedField = errors.New("malformed field value")

// MalformedFieldError is reported when a stored list or weight cannot be
// decoded. Such values are skipped.
func MalformedFieldError(val string, err error) error {
	msg := "Cannot decode value <em>%s</em>"
	vars := []any{val}
	return &gn.Error{
		Code: errcode.MalformedFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w %q: %w", ErrMalformedField, val, err),
	}
}
