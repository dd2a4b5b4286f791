package redlist

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/pkg/errcode"
)

var (
	// ErrThreatDepth is wrapped by errors about threat trees that are
	// deeper than MaxThreatDepth.
	ErrThreatDepth = errors.New("threat tree is too deep")

	// ErrAssessmentDate is wrapped by errors about dates without a year.
	ErrAssessmentDate = errors.New("no year in assessment date")
)

// ThreatDepthError is returned when a threat tree has more levels than
// the threat classification scheme allows.
func ThreatDepthError(path string) error {
	msg := "Threat <em>%s</em> is deeper than %d levels"
	vars := []any{path, MaxThreatDepth}
	return &gn.Error{
		Code: errcode.ThreatDepthError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w: %s", ErrThreatDepth, path),
	}
}

// AssessmentDateError is returned when the year of an assessment
// cannot be found.
func AssessmentDateError(id, date string) error {
	msg := "Cannot find year of assessment <em>%s</em> in '%s'"
	vars := []any{id, date}
	return &gn.Error{
		Code: errcode.AssessmentDateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%w: id %s, date %q", ErrAssessmentDate, id, date),
	}
}
