package aggregate

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnredlist/pkg/redlist"
)

// threatLevels is the depth threat paths are cut to in period summaries.
const threatLevels = 2

// MergeHabitats folds habitat values of several years into one value.
// Empty values and empty lists are ignored. A single distinct value is
// returned verbatim. Several distinct values are merged into a sorted
// list without duplicates, where a value that is not a list counts as a
// one-element list. Values that look like lists but cannot be decoded
// are skipped and reported as errors. Without values the result is an
// empty list.
func MergeHabitats(vals []string) (string, []error) {
	distinct := nonEmpty(vals)
	switch len(distinct) {
	case 0:
		return redlist.EmptyList, nil
	case 1:
		return distinct[0], nil
	}

	var errs []error
	set := make(map[string]struct{})
	for _, v := range distinct {
		if !redlist.IsList(v) {
			set[v] = struct{}{}
			continue
		}
		l, err := redlist.DecodeList(v)
		if err != nil {
			errs = append(errs, MalformedFieldError(v, err))
			continue
		}
		for _, s := range l {
			set[s] = struct{}{}
		}
	}
	return redlist.EncodeList(sortedKeys(set)), errs
}

// ThreatSummary merges threat lists of several years. Paths are cut to
// their first two levels, deduplicated and sorted. The boolean is false
// when there are no non-empty values.
func ThreatSummary(vals []string) (string, bool, []error) {
	distinct := nonEmpty(vals)
	if len(distinct) == 0 {
		return "", false, nil
	}

	var errs []error
	set := make(map[string]struct{})
	for _, v := range distinct {
		l, err := redlist.DecodeList(v)
		if err != nil {
			errs = append(errs, MalformedFieldError(v, err))
			continue
		}
		for _, s := range l {
			set[redlist.TruncateThreat(s, threatLevels)] = struct{}{}
		}
	}
	return redlist.EncodeList(sortedKeys(set)), true, errs
}

// MaxWeight returns the largest severity weight. Empty values are
// ignored. The boolean is false when no weight is present.
func MaxWeight(vals []string) (string, bool, []error) {
	var errs []error
	res, found := 0, false
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		w, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, MalformedFieldError(v, err))
			continue
		}
		if !found || w > res {
			res, found = w, true
		}
	}
	if !found {
		return "", false, errs
	}
	return strconv.Itoa(res), true, errs
}

// nonEmpty returns distinct values that are neither empty strings nor
// empty lists, in order of their first appearance.
func nonEmpty(vals []string) []string {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range vals {
		if strings.TrimSpace(v) == "" || v == redlist.EmptyList {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

func sortedKeys(set map[string]struct{}) []string {
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
