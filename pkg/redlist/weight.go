package redlist

// severity maps Red List category codes, including codes of legacy
// categories, to a 0-5 severity weight.
var severity = map[string]int{
	"CR":    4,
	"CT":    1,
	"E":     3,
	"EN":    3,
	"EW":    5,
	"EX":    5,
	"Ex":    5,
	"Ex/E":  5,
	"Ex?":   5,
	"LC":    0,
	"LR/cd": 0,
	"LR/lc": 0,
	"LR/nt": 0,
	"NT":    1,
	"O":     0,
	"R":     0,
	"T":     1,
	"V":     2,
	"VU":    2,
	"nt":    0,
}

// Weight returns the severity weight of a category code. The second value
// is false for codes outside of the severity table (for example DD or NE).
func Weight(code string) (int, bool) {
	w, ok := severity[code]
	return w, ok
}
