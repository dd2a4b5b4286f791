package redlist

import "strings"

const (
	// ThreatSep joins levels of a threat path.
	ThreatSep = " | "

	// MaxThreatDepth is the deepest level of the threat scheme.
	MaxThreatDepth = 3
)

// FlattenThreats converts a threat tree into paths, one for every node
// without children. Inner nodes contribute only their labels as path
// prefixes. Trees deeper than MaxThreatDepth are rejected.
func FlattenThreats(nodes []ThreatNode) ([]string, error) {
	res := make([]string, 0, len(nodes))
	var walk func(prefix []string, nodes []ThreatNode) error
	walk = func(prefix []string, nodes []ThreatNode) error {
		for _, n := range nodes {
			path := append(prefix[:len(prefix):len(prefix)], n.Label)
			if len(path) > MaxThreatDepth {
				return ThreatDepthError(strings.Join(path, ThreatSep))
			}
			if len(n.Children) == 0 {
				res = append(res, strings.Join(path, ThreatSep))
				continue
			}
			if err := walk(path, n.Children); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(nil, nodes); err != nil {
		return nil, err
	}
	return res, nil
}

// TruncateThreat keeps the first n levels of a threat path.
func TruncateThreat(path string, n int) string {
	parts := strings.Split(path, ThreatSep)
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, ThreatSep)
}
