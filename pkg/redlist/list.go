package redlist

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EmptyList is the encoded form of a list without elements.
const EmptyList = "[]"

// EncodeList encodes a list of labels as a JSON array. Nil and empty lists
// both become "[]".
func EncodeList(l []string) string {
	if len(l) == 0 {
		return EmptyList
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// slice of strings cannot fail to encode
	_ = enc.Encode(l)
	return strings.TrimSpace(buf.String())
}

// DecodeList decodes a JSON array of strings.
func DecodeList(s string) ([]string, error) {
	var res []string
	if err := json.Unmarshal([]byte(s), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// IsList reports if a raw value looks like an encoded list.
func IsList(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "[")
}
