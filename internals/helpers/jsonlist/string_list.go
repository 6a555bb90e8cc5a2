// file: internals/helpers/jsonlist/string_list.go
package jsonlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrDataCorruption marks a stored value that is not a JSON array of strings.
var ErrDataCorruption = errors.New("data corruption")

// ErrInvalidText marks an element that is not valid UTF-8 and so cannot
// survive a JSON round trip unchanged.
var ErrInvalidText = errors.New("invalid UTF-8 text")

// Encode turns an ordered list into the text stored in a list column.
// A nil list is stored as NULL, an empty list as "[]".
func Encode(list []string) (*string, error) {
	if list == nil {
		return nil, nil
	}
	for i, s := range list {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: element %d", ErrInvalidText, i)
		}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// Decode is the inverse of Encode. NULL decodes to nil.
func Decode(stored *string) ([]string, error) {
	if stored == nil {
		return nil, nil
	}

	raw := bytes.TrimSpace([]byte(*stored))
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: list column is not a JSON array", ErrDataCorruption)
	}

	// pointer elements so that a JSON null inside the array is detectable
	var items []*string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataCorruption, err)
	}

	out := make([]string, 0, len(items))
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrDataCorruption, i)
		}
		out = append(out, *it)
	}
	return out, nil
}

// OrEmpty presents an absent list as an empty one.
func OrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
