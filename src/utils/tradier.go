package utils

import (
	"encoding/json"
	"fmt"
)

// ParseTradierResponse unwraps Tradier's double-nested payloads, e.g.
// {"options":{"option":[...]}} or {"expirations":{"date":[...]}}, into a
// slice of T. Upstream collapses a one-element result set into a bare
// object (or scalar), and an empty one into null; both are normalized here
// so callers always see a semantic sequence.
func ParseTradierResponse[T any](response []byte) ([]T, error) {
	header := make(map[string]json.RawMessage)

	if err := json.Unmarshal(response, &header); err != nil {
		return nil, fmt.Errorf("ParseTradierResponse: failed to unmarshal header in response: %w", err)
	}

	if len(header) != 1 {
		return nil, fmt.Errorf("ParseTradierResponse: expected 1 key in header, got %v: %v", len(header), header)
	}

	var dtos []T

	var v json.RawMessage
	for k := range header {
		v = header[k]
	}

	if isNull(v) {
		return []T{}, nil
	}

	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(v, &data); err != nil {
		return nil, fmt.Errorf("ParseTradierResponse: failed to unmarshal data in response: %w", err)
	}

	if len(data) != 1 {
		return nil, fmt.Errorf("ParseTradierResponse: expected 1 key in data, got %v: %v", len(data), data)
	}

	for k := range data {
		v = data[k]
	}

	if isNull(v) {
		return []T{}, nil
	}

	var singleDTO T
	if err := json.Unmarshal(v, &singleDTO); err == nil {
		dtos = append(dtos, singleDTO)
	} else {
		if err := json.Unmarshal(v, &dtos); err != nil {
			return nil, fmt.Errorf("ParseTradierResponse: failed to unmarshal dtos in response: %w", err)
		}
	}

	return dtos, nil
}

func isNull(v json.RawMessage) bool {
	return string(v) == "null" || string(v) == "\"null\""
}
