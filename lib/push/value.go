// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
)

// decodeJSON decodes exactly one JSON value into target, keeping
// numbers as json.Number so that integers outside the float64 mantissa
// survive. Trailing data after the value is an error, as it is for
// json.Unmarshal.
func decodeJSON(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after top-level value")
	}
	return nil
}

// normalizeNumbers walks a decoded value and gives every number one Go
// type regardless of the format it came from: integers become int
// (int64 if they overflow int, uint64 above math.MaxInt64) and
// everything else becomes float64. JSON decodes numbers as json.Number
// and CBOR as uint64 or int64, so without this the same tweak value
// would compare unequal across formats and to the value it was built
// from.
func normalizeNumbers(v any) any {
	switch value := v.(type) {
	case json.Number:
		if integer, err := value.Int64(); err == nil {
			return normalizeInt64(integer)
		}
		if unsigned, err := strconv.ParseUint(value.String(), 10, 64); err == nil {
			return unsigned
		}
		if float, err := value.Float64(); err == nil {
			return float
		}
		// Out of float64 range; keep the literal so encoding writes it back verbatim.
		return value
	case int64:
		return normalizeInt64(value)
	case uint64:
		if value <= math.MaxInt64 {
			return normalizeInt64(int64(value))
		}
		return value
	case float32:
		return float64(value)
	case map[string]any:
		for key, element := range value {
			value[key] = normalizeNumbers(element)
		}
		return value
	case []any:
		for index, element := range value {
			value[index] = normalizeNumbers(element)
		}
		return value
	}
	return v
}

func normalizeInt64(value int64) any {
	if value >= math.MinInt && value <= math.MaxInt {
		return int(value)
	}
	return value
}
