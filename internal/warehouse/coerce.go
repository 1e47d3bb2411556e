package warehouse

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Int64 converts a driver value to int64. Fractional values are rejected.
func Int64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("non-integral value %v", t)
		}
		return int64(t), nil
	case []byte:
		return parseInt(string(t))
	case string:
		return parseInt(t)
	case json.Number:
		return parseInt(t.String())
	case *big.Rat:
		if !t.IsInt() {
			return 0, fmt.Errorf("non-integral value %s", t.RatString())
		}
		return t.Num().Int64(), nil
	default:
		return 0, fmt.Errorf("unsupported integer type %T", v)
	}
}

func parseInt(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("non-integral value %q", s)
	}
	return int64(f), nil
}

// Float64 converts a driver value to float64. nil is zero.
func Float64(v interface{}) (float64, error) {
	f, err := NullableFloat64(v)
	if err != nil || f == nil {
		return 0, err
	}
	return *f, nil
}

// NullableFloat64 converts a driver value, keeping SQL NULL as nil.
func NullableFloat64(v interface{}) (*float64, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int64:
		f = float64(t)
	case int:
		f = float64(t)
	case []byte:
		return parseFloat(string(t))
	case string:
		return parseFloat(t)
	case json.Number:
		return parseFloat(t.String())
	case *big.Rat:
		f, _ = t.Float64()
	default:
		return nil, fmt.Errorf("unsupported numeric type %T", v)
	}
	return &f, nil
}

func parseFloat(s string) (*float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse number %q: %w", s, err)
	}
	return &f, nil
}

// String renders a driver value as text. nil is the empty string.
func String(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
