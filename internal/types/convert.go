package types

import (
	"encoding/json"
	"strconv"
)

// ToInt64 converts an interface{} to int64.
// Supports int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32 and float64.
// The second return value is false for any other type.
func ToInt64(v interface{}) (int64, bool) {
	switch i := v.(type) {
	case int64:
		return i, true
	case int:
		return int64(i), true
	case int32:
		return int64(i), true
	case int16:
		return int64(i), true
	case int8:
		return int64(i), true
	case uint:
		return int64(i), true
	case uint64:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint16:
		return int64(i), true
	case uint8:
		return int64(i), true
	case float64:
		return int64(i), true
	case float32:
		return int64(i), true
	default:
		return 0, false
	}
}

// ToString converts a scalar to its string form.
// nil converts to the empty string. Slices, maps, structs and other
// compound values report false.
func ToString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case []byte:
		return string(s), true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case uint:
		return strconv.FormatUint(uint64(s), 10), true
	}
	if i, ok := ToInt64(v); ok {
		return strconv.FormatInt(i, 10), true
	}
	return "", false
}

// ToKey converts a value to a record key.
// Floats are truncated toward zero and bools map to "1" and "0", matching
// how loosely typed records coerce their keys. Compound values report false.
func ToKey(v interface{}) (string, bool) {
	switch k := v.(type) {
	case nil:
		return "", true
	case string:
		return k, true
	case bool:
		if k {
			return "1", true
		}
		return "0", true
	case float64, float32:
		i, _ := ToInt64(k)
		return strconv.FormatInt(i, 10), true
	}
	return ToString(v)
}
