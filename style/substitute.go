package style

import (
	"reflect"
	"strconv"
)

// AbsentText is what a nil value becomes when it is substituted.
const AbsentText = "<nil>"

// Substitute applies ref to v.
//
// Strings are substituted directly. Numbers and nil are turned into text
// first. Every other value, including bools, is returned unchanged; the
// caller's sink decides how to render it.
func Substitute(ref *Reference, v any) any {
	if text, ok := textOf(v); ok {
		return ref.Apply(text)
	}
	return v
}

// textOf returns the text form of strings, numbers and nil.
func textOf(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return AbsentText, true
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	}

	// Named types and the remaining sized integers.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}

// isScalar reports whether v is a primitive the substitution step leaves
// alone but which is still plain content rather than an opaque value.
func isScalar(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}
