package recipe

import "reflect"

// IsNil reports whether m is nil or a nil pointer behind the interface.
func IsNil(m Modifier) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
