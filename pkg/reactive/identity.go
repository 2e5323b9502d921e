package reactive

import (
	"math"
	"reflect"
)

// sameValue reports whether two values are identical under same-value
// semantics: NaN is identical to itself, +0 and -0 are distinct, and
// everything else follows ==. Values of non-comparable dynamic types
// are never identical, so writes of such values always notify.
func sameValue[T any](a, b T) bool {
	switch av := any(a).(type) {
	case float64:
		bv, ok := any(b).(float64)
		if !ok {
			return false
		}
		return sameFloat(av, bv)
	case float32:
		bv, ok := any(b).(float32)
		if !ok {
			return false
		}
		return sameFloat(float64(av), float64(bv))
	}

	ta, tb := reflect.TypeOf(any(a)), reflect.TypeOf(any(b))
	if ta != tb {
		return false
	}
	if ta == nil {
		// Both hold a nil interface.
		return true
	}
	if !ta.Comparable() {
		return false
	}
	return any(a) == any(b)
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if a == 0 && b == 0 {
		return math.Signbit(a) == math.Signbit(b)
	}
	return a == b
}
