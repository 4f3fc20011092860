package enum

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

var enumManager = map[reflect.Type]any{}

type enum[T ~string] struct {
	values []T
}

// New registers value as a member of its enum type and returns it, so that
// enum members can be declared as package level variables.
func New[T ~string](value T) T {
	t := reflect.TypeOf(value)
	if _, ok := enumManager[t]; !ok {
		enumManager[t] = &enum[T]{}
	}

	e := enumManager[t].(*enum[T])
	if !slices.Contains(e.values, value) {
		e.values = append(e.values, value)
	}

	return value
}

// ToEnum returns the registered member of T whose value is s.
func ToEnum[T ~string](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	if !slices.Contains(e.(*enum[T]).values, T(s)) {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return T(s), nil
}

// Values returns the registered members of T in declaration order.
func Values[T ~string]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return nil
	}

	return slices.Clone(e.(*enum[T]).values)
}
