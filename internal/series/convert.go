package series

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// maxUnwrap bounds the unwrap chain, so that adapters returning containers of containers terminate.
const maxUnwrap = 8

// Scalar is implemented by values that know their own numeric value.
type Scalar interface {
	Float64() float64
}

// Unwrapper extracts the single element of a container-like value.
// It returns false if it does not handle the given value.
type Unwrapper func(v interface{}) (interface{}, bool)

// VectorUnwrap unwraps single element vectors.
var VectorUnwrap Unwrapper = func(v interface{}) (interface{}, bool) {
	switch vv := v.(type) {
	case xmath.Vector:
		if len(vv) == 1 {
			return vv[0], true
		}
	case []float64:
		if len(vv) == 1 {
			return vv[0], true
		}
	case []float32:
		if len(vv) == 1 {
			return vv[0], true
		}
	}
	return nil, false
}

// MatUnwrap unwraps single element gonum vectors and 1x1 matrices.
var MatUnwrap Unwrapper = func(v interface{}) (interface{}, bool) {
	switch vv := v.(type) {
	case mat.Vector:
		if vv.Len() == 1 {
			return vv.AtVec(0), true
		}
	case mat.Matrix:
		r, c := vv.Dims()
		if r == 1 && c == 1 {
			return vv.At(0, 0), true
		}
	}
	return nil, false
}

// ScalarUnwrap unwraps values implementing Scalar.
var ScalarUnwrap Unwrapper = func(v interface{}) (interface{}, bool) {
	if s, ok := v.(Scalar); ok {
		return s.Float64(), true
	}
	return nil, false
}

// StringerUnwrap falls back to the text representation of the value.
var StringerUnwrap Unwrapper = func(v interface{}) (interface{}, bool) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return nil, false
}

// DefaultUnwrappers are the adapters every recorder starts with.
func DefaultUnwrappers() []Unwrapper {
	return []Unwrapper{VectorUnwrap, MatUnwrap, ScalarUnwrap, StringerUnwrap}
}

// ToScalar converts the given value to a float.
// Numbers convert directly, anything else goes through the unwrappers in order.
// Values that cannot be converted become 0.
func ToScalar(v interface{}, unwrap ...Unwrapper) (f float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Trace().
				Str("type", fmt.Sprintf("%T", v)).
				Str("panic", fmt.Sprintf("%v", r)).
				Msg("could not convert value")
			f = 0
		}
	}()

	value := v
	for i := 0; i <= maxUnwrap; i++ {
		if n, ok := number(value); ok {
			return n
		}
		next, ok := unwrapWith(value, unwrap)
		if !ok {
			break
		}
		value = next
	}

	log.Trace().
		Str("type", fmt.Sprintf("%T", v)).
		Msg("could not convert value")
	return 0
}

func unwrapWith(v interface{}, unwrap []Unwrapper) (interface{}, bool) {
	for _, u := range unwrap {
		if w, ok := u(v); ok {
			return w, true
		}
	}
	return nil, false
}

// number converts numeric kinds, including named types and numeric text.
// Pointers are followed up to maxUnwrap levels.
func number(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	for i := 0; rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface; i++ {
		if rv.IsNil() || i >= maxUnwrap {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
