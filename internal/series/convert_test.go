package series

import (
	"testing"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

type loss float64

type scalar struct {
	v float64
}

func (s scalar) Float64() float64 {
	return s.v
}

type text struct {
	s string
}

func (t text) String() string {
	return t.s
}

type box struct {
	v interface{}
}

type panicky struct{}

func (p panicky) String() string {
	panic("cannot render")
}

func TestToScalar(t *testing.T) {

	f := 2.5
	pf := &f
	var self interface{}
	self = &self

	type test struct {
		value  interface{}
		scalar float64
	}

	tests := map[string]test{
		"float64":          {value: 0.5, scalar: 0.5},
		"float32":          {value: float32(0.25), scalar: 0.25},
		"int":              {value: 3, scalar: 3},
		"int64":            {value: int64(-7), scalar: -7},
		"uint8":            {value: uint8(200), scalar: 200},
		"bool-true":        {value: true, scalar: 1},
		"bool-false":       {value: false, scalar: 0},
		"named-float":      {value: loss(1.25), scalar: 1.25},
		"pointer":          {value: &f, scalar: 2.5},
		"pointer-pointer":  {value: &pf, scalar: 2.5},
		"self-reference":   {value: self, scalar: 0},
		"nil-pointer":      {value: (*float64)(nil), scalar: 0},
		"numeric-string":   {value: " 3.75 ", scalar: 3.75},
		"text":             {value: "not a number", scalar: 0},
		"nil":              {value: nil, scalar: 0},
		"struct":           {value: struct{ A int }{A: 1}, scalar: 0},
		"vector-single":    {value: xmath.Vector{4.5}, scalar: 4.5},
		"vector-many":      {value: xmath.Vector{4.5, 1}, scalar: 0},
		"slice-single":     {value: []float64{1.5}, scalar: 1.5},
		"slice-empty":      {value: []float64{}, scalar: 0},
		"mat-vector":       {value: mat.NewVecDense(1, []float64{6.5}), scalar: 6.5},
		"mat-dense-single": {value: mat.NewDense(1, 1, []float64{7.5}), scalar: 7.5},
		"mat-dense-many":   {value: mat.NewDense(2, 1, []float64{7.5, 1}), scalar: 0},
		"scalar":           {value: scalar{v: 8.5}, scalar: 8.5},
		"stringer-number":  {value: text{s: "9.5"}, scalar: 9.5},
		"stringer-text":    {value: text{s: "nine"}, scalar: 0},
		"stringer-panic":   {value: panicky{}, scalar: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.scalar, ToScalar(tt.value, DefaultUnwrappers()...))
		})
	}
}

func TestToScalar_CustomUnwrap(t *testing.T) {

	unbox := func(v interface{}) (interface{}, bool) {
		if b, ok := v.(box); ok {
			return b.v, true
		}
		return nil, false
	}

	assert.Equal(t, 0.0, ToScalar(box{v: 1.5}, DefaultUnwrappers()...))
	assert.Equal(t, 1.5, ToScalar(box{v: 1.5}, append(DefaultUnwrappers(), unbox)...))
	// nested containers unwrap in turn
	assert.Equal(t, 2.5, ToScalar(box{v: xmath.Vector{2.5}}, append(DefaultUnwrappers(), unbox)...))
}

func TestToScalar_UnwrapLoop(t *testing.T) {

	var loop Unwrapper = func(v interface{}) (interface{}, bool) {
		if b, ok := v.(box); ok {
			return b, true
		}
		return nil, false
	}

	assert.Equal(t, 0.0, ToScalar(box{}, loop))
}
