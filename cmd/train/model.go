package main

import (
	"math"
	"math/rand"

	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// softmax is a linear softmax classifier trained with plain gradient descent.
type softmax struct {
	w    *mat.Dense
	rate float64
}

func newSoftmax(features, classes int, rate float64, rnd *rand.Rand) *softmax {
	w := mat.NewDense(features, classes, nil)
	for i := 0; i < features; i++ {
		for j := 0; j < classes; j++ {
			w.Set(i, j, rnd.NormFloat64()*0.01)
		}
	}
	return &softmax{w: w, rate: rate}
}

// predict returns the class probabilities for each row of x.
func (s *softmax) predict(x *mat.Dense) *mat.Dense {
	var p mat.Dense
	p.Mul(x, s.w)
	r, _ := p.Dims()
	for i := 0; i < r; i++ {
		row := p.RawRowView(i)
		m := floats.Max(row)
		floats.AddConst(-m, row)
		for j := range row {
			row[j] = math.Exp(row[j])
		}
		floats.Scale(1/floats.Sum(row), row)
	}
	return &p
}

// step runs one gradient descent step on the batch and returns the mean cross entropy and the predictions.
func (s *softmax) step(x, y *mat.Dense) (float64, *mat.Dense) {
	p := s.predict(x)
	n, _ := x.Dims()

	var loss float64
	for i := 0; i < n; i++ {
		loss -= floats.Dot(y.RawRowView(i), logOf(p.RawRowView(i)))
	}

	var diff, grad mat.Dense
	diff.Sub(p, y)
	grad.Mul(x.T(), &diff)
	grad.Scale(s.rate/float64(n), &grad)
	s.w.Sub(s.w, &grad)

	return loss / float64(n), p
}

func logOf(v []float64) []float64 {
	l := make([]float64, len(v))
	for i := range v {
		l[i] = math.Log(math.Max(v[i], 1e-12))
	}
	return l
}

// batch generates a batch of two gaussian blobs, one per class.
// The last feature is the bias term.
func batch(size int, rnd *rand.Rand) (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(size, 3, nil)
	y := mat.NewDense(size, 2, nil)
	for i := 0; i < size; i++ {
		class := rnd.Intn(2)
		center := -1.0
		if class == 1 {
			center = 1.0
		}
		x.Set(i, 0, center+rnd.NormFloat64())
		x.Set(i, 1, center+rnd.NormFloat64())
		x.Set(i, 2, 1)
		y.Set(i, class, 1)
	}
	return x, y
}

func toMatrix(m *mat.Dense) xmath.Matrix {
	r, _ := m.Dims()
	mm := xmath.Mat(r)
	for i := 0; i < r; i++ {
		mm[i] = xmath.Vector(mat.Row(nil, i, m))
	}
	return mm
}
