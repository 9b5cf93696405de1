// FILE: ridge.go
package alpha

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"quantcore/internal/engineerr"
)

// RidgeRegression is the one concrete Learner this package ships: a
// closed-form L2-regularized linear regression, beta = (X^T X + lambda
// I)^-1 X^T y, solved on mean-centered columns so the intercept is
// recovered afterward rather than shrunk by the penalty.
type RidgeRegression struct {
	Lambda float64

	coef      []float64
	intercept float64
	fitted    bool
}

// NewRidgeRegression returns an unfitted learner with the given L2
// penalty. Wrap it in a closure to use it as a Factory: func() Learner {
// return NewRidgeRegression(lambda) }.
func NewRidgeRegression(lambda float64) *RidgeRegression {
	return &RidgeRegression{Lambda: lambda}
}

func (r *RidgeRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 || n != len(y) {
		return errors.New("alpha: ridge fit requires matching non-empty X, y")
	}
	p := len(X[0])
	if p == 0 {
		return errors.New("alpha: ridge fit requires at least one feature column")
	}

	meanX := make([]float64, p)
	var meanY float64
	for _, row := range X {
		for j, v := range row {
			meanX[j] += v
		}
	}
	for j := range meanX {
		meanX[j] /= float64(n)
	}
	for _, v := range y {
		meanY += v
	}
	meanY /= float64(n)

	xc := mat.NewDense(n, p, nil)
	for i, row := range X {
		for j, v := range row {
			xc.Set(i, j, v-meanX[j])
		}
	}
	yc := mat.NewVecDense(n, nil)
	for i, v := range y {
		yc.SetVec(i, v-meanY)
	}

	var xtx mat.Dense
	xtx.Mul(xc.T(), xc)
	for j := 0; j < p; j++ {
		xtx.Set(j, j, xtx.At(j, j)+r.Lambda)
	}

	var xty mat.VecDense
	xty.MulVec(xc.T(), yc)

	var beta mat.VecDense
	if err := beta.SolveVec(&xtx, &xty); err != nil {
		return errors.New("alpha: ridge normal equations are singular")
	}

	coef := make([]float64, p)
	var dot float64
	for j := 0; j < p; j++ {
		coef[j] = beta.AtVec(j)
		dot += coef[j] * meanX[j]
	}

	r.coef = coef
	r.intercept = meanY - dot
	r.fitted = true
	return nil
}

func (r *RidgeRegression) Predict(X [][]float64) ([]float64, error) {
	if !r.fitted {
		return nil, fmt.Errorf("alpha: ridge predict before fit: %w", engineerr.ErrNotFitted)
	}
	out := make([]float64, len(X))
	for i, row := range X {
		var s float64
		for j, v := range row {
			if j < len(r.coef) {
				s += r.coef[j] * v
			}
		}
		out[i] = s + r.intercept
	}
	return out, nil
}

func (r *RidgeRegression) Score(X [][]float64, y []float64) (float64, error) {
	pred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}
	return rSquared(pred, y), nil
}

// FeatureImportances returns the raw fitted coefficients (AlphaModel takes
// their absolute value and renormalizes to sum to 1).
func (r *RidgeRegression) FeatureImportances() []float64 {
	return append([]float64(nil), r.coef...)
}

func rSquared(pred, actual []float64) float64 {
	n := len(actual)
	if n == 0 || n != len(pred) {
		return 0
	}
	var meanY float64
	for _, v := range actual {
		meanY += v
	}
	meanY /= float64(n)

	var ssRes, ssTot float64
	for i := range actual {
		d := actual[i] - pred[i]
		ssRes += d * d
		dt := actual[i] - meanY
		ssTot += dt * dt
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}
