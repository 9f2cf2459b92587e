package linalg

import "github.com/avikara/semath/ieee754"

// Gauss elimination with partial pivoting. Solve and Determinant clear the
// rows below each pivot; Inverse scales the pivot row and clears every other
// row (Gauss-Jordan). In all three a pivot column with no usable entry means
// the matrix is singular.

// Solve returns the solution x of the square system a*x = b.
func (m *Matrix) Solve(b []float64) ([]float64, error) {
	n := m.rows
	if m.cols != n || len(b) != n {
		return nil, ErrDimension
	}
	a := m.Clone()
	x := make([]float64, n)
	copy(x, b)

	for k := 0; k < n; k++ {
		p := k
		for r := k + 1; r < n; r++ {
			if ieee754.Abs(a.At(k, r)) > ieee754.Abs(a.At(k, p)) {
				p = r
			}
		}
		if a.At(k, p) == 0 {
			return nil, ErrSingular
		}
		if p != k {
			a.swapRows(p, k)
			x[p], x[k] = x[k], x[p]
		}
		piv := a.At(k, k)
		for r := k + 1; r < n; r++ {
			f := a.At(k, r) / piv
			if f == 0 {
				continue
			}
			for c := k; c < n; c++ {
				a.Set(c, r, a.At(c, r)-f*a.At(c, k))
			}
			x[r] -= f * x[k]
		}
	}
	for r := n - 1; r >= 0; r-- {
		sum := x[r]
		for c := r + 1; c < n; c++ {
			sum -= a.At(c, r) * x[c]
		}
		x[r] = sum / a.At(r, r)
	}
	return x, nil
}

// Determinant returns the determinant of a square matrix.
func (m *Matrix) Determinant() (float64, error) {
	n := m.rows
	if m.cols != n {
		return 0, ErrDimension
	}
	a := m.Clone()
	det := 1.0
	for k := 0; k < n; k++ {
		p := k
		for r := k + 1; r < n; r++ {
			if ieee754.Abs(a.At(k, r)) > ieee754.Abs(a.At(k, p)) {
				p = r
			}
		}
		if a.At(k, p) == 0 {
			return 0, nil
		}
		if p != k {
			a.swapRows(p, k)
			det = -det
		}
		piv := a.At(k, k)
		det *= piv
		for r := k + 1; r < n; r++ {
			f := a.At(k, r) / piv
			if f == 0 {
				continue
			}
			for c := k; c < n; c++ {
				a.Set(c, r, a.At(c, r)-f*a.At(c, k))
			}
		}
	}
	return det, nil
}

// Inverse returns the inverse of a square matrix, or ErrSingular.
func (m *Matrix) Inverse() (*Matrix, error) {
	n := m.rows
	if m.cols != n {
		return nil, ErrDimension
	}
	a := m.Clone()
	inv := Identity(n)

	for k := 0; k < n; k++ {
		p := k
		for r := k + 1; r < n; r++ {
			if ieee754.Abs(a.At(k, r)) > ieee754.Abs(a.At(k, p)) {
				p = r
			}
		}
		if a.At(k, p) == 0 {
			return nil, ErrSingular
		}
		if p != k {
			a.swapRows(p, k)
			inv.swapRows(p, k)
		}
		piv := a.At(k, k)
		for c := 0; c < n; c++ {
			a.Set(c, k, a.At(c, k)/piv)
			inv.Set(c, k, inv.At(c, k)/piv)
		}
		for r := 0; r < n; r++ {
			if r == k {
				continue
			}
			f := a.At(k, r)
			if f == 0 {
				continue
			}
			for c := 0; c < n; c++ {
				a.Set(c, r, a.At(c, r)-f*a.At(c, k))
				inv.Set(c, r, inv.At(c, r)-f*inv.At(c, k))
			}
		}
	}
	return inv, nil
}

func (m *Matrix) swapRows(r1, r2 int) {
	for c := 0; c < m.cols; c++ {
		m.data[c*m.rows+r1], m.data[c*m.rows+r2] = m.data[c*m.rows+r2], m.data[c*m.rows+r1]
	}
}
