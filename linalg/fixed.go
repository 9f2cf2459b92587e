package linalg

// Fixed square matrices. Storage is column-major: m[col][row], matching the
// dynamic Matrix and the GLSL convention.

// Mat2 is a 2x2 matrix of doubles.
type Mat2 [2][2]float64

// Mat3 is a 3x3 matrix of doubles.
type Mat3 [3][3]float64

// Mat4 is a 4x4 matrix of doubles.
type Mat4 [4][4]float64

// Identity2 returns the 2x2 identity.
func Identity2() Mat2 { return Mat2{{1, 0}, {0, 1}} }

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 { return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Identity4 returns the 4x4 identity.
func Identity4() Mat4 {
	return Mat4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// At returns the element at the given column and row.
func (m Mat2) At(col, row int) float64 { return m[col][row] }
func (m Mat3) At(col, row int) float64 { return m[col][row] }
func (m Mat4) At(col, row int) float64 { return m[col][row] }

// Mul returns the matrix product m * o.
func (m Mat2) Mul(o Mat2) Mat2 {
	var out Mat2
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[c][r] = m[0][r]*o[c][0] + m[1][r]*o[c][1]
		}
	}
	return out
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = m[0][r]*o[c][0] + m[1][r]*o[c][1] + m[2][r]*o[c][2]
		}
	}
	return out
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[0][r]*o[c][0] + m[1][r]*o[c][1] + m[2][r]*o[c][2] + m[3][r]*o[c][3]
		}
	}
	return out
}

// MulVec returns m * v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{m[0][0]*v.X + m[1][0]*v.Y, m[0][1]*v.X + m[1][1]*v.Y}
}

// MulVec returns m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// MulVec returns m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z + m[3][0]*v.W,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z + m[3][1]*v.W,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z + m[3][2]*v.W,
		m[0][3]*v.X + m[1][3]*v.Y + m[2][3]*v.Z + m[3][3]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat2) Transpose() Mat2 {
	return Mat2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Det returns the determinant.
func (m Mat2) Det() float64 { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Det returns the determinant by Gauss elimination on the dynamic copy.
func (m Mat4) Det() float64 {
	d, _ := m.Dynamic().Determinant()
	return d
}

// Dynamic converts to a dynamic Matrix.
func (m Mat2) Dynamic() *Matrix { return fixedToDynamic(2, func(c, r int) float64 { return m[c][r] }) }

// Dynamic converts to a dynamic Matrix.
func (m Mat3) Dynamic() *Matrix { return fixedToDynamic(3, func(c, r int) float64 { return m[c][r] }) }

// Dynamic converts to a dynamic Matrix.
func (m Mat4) Dynamic() *Matrix { return fixedToDynamic(4, func(c, r int) float64 { return m[c][r] }) }

func fixedToDynamic(n int, at func(c, r int) float64) *Matrix {
	out := NewMatrix(n, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			out.Set(c, r, at(c, r))
		}
	}
	return out
}

// Inverse returns the inverse, or ErrSingular for a singular matrix.
func (m Mat2) Inverse() (Mat2, error) {
	d := m.Det()
	if d == 0 {
		return Mat2{}, ErrSingular
	}
	return Mat2{
		{m[1][1] / d, -m[0][1] / d},
		{-m[1][0] / d, m[0][0] / d},
	}, nil
}

// Inverse returns the inverse, or ErrSingular for a singular matrix.
func (m Mat3) Inverse() (Mat3, error) {
	inv, err := m.Dynamic().Inverse()
	if err != nil {
		return Mat3{}, err
	}
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c][r] = inv.At(c, r)
		}
	}
	return out, nil
}

// Inverse returns the inverse, or ErrSingular for a singular matrix.
func (m Mat4) Inverse() (Mat4, error) {
	inv, err := m.Dynamic().Inverse()
	if err != nil {
		return Mat4{}, err
	}
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = inv.At(c, r)
		}
	}
	return out, nil
}
