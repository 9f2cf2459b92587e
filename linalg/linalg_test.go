package linalg

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Dot(b); got != 32 {
		t.Errorf("dot = %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("cross = %v", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("add/sub roundtrip = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("scale = %v", got)
	}
	v4 := Vec4{1, 0, 0, 7}
	u4 := Vec4{0, 1, 0, 9}
	if got := v4.Cross3(u4); got != (Vec4{0, 0, 1, 0}) {
		t.Errorf("cross3 = %v", got)
	}
}

func TestGenericSlices(t *testing.T) {
	s, err := AddN([]int64{1, 2}, []int64{3, 4})
	if err != nil || s[0] != 4 || s[1] != 6 {
		t.Fatalf("AddN = %v, %v", s, err)
	}
	if _, err := DotN([]float64{1}, []float64{1, 2}); err != ErrLength {
		t.Fatal("length mismatch not detected")
	}
	if !Any([]bool{false, true}) || All([]bool{true, false}) {
		t.Fatal("bool reductions broken")
	}
}

func TestMatrixShape(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Cols() != 3 || m.Rows() != 2 {
		t.Fatalf("shape %dx%d", m.Cols(), m.Rows())
	}
	if m.At(2, 1) != 6 || m.At(0, 0) != 1 {
		t.Fatalf("element addressing broken: %v", m)
	}
	if got := m.Row(1); got[0] != 4 || got[2] != 6 {
		t.Fatalf("row = %v", got)
	}
	if got := m.Column(1); got[0] != 2 || got[1] != 5 {
		t.Fatalf("col = %v", got)
	}

	m.Resize(2, 3)
	if m.Cols() != 2 || m.Rows() != 3 || m.At(1, 0) != 2 || m.At(0, 2) != 0 {
		t.Fatalf("resize result %v", m)
	}
}

func TestMatrixEdit(t *testing.T) {
	m, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	if err := m.InsertRow(1, []float64{9, 8}); err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 3 || m.At(0, 1) != 9 || m.At(1, 1) != 8 || m.At(0, 2) != 3 {
		t.Fatalf("insert row: %v", m)
	}
	if err := m.DeleteRow(1); err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 2 || m.At(0, 1) != 3 {
		t.Fatalf("delete row: %v", m)
	}
	if err := m.InsertColumn(2, []float64{7, 6}); err != nil {
		t.Fatal(err)
	}
	if m.Cols() != 3 || m.At(2, 0) != 7 || m.At(2, 1) != 6 {
		t.Fatalf("insert col: %v", m)
	}
	if err := m.DeleteColumn(0); err != nil {
		t.Fatal(err)
	}
	if m.Cols() != 2 || m.At(0, 0) != 2 {
		t.Fatalf("delete col: %v", m)
	}
}

func TestMulTranspose(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{5, 6}, {7, 8}})
	p, err := a.MulMatrix(b)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := FromRows([][]float64{{19, 22}, {43, 50}})
	if !p.Equal(want) {
		t.Fatalf("product = %v", p)
	}
	if !a.Transpose().Transpose().Equal(a) {
		t.Fatal("double transpose is not identity")
	}
	v, err := a.MulVec([]float64{1, 1})
	if err != nil || v[0] != 3 || v[1] != 7 {
		t.Fatalf("mulvec = %v, %v", v, err)
	}
}

func TestSolveInverseDeterminant(t *testing.T) {
	a, _ := FromRows([][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	x, err := a.Solve([]float64{8, -11, -3})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{2, 3, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("solve = %v", x)
		}
	}

	det, err := a.Determinant()
	if err != nil || math.Abs(det-(-1)) > 1e-12 {
		t.Fatalf("det = %v, %v", det, err)
	}

	inv, err := a.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	id, _ := a.MulMatrix(inv)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			want := 0.0
			if c == r {
				want = 1
			}
			if math.Abs(id.At(c, r)-want) > 1e-12 {
				t.Fatalf("a*inv(a) = %v", id)
			}
		}
	}

	sing, _ := FromRows([][]float64{{1, 2}, {2, 4}})
	if _, err := sing.Inverse(); err != ErrSingular {
		t.Fatalf("singular inverse err = %v", err)
	}
	if d, _ := sing.Determinant(); d != 0 {
		t.Fatalf("singular det = %v", d)
	}
}

func TestFixedMatrices(t *testing.T) {
	r := Mat2{{0, 1}, {-1, 0}} // 90 degree rotation, columns (0,1) and (-1,0)
	v := r.MulVec(Vec2{1, 0})
	if v != (Vec2{0, 1}) {
		t.Fatalf("rotation = %v", v)
	}
	if d := r.Det(); d != 1 {
		t.Fatalf("det = %v", d)
	}
	inv, err := r.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := inv.Mul(r); got != Identity2() {
		t.Fatalf("inv*r = %v", got)
	}

	m3 := Mat3{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}
	if m3.Det() != 24 {
		t.Fatalf("det3 = %v", m3.Det())
	}
	inv3, err := m3.Inverse()
	if err != nil || math.Abs(inv3.At(1, 1)-1.0/3) > 1e-15 {
		t.Fatalf("inv3 = %v, %v", inv3, err)
	}

	m4 := Identity4()
	m4[3][0] = 5 // translation-like entry: column 3, row 0
	if m4.Det() != 1 {
		t.Fatalf("det4 = %v", m4.Det())
	}
	got := m4.MulVec(Vec4{0, 0, 0, 1})
	if got != (Vec4{5, 0, 0, 1}) {
		t.Fatalf("mat4 mulvec = %v", got)
	}
}
