package geom

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", V3(1, 2, 3).Add(V3(4, 5, 6)), V3(5, 7, 9)},
		{"sub", V3(4, 5, 6).Sub(V3(1, 2, 3)), V3(3, 3, 3)},
		{"mul scalar", V3(1, 2, 3).Mul(2), V3(2, 4, 6)},
		{"div scalar", V3(2, 4, 6).Div(2), V3(1, 2, 3)},
		{"mul each", V3(1, 2, 3).MulEach(V3(4, 5, 6)), V3(4, 10, 18)},
		{"div each", V3(4, 10, 18).DivEach(V3(4, 5, 6)), V3(1, 2, 3)},
		{"neg", V3(1, -2, 3).Neg(), V3(-1, 2, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec3Dot(t *testing.T) {
	a, b := V3(1, 2, 3), V3(4, -5, 6)
	if a.Dot(b) != b.Dot(a) {
		t.Errorf("dot not symmetric: %v vs %v", a.Dot(b), b.Dot(a))
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if !got.Approx(tt.want) {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
			// Anti-symmetry: a x b == -(b x a).
			if !got.Approx(tt.b.Cross(tt.a).Neg()) {
				t.Errorf("Cross not anti-symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestVec3LengthNormalize(t *testing.T) {
	v := V3(2, 3, 6)
	if got := v.Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
	if got := v.Normalized(); !approxEq(got.Length(), 1) {
		t.Errorf("Normalized().Length() = %v, want 1", got.Length())
	}

	v.Normalize()
	if !approxEq(v.Length(), 1) {
		t.Errorf("in-place Normalize length = %v, want 1", v.Length())
	}
}

func TestVec3MinMax(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, 2, -4)
	if got := a.Min(b); got != V3(1, 2, -4) {
		t.Errorf("Min = %v, want (1, 2, -4)", got)
	}
	if got := a.Max(b); got != V3(3, 5, -2) {
		t.Errorf("Max = %v, want (3, 5, -2)", got)
	}
}

func TestVec3Index(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := v.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("SetAt(3) did not panic")
		}
	}()
	v.SetAt(3, 0)
}

func TestVec3Conversions(t *testing.T) {
	v := V3(1, 2, 3)
	if got := v.Vec2(); got != V2(1, 2) {
		t.Errorf("Vec2 = %v, want (1, 2)", got)
	}
	if got := v.Vec4(); got != V4(1, 2, 3, 0) {
		t.Errorf("Vec4 = %v, want (1, 2, 3, 0)", got)
	}
	if got := v.Extend(1); got != V4(1, 2, 3, 1) {
		t.Errorf("Extend(1) = %v, want (1, 2, 3, 1)", got)
	}
}
