package vmath

import (
	"math"
	"testing"
)

const tol = 1e-12

func TestHeading(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec2
	}{
		{"East", 0, Vec2{1, 0}},
		{"North", math.Pi / 2, Vec2{0, 1}},
		{"West", math.Pi, Vec2{-1, 0}},
		{"South", -math.Pi / 2, Vec2{0, -1}},
		{"Unnormalized", 5 * math.Pi / 2, Vec2{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.angle)
			if math.Abs(got.X-tt.want.X) > tol || math.Abs(got.Y-tt.want.Y) > tol {
				t.Errorf("Heading(%v) = %v, want %v", tt.angle, got, tt.want)
			}
			if math.Abs(got.Length()-1) > tol {
				t.Errorf("Heading(%v) not unit length: %v", tt.angle, got.Length())
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// Incoming diagonal onto floor (normal pointing up)
	v := Vec2{1, -1}
	r := v.Reflect(Vec2{0, 1})
	if r != (Vec2{1, 1}) {
		t.Errorf("Reflect off floor = %v, want {1 1}", r)
	}

	if r2 := v.ReflectAxisY(); r2 != r {
		t.Errorf("ReflectAxisY = %v, want %v", r2, r)
	}

	// Reflecting twice about the same normal is the identity
	n := Heading(0.7)
	w := Heading(2.1)
	back := w.Reflect(n).Reflect(n)
	if math.Abs(back.X-w.X) > tol || math.Abs(back.Y-w.Y) > tol {
		t.Errorf("Double reflection = %v, want %v", back, w)
	}
}

func TestNormalize(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Zero vector normalize = %v, want zero", got)
	}
	got := Vec2{3, 4}.Normalize()
	if math.Abs(got.X-0.6) > tol || math.Abs(got.Y-0.8) > tol {
		t.Errorf("Normalize({3,4}) = %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
		{-1e-18, 0},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if got < 0 || got >= TwoPi {
			t.Errorf("NormalizeAngle(%v) = %v out of range", tt.in, got)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleEqual(t *testing.T) {
	if !AngleEqual(0, TwoPi, 1e-9) {
		t.Error("0 and 2π should be equal")
	}
	if !AngleEqual(-math.Pi, math.Pi, 1e-9) {
		t.Error("-π and π should be equal")
	}
	if AngleEqual(0, 0.1, 1e-3) {
		t.Error("0 and 0.1 should differ")
	}
	if d := AngleDiff(0.1, TwoPi-0.1); math.Abs(d-0.2) > 1e-12 {
		t.Errorf("AngleDiff wrap = %v, want 0.2", d)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(f) {
			t.Errorf("%v should not be finite", f)
		}
	}
	if (Vec2{1, math.NaN()}).IsFinite() {
		t.Error("Vec2 with NaN should not be finite")
	}
}
