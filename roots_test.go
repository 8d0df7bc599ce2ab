package fraction

import (
	"math"
	"testing"
)

func TestSimplifySqrt(t *testing.T) {
	type expectations struct {
		f Rat64

		factor, remainder string
	}

	for _, v := range []expectations{
		{New64(56, 45), "(2/3)", "(14/5)"},
		{New64(392, 10125), "(14/45)", "(2/5)"},
		{New64(49, 25), "(7/5)", "1"},
		{New64(-25, 49), "(5/7)", "(-1)"},
		{New64(8, 27), "(2/3)", "(2/3)"},
		{Whole64(7), "1", "7"},
		{Zero[int64](), "1", "0"},
		{Inf[int64](), "1", "(1/0)"},
		{New64(1, 4), "(1/2)", "1"},
	} {
		factor, remainder := v.f.SimplifySqrt()
		if got := factor.String(); got != v.factor {
			t.Errorf("%v.SimplifySqrt() factor = %s, expected %s", v.f, got, v.factor)
		}
		if got := remainder.String(); got != v.remainder {
			t.Errorf("%v.SimplifySqrt() remainder = %s, expected %s", v.f, got, v.remainder)
		}

		// Exact round trip: factor^2 * remainder reproduces the input.
		if v.f.Den() != 0 {
			if got := factor.Sq().Mul(remainder); !got.Equal(v.f) {
				t.Errorf("%v: factor²·remainder = %v", v.f, got)
			}
		}
	}
}

func TestSimplifyCbrt(t *testing.T) {
	type expectations struct {
		f Rat64

		factor, remainder string
	}

	for _, v := range []expectations{
		{New64(56, 135), "(2/3)", "(7/5)"},
		{New64(134456, 10125), "(14/15)", "(49/3)"},
		{New64(19208, 10125), "(14/15)", "(7/3)"},
		{New64(56, 45), "2", "(7/45)"},
		{New64(392, 10125), "(2/15)", "(49/3)"},
		{New64(8, 27), "(2/3)", "1"},
		{Whole64(7), "1", "7"},
		{New64(-25, 49), "1", "(-25/49)"},
	} {
		factor, remainder := v.f.SimplifyCbrt()
		if got := factor.String(); got != v.factor {
			t.Errorf("%v.SimplifyCbrt() factor = %s, expected %s", v.f, got, v.factor)
		}
		if got := remainder.String(); got != v.remainder {
			t.Errorf("%v.SimplifyCbrt() remainder = %s, expected %s", v.f, got, v.remainder)
		}
		if got := factor.Cb().Mul(remainder); !got.Equal(v.f) {
			t.Errorf("%v: factor³·remainder = %v", v.f, got)
		}
	}
}

func TestSqCb(t *testing.T) {
	type expectations struct {
		f Rat64

		sq, cb string
	}

	for _, v := range []expectations{
		{Whole64(7), "49", "343"},
		{Zero[int64](), "0", "0"},
		{Inf[int64](), "(1/0)", "(1/0)"},
		{New64(48, 7), "(2304/49)", "(110592/343)"},
		{New64(4, -10), "(4/25)", "(-8/125)"},
		{New64(-25, 49), "(625/2401)", "(-15625/117649)"},
	} {
		if got := v.f.Sq().String(); got != v.sq {
			t.Errorf("%v.Sq() = %s, expected %s", v.f, got, v.sq)
		}
		if got := v.f.Cb().String(); got != v.cb {
			t.Errorf("%v.Cb() = %s, expected %s", v.f, got, v.cb)
		}
	}
}

func TestIsAbsSquareIsCube(t *testing.T) {
	type expectations struct {
		f Rat64

		absSquare, cube bool
	}

	for _, v := range []expectations{
		{Whole64(7), false, false},
		{Zero[int64](), true, true},
		{Inf[int64](), true, true},
		{New64(49, 25), true, false},
		{New64(-25, 49), true, false},
		{New64(8, 27), false, true},
		{New64(1, 4), true, false},
		{New64(3, 2), false, false},
	} {
		if got := v.f.IsAbsSquare(); got != v.absSquare {
			t.Errorf("%v.IsAbsSquare() = %t", v.f, got)
		}
		if got := v.f.IsCube(); got != v.cube {
			t.Errorf("%v.IsCube() = %t", v.f, got)
		}
	}
}

func TestPow(t *testing.T) {
	// Robust exact results: perfect squares and guard pass-throughs.
	if got := New64(49, 25).Pow(0.5).String(); got != "(7/5)" {
		t.Errorf("(49/25)^0.5 = %s", got)
	}
	if got := Zero[int64]().Pow(-2); !got.Equal(Zero[int64]()) {
		t.Errorf("0^-2 = %v, expected unchanged receiver", got)
	}
	if got := Inf[int64]().Pow(3); !got.Equal(Inf[int64]()) {
		t.Errorf("(1/0)^3 = %v, expected unchanged receiver", got)
	}
	if got := Inf[int64]().Pow(-2).String(); got != "0" {
		t.Errorf("(1/0)^-2 = %s, expected 0", got)
	}

	// Float-routed results stay within the approximation tolerance.
	for _, v := range []struct {
		f    Rat64
		exp  float64
		want float64
	}{
		{Whole64(7), 0.5, math.Sqrt(7)},
		{New64(48, 7), -2, 49.0 / 2304.0},
		{New64(3, 2), 3, 27.0 / 8.0},
		{New64(-25, 49), 3, -15625.0 / 117649.0},
	} {
		got := v.f.Pow(v.exp)
		if diff := math.Abs(got.Float64() - v.want); diff > 1e-6 {
			t.Errorf("%v^%v = %v, off by %v", v.f, v.exp, got, diff)
		}
	}
}

func TestPowC(t *testing.T) {
	// A negative base at exponent 0.5: the principal real component is within
	// tolerance of zero (the search lands on 1/1000000, not exactly zero) and
	// the imaginary part carries the root.
	re, im := New64(-25, 49).PowC(0.5)
	if got := re.String(); got != "(1/1000000)" {
		t.Errorf("(-25/49)^0.5 real = %s, expected (1/1000000)", got)
	}
	if got := im.String(); got != "(5/7)" {
		t.Errorf("(-25/49)^0.5 imag = %s, expected (5/7)", got)
	}

	// Positive bases keep the imaginary part at zero.
	re, im = New64(49, 25).PowC(0.5)
	if got := re.String(); got != "(7/5)" {
		t.Errorf("(49/25)^0.5 real = %s", got)
	}
	if !im.Equal(Zero[int64]()) {
		t.Errorf("(49/25)^0.5 imag = %v", im)
	}

	// Guard: sentinel receivers pass through with a zero imaginary part.
	re, im = Inf[int64]().PowC(2)
	if !re.Equal(Inf[int64]()) || !im.Equal(Zero[int64]()) {
		t.Errorf("(1/0)^2 = (%v, %v)", re, im)
	}
}

func TestSqrtCbrt(t *testing.T) {
	if got := New64(49, 25).Sqrt().String(); got != "(7/5)" {
		t.Errorf("sqrt(49/25) = %s", got)
	}
	if got := Whole64(2).Sqrt().String(); got != "(1393/985)" {
		t.Errorf("sqrt(2) = %s", got)
	}
	if got := New64(8, 27).Cbrt().String(); got != "(2/3)" {
		t.Errorf("cbrt(8/27) = %s", got)
	}
	if got := Inf[int64]().Sqrt(); !got.Equal(Inf[int64]()) {
		t.Errorf("sqrt(1/0) = %v", got)
	}
	if got := Inf[int64]().Cbrt(); !got.Equal(Inf[int64]()) {
		t.Errorf("cbrt(1/0) = %v", got)
	}

	// Square root of a negative value is NaN in real arithmetic, which the
	// approximator maps to {0, 0}.
	if got := New64(-25, 49).Sqrt(); got.Num() != 0 || got.Den() != 0 {
		t.Errorf("sqrt(-25/49) = %v, expected {0, 0}", got)
	}
}

func TestSqrtC(t *testing.T) {
	re, im := New64(-25, 49).SqrtC()
	if !re.Equal(Zero[int64]()) {
		t.Errorf("sqrtc(-25/49) real = %v, expected 0", re)
	}
	if got := im.String(); got != "(5/7)" {
		t.Errorf("sqrtc(-25/49) imag = %s, expected (5/7)", got)
	}

	re, im = New64(49, 25).SqrtC()
	if got := re.String(); got != "(7/5)" {
		t.Errorf("sqrtc(49/25) real = %s", got)
	}
	if !im.Equal(Zero[int64]()) {
		t.Errorf("sqrtc(49/25) imag = %v", im)
	}

	re, im = Inf[int64]().SqrtC()
	if !re.Equal(Inf[int64]()) || !im.Equal(Zero[int64]()) {
		t.Errorf("sqrtc(1/0) = (%v, %v)", re, im)
	}
}

func TestFrexpLdexp(t *testing.T) {
	type expectations struct {
		f Rat64

		mantissa string
		exp      int
		ldexp    string // f * 2^-4
	}

	for _, v := range []expectations{
		{Whole64(7), "(7/8)", 3, "(7/16)"},
		{Zero[int64](), "0", 0, "0"},
		{Inf[int64](), "(1/0)", 0, "(1/0)"},
		{New64(1, 4), "(1/2)", -1, "(1/64)"},
		{New64(48, 7), "(6/7)", 3, "(3/7)"},
		{New64(3, 2), "(3/4)", 1, "(3/32)"},
		{New64(-25, 49), "(-25/49)", 0, "(-25/784)"},
		{New64(4, -10), "(-4/5)", -1, "(-1/40)"},
	} {
		mant, exp := v.f.Frexp()
		if got := mant.String(); got != v.mantissa || exp != v.exp {
			t.Errorf("%v.Frexp() = {%s, %d}, expected {%s, %d}", v.f, got, exp, v.mantissa, v.exp)
		}
		if got := v.f.Ldexp(-4).String(); got != v.ldexp {
			t.Errorf("%v.Ldexp(-4) = %s, expected %s", v.f, got, v.ldexp)
		}

		// Frexp/Ldexp invert each other up to the approximation tolerance.
		if v.f.Den() != 0 {
			back := mant.Ldexp(exp)
			if diff := math.Abs(back.Float64() - v.f.Float64()); diff > 1e-6 {
				t.Errorf("%v: ldexp(frexp) off by %v", v.f, diff)
			}
		}
	}
}
