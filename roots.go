package fraction

import (
	"math"
	"math/cmplx"
)

// The power and root operations compute in floating point and re-approximate
// the result through the Stern-Brocot search, guarded so that mathematically
// undefined combinations return the receiver unchanged instead of failing.

// Pow raises f to a floating exponent. A negative exponent of zero, or a
// non-negative exponent of the infinity sentinel, returns f unchanged. Note
// that for negative bases with fractional exponents the float result is NaN,
// which re-approximates to {0, 0}; PowC retains the imaginary part instead.
func (f Fraction[T]) Pow(exp float64) Fraction[T] {
	if (exp < 0 && f.num == 0) || (exp >= 0 && f.den == 0) {
		return f
	}
	return FromFloat64[T](math.Pow(f.Float64(), exp))
}

// PowC raises f to a floating exponent in complex arithmetic and returns the
// real and imaginary parts as separate fractions.
func (f Fraction[T]) PowC(exp float64) (re, im Fraction[T]) {
	if (exp < 0 && f.num == 0) || (exp >= 0 && f.den == 0) {
		return f, Zero[T]()
	}
	p := cmplx.Pow(complex(f.Float64(), 0), complex(exp, 0))
	return FromFloat64[T](real(p)), FromFloat64[T](imag(p))
}

// Sq squares the fraction exactly.
func (f Fraction[T]) Sq() Fraction[T] {
	return f.Mul(f)
}

// Cb cubes the fraction exactly.
func (f Fraction[T]) Cb() Fraction[T] {
	return f.Mul(f).Mul(f)
}

// IsAbsSquare reports whether |f| is a ratio of perfect squares.
func (f Fraction[T]) IsAbsSquare() bool {
	n := f.num
	if n < 0 {
		n = -n
	}
	root := New(T(math.Sqrt(float64(n))), T(math.Sqrt(float64(f.den))))
	return f.Abs().Equal(root.Sq())
}

// IsCube reports whether f is a ratio of perfect cubes.
func (f Fraction[T]) IsCube() bool {
	root := New(T(math.Cbrt(float64(f.num))), T(math.Cbrt(float64(f.den))))
	return f.Equal(root.Cb())
}

// Sqrt approximates the square root. Negative values produce a NaN float and
// so {0, 0}; use SqrtC for the principal complex root.
func (f Fraction[T]) Sqrt() Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](math.Sqrt(f.Float64()))
}

// SqrtC approximates the square root in complex arithmetic, returning real
// and imaginary parts. For negative values the real part is zero and the
// imaginary part carries sqrt(|f|).
func (f Fraction[T]) SqrtC() (re, im Fraction[T]) {
	if f.den == 0 {
		return f, Zero[T]()
	}
	s := cmplx.Sqrt(complex(f.Float64(), 0))
	return FromFloat64[T](real(s)), FromFloat64[T](imag(s))
}

// Cbrt approximates the cube root.
func (f Fraction[T]) Cbrt() Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](math.Cbrt(f.Float64()))
}

// Frexp splits f into a normalized fraction in (-1,-0.5] or [0.5,1) and an
// integral power of two, like math.Frexp, with the mantissa re-approximated
// as a fraction. The sentinel passes through with exponent 0.
func (f Fraction[T]) Frexp() (Fraction[T], int) {
	if f.den == 0 {
		return f, 0
	}
	frac, exp := math.Frexp(f.Float64())
	return FromFloat64[T](frac), exp
}

// Ldexp multiplies f by 2^exp, re-approximated. The sentinel passes through.
func (f Fraction[T]) Ldexp(exp int) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](math.Ldexp(f.Float64(), exp))
}

// SimplifyRoot factors f into (factor, remainder) such that factor^root *
// remainder reproduces f, extracting the largest integer whose root-th power
// exactly divides the numerator, and likewise for the denominator. The search
// walks candidate factors downward from floor(|num|^(1/root)); exact
// divisibility falls out of constructor reduction (the trial fraction's
// denominator collapses to 1). When no factor above 1 exists, the identity
// decomposition (1, f) is returned.
func (f Fraction[T]) SimplifyRoot(root float64) (factor, remainder Fraction[T]) {
	n := f.num
	if n < 0 {
		n = -n
	}

	numRemain := FromInt(f.num)
	numFactor := T(math.Floor(math.Pow(float64(n), 1/root)))
	for ; numFactor != 0; numFactor-- {
		numRemain = New(f.num, T(math.Pow(float64(numFactor), root)))
		if numRemain.den == 1 {
			break
		}
	}
	if numFactor == 0 {
		numFactor++
	}

	denRemain := FromInt(f.den)
	denFactor := T(math.Floor(math.Pow(float64(f.den), 1/root)))
	for ; denFactor != 0; denFactor-- {
		denRemain = New(f.den, T(math.Pow(float64(denFactor), root)))
		if denRemain.den == 1 {
			break
		}
	}
	if denFactor == 0 {
		denFactor++
	}

	if numFactor > 1 || denFactor > 1 {
		return New(numFactor, denFactor), numRemain.Div(denRemain)
	}
	return One[T](), f
}

// SimplifySqrt extracts perfect squares: (56/45) becomes {(2/3), (14/5)}.
func (f Fraction[T]) SimplifySqrt() (factor, remainder Fraction[T]) {
	return f.SimplifyRoot(2)
}

// SimplifyCbrt extracts perfect cubes: (56/135) becomes {(2/3), (7/5)}.
func (f Fraction[T]) SimplifyCbrt() (factor, remainder Fraction[T]) {
	return f.SimplifyRoot(3)
}
