// Package fraction implements an exact rational number over a fixed-width
// signed integer storage type, together with two algorithms that approximate
// a float64 by the simplest fraction within a configurable tolerance: a
// Stern-Brocot mediant search and a continued-fraction expansion.
//
// Every operation is total. Degenerate results are represented, not raised:
// a zero denominator is the sentinel for an unbounded ratio, and arithmetic
// propagates it silently. Callers that care should compare Den() against
// zero. Overflow of the storage type is not guarded anywhere.
package fraction

import (
	"golang.org/x/exp/constraints"
)

// Fraction is a canonical reduced rational value num/den. The sign lives on
// the numerator, the denominator is non-negative, and the two are coprime
// whenever both are non-zero. Canonical form is established once, at
// construction; copies are already canonical, so a Fraction can be passed and
// assigned freely as a plain value.
type Fraction[T constraints.Signed] struct {
	num, den T

	// The raw constructor inputs, retained for diagnostics. No algorithm
	// reads them.
	initNum, initDen T
}

// New builds the canonical fraction num/den. Both values are divided by their
// greatest common divisor, with the divisor's sign chosen so that the
// denominator comes out non-negative. A zero denominator survives as the
// {±1, 0} sentinel. New(0, 0) yields {0, 0} verbatim.
func New[T constraints.Signed](num, den T) Fraction[T] {
	f := Fraction[T]{initNum: num, initDen: den}

	g := gcd(num, den)
	if g == 0 {
		return f
	}
	if den < 0 {
		g = -g
		den = -den
	}
	f.num = num / g
	if g < 0 {
		g = -g
	}
	f.den = den / g

	return f
}

// FromInt builds the whole-number fraction n/1.
func FromInt[T constraints.Signed](n T) Fraction[T] {
	return New(n, 1)
}

// Zero is 0/1.
func Zero[T constraints.Signed]() Fraction[T] {
	return New[T](0, 1)
}

// One is 1/1.
func One[T constraints.Signed]() Fraction[T] {
	return New[T](1, 1)
}

// Inf is the 1/0 sentinel for an unbounded ratio.
func Inf[T constraints.Signed]() Fraction[T] {
	return New[T](1, 0)
}

// Num returns the canonical numerator.
func (f Fraction[T]) Num() T {
	return f.num
}

// Den returns the canonical denominator.
func (f Fraction[T]) Den() T {
	return f.den
}

// Initial returns the raw numerator and denominator passed at construction,
// before canonicalization.
func (f Fraction[T]) Initial() (num, den T) {
	return f.initNum, f.initDen
}

// IsInt reports whether the fraction is a whole number (denominator 1).
func (f Fraction[T]) IsInt() bool {
	return f.den == 1
}

// IsNeg reports whether the value is negative. Construction moves the sign
// onto the numerator, so only the numerator is inspected.
func (f Fraction[T]) IsNeg() bool {
	return f.num < 0
}

// Float64 converts to floating point by dividing numerator by denominator.
// Degenerate denominators follow IEEE-754: ±1/0 yields ±Inf, 0/0 yields NaN.
func (f Fraction[T]) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

// Mediant returns (a.num+b.num)/(a.den+b.den), re-canonicalized. The mediant
// of two Stern-Brocot neighbors is the next tree level between them.
func Mediant[T constraints.Signed](a, b Fraction[T]) Fraction[T] {
	return New(a.num+b.num, a.den+b.den)
}

// Average returns the arithmetic mean of the given fractions, or zero when
// called with none.
func Average[T constraints.Signed](fs ...Fraction[T]) Fraction[T] {
	if len(fs) == 0 {
		return Zero[T]()
	}
	sum := Zero[T]()
	for _, f := range fs {
		sum = sum.Add(f)
	}
	return sum.DivInt(T(len(fs)))
}

func gcd[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
