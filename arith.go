package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// The binary operators come in three right-hand flavors: another fraction,
// a bare integer of the storage type, and a float64. Fraction and integer
// arithmetic is exact up to overflow, relying on constructor-time reduction
// instead of an explicit LCM. Float arithmetic is deliberately lossy: the
// fraction is converted to a float64, combined, and re-approximated through
// the Stern-Brocot search — except when the denominator is zero, where the
// sentinel passes through unchanged.

// Add returns f + rhs.
func (f Fraction[T]) Add(rhs Fraction[T]) Fraction[T] {
	return New(f.num*rhs.den+f.den*rhs.num, f.den*rhs.den)
}

// AddInt returns f + k.
func (f Fraction[T]) AddInt(k T) Fraction[T] {
	return New(f.num+f.den*k, f.den)
}

// AddFloat returns f + x, re-approximated.
func (f Fraction[T]) AddFloat(x float64) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](f.Float64() + x)
}

// Neg returns -f.
func (f Fraction[T]) Neg() Fraction[T] {
	return New(-f.num, f.den)
}

// Abs returns the fraction with the numerator's sign stripped.
func (f Fraction[T]) Abs() Fraction[T] {
	n := f.num
	if n < 0 {
		n = -n
	}
	return New(n, f.den)
}

// Inv returns den/num, the multiplicative inverse. Inverting zero yields the
// {1, 0} sentinel rather than an error.
func (f Fraction[T]) Inv() Fraction[T] {
	return New(f.den, f.num)
}

// Sub returns f - rhs.
func (f Fraction[T]) Sub(rhs Fraction[T]) Fraction[T] {
	return f.Add(rhs.Neg())
}

// SubInt returns f - k.
func (f Fraction[T]) SubInt(k T) Fraction[T] {
	return f.AddInt(-k)
}

// SubFloat returns f - x, re-approximated.
func (f Fraction[T]) SubFloat(x float64) Fraction[T] {
	return f.AddFloat(-x)
}

// Mul returns f * rhs.
func (f Fraction[T]) Mul(rhs Fraction[T]) Fraction[T] {
	return New(f.num*rhs.num, f.den*rhs.den)
}

// MulInt returns f * k.
func (f Fraction[T]) MulInt(k T) Fraction[T] {
	return New(f.num*k, f.den)
}

// MulFloat returns f * x, re-approximated.
func (f Fraction[T]) MulFloat(x float64) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](f.Float64() * x)
}

// Div returns f / rhs.
func (f Fraction[T]) Div(rhs Fraction[T]) Fraction[T] {
	return New(f.num*rhs.den, f.den*rhs.num)
}

// DivInt returns f / k by scaling the denominator.
func (f Fraction[T]) DivInt(k T) Fraction[T] {
	return New(f.num, f.den*k)
}

// DivFloat returns f / x, re-approximated.
func (f Fraction[T]) DivFloat(x float64) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](f.Float64() / x)
}

// Mod returns f - trunc(f/rhs)*rhs. When either operand is degenerate enough
// to make the quotient undefined, the result is the infinity sentinel.
func (f Fraction[T]) Mod(rhs Fraction[T]) Fraction[T] {
	if rhs.num == 0 || rhs.den == 0 || f.den == 0 {
		return Inf[T]()
	}
	t := T(math.Trunc(f.Div(rhs).Float64()))
	return f.Sub(rhs.MulInt(t))
}

// ModInt returns f mod k under the same truncated-quotient rule.
func (f Fraction[T]) ModInt(k T) Fraction[T] {
	if f.den == 0 || k == 0 {
		return Inf[T]()
	}
	t := T(math.Trunc(f.DivInt(k).Float64()))
	return f.SubInt(t * k)
}

// ModFloat returns the platform floating modulo of f and x, re-approximated.
// Unlike Mod, no truncated-quotient formula is involved.
func (f Fraction[T]) ModFloat(x float64) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](math.Mod(f.Float64(), x))
}

// Inc returns the fraction moved up by one whole unit.
func (f Fraction[T]) Inc() Fraction[T] {
	return New(f.num+f.den, f.den)
}

// Dec returns the fraction moved down by one whole unit.
func (f Fraction[T]) Dec() Fraction[T] {
	return New(f.num-f.den, f.den)
}

// Free functions for scalar left-hand operands. The commutative ones simply
// delegate; the rest spell out the reversed formula.

// IntAdd returns k + f.
func IntAdd[T constraints.Signed](k T, f Fraction[T]) Fraction[T] {
	return f.AddInt(k)
}

// IntSub returns k - f.
func IntSub[T constraints.Signed](k T, f Fraction[T]) Fraction[T] {
	return f.Neg().AddInt(k)
}

// IntMul returns k * f.
func IntMul[T constraints.Signed](k T, f Fraction[T]) Fraction[T] {
	return f.MulInt(k)
}

// IntDiv returns k / f, defined as (k*f.den)/f.num.
func IntDiv[T constraints.Signed](k T, f Fraction[T]) Fraction[T] {
	return New(k*f.den, f.num)
}

// IntMod returns k mod f.
func IntMod[T constraints.Signed](k T, f Fraction[T]) Fraction[T] {
	return FromInt(k).Mod(f)
}

// FloatAdd returns x + f.
func FloatAdd[T constraints.Signed](x float64, f Fraction[T]) Fraction[T] {
	return f.AddFloat(x)
}

// FloatSub returns x - f.
func FloatSub[T constraints.Signed](x float64, f Fraction[T]) Fraction[T] {
	return f.Neg().AddFloat(x)
}

// FloatMul returns x * f.
func FloatMul[T constraints.Signed](x float64, f Fraction[T]) Fraction[T] {
	return f.MulFloat(x)
}

// FloatDiv returns x / f. Dividing by zero short-circuits to the inverse,
// preserving the sentinel instead of round-tripping through a float Inf.
func FloatDiv[T constraints.Signed](x float64, f Fraction[T]) Fraction[T] {
	if f.num == 0 {
		return f.Inv()
	}
	return FromFloat64[T](x * f.Inv().Float64())
}

// FloatMod returns x mod f using the platform floating modulo.
func FloatMod[T constraints.Signed](x float64, f Fraction[T]) Fraction[T] {
	if f.den == 0 {
		return f
	}
	return FromFloat64[T](math.Mod(x, f.Float64()))
}
