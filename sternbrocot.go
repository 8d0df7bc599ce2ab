package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Defaults for the approximation tunables: tolerance 10^-6 and a 25-term
// continued-fraction expansion.
const (
	DefaultErrorExp = -6
	DefaultMaxTerms = 25
)

// Approx bundles the approximation tunables for one storage width: the
// absolute error tolerance and the continued-fraction term bound. The zero
// value is useless; build one with NewApprox or DefaultApprox.
type Approx[T constraints.Signed] struct {
	// Eps is the absolute error tolerance, 10^errorExp.
	Eps float64
	// MaxTerms bounds the continued-fraction expansion length.
	MaxTerms int
}

// NewApprox builds an Approx with tolerance 10^errorExp and the given
// expansion bound.
func NewApprox[T constraints.Signed](errorExp, maxTerms int) Approx[T] {
	return Approx[T]{
		Eps:      math.Pow(10, float64(errorExp)),
		MaxTerms: maxTerms,
	}
}

// DefaultApprox builds an Approx with the package defaults.
func DefaultApprox[T constraints.Signed]() Approx[T] {
	return NewApprox[T](DefaultErrorExp, DefaultMaxTerms)
}

// FromFloat64 approximates x by binary search over the Stern-Brocot tree:
// starting from the whole-number bounds floor(x)/1 and ceil(x)/1 (rather than
// the conventional 0/1 and 1/0 roots, which saves the integer-part descent),
// it repeatedly replaces the bound the mediant overshoots until the mediant
// lands within Eps of x.
//
// The loop has no iteration cap: a finite x is itself a rational with a
// denominator of at most 2^52, so the search converges, but a narrow storage
// type can overflow first on adversarial inputs. Non-finite x never enters
// the loop: NaN yields {0, 0} and ±Inf yields the {±1, 0} sentinel.
func (a Approx[T]) FromFloat64(x float64) Fraction[T] {
	if math.IsNaN(x) {
		return New[T](0, 0)
	}
	if math.IsInf(x, 1) {
		return New[T](1, 0)
	}
	if math.IsInf(x, -1) {
		return New[T](-1, 0)
	}

	low := FromInt(T(math.Floor(x)))
	high := FromInt(T(math.Ceil(x)))
	for {
		med := Mediant(low, high)
		switch diff := med.Float64() - x; {
		case diff > a.Eps:
			high = med
		case diff < -a.Eps:
			low = med
		default:
			return med
		}
	}
}

// FromFloat64 approximates x with the default tolerance via the Stern-Brocot
// search.
func FromFloat64[T constraints.Signed](x float64) Fraction[T] {
	return DefaultApprox[T]().FromFloat64(x)
}
