package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Expand writes the continued-fraction expansion of x as a fixed-length,
// zero-filled term slice of MaxTerms entries: the integer part of the
// remaining value becomes the next term, and the fractional remainder is
// inverted for the next round. Expansion stops early once the remainder's
// magnitude drops below Eps.
//
// Note the termination criterion differs from the Stern-Brocot search (the
// residual after inversion versus direct value proximity), so the two engines
// can legitimately disagree on the fraction they pick for the same x and the
// same tolerance. Non-finite x yields all-zero terms.
func (a Approx[T]) Expand(x float64) []T {
	terms := make([]T, a.MaxTerms)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return terms
	}

	remainder := x
	for i := range terms {
		var ipart float64
		ipart, remainder = math.Modf(remainder)
		terms[i] = T(ipart)
		if math.Abs(remainder) < a.Eps {
			break
		}
		remainder = 1 / remainder
	}
	return terms
}

// FromTerms evaluates a₀ + 1/(a₁ + 1/(a₂ + ...)) by folding the terms from
// the last to the first: a zero accumulator is replaced by the term as a
// whole number, any other accumulator is inverted and the term added. Zero
// placeholder terms at the tail are therefore harmless.
func FromTerms[T constraints.Signed](terms []T) Fraction[T] {
	acc := Zero[T]()
	for i := len(terms) - 1; i >= 0; i-- {
		if acc.num == 0 {
			acc = FromInt(terms[i])
		} else {
			acc = acc.Inv().AddInt(terms[i])
		}
	}
	return acc
}

// FromContinuedFraction chains Expand and FromTerms to approximate x in one
// call.
func (a Approx[T]) FromContinuedFraction(x float64) Fraction[T] {
	return FromTerms(a.Expand(x))
}
