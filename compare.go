package fraction

// Equal reports exact field-wise equality of the canonical numerator and
// denominator. Two unreduced spellings of the same rational value are never
// constructible, so no cross-multiplication is needed. Note that equality and
// ordering follow different rules: Equal distinguishes 0/1 from 0/0, Cmp does
// not.
func (f Fraction[T]) Equal(rhs Fraction[T]) bool {
	return f.num == rhs.num && f.den == rhs.den
}

// Cmp three-way compares f and rhs by cross-multiplication, returning -1, 0,
// or +1. Staying in integer arithmetic avoids floating precision loss, at the
// cost of silent wraparound when the products exceed the storage type.
func (f Fraction[T]) Cmp(rhs Fraction[T]) int {
	lhs, r := f.num*rhs.den, rhs.num*f.den
	switch {
	case lhs < r:
		return -1
	case lhs > r:
		return 1
	}
	return 0
}

// Less reports whether f is strictly smaller than rhs.
func (f Fraction[T]) Less(rhs Fraction[T]) bool {
	return f.Cmp(rhs) < 0
}
