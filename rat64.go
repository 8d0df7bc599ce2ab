package fraction

// Rat64 is the default 64-bit instantiation.
type Rat64 = Fraction[int64]

// New64 builds a canonical 64-bit fraction.
func New64(num, den int64) Rat64 {
	return New(num, den)
}

// Whole64 builds the 64-bit whole-number fraction n/1.
func Whole64(n int64) Rat64 {
	return FromInt(n)
}

// From64 approximates a float64 as a 64-bit fraction with the default
// tolerance.
func From64(x float64) Rat64 {
	return FromFloat64[int64](x)
}
