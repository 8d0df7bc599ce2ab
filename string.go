package fraction

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// String renders whole numbers bare, negative whole numbers parenthesized,
// and everything else as (num/den).
func (f Fraction[T]) String() string {
	if f.IsInt() {
		if f.IsNeg() {
			return "(" + strconv.FormatInt(int64(f.num), 10) + ")"
		}
		return strconv.FormatInt(int64(f.num), 10)
	}
	return "(" + strconv.FormatInt(int64(f.num), 10) + "/" + strconv.FormatInt(int64(f.den), 10) + ")"
}

// TermsString renders a continued-fraction term sequence as its comma-joined
// terms, trimming the zero-filled tail but always keeping the leading term.
func TermsString[T constraints.Signed](terms []T) string {
	if len(terms) == 0 {
		return ""
	}

	last := len(terms)
	for last > 1 && terms[last-1] == 0 {
		last--
	}

	parts := make([]string, 0, last)
	for _, t := range terms[:last] {
		parts = append(parts, strconv.FormatInt(int64(t), 10))
	}
	return strings.Join(parts, ",")
}
