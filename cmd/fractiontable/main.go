// fractiontable prints behavior tables for a fixed set of probe fractions so
// that changes to the arithmetic can be eyeballed quickly. Each table is
// tab-separated with a header row; -table selects one table or all of them,
// and -csv additionally exports the basic table to a CSV file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/fraction"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type basicRow struct {
	Value    string  `csv:"value"`
	Expected string  `csv:"expected"`
	OK       bool    `csv:"ok"`
	Num      int64   `csv:"num"`
	Den      int64   `csv:"den"`
	Float    float64 `csv:"float"`
	IsInt    bool    `csv:"is_int"`
	IsNeg    bool    `csv:"is_neg"`
	Abs      string  `csv:"abs"`
	Inv      string  `csv:"inv"`
	Terms    string  `csv:"cf_terms"`
}

type probe struct {
	f fraction.Rat64

	// The canonical rendering each probe is expected to produce; the basic
	// table flags any drift.
	want string
}

// probes covers the interesting regions: whole numbers, zero, the infinity
// sentinel, exact rationals of both signs, and float-seeded approximations.
func probes() []probe {
	return []probe{
		{fraction.Whole64(7), "7"},
		{fraction.Zero[int64](), "0"},
		{fraction.New64(2, 0), "(1/0)"},
		{fraction.New64(1, 4), "(1/4)"},
		{fraction.New64(48, 7), "(48/7)"},
		{fraction.New64(3, 2), "(3/2)"},
		{fraction.New64(5, 3), "(5/3)"},
		{fraction.New64(-25, 49), "(-25/49)"},
		{fraction.New64(4, -10), "(-2/5)"},
		{fraction.Whole64(2), "2"},
		{fraction.New64(49, 25), "(49/25)"},
		{fraction.New64(8, 27), "(8/27)"},
		{fraction.New64(56, 45), "(56/45)"},
		{fraction.New64(392, 10125), "(392/10125)"},
		{fraction.From64(3.141592654), "(355/113)"},
		{fraction.New64(1, 3), "(1/3)"},
		{fraction.From64(0.33333), "(25641/76924)"},
	}
}

func main() {
	var table, csvPath string
	var errorExp, maxTerms int

	flag.StringVar(&table, "table", "all", "Which table to print: basic | addsub | muldiv | compare | roots | exp | contfrac | all")
	flag.StringVar(&csvPath, "csv", "", "(Optional) Also export the basic table to this CSV file")
	flag.IntVar(&errorExp, "error-exp", fraction.DefaultErrorExp, "Approximation tolerance exponent; the tolerance is 10^this")
	flag.IntVar(&maxTerms, "max-terms", fraction.DefaultMaxTerms, "Continued-fraction expansion term bound")
	flag.Parse()

	if err := run(table, csvPath, errorExp, maxTerms); err != nil {
		log.Fatalln(err)
	}
}

func run(table, csvPath string, errorExp, maxTerms int) error {
	a := fraction.NewApprox[int64](errorExp, maxTerms)

	printers := map[string]func(fraction.Approx[int64]){
		"basic":    printBasic,
		"addsub":   printAddSub,
		"muldiv":   printMulDiv,
		"compare":  printCompare,
		"roots":    printRoots,
		"exp":      printExp,
		"contfrac": printContFrac,
	}

	switch table {
	case "all":
		for _, name := range []string{"basic", "addsub", "muldiv", "compare", "roots", "exp", "contfrac"} {
			fmt.Printf("== %s ==\n", name)
			printers[name](a)
			fmt.Println()
		}
	default:
		printer, exists := printers[table]
		if !exists {
			return pfx.Err(fmt.Errorf("unknown table %q", table))
		}
		printer(a)
	}

	if csvPath != "" {
		if err := exportBasic(a, csvPath); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

func printBasic(a fraction.Approx[int64]) {
	fmt.Println(strings.Join([]string{"value", "expected", "ok", "float", "num", "den", "is_int", "is_neg", "abs", "inv", "cf_terms"}, "\t"))
	for _, row := range basicRows(a) {
		status := "ok"
		if !row.OK {
			status = "MISMATCH"
		}
		fmt.Printf("%s\t%s\t%s\t%g\t%d\t%d\t%t\t%t\t%s\t%s\t%s\n",
			row.Value, row.Expected, status, row.Float, row.Num, row.Den, row.IsInt, row.IsNeg, row.Abs, row.Inv, row.Terms)
	}
}

func basicRows(a fraction.Approx[int64]) []basicRow {
	var rows []basicRow
	for _, p := range probes() {
		f := p.f
		rows = append(rows, basicRow{
			Value:    f.String(),
			Expected: p.want,
			OK:       f.String() == p.want,
			Num:      f.Num(),
			Den:      f.Den(),
			Float:    f.Float64(),
			IsInt:    f.IsInt(),
			IsNeg:    f.IsNeg(),
			Abs:      f.Abs().String(),
			Inv:      f.Inv().String(),
			Terms:    fraction.TermsString(a.Expand(f.Float64())),
		})
	}
	return rows
}

func exportBasic(a fraction.Approx[int64], csvPath string) error {
	outFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	rows := basicRows(a)
	return gocsv.MarshalFile(&rows, outFile)
}

func printAddSub(fraction.Approx[int64]) {
	g := fraction.New64(3, 2)
	fmt.Println(strings.Join([]string{"value", "inc", "+3", "-3", "+1.5", "-1.5", "+(3/2)", "-(3/2)", "4+x", "4-x"}, "\t"))
	for _, p := range probes() {
		f := p.f
		fmt.Println(strings.Join([]string{
			f.String(),
			f.Inc().String(),
			f.AddInt(3).String(),
			f.SubInt(3).String(),
			f.AddFloat(1.5).String(),
			f.SubFloat(1.5).String(),
			f.Add(g).String(),
			f.Sub(g).String(),
			fraction.IntAdd(4, f).String(),
			fraction.IntSub(4, f).String(),
		}, "\t"))
	}
}

func printMulDiv(fraction.Approx[int64]) {
	g := fraction.New64(3, 2)
	fmt.Println(strings.Join([]string{"value", "*5", "/5", "%5", "*1.5", "/1.5", "%1.5", "*(3/2)", "/(3/2)", "%(3/2)"}, "\t"))
	for _, p := range probes() {
		f := p.f
		fmt.Println(strings.Join([]string{
			f.String(),
			f.MulInt(5).String(),
			f.DivInt(5).String(),
			f.ModInt(5).String(),
			f.MulFloat(1.5).String(),
			f.DivFloat(1.5).String(),
			f.ModFloat(1.5).String(),
			f.Mul(g).String(),
			f.Div(g).String(),
			f.Mod(g).String(),
		}, "\t"))
	}
}

func printCompare(fraction.Approx[int64]) {
	third := fraction.New64(1, 3)
	fmt.Println(strings.Join([]string{"value", "==(1/3)", "<(1/3)", "cmp(1/3)", "cmp(2/3)", "cmp(-1/3)"}, "\t"))
	for _, p := range probes() {
		f := p.f
		fmt.Printf("%s\t%t\t%t\t%d\t%d\t%d\n",
			f,
			f.Equal(third),
			f.Less(third),
			f.Cmp(third),
			f.Cmp(fraction.New64(2, 3)),
			f.Cmp(fraction.New64(-1, 3)),
		)
	}
}

func printRoots(fraction.Approx[int64]) {
	fmt.Println(strings.Join([]string{"value", "sq", "cb", "is_abs_square", "is_cube", "simplify_sqrt", "simplify_cbrt"}, "\t"))
	for _, p := range probes() {
		f := p.f
		sqF, sqR := f.SimplifySqrt()
		cbF, cbR := f.SimplifyCbrt()
		fmt.Printf("%s\t%s\t%s\t%t\t%t\t{%s, %s}\t{%s, %s}\n",
			f, f.Sq(), f.Cb(), f.IsAbsSquare(), f.IsCube(), sqF, sqR, cbF, cbR)
	}
}

func printExp(fraction.Approx[int64]) {
	fmt.Println(strings.Join([]string{"value", "sqrt", "cbrt", "sqrtc", "pow(0.5)", "powc(0.5)", "frexp", "ldexp(-4)"}, "\t"))
	for _, p := range probes() {
		f := p.f
		sqRe, sqIm := f.SqrtC()
		powRe, powIm := f.PowC(0.5)
		mant, exp := f.Frexp()
		fmt.Printf("%s\t%s\t%s\t%s+%si\t%s\t%s+%si\t{%s, %d}\t%s\n",
			f, f.Sqrt(), f.Cbrt(), sqRe, sqIm, f.Pow(0.5), powRe, powIm, mant, exp, f.Ldexp(-4))
	}
}

// printContFrac puts the two approximation engines side by side. They use
// different termination criteria, so the columns disagree for some inputs at
// the same tolerance.
func printContFrac(a fraction.Approx[int64]) {
	fmt.Println(strings.Join([]string{"value", "float", "cf_terms", "contfrac", "sternbrocot"}, "\t"))
	for _, p := range probes() {
		f := p.f
		x := f.Float64()
		fmt.Printf("%s\t%g\t%s\t%s\t%s\n",
			f, x, fraction.TermsString(a.Expand(x)), a.FromContinuedFraction(x), a.FromFloat64(x))
	}
}
