// fracapprox explores the float-to-fraction approximators from the command
// line: approximate a single value, a file of values, or a random sample, and
// optionally chart how the continued-fraction reconstruction error shrinks as
// the term bound grows.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/BenLubar/memoize"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/fraction"
	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"github.com/wcharczuk/go-chart/v2"
)

func main() {
	var value, valuesPath, chartPath string
	var sampleN int
	var seed int64
	var errorExp, maxTerms int

	flag.StringVar(&value, "value", "", "A single value to approximate")
	flag.StringVar(&valuesPath, "values", "", "A file with one value per line, each approximated in turn")
	flag.IntVar(&sampleN, "n", 0, "Approximate this many random values and summarize the residuals")
	flag.Int64Var(&seed, "seed", 1, "Seed for the -n random sample")
	flag.StringVar(&chartPath, "chart", "", "(Requires -value) Render reconstruction error vs term count to this PNG file")
	flag.IntVar(&errorExp, "error-exp", fraction.DefaultErrorExp, "Approximation tolerance exponent; the tolerance is 10^this")
	flag.IntVar(&maxTerms, "max-terms", fraction.DefaultMaxTerms, "Continued-fraction expansion term bound")
	flag.Parse()

	if value == "" && valuesPath == "" && sampleN <= 0 {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(value, valuesPath, chartPath, sampleN, seed, errorExp, maxTerms); err != nil {
		log.Fatalln(err)
	}
}

func run(value, valuesPath, chartPath string, sampleN int, seed int64, errorExp, maxTerms int) error {
	a := fraction.NewApprox[int64](errorExp, maxTerms)

	if value != "" {
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return pfx.Err(err)
		}

		printHeader()
		printValue(a, x)

		if chartPath != "" {
			if err := renderChart(x, errorExp, maxTerms, chartPath); err != nil {
				return pfx.Err(err)
			}
		}
	}

	if valuesPath != "" {
		if err := processFile(a, valuesPath); err != nil {
			return pfx.Err(err)
		}
	}

	if sampleN > 0 {
		if err := summarizeSample(a, sampleN, seed); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}

func printHeader() {
	fmt.Println(strings.Join([]string{"value", "sternbrocot", "sb_residual", "contfrac", "cf_residual", "cf_terms"}, "\t"))
}

func printValue(a fraction.Approx[int64], x float64) {
	sb := a.FromFloat64(x)
	terms := a.Expand(x)
	cf := fraction.FromTerms(terms)
	fmt.Printf("%g\t%s\t%g\t%s\t%g\t%s\n",
		x, sb, sb.Float64()-x, cf, cf.Float64()-x, fraction.TermsString(terms))
}

// processFile approximates every value in the file, one per line. Input files
// often repeat the same measurements many times, so the search is memoized.
func processFile(a fraction.Approx[int64], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	memoized := memoize.Memoize(a.FromFloat64).(func(float64) fraction.Rat64)

	printHeader()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return err
		}

		sb := memoized(x)
		terms := a.Expand(x)
		cf := fraction.FromTerms(terms)
		fmt.Printf("%g\t%s\t%g\t%s\t%g\t%s\n",
			x, sb, sb.Float64()-x, cf, cf.Float64()-x, fraction.TermsString(terms))
	}

	return scanner.Err()
}

// summarizeSample runs both approximation engines over n uniform random
// values and prints the residual distributions: a terminal histogram of the
// Stern-Brocot residuals plus per-engine summary statistics of the absolute
// residuals.
func summarizeSample(a fraction.Approx[int64], n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	sbResiduals := make([]float64, 0, n)
	sbAbs := make([]float64, 0, n)
	cfAbs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := rng.Float64()*200 - 100
		r := a.FromFloat64(x).Float64() - x
		sbResiduals = append(sbResiduals, r)
		sbAbs = append(sbAbs, math.Abs(r))
		cfAbs = append(cfAbs, math.Abs(a.FromContinuedFraction(x).Float64()-x))
	}

	fmt.Printf("Stern-Brocot residuals over %d values in [-100, 100):\n", n)
	hist := histogram.Hist(25, sbResiduals)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(5)); err != nil {
		return err
	}

	for _, engine := range []struct {
		name string
		abs  []float64
	}{
		{"sternbrocot", sbAbs},
		{"contfrac", cfAbs},
	} {
		data := stats.LoadRawData(engine.abs)
		mean, err := data.Mean()
		if err != nil {
			return err
		}
		median, err := data.Median()
		if err != nil {
			return err
		}
		max, err := data.Max()
		if err != nil {
			return err
		}
		fmt.Printf("%s abs residual\tmean %g\tmedian %g\tmax %g\ttolerance %g\n", engine.name, mean, median, max, a.Eps)
	}

	return nil
}

// renderChart plots the absolute continued-fraction reconstruction error for
// x at every term bound from 1 up to maxTerms.
func renderChart(x float64, errorExp, maxTerms int, outPath string) error {
	xs := make([]float64, 0, maxTerms)
	ys := make([]float64, 0, maxTerms)
	for k := 1; k <= maxTerms; k++ {
		bounded := fraction.NewApprox[int64](errorExp, k)
		f := bounded.FromContinuedFraction(x)
		xs = append(xs, float64(k))
		ys = append(ys, math.Abs(f.Float64()-x))
	}

	graph := chart.Chart{
		Width:  512,
		Height: 256,
		XAxis: chart.XAxis{
			Name: "term bound",
		},
		YAxis: chart.YAxis{
			Name: "absolute error",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	_, err = outFile.Write(buffer.Bytes())
	return err
}
