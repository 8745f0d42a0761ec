// Command hampelfilt runs a stream of samples through a Hampel outlier
// filter.
//
// Usage:
//
//	hampelfilt [flags] < noisy.txt
//
// Reads whitespace-separated decimal samples from stdin and writes the
// filtered samples to stdout, one per line.
//
// Examples:
//
//	hampelfilt -size 7 -sigma 3 < noisy.txt
//	hampelfilt -extrapolate -stats < noisy.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-robust/dsp/filter/hampel"
)

func main() {
	size := flag.Int("size", 5, "window size in samples (>= 3)")
	sigma := flag.Float64("sigma", 3, "outlier threshold in robust standard deviations")
	initVal := flag.Float64("init", 0, "initial fill value of the window")
	extrapolate := flag.Bool("extrapolate", false, "replace outliers by linear extrapolation instead of the window median")
	rejectNonFinite := flag.Bool("reject-nonfinite", false, "treat NaN/Inf samples as outliers and keep them out of the window")
	stats := flag.Bool("stats", false, "print a correction summary on stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hampelfilt [flags] < samples\n\n")
		fmt.Fprintf(os.Stderr, "Filters whitespace-separated samples from stdin through a Hampel\n")
		fmt.Fprintf(os.Stderr, "outlier filter and writes the result to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var opts []hampel.Option
	if *extrapolate {
		opts = append(opts, hampel.WithExtrapolation())
	}
	if *rejectNonFinite {
		opts = append(opts, hampel.WithNonFiniteRejection())
	}

	w, err := hampel.New(*size, *initVal, *sigma, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Split(bufio.ScanWords)

	out := bufio.NewWriter(os.Stdout)

	var (
		count    int
		residual []float64
	)

	for in.Scan() {
		x, err := strconv.ParseFloat(in.Text(), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: sample %d: %v\n", count+1, err)
			os.Exit(1)
		}

		y := w.ProcessSample(x)
		count++

		if *stats {
			residual = append(residual, y-x)
		}

		fmt.Fprintf(out, "%g\n", y)
	}

	if err := in.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: reading stdin: %v\n", err)
		os.Exit(1)
	}

	if err := out.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing stdout: %v\n", err)
		os.Exit(1)
	}

	if *stats {
		printStats(os.Stderr, w, count, residual)
	}
}

func printStats(dst io.Writer, w *hampel.Window, count int, residual []float64) {
	tw := tabwriter.NewWriter(dst, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples\t%d\n", count)
	fmt.Fprintf(tw, "Outliers\t%d\n", w.OutlierCount())
	fmt.Fprintf(tw, "Residual sum\t%g\n", vecmath.Sum(residual))
	fmt.Fprintf(tw, "Max correction\t%g\n", vecmath.MaxAbs(residual))
	tw.Flush()
}
