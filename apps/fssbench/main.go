//
// main.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Command fssbench generates FSS keys, verifies reconstruction, and
// reports operation timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kbase6/FssFMI/dcf"
	"github.com/kbase6/FssFMI/ddcf"
	"github.com/kbase6/FssFMI/dpf"
	"github.com/kbase6/FssFMI/fss"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

var verbose = false

var strategies = map[string]dpf.Strategy{
	"auto":       dpf.Auto,
	"naive":      dpf.Naive,
	"iterative":  dpf.Iterative,
	"batched4":   dpf.Batched4,
	"batched8":   dpf.Batched8,
	"batched128": dpf.Batched128,
	"recursive":  dpf.Recursive,
}

type sample struct {
	label    string
	count    int
	duration time.Duration
}

func measure(label string, count int, f func()) sample {
	start := time.Now()
	for i := 0; i < count; i++ {
		f()
	}
	return sample{
		label:    label,
		count:    count,
		duration: time.Since(start),
	}
}

func main() {
	log.SetFlags(0)

	fN := flag.Uint("n", 16, "input bits")
	fE := flag.Uint("e", 32, "element bits")
	fAlpha := flag.Uint64("alpha", 12345, "point function input")
	fBeta := flag.Uint64("beta", 1, "point function value")
	fCount := flag.Int("count", 1000, "iterations per operation")
	fFD := flag.Int("fdcount", 10, "full-domain iterations")
	fStrategy := flag.String("strategy", "auto", "full-domain strategy")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose

	strategy, ok := strategies[*fStrategy]
	if !ok {
		log.Fatalf("unknown strategy %q", *fStrategy)
	}

	n := *fN
	e := *fE
	alpha := fss.Mod(*fAlpha, n)
	beta := fss.Mod(*fBeta, e)

	rng := fss.NewSecureRng()

	dpfParams, err := dpf.NewParams(n, e)
	if err != nil {
		log.Fatal(err)
	}
	dcfParams, err := dcf.NewParams(n, e)
	if err != nil {
		log.Fatal(err)
	}

	dp := dpf.New(dpfParams, rng)
	dc := dcf.New(dcfParams, rng)
	dd := ddcf.New(dcfParams, rng)

	fmt.Printf("n=%d e=%d alpha=%d beta=%d depth=%d leaves=%d\n",
		n, e, alpha, beta, dpfParams.TermBits, dpfParams.Leaves())

	// Verify reconstruction before timing anything.
	dk0, dk1 := dp.GenerateKeys(alpha, beta)
	sum := fss.Mod(dp.EvaluateAt(dk0, alpha)+dp.EvaluateAt(dk1, alpha), e)
	if sum != beta {
		log.Fatalf("DPF reconstruction failed: got %d, expected %d",
			sum, beta)
	}
	if verbose {
		keys := []*dpf.Key{dk0, dk1}
		for id, key := range keys {
			fmt.Printf("  f(alpha)%s = %d\n", superscript.Itoa(id),
				dp.EvaluateAt(key, alpha))
		}
	}

	ck0, ck1 := dc.GenerateKeys(alpha, beta)
	csum := fss.Mod(dc.EvaluateAt(ck0, alpha)+dc.EvaluateAt(ck1, alpha), e)
	if csum != 0 {
		log.Fatalf("DCF reconstruction failed: f(alpha) = %d", csum)
	}

	ddk0, ddk1 := dd.GenerateKeys(alpha, beta, 0)
	dsum := fss.Mod(dd.EvaluateAt(ddk0, alpha)+dd.EvaluateAt(ddk1, alpha), e)
	if dsum != 0 {
		log.Fatalf("DDCF reconstruction failed: f(alpha) = %d", dsum)
	}

	count := *fCount
	var samples []sample

	samples = append(samples,
		measure("DPF Gen", count, func() {
			dp.GenerateKeys(alpha, beta)
		}),
		measure("DPF Eval", count, func() {
			dp.EvaluateAt(dk0, alpha)
		}),
		measure(fmt.Sprintf("DPF FullDomain (%v)", strategy), *fFD,
			func() {
				if _, err := dp.EvaluateFullDomain(dk0, strategy); err != nil {
					log.Fatal(err)
				}
			}),
		measure("DCF Gen", count, func() {
			dc.GenerateKeys(alpha, beta)
		}),
		measure("DCF Eval", count, func() {
			dc.EvaluateAt(ck0, alpha)
		}),
		measure("DDCF Eval", count, func() {
			dd.EvaluateAt(ddk0, alpha)
		}),
	)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Total").SetAlign(tabulate.MR)
	tab.Header("Op Time").SetAlign(tabulate.MR)
	tab.Header("Ops/s").SetAlign(tabulate.MR)

	for _, s := range samples {
		row := tab.Row()
		row.Column(s.label)
		row.Column(s.duration.String())
		row.Column((s.duration / time.Duration(s.count)).String())
		row.Column(fmt.Sprintf("%.0f",
			float64(s.count)/s.duration.Seconds()))
	}
	tab.Print(os.Stdout)
}
