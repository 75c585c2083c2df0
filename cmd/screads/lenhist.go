package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/elowsky/screads/reads"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func lenhistUsage(lenhistFlags *flag.FlagSet) {
	fmt.Print(
		"lenhist - Read-length distribution of a FASTQ file\n\n" +
			"Usage:\n" +
			"  screads lenhist [options] reads.fq.gz\n\n" +
			"Options:\n")
	lenhistFlags.PrintDefaults()
}

func runLenhist(args []string) {
	var err error
	lenhistFlags := flag.NewFlagSet("lenhist", flag.ExitOnError)

	pngFile := lenhistFlags.String("png", "", "Also render the histogram to this PNG file.")
	bins := lenhistFlags.Int("bins", 50, "Number of bins for the PNG histogram.")

	err = lenhistFlags.Parse(args)
	exception.PanicOnErr(err)
	lenhistFlags.Usage = func() { lenhistUsage(lenhistFlags) }

	if lenhistFlags.NArg() != 1 {
		lenhistFlags.Usage()
		errExit("\nERROR: must have exactly one FASTQ file")
	}

	lengths := readLengths(lenhistFlags.Arg(0))
	if len(lengths) == 0 {
		log.Fatalln("ERROR: no well-formed records in input")
	}

	printLengthSummary(lengths)

	if *pngFile != "" {
		plotLengths(lengths, *bins, *pngFile)
	}
}

func readLengths(fastqFile string) []float64 {
	file := fileio.EasyOpen(fastqFile)

	var lengths []float64
	var r reads.Read
	var done bool
	for r, done = reads.NextRead(file); !done; r, done = reads.NextRead(file) {
		lengths = append(lengths, float64(len(r.Seq)))
	}

	err := file.Close()
	exception.PanicOnErr(err)
	return lengths
}

func printLengthSummary(lengths []float64) {
	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}

	// one histogram bucket per distinct read length
	counts := make([]float64, int(max-min)+1)
	for _, l := range lengths {
		counts[int(l-min)]++
	}

	fmt.Printf("reads: %d\nlength mean: %.1f\nlength sd: %.1f\nlength range: %d-%d\n\n",
		len(lengths), stat.Mean(lengths, nil), stat.StdDev(lengths, nil), int(min), int(max))
	fmt.Println(asciigraph.Plot(counts, asciigraph.Height(10), asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("read count by length (%d-%dbp)", int(min), int(max)))))
}

func plotLengths(lengths []float64, bins int, pngFile string) {
	h, err := plotter.NewHist(plotter.Values(lengths), bins)
	exception.PanicOnErr(err)

	pl := plot.New()
	pl.Add(h)
	pl.Title.Text = "Read length distribution"
	pl.X.Label.Text = "Read length (bp)"
	pl.Y.Label.Text = "Reads"

	err = pl.Save(15*vg.Centimeter, 10*vg.Centimeter, pngFile)
	exception.PanicOnErr(err)
	log.Printf("wrote %s\n", pngFile)
}
