package main

import (
	"flag"
	"fmt"

	"github.com/elowsky/screads/seqsort"
	"github.com/vertgenlab/gonomics/exception"
)

func sortFastaUsage(sortFlags *flag.FlagSet) {
	fmt.Print(
		"sortfasta - Sort FASTA records by sequence length\n\n" +
			"Usage:\n" +
			"  screads sortfasta [options] input.fa\n\n" +
			"Options:\n")
	sortFlags.PrintDefaults()
}

func runSortFasta(args []string) {
	var err error
	sortFlags := flag.NewFlagSet("sortfasta", flag.ExitOnError)

	outfile := sortFlags.String("o", "stdout", "Output FASTA file.")
	descending := sortFlags.Bool("desc", false, "Sort longest records first.")

	err = sortFlags.Parse(args)
	exception.PanicOnErr(err)
	sortFlags.Usage = func() { sortFastaUsage(sortFlags) }

	if sortFlags.NArg() != 1 {
		sortFlags.Usage()
		errExit("\nERROR: must have exactly one input FASTA file")
	}

	seqsort.File(sortFlags.Arg(0), *outfile, *descending)
}
