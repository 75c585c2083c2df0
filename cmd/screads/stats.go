package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/elowsky/screads/store"
	"github.com/vertgenlab/gonomics/exception"
)

func statsUsage(statsFlags *flag.FlagSet) {
	fmt.Print(
		"stats - Aggregate statistics over an imported read collection\n\n" +
			"Usage:\n" +
			"  screads stats [options]\n\n" +
			"Options:\n")
	statsFlags.PrintDefaults()
}

func runStats(args []string) {
	var err error
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)

	uri := statsFlags.String("uri", "mongodb://localhost:27017", "MongoDB connection string.")
	db := statsFlags.String("db", "screads", "Database name.")
	collection := statsFlags.String("collection", "reads", "Collection holding imported reads.")
	top := statsFlags.Int("top", 10, "Number of top barcodes to report.")

	err = statsFlags.Parse(args)
	exception.PanicOnErr(err)
	statsFlags.Usage = func() { statsUsage(statsFlags) }

	ms, err := store.DialMongo(*uri, *db, *collection)
	if err != nil {
		log.Fatalf("ERROR: %s\n", err)
	}

	stats, err := ms.Stats(*top)
	if err != nil {
		log.Fatalf("ERROR: %s\n", err)
	}
	err = ms.Close()
	exception.PanicOnErr(err)

	printStats(stats)
}

func printStats(stats store.Stats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "total reads\t%d\n", stats.Total)

	fmt.Fprintln(w, "\nlibrary\tread\tcount")
	for _, lc := range stats.Libraries {
		fmt.Fprintf(w, "%s\t%d\t%d\n", lc.Library, lc.ReadNum, lc.Count)
	}

	fmt.Fprintln(w, "\nbarcode matches\tcount")
	for _, ec := range stats.Existence {
		fmt.Fprintf(w, "%d\t%d\n", ec.Matches, ec.Count)
	}

	fmt.Fprintln(w, "\nbarcode\treads")
	for _, bc := range stats.TopBarcodes {
		fmt.Fprintf(w, "%s\t%d\n", bc.Barcode, bc.Count)
	}
	w.Flush()
}
