package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/elowsky/screads/barcode"
	"github.com/elowsky/screads/ingest"
	"github.com/elowsky/screads/store"
	"github.com/vertgenlab/gonomics/exception"
)

func importUsage(importFlags *flag.FlagSet) {
	fmt.Print(
		"import - Import 10x FASTQ reads into a document collection with barcode annotation\n\n" +
			"Usage:\n" +
			"  screads import [options] -whitelist barcodes.txt reads.fq.gz ...\n\n" +
			"Options:\n")
	importFlags.PrintDefaults()
}

func runImport(args []string) {
	var err error
	importFlags := flag.NewFlagSet("import", flag.ExitOnError)

	whitelistFile := importFlags.String("whitelist", "", "Barcode whitelist, one 16bp barcode per line. May be gzipped.")
	uri := importFlags.String("uri", "mongodb://localhost:27017", "MongoDB connection string.")
	db := importFlags.String("db", "screads", "Database name.")
	collection := importFlags.String("collection", "reads", "Collection receiving one document per read.")
	dryRun := importFlags.Bool("dry-run", false, "Classify and count without writing to a database.")

	err = importFlags.Parse(args)
	exception.PanicOnErr(err)
	importFlags.Usage = func() { importUsage(importFlags) }

	if *whitelistFile == "" || importFlags.NArg() == 0 {
		importFlags.Usage()
		errExit("\nERROR: must have a -whitelist file and at least one FASTQ file")
	}

	wl := barcode.ReadWhitelist(*whitelistFile)
	log.Printf("loaded %d whitelist barcodes from %s\n", len(wl), *whitelistFile)

	var sink store.Sink
	if *dryRun {
		sink = new(store.Memory)
	} else {
		var ms *store.Mongo
		ms, err = store.DialMongo(*uri, *db, *collection)
		if err != nil {
			log.Fatalf("ERROR: %s\n", err)
		}
		err = ms.EnsureIndexes()
		if err != nil {
			log.Fatalf("ERROR: %s\n", err)
		}
		sink = ms
	}

	var total ingest.Summary
	for _, fastqFile := range importFlags.Args() {
		sum := ingest.File(fastqFile, wl, sink)
		sum.Log(fastqFile)
		total.Add(sum)
	}
	if importFlags.NArg() > 1 {
		total.Log("total")
	}

	err = sink.Close()
	exception.PanicOnErr(err)
}
