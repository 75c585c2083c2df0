// Package ingest runs the import loop: read a FASTQ file, classify each
// record, resolve its cell barcode, and emit one document per read.
package ingest

import (
	"errors"
	"log"

	"github.com/elowsky/screads/barcode"
	"github.com/elowsky/screads/reads"
	"github.com/elowsky/screads/store"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Summary counts the outcomes of one imported file.
type Summary struct {
	Reads        int
	Classified   int
	VdjRead1     int
	VdjRead2     int
	GexRead1     int
	GexRead2     int
	Unclassified int
	BadReadNum   int

	// barcode outcomes, read-1 records only
	BarcodeExact     int
	BarcodeCorrected int
	BarcodeAmbiguous int
	BarcodeMissing   int
}

// File imports one FASTQ file into sink. The whitelist must be fully
// loaded before the call. Unclassifiable records are counted and skipped
// with a warning; a sink failure is fatal.
func File(fastqFile string, wl barcode.Whitelist, sink store.Sink) Summary {
	file := fileio.EasyOpen(fastqFile)

	var sum Summary
	var r reads.Read
	var done bool
	for r, done = reads.NextRead(file); !done; r, done = reads.NextRead(file) {
		sum.Reads++
		rec, err := reads.Classify(r, wl)
		switch {
		case errors.Is(err, reads.ErrReadNum):
			sum.BadReadNum++
			log.Printf("WARNING: %s: %s\n", r.Name, err)
			continue
		case errors.Is(err, reads.ErrUnclassified):
			sum.Unclassified++
			log.Printf("WARNING: %s (%dbp): %s\n", r.Name, len(r.Seq), err)
			continue
		}
		sum.Classified++
		sum.tally(rec)

		err = sink.Emit(rec)
		exception.PanicOnErr(err)
	}

	err := file.Close()
	exception.PanicOnErr(err)
	return sum
}

func (sum *Summary) tally(rec reads.Record) {
	switch {
	case rec.Library == reads.LibraryVdj && rec.ReadNum == 1:
		sum.VdjRead1++
	case rec.Library == reads.LibraryVdj && rec.ReadNum == 2:
		sum.VdjRead2++
	case rec.Library == reads.LibraryGex && rec.ReadNum == 1:
		sum.GexRead1++
	case rec.Library == reads.LibraryGex && rec.ReadNum == 2:
		sum.GexRead2++
	}

	// only read-1 layouts carry a cell barcode
	if rec.ReadNum != 1 {
		return
	}
	switch {
	case rec.BarcodeMatches == 1 && rec.Corrected:
		sum.BarcodeCorrected++
	case rec.BarcodeMatches == 1:
		sum.BarcodeExact++
	case rec.BarcodeMatches >= 2:
		sum.BarcodeAmbiguous++
	default:
		sum.BarcodeMissing++
	}
}

// Log writes the summary for one imported file.
func (sum Summary) Log(fastqFile string) {
	log.Printf("%s: %d reads, %d classified (vdj r1/r2 %d/%d, gex r1/r2 %d/%d), %d unclassified, %d bad read number\n",
		fastqFile, sum.Reads, sum.Classified, sum.VdjRead1, sum.VdjRead2, sum.GexRead1, sum.GexRead2,
		sum.Unclassified, sum.BadReadNum)
	log.Printf("%s: barcodes %d exact, %d corrected, %d ambiguous, %d missing\n",
		fastqFile, sum.BarcodeExact, sum.BarcodeCorrected, sum.BarcodeAmbiguous, sum.BarcodeMissing)
}

// Add accumulates counts from another file's summary.
func (sum *Summary) Add(other Summary) {
	sum.Reads += other.Reads
	sum.Classified += other.Classified
	sum.VdjRead1 += other.VdjRead1
	sum.VdjRead2 += other.VdjRead2
	sum.GexRead1 += other.GexRead1
	sum.GexRead2 += other.GexRead2
	sum.Unclassified += other.Unclassified
	sum.BadReadNum += other.BadReadNum
	sum.BarcodeExact += other.BarcodeExact
	sum.BarcodeCorrected += other.BarcodeCorrected
	sum.BarcodeAmbiguous += other.BarcodeAmbiguous
	sum.BarcodeMissing += other.BarcodeMissing
}
