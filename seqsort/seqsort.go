// Package seqsort reorders FASTA records by sequence length.
package seqsort

import (
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/slices"
)

// ByLength stable-sorts records by sequence length, shortest first, or
// longest first when descending is set. Records of equal length keep
// their input order.
func ByLength(records []fasta.Fasta, descending bool) {
	slices.SortStableFunc(records, func(a, b fasta.Fasta) int {
		if descending {
			return len(b.Seq) - len(a.Seq)
		}
		return len(a.Seq) - len(b.Seq)
	})
}

// File reads a FASTA file, sorts its records by length, and writes them
// to outfile. Input and output may be gzipped.
func File(infile, outfile string, descending bool) {
	records := fasta.Read(infile)
	ByLength(records, descending)
	fasta.Write(outfile, records)
}
