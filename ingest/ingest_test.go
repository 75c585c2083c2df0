package ingest

import (
	"testing"

	"github.com/elowsky/screads/barcode"
	"github.com/elowsky/screads/store"
)

func TestFile(t *testing.T) {
	wl := barcode.ReadWhitelist("testdata/whitelist.txt")
	sink := new(store.Memory)

	sum := File("testdata/reads.fastq", wl, sink)

	if sum.Reads != 5 || sum.Classified != 3 {
		t.Error("expected 5 reads with 3 classified, got", sum.Reads, sum.Classified)
	}
	if sum.VdjRead1 != 1 || sum.GexRead1 != 1 || sum.GexRead2 != 1 {
		t.Error("per-library counts wrong:", sum)
	}
	if sum.Unclassified != 1 || sum.BadReadNum != 1 {
		t.Error("skip counts wrong:", sum.Unclassified, sum.BadReadNum)
	}
	if sum.BarcodeExact != 1 || sum.BarcodeCorrected != 1 || sum.BarcodeAmbiguous != 0 || sum.BarcodeMissing != 0 {
		t.Error("barcode outcome counts wrong:", sum)
	}

	if len(sink.Records) != 3 {
		t.Fatal("expected 3 emitted documents, got", len(sink.Records))
	}
	for _, rec := range sink.Records {
		if rec.ReadNum == 1 && rec.Barcode == "" {
			t.Error("read-1 record emitted without a barcode:", rec.Name)
		}
	}

	// the corrected vdj read keeps the whitelist entry as its barcode
	var found bool
	for _, rec := range sink.Records {
		if rec.Name == "r3" {
			found = true
			if rec.Barcode != "TTTTGGGGCCCCAAAA" || !rec.Corrected {
				t.Error("r3 barcode should be corrected against the whitelist:", rec)
			}
		}
	}
	if !found {
		t.Error("corrected vdj read missing from sink")
	}
}

func TestSummaryAdd(t *testing.T) {
	a := Summary{Reads: 2, Classified: 1, GexRead1: 1, BarcodeExact: 1}
	b := Summary{Reads: 3, Classified: 2, VdjRead2: 2, Unclassified: 1}
	a.Add(b)
	if a.Reads != 5 || a.Classified != 3 || a.GexRead1 != 1 || a.VdjRead2 != 2 || a.Unclassified != 1 {
		t.Error("problem accumulating summaries:", a)
	}
}
