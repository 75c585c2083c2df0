package seqsort

import (
	"testing"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

func testRecords() []fasta.Fasta {
	return []fasta.Fasta{
		{Name: "mid", Seq: dna.StringToBases("ACGTACGT")},
		{Name: "long", Seq: dna.StringToBases("ACGTACGTACGTACGT")},
		{Name: "shortA", Seq: dna.StringToBases("ACGT")},
		{Name: "shortB", Seq: dna.StringToBases("TTTT")},
	}
}

func TestByLength(t *testing.T) {
	records := testRecords()
	ByLength(records, false)
	expected := []string{"shortA", "shortB", "mid", "long"}
	for i := range expected {
		if records[i].Name != expected[i] {
			t.Fatal("ascending sort order wrong:", records)
		}
	}
}

func TestByLengthDescending(t *testing.T) {
	records := testRecords()
	ByLength(records, true)
	expected := []string{"long", "mid", "shortA", "shortB"}
	for i := range expected {
		if records[i].Name != expected[i] {
			t.Fatal("descending sort order wrong:", records)
		}
	}
}

func TestByLengthStable(t *testing.T) {
	// equal-length records must keep input order in both directions
	records := testRecords()
	ByLength(records, false)
	if records[0].Name != "shortA" || records[1].Name != "shortB" {
		t.Error("equal-length records reordered:", records[0].Name, records[1].Name)
	}
	ByLength(records, true)
	if records[2].Name != "shortA" || records[3].Name != "shortB" {
		t.Error("equal-length records reordered on descending sort")
	}
}
