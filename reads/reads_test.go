package reads

import (
	"testing"

	"github.com/vertgenlab/gonomics/fileio"
)

func TestNextRead(t *testing.T) {
	file := fileio.EasyOpen("testdata/reads.fastq")
	defer file.Close()

	var names []string
	var r Read
	var done bool
	for r, done = NextRead(file); !done; r, done = NextRead(file) {
		names = append(names, r.Name)
		if len(r.Seq) != len(r.Qual) {
			t.Error("sequence and quality lengths differ for", r.Name)
		}
	}

	// bad1 (missing '+') and bad2 (short quality) must be skipped
	expected := []string{"r1", "r2", "r3", "r4", "r5"}
	if len(names) != len(expected) {
		t.Fatal("expected 5 well-formed records, got", names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Error("record order mismatch:", names, "expected", expected)
		}
	}
}

func TestNextReadFields(t *testing.T) {
	file := fileio.EasyOpen("testdata/reads.fastq")
	defer file.Close()

	r, done := NextRead(file)
	if done {
		t.Fatal("no records in test file")
	}
	if r.Name != "r1" || r.Desc != "VH00111:1:N:0:ACTG" {
		t.Error("problem splitting identifier line into name and description", r.Name, r.Desc)
	}
	if r.Seq != "AAAACCCCGGGGTTTTACGTACGTAC" {
		t.Error("unexpected sequence for first record:", r.Seq)
	}
}
