package barcode

import (
	"testing"
)

var testWhitelist = Whitelist{
	"AAAACCCCGGGGTTTT": true,
	"AAAACCCCGGGGTTTA": true,
	"TTTTGGGGCCCCAAAA": true,
}

func TestContains(t *testing.T) {
	if !testWhitelist.Contains("AAAACCCCGGGGTTTT") {
		t.Error("problem with exact whitelist membership")
	}
	if testWhitelist.Contains("CCCCCCCCCCCCCCCC") {
		t.Error("barcode absent from whitelist reported as present")
	}
}

func TestCorrectSingleWildcard(t *testing.T) {
	matches, bc := Correct("TTTTGGGGCCCCAAAN", testWhitelist)
	if matches != 1 || bc != "TTTTGGGGCCCCAAAA" {
		t.Error("single wildcard with one candidate should correct", matches, bc)
	}

	// wildcard in the middle of the barcode
	matches, bc = Correct("TTTTGGGGNCCCAAAA", testWhitelist)
	if matches != 1 || bc != "TTTTGGGGCCCCAAAA" {
		t.Error("problem with internal wildcard position", matches, bc)
	}
}

func TestCorrectAmbiguous(t *testing.T) {
	// both AAAACCCCGGGGTTTT and AAAACCCCGGGGTTTA are consistent
	matches, bc := Correct("AAAACCCCGGGGTTTN", testWhitelist)
	if matches != 2 {
		t.Error("expected 2 candidate barcodes, got", matches)
	}
	if bc != "AAAACCCCGGGGTTTN" {
		t.Error("ambiguous correction must keep the observed barcode, got", bc)
	}
}

func TestCorrectNoMatch(t *testing.T) {
	matches, bc := Correct("CCCCCCCCCCCCCCCN", testWhitelist)
	if matches != 0 || bc != "CCCCCCCCCCCCCCCN" {
		t.Error("zero-candidate wildcard should return observed barcode", matches, bc)
	}
}

func TestCorrectTooManyWildcards(t *testing.T) {
	// two ambiguous positions are never searched even when a whitelist
	// entry would be consistent with both wildcards
	matches, bc := Correct("AAAACCCCGGGGTTNN", testWhitelist)
	if matches != 0 || bc != "AAAACCCCGGGGTTNN" {
		t.Error("barcode with 2 wildcards must not be corrected", matches, bc)
	}

	matches, bc = Correct("NNNNNNNNNNNNNNNN", testWhitelist)
	if matches != 0 || bc != "NNNNNNNNNNNNNNNN" {
		t.Error("barcode with many wildcards must not be corrected", matches, bc)
	}
}

func TestCorrectExact(t *testing.T) {
	// no wildcard positions degenerates to an exact scan
	matches, bc := Correct("AAAACCCCGGGGTTTT", testWhitelist)
	if matches != 1 || bc != "AAAACCCCGGGGTTTT" {
		t.Error("exact barcode should match itself", matches, bc)
	}
}

func TestCorrectLengthMismatch(t *testing.T) {
	matches, bc := Correct("AAAACCCCGGGGTTTTN", testWhitelist)
	if matches != 0 || bc != "AAAACCCCGGGGTTTTN" {
		t.Error("barcode longer than whitelist entries must not match", matches, bc)
	}
}

func TestAllAcgt(t *testing.T) {
	if !AllAcgt("ACGTACGT") {
		t.Error("clean sequence reported as ambiguous")
	}
	if AllAcgt("ACGTNCGT") {
		t.Error("sequence with N reported as clean")
	}
	if AllAcgt("acgt") {
		t.Error("lowercase bases are not valid before normalization")
	}
}

func TestReadWhitelist(t *testing.T) {
	wl := ReadWhitelist("testdata/whitelist.txt")
	if len(wl) != 3 {
		t.Error("expected 3 barcodes after skipping comments, blanks, and duplicates, got", len(wl))
	}
	if !wl.Contains("AAAACCCCGGGGTTTT") || !wl.Contains("AAAACCCCGGGGTTTA") || !wl.Contains("TTTTGGGGCCCCAAAA") {
		t.Error("whitelist missing expected barcodes")
	}
}
