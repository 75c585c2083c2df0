package reads

import (
	"errors"
	"strings"

	"github.com/elowsky/screads/barcode"
)

// Field layout of a 10x 5' read 1: cell barcode, then UMI, then (for V(D)J
// libraries) the template switch oligo, then the insert.
const (
	BarcodeEnd = 16
	UmiEnd     = 26
	SwitchEnd  = 39
)

// Minimum sequence lengths used to recognize each library layout.
const (
	vdjMinLen   = 150
	gexRead2Min = 98
	gexRead1Min = 26
)

// Library names as stored in the read documents.
const (
	LibraryVdj = "vdj"
	LibraryGex = "gex"
)

var (
	// ErrReadNum reports an identifier line whose description does not
	// carry a parseable read-role number.
	ErrReadNum = errors.New("cannot parse read number from description")
	// ErrUnclassified reports a read whose length and role match no
	// known library layout.
	ErrUnclassified = errors.New("read length and role match no known library")
)

// Record is the document emitted for one classified read. Records are
// never modified after construction.
type Record struct {
	Name           string `bson:"name"`
	Library        string `bson:"library"`
	ReadNum        int    `bson:"read_num"`
	Barcode        string `bson:"barcode,omitempty"`
	BarcodeMatches int    `bson:"barcode_matches"`
	Corrected      bool   `bson:"corrected,omitempty"`
	Umi            string `bson:"umi,omitempty"`
	SwitchOligo    string `bson:"switch_oligo,omitempty"`
	Insert         string `bson:"insert,omitempty"`
}

// Classify determines the library layout of r from its length and read
// number and extracts the fixed-offset fields. The sequence is uppercased
// before any offsets are taken. Reads that carry a cell barcode have it
// checked against wl: clean barcodes by direct membership, barcodes with
// ambiguous bases through barcode.Correct. The stored barcode is always a
// definite string, either the corrected whitelist entry or the raw
// substring. The classification rules are ordered; the first match wins.
func Classify(r Read, wl barcode.Whitelist) (Record, error) {
	num, ok := r.ReadNum()
	if !ok {
		return Record{}, ErrReadNum
	}
	seq := strings.ToUpper(r.Seq)

	rec := Record{Name: r.Name, ReadNum: num}
	switch {
	case len(seq) >= vdjMinLen && num == 1:
		rec.Library = LibraryVdj
		rec.Umi = seq[BarcodeEnd:UmiEnd]
		rec.SwitchOligo = seq[UmiEnd:SwitchEnd]
		rec.Insert = seq[SwitchEnd:]
		setBarcode(&rec, seq[:BarcodeEnd], wl)
	case len(seq) >= vdjMinLen && num == 2:
		rec.Library = LibraryVdj
		rec.Insert = seq
	case len(seq) >= gexRead2Min && num == 2:
		rec.Library = LibraryGex
		rec.Insert = seq
	case len(seq) >= gexRead1Min && num == 1:
		rec.Library = LibraryGex
		rec.Umi = seq[BarcodeEnd:]
		setBarcode(&rec, seq[:BarcodeEnd], wl)
	default:
		return Record{}, ErrUnclassified
	}
	return rec, nil
}

// setBarcode fills the barcode fields of rec from the raw barcode
// substring. Clean barcodes are looked up directly; barcodes with
// ambiguous bases go through whitelist correction.
func setBarcode(rec *Record, raw string, wl barcode.Whitelist) {
	if barcode.AllAcgt(raw) {
		rec.Barcode = raw
		if wl.Contains(raw) {
			rec.BarcodeMatches = 1
		}
		return
	}
	rec.BarcodeMatches, rec.Barcode = barcode.Correct(raw, wl)
	rec.Corrected = rec.BarcodeMatches == 1
}
