// Package reads parses raw FASTQ records and classifies them into
// single-cell library layouts, extracting barcode, UMI, and insert fields.
package reads

import (
	"log"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/fileio"
)

// Read is one raw FASTQ record. Name is the first whitespace-delimited
// token of the identifier line without the leading '@'; Desc is the
// remainder of the identifier line.
type Read struct {
	Name string
	Desc string
	Seq  string
	Qual string
}

// ReadNum parses the read-role number from the description segment of the
// identifier line. The description is colon-delimited and its second
// field holds the read number, e.g. "VH00111:1:N:0:ACTG" is read 1.
// ok is false when the description is missing or malformed.
func (r Read) ReadNum() (num int, ok bool) {
	fields := strings.Split(r.Desc, ":")
	if len(fields) < 2 {
		return 0, false
	}
	num, err := strconv.Atoi(fields[1])
	if err != nil || (num != 1 && num != 2) {
		return 0, false
	}
	return num, true
}

// NextRead returns the next well-formed FASTQ record from file.
// Malformed records (identifier line not starting with '@', missing '+'
// separator, or sequence/quality length mismatch) are skipped with a
// warning and parsing continues with the next record. done is true once
// the file is exhausted.
func NextRead(file *fileio.EasyReader) (r Read, done bool) {
	var id, seq, sep, qual string
	for {
		id, done = fileio.EasyNextLine(file)
		if done {
			return Read{}, true
		}
		if !strings.HasPrefix(id, "@") {
			log.Printf("WARNING: skipping line, expected '@' identifier: %s\n", id)
			continue
		}

		seq, done = fileio.EasyNextLine(file)
		if !done {
			sep, done = fileio.EasyNextLine(file)
		}
		if !done {
			qual, done = fileio.EasyNextLine(file)
		}
		if done {
			log.Printf("WARNING: truncated FASTQ record at end of file: %s\n", id)
			return Read{}, true
		}

		if !strings.HasPrefix(sep, "+") {
			log.Printf("WARNING: skipping record with missing '+' separator: %s\n", id)
			continue
		}
		if len(seq) != len(qual) {
			log.Printf("WARNING: skipping record with sequence/quality length mismatch: %s\n", id)
			continue
		}

		name, desc, _ := strings.Cut(id[1:], " ")
		return Read{Name: name, Desc: desc, Seq: seq, Qual: qual}, false
	}
}
