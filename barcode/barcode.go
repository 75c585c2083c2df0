// Package barcode provides cell barcode whitelist loading and approximate
// correction of observed barcodes against the whitelist.
package barcode

import (
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Whitelist is the set of valid cell barcodes for a run. It must be fully
// loaded before use and never modified afterwards, which makes it safe to
// share between goroutines.
type Whitelist map[string]bool

// ReadWhitelist reads a whitelist file with one barcode per line.
// Blank lines and lines beginning with '#' are ignored. Duplicate
// barcodes are collapsed.
func ReadWhitelist(filename string) Whitelist {
	wl := make(Whitelist)
	file := fileio.EasyOpen(filename)

	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		wl[strings.ToUpper(line)] = true
	}

	err := file.Close()
	exception.PanicOnErr(err)
	return wl
}

// Contains reports whether bc is an exact member of the whitelist.
func (wl Whitelist) Contains(bc string) bool {
	return wl[bc]
}

// AllAcgt reports whether s consists only of unambiguous bases.
func AllAcgt(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAcgt(s[i]) {
			return false
		}
	}
	return true
}

func isAcgt(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// Correct resolves an observed barcode that may contain ambiguous base
// calls to a whitelist entry within a single substitution. Positions with
// a valid base must match the whitelist entry exactly; a single non-ACGT
// position matches any base.
//
// The returned count is the number of whitelist entries consistent with
// the observed barcode. When the count is exactly 1, the returned string
// is the matching whitelist entry; otherwise the observed barcode is
// returned unchanged so the caller always has a definite barcode string.
// Barcodes with more than one non-ACGT position are never searched and
// return (0, observed): a single wildcard position cannot disambiguate
// them, so they are treated as unmatchable.
//
// Correct has no side effects and is safe for concurrent use over a
// shared whitelist. Each call scans the full whitelist.
func Correct(observed string, wl Whitelist) (matches int, bc string) {
	wildcard := -1
	var invalid int
	for i := 0; i < len(observed); i++ {
		if !isAcgt(observed[i]) {
			invalid++
			wildcard = i
		}
	}
	if invalid > 1 {
		return 0, observed
	}

	var hit string
	for entry := range wl {
		if matchExceptWildcard(observed, entry, wildcard) {
			matches++
			hit = entry
		}
	}

	if matches == 1 {
		return 1, hit
	}
	return matches, observed
}

// matchExceptWildcard reports whether observed matches entry at every
// position except wildcard. A wildcard of -1 requires an exact match.
func matchExceptWildcard(observed, entry string, wildcard int) bool {
	if len(observed) != len(entry) {
		return false
	}
	for i := 0; i < len(observed); i++ {
		if i == wildcard {
			continue
		}
		if observed[i] != entry[i] {
			return false
		}
	}
	return true
}
