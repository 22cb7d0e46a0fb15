// Package sector loads the curated taxonomy spreadsheets and builds the
// SMECH → NACE mapping consumed by the code generator.
package sector

import (
	"strings"
)

// Column positions in data/smech_sectors.csv. Header text is ignored;
// only position matters. Also see README.md for the columns we expect.
const (
	smechColName = iota
	smechColCode
	smechColNaceName
	smechColExio2Code
	smechColExio3Code
	smechColBccCode
)

// Column positions in data/bcc_sectors.csv. Columns 1 and 2 hold
// spreadsheet bookkeeping and are ignored.
const (
	bccColNaceCode = iota
	_
	_
	bccColExio3Name
	bccColNaceName
	bccColNotes
	bccColUseForBCC
	bccColBccName
)

// SmechRow is one parsed row of the SMECH sector mapping table.
type SmechRow struct {
	SmechName string
	SmechCode string
	NaceName  string
	Exio2Code string
	Exio3Code string
	BccCode   string
}

// BccRow is one parsed row of the BCC sector table.
type BccRow struct {
	NaceCode  string
	Exio3Name string
	NaceName  string
	Notes     string
	UseForBCC bool
	BccName   string
}

// isCode reports whether s is a well-formed sector code: non-empty,
// ASCII letters and digits only. NACE and SMECH codes are plain
// digits, ISIC-style codes carry a leading section letter.
func isCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseUseFlag interprets the "use for BCC" spreadsheet column. The
// curated sheet marks included rows with "x", "y" or "yes".
func parseUseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "y", "yes":
		return true
	}
	return false
}

// field returns the trimmed value of column idx, or "" when the record
// is too short.
func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
