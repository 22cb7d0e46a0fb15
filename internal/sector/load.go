package sector

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// LoadSmechRows reads the SMECH sector mapping CSV at path. The first
// row (column headings) is skipped. Rows that fail shape validation are
// skipped with a warning; an unreadable file is fatal.
func LoadSmechRows(path string) ([]SmechRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sector: open smech sectors file %s", path)
	}
	defer f.Close()

	rows, err := readSmechRows(f)
	if err != nil {
		return nil, eris.Wrapf(err, "sector: parse %s", path)
	}
	return rows, nil
}

func readSmechRows(r io.Reader) ([]SmechRow, error) {
	log := zap.L().With(zap.String("table", "smech_sectors"))

	reader := newReader(r)
	rowNum := 0
	var out []SmechRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read record")
		}
		rowNum++
		if rowNum == 1 {
			// Column headings from the spreadsheet export.
			continue
		}

		row := SmechRow{
			SmechName: field(record, smechColName),
			SmechCode: field(record, smechColCode),
			NaceName:  field(record, smechColNaceName),
			Exio2Code: field(record, smechColExio2Code),
			Exio3Code: field(record, smechColExio3Code),
			BccCode:   field(record, smechColBccCode),
		}

		if row.SmechName == "" && row.SmechCode == "" {
			// Blank filler line, common in hand-edited sheets.
			continue
		}
		if !isCode(row.SmechCode) {
			log.Warn("skipping row: smech_code is not a well-formed code",
				zap.Int("row", rowNum),
				zap.String("smech_code", row.SmechCode),
				zap.String("smech_name", row.SmechName),
			)
			continue
		}
		if row.BccCode != "" && !isCode(row.BccCode) {
			log.Warn("skipping row: bcc_code is not a well-formed code",
				zap.Int("row", rowNum),
				zap.String("bcc_code", row.BccCode),
				zap.String("smech_name", row.SmechName),
			)
			continue
		}

		out = append(out, row)
	}
	return out, nil
}

// LoadBccRows reads the BCC sector CSV at path. Shape validation only
// applies to rows flagged for BCC use; the rest carry free-form notes.
func LoadBccRows(path string) ([]BccRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "sector: open bcc sectors file %s", path)
	}
	defer f.Close()

	rows, err := readBccRows(f)
	if err != nil {
		return nil, eris.Wrapf(err, "sector: parse %s", path)
	}
	return rows, nil
}

func readBccRows(r io.Reader) ([]BccRow, error) {
	log := zap.L().With(zap.String("table", "bcc_sectors"))

	reader := newReader(r)
	rowNum := 0
	var out []BccRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "read record")
		}
		rowNum++
		if rowNum == 1 {
			continue
		}

		row := BccRow{
			NaceCode:  field(record, bccColNaceCode),
			Exio3Name: field(record, bccColExio3Name),
			NaceName:  field(record, bccColNaceName),
			Notes:     field(record, bccColNotes),
			UseForBCC: parseUseFlag(field(record, bccColUseForBCC)),
			BccName:   field(record, bccColBccName),
		}

		if !row.UseForBCC {
			// Kept so the mapping builder sees the full table; only
			// flagged rows have a shape contract to enforce.
			out = append(out, row)
			continue
		}
		if !isCode(row.NaceCode) {
			log.Warn("skipping row: nace_code is not a well-formed code",
				zap.Int("row", rowNum),
				zap.String("nace_code", row.NaceCode),
			)
			continue
		}
		if row.BccName == "" || isDigits(row.BccName) {
			log.Warn("skipping row: bcc_name is expected to have text, not just digits",
				zap.Int("row", rowNum),
				zap.String("nace_code", row.NaceCode),
				zap.String("bcc_name", row.BccName),
			)
			continue
		}

		out = append(out, row)
	}
	return out, nil
}

// newReader configures a csv.Reader for hand-curated spreadsheet
// exports: tolerate stray quotes, ragged row lengths and leading space.
func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader
}
