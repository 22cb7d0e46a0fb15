package sector

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Sector is one canonical BCC sector: a NACE code and its display name.
type Sector struct {
	Nace string
	Name string
}

// SmechEntry associates an SME Climate Hub sector code with its
// resolved NACE code.
type SmechEntry struct {
	SmechCode string
	NaceCode  string
}

// Mapping is the joined result of the two input tables. Both slices
// preserve input row order so regenerated output diffs stay stable.
type Mapping struct {
	Sectors []Sector
	Smech   []SmechEntry

	// SkippedBlank counts SMECH rows dropped for a blank BCC code.
	SkippedBlank int
	// Unresolved lists SMECH rows excluded because their BCC code is
	// not in the canonical sector list.
	Unresolved []SmechEntry

	byNace map[string]Sector
}

// SectorByNace looks up a canonical sector by NACE code.
func (m *Mapping) SectorByNace(code string) (Sector, bool) {
	s, ok := m.byNace[code]
	return s, ok
}

// BuildMapping joins the SMECH table against the canonical BCC sector
// list. Duplicate canonical codes and conflicting duplicate SMECH
// mappings abort the run; a SMECH row whose BCC code is blank or
// unknown is excluded with a warning.
func BuildMapping(smech []SmechRow, bcc []BccRow) (*Mapping, error) {
	log := zap.L()

	m := &Mapping{byNace: make(map[string]Sector)}

	for _, row := range bcc {
		if !row.UseForBCC {
			continue
		}
		if _, dup := m.byNace[row.NaceCode]; dup {
			return nil, eris.Errorf("sector: nace_code is expected to be unique but got a duplicate of %q. Mistake?", row.NaceCode)
		}
		s := Sector{Nace: row.NaceCode, Name: row.BccName}
		m.byNace[row.NaceCode] = s
		m.Sectors = append(m.Sectors, s)
	}

	seen := make(map[string]string, len(smech))
	for _, row := range smech {
		if row.BccCode == "" {
			log.Warn("skipping mapping: no BCC code",
				zap.String("smech_code", row.SmechCode),
				zap.String("smech_name", row.SmechName),
			)
			m.SkippedBlank++
			continue
		}
		if prev, ok := seen[row.SmechCode]; ok {
			if prev != row.BccCode {
				return nil, eris.Errorf("sector: smech_code %s has multiple mappings (%s and %s)", row.SmechCode, prev, row.BccCode)
			}
			continue
		}
		if _, ok := m.byNace[row.BccCode]; !ok {
			log.Warn("excluding mapping: BCC code not in the canonical sector list",
				zap.String("smech_code", row.SmechCode),
				zap.String("smech_name", row.SmechName),
				zap.String("bcc_code", row.BccCode),
			)
			m.Unresolved = append(m.Unresolved, SmechEntry{SmechCode: row.SmechCode, NaceCode: row.BccCode})
			continue
		}

		log.Info("mapping code",
			zap.String("smech_code", row.SmechCode),
			zap.String("smech_name", row.SmechName),
			zap.String("bcc_code", row.BccCode),
		)
		seen[row.SmechCode] = row.BccCode
		m.Smech = append(m.Smech, SmechEntry{SmechCode: row.SmechCode, NaceCode: row.BccCode})
	}

	return m, nil
}
