// Package codegen renders the joined sector mapping into the generated
// TypeScript data modules consumed by the two frontends.
package codegen

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"
	"unicode/utf16"

	"github.com/rotisserie/eris"

	"github.com/normative-io/smech-nace-mapping/internal/sector"
)

// Output file names, fixed by the consuming frontend codebases.
const (
	BenchmarkFileName = "naces.ts"
	BCCFileName       = "sectors.data.ts"
)

var benchmarkTmpl = template.Must(template.New(BenchmarkFileName).Parse(`// GENERATED FILE. DO NOT EDIT BY HAND.
//
// See repository smech-nace-mapping

export interface NaceInfo {
  name: string;
  nace: string;
}

export const SECTOR_LIST: NaceInfo[] = {{.SectorList}};

export type SMECHNaceInfo = { [key: string]: string };

export const SMECH_NACE_MAPPING: SMECHNaceInfo = {{.SmechMapping}};
`))

var bccTmpl = template.Must(template.New(BCCFileName).Parse(`// GENERATED FILE. DO NOT EDIT BY HAND.
//
// See repository smech-nace-mapping

import { Sector } from './data.model';

export const SECTORS: Sector[] = {{.SectorArray}};
`))

// naceInfo is the JSON shape shared by both outputs. Field order is the
// emitted key order.
type naceInfo struct {
	Name string `json:"name"`
	Nace string `json:"nace"`
}

// RenderBenchmark produces the naces.ts module: the canonical sector
// list plus the SMECH → NACE mapping object. Output is deterministic
// for unchanged input.
func RenderBenchmark(m *sector.Mapping) (string, error) {
	sectorList, err := asciiJSON(sectorInfos(m))
	if err != nil {
		return "", eris.Wrap(err, "codegen: encode sector list")
	}
	smechMapping, err := smechObject(m)
	if err != nil {
		return "", eris.Wrap(err, "codegen: encode smech mapping")
	}

	var buf bytes.Buffer
	err = benchmarkTmpl.Execute(&buf, struct {
		SectorList   string
		SmechMapping string
	}{sectorList, smechMapping})
	if err != nil {
		return "", eris.Wrap(err, "codegen: render benchmark module")
	}
	return buf.String(), nil
}

// RenderBCC produces the sectors.data.ts module for the Business Carbon
// Calculator. The sector array carries a trailing "Not listed" sentinel
// the frontend shows as the fallback choice.
func RenderBCC(m *sector.Mapping) (string, error) {
	infos := append(sectorInfos(m), naceInfo{Name: "Not listed", Nace: ""})
	sectorArray, err := asciiJSON(infos)
	if err != nil {
		return "", eris.Wrap(err, "codegen: encode sector array")
	}

	var buf bytes.Buffer
	err = bccTmpl.Execute(&buf, struct {
		SectorArray string
	}{sectorArray})
	if err != nil {
		return "", eris.Wrap(err, "codegen: render bcc module")
	}
	return buf.String(), nil
}

func sectorInfos(m *sector.Mapping) []naceInfo {
	infos := make([]naceInfo, 0, len(m.Sectors))
	for _, s := range m.Sectors {
		infos = append(infos, naceInfo{Name: s.Name, Nace: s.Nace})
	}
	return infos
}

// smechObject builds the SMECH_NACE_MAPPING object literal by hand so
// entries keep input row order (encoding/json sorts map keys).
func smechObject(m *sector.Mapping) (string, error) {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range m.Smech {
		if i > 0 {
			b.WriteString(",")
		}
		k, err := asciiJSON(e.SmechCode)
		if err != nil {
			return "", err
		}
		v, err := asciiJSON(e.NaceCode)
		if err != nil {
			return "", err
		}
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(v)
	}
	b.WriteString("}")
	return b.String(), nil
}

// asciiJSON marshals v compactly with all non-ASCII runes escaped, so
// the generated files survive frontends with mis-declared encodings.
func asciiJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", eris.Wrap(err, "codegen: marshal")
	}
	return escapeNonASCII(strings.TrimSuffix(buf.String(), "\n")), nil
}

func escapeNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			writeEscaped(&b, hi)
			writeEscaped(&b, lo)
		default:
			writeEscaped(&b, r)
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func writeEscaped(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(r>>shift)&0xf])
	}
}
