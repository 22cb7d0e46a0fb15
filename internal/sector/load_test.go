package sector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smechHeader = "SMECH name,SMECH code,NACE name,EXIO2,EXIO3,BCC code\n"

func TestReadSmechRows(t *testing.T) {
	csv := smechHeader +
		"Retail,1,Retail trade,52,47,47\n" +
		"Farming,2,Crop production,1,1,1\n"

	rows, err := readSmechRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, SmechRow{
		SmechName: "Retail",
		SmechCode: "1",
		NaceName:  "Retail trade",
		Exio2Code: "52",
		Exio3Code: "47",
		BccCode:   "47",
	}, rows[0])
	assert.Equal(t, "2", rows[1].SmechCode)
}

func TestReadSmechRows_SkipsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want int
	}{
		{"isic-style codes are well-formed", "Retail,R1,Retail trade,52,47,G47\n", 1},
		{"smech code with punctuation", "Retail,R-1,Retail trade,52,47,47\n", 0},
		{"bcc code with spaces", "Retail,1,Retail trade,52,47,G 47\n", 0},
		{"blank bcc code kept for later reporting", "Retail,1,Retail trade,52,47,\n", 1},
		{"blank filler line", ",,,,,\n", 0},
		{"short record", "stray note\n", 0},
		{"extra columns ignored", "Retail,1,Retail trade,52,47,47,comment,more\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := readSmechRows(strings.NewReader(smechHeader + tt.row))
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
		})
	}
}

const bccHeader = "NACE,x,y,EXIO3 name,NACE name,Notes,Use,BCC name\n"

func TestReadBccRows(t *testing.T) {
	csv := bccHeader +
		"47,a,b,Retail trade services,Retail trade,,x,Retail Trade\n" +
		"1,a,b,Crops,Crop production,skip me,,Farming\n" +
		"10,a,b,Food,Food manufacture,,yes,Food Production\n"

	rows, err := readBccRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, BccRow{
		NaceCode:  "47",
		Exio3Name: "Retail trade services",
		NaceName:  "Retail trade",
		UseForBCC: true,
		BccName:   "Retail Trade",
	}, rows[0])
	assert.False(t, rows[1].UseForBCC)
	assert.True(t, rows[2].UseForBCC)
}

func TestReadBccRows_SkipsMalformedFlaggedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want int
	}{
		{"isic-style code is well-formed", "G47,a,b,Retail,Retail trade,,x,Retail Trade\n", 1},
		{"nace code with punctuation", "47.1,a,b,Retail,Retail trade,,x,Retail Trade\n", 0},
		{"digits-only display name", "47,a,b,Retail,Retail trade,,x,47\n", 0},
		{"blank display name", "47,a,b,Retail,Retail trade,,x,\n", 0},
		{"unflagged row has no shape contract", "47.1,a,b,Retail,Retail trade,,,\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := readBccRows(strings.NewReader(bccHeader + tt.row))
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
		})
	}
}

func TestParseUseFlag(t *testing.T) {
	for _, truthy := range []string{"x", "X", "y", "Y", "yes", "Yes", " x "} {
		assert.True(t, parseUseFlag(truthy), "value: %q", truthy)
	}
	for _, falsy := range []string{"", "no", "n", "0", "true", "maybe"} {
		assert.False(t, parseUseFlag(falsy), "value: %q", falsy)
	}
}

func TestLoadSmechRows_MissingFile(t *testing.T) {
	_, err := LoadSmechRows(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestLoadBccRows_MissingFile(t *testing.T) {
	_, err := LoadBccRows(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestLoadSmechRows_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smech_sectors.csv")
	require.NoError(t, os.WriteFile(path, []byte(smechHeader+"Retail,1,Retail trade,52,47,47\n"), 0o644))

	rows, err := LoadSmechRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "47", rows[0].BccCode)
}
