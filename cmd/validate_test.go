package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/normative-io/smech-nace-mapping/internal/sector"
)

func TestValidateCmd_Metadata(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotNil(t, validateCmd.Flags().Lookup("smech_csv"))
	assert.NotNil(t, validateCmd.Flags().Lookup("bcc_csv"))
}

func TestValidateCmd_Run(t *testing.T) {
	writeFixtures(t)

	require.NoError(t, validateCmd.RunE(validateCmd, nil))
}

func TestValidateCmd_FlagsIndependentOfGenerate(t *testing.T) {
	writeFixtures(t)
	// A stale generate flag must not leak into validate's input paths.
	genSmechCSV = "does-not-exist.csv"

	require.NoError(t, validateCmd.RunE(validateCmd, nil))
}

func TestFormatValidateSummary(t *testing.T) {
	m, err := sector.BuildMapping(
		[]sector.SmechRow{
			{SmechCode: "1", BccCode: "47"},
			{SmechCode: "2", BccCode: ""},
			{SmechCode: "3", BccCode: "99"},
		},
		[]sector.BccRow{{NaceCode: "47", UseForBCC: true, BccName: "Retail Trade"}},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	formatValidateSummary(&buf, m)
	out := buf.String()

	assert.Contains(t, out, "canonical sectors")
	assert.Contains(t, out, "smech mappings")
	assert.Contains(t, out, "3 -> 99")
}
