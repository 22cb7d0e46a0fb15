package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/normative-io/smech-nace-mapping/internal/sector"
)

var (
	valSmechCSV string
	valBccCSV   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the sector spreadsheets without writing output",
	Long:  "Loads both spreadsheets, runs shape and referential-integrity checks and prints a summary. Nothing is written.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := buildMapping(
			flagOr(valSmechCSV, cfg.Inputs.SmechCSV),
			flagOr(valBccCSV, cfg.Inputs.BccCSV),
		)
		if err != nil {
			return err
		}

		formatValidateSummary(os.Stdout, m)

		if len(m.Unresolved) > 0 || m.SkippedBlank > 0 {
			zap.L().Warn("validation finished with excluded rows",
				zap.Int("unresolved", len(m.Unresolved)),
				zap.Int("blank_bcc_code", m.SkippedBlank),
			)
		}
		return nil
	},
}

// formatValidateSummary writes a tabular summary of the join to w.
func formatValidateSummary(out io.Writer, m *sector.Mapping) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CHECK\tRESULT")
	_, _ = fmt.Fprintln(w, "-----\t------")
	_, _ = fmt.Fprintf(w, "canonical sectors\t%d\n", len(m.Sectors))
	_, _ = fmt.Fprintf(w, "smech mappings\t%d\n", len(m.Smech))
	_, _ = fmt.Fprintf(w, "smech rows without BCC code\t%d\n", m.SkippedBlank)
	_, _ = fmt.Fprintf(w, "smech rows with unknown BCC code\t%d\n", len(m.Unresolved))
	for _, e := range m.Unresolved {
		_, _ = fmt.Fprintf(w, "  unresolved\t%s -> %s\n", e.SmechCode, e.NaceCode)
	}
	_ = w.Flush()
}

func init() {
	validateCmd.Flags().StringVar(&valSmechCSV, "smech_csv", "", "path to the SMECH sectors CSV (default data/smech_sectors.csv)")
	validateCmd.Flags().StringVar(&valBccCSV, "bcc_csv", "", "path to the BCC sectors CSV (default data/bcc_sectors.csv)")
	rootCmd.AddCommand(validateCmd)
}
