package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/normative-io/smech-nace-mapping/internal/codegen"
	"github.com/normative-io/smech-nace-mapping/internal/prettier"
	"github.com/normative-io/smech-nace-mapping/internal/sector"
)

var (
	genSmechCSV        string
	genBccCSV          string
	genOutputBenchmark string
	genOutputBCC       string

	genPrettier          bool
	genPrettierCmd       string
	genPrettierConfig    string
	genPrettierConfigBCC string
	genPrettierConfigBM  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the sector data modules",
	Long:  "Loads the sector spreadsheets, joins SMECH codes to the canonical BCC sector list and writes the generated naces.ts and sectors.data.ts modules.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		m, err := buildMapping(
			flagOr(genSmechCSV, cfg.Inputs.SmechCSV),
			flagOr(genBccCSV, cfg.Inputs.BccCSV),
		)
		if err != nil {
			return err
		}

		benchmarkCode, err := codegen.RenderBenchmark(m)
		if err != nil {
			return eris.Wrap(err, "generate: render benchmark")
		}
		bccCode, err := codegen.RenderBCC(m)
		if err != nil {
			return eris.Wrap(err, "generate: render bcc")
		}

		// An explicitly set flag wins both ways over the config file.
		prettierOn := cfg.Prettier.Enabled
		if cmd.Flags().Changed("prettier") {
			prettierOn = genPrettier
		}
		if prettierOn {
			f := prettier.New(flagOr(genPrettierCmd, cfg.Prettier.Cmd))
			benchmarkCode = formatOrRaw(ctx, f, benchmarkCode, codegen.BenchmarkFileName,
				firstOf(genPrettierConfigBM, cfg.Prettier.ConfigBenchmark, genPrettierConfig, cfg.Prettier.Config))
			bccCode = formatOrRaw(ctx, f, bccCode, codegen.BCCFileName,
				firstOf(genPrettierConfigBCC, cfg.Prettier.ConfigBCC, genPrettierConfig, cfg.Prettier.Config))
		}

		outBenchmark := flagOr(genOutputBenchmark, cfg.Output.Benchmark)
		outBCC := flagOr(genOutputBCC, cfg.Output.BCC)

		if err := writeOutput(outBenchmark, benchmarkCode); err != nil {
			return err
		}
		if err := writeOutput(outBCC, bccCode); err != nil {
			return err
		}

		zap.L().Info("generate complete",
			zap.Int("sectors", len(m.Sectors)),
			zap.Int("smech_mappings", len(m.Smech)),
			zap.String("benchmark", outBenchmark),
			zap.String("bcc", outBCC),
		)
		return nil
	},
}

// buildMapping runs the load and join stages shared by generate and
// validate.
func buildMapping(smechPath, bccPath string) (*sector.Mapping, error) {
	smechRows, err := sector.LoadSmechRows(smechPath)
	if err != nil {
		return nil, err
	}
	bccRows, err := sector.LoadBccRows(bccPath)
	if err != nil {
		return nil, err
	}
	return sector.BuildMapping(smechRows, bccRows)
}

// formatOrRaw runs the formatter and falls back to the unformatted text
// when it fails. Formatting is cosmetic, never correctness.
func formatOrRaw(ctx context.Context, f *prettier.Formatter, code, filename, configPath string) string {
	formatted, err := f.Format(ctx, code, filename, configPath)
	if err != nil {
		zap.L().Warn("prettier failed, writing unformatted output",
			zap.String("file", filename),
			zap.Error(err),
		)
		return code
	}
	return formatted
}

func writeOutput(path, code string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrapf(err, "generate: create output dir %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		return eris.Wrapf(err, "generate: write %s", path)
	}
	return nil
}

// flagOr prefers an explicitly set flag value over the configured one.
func flagOr(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}

// firstOf returns the first non-empty value.
func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	generateCmd.Flags().StringVar(&genSmechCSV, "smech_csv", "", "path to the SMECH sectors CSV (default data/smech_sectors.csv)")
	generateCmd.Flags().StringVar(&genBccCSV, "bcc_csv", "", "path to the BCC sectors CSV (default data/bcc_sectors.csv)")
	generateCmd.Flags().StringVar(&genOutputBenchmark, "output_benchmark", "", "output path for the generated naces.ts file (default dist/naces.ts)")
	generateCmd.Flags().StringVar(&genOutputBCC, "output_bcc", "", "output path for the generated sectors.data.ts file (default dist/sectors.data.ts)")
	generateCmd.Flags().BoolVar(&genPrettier, "prettier", false, "run Prettier on the output")
	generateCmd.Flags().StringVar(&genPrettierCmd, "prettier_cmd", "", "command to run Prettier (default \"npx prettier\")")
	generateCmd.Flags().StringVar(&genPrettierConfig, "prettier_config", "", "location of a shared Prettier config file")
	generateCmd.Flags().StringVar(&genPrettierConfigBCC, "prettier_config_bcc", "", "Prettier config for the BCC output")
	generateCmd.Flags().StringVar(&genPrettierConfigBM, "prettier_config_benchmark", "", "Prettier config for the benchmark output")
	rootCmd.AddCommand(generateCmd)
}
