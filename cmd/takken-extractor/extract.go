// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/takken-extractor/internal/export"
	"github.com/pdiddy/takken-extractor/internal/parser"
	"github.com/pdiddy/takken-extractor/internal/textsource"
	"github.com/pdiddy/takken-extractor/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract question records from a workbook PDF",
	Long: `Extract pulls plain text from a workbook PDF, trying native extraction
first and falling back to pdftotext and OCR, then parses the text into
structured question records and writes them as CSV (always), plus an
Excel workbook and a YAML record file on request.

The YAML record file is the input format for the bank store subcommand.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	pdfPath := args[0]
	if _, err := os.Stat(pdfPath); err != nil {
		return fmt.Errorf("input PDF %s: %w", pdfPath, err)
	}

	cfg := pipelineConfig()
	applyExtractFlags(cmd, &cfg)

	chain, err := textsource.NewChain(cfg.Source)
	if err != nil {
		return err
	}

	raw, err := chain.Extract(pdfPath, os.Stderr)
	if err != nil {
		return err
	}

	text := parser.Clean(raw)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no usable text in %s after cleaning", pdfPath)
	}

	records := parser.Parse(text, cfg.Parser)
	if len(records) == 0 {
		return fmt.Errorf("no questions recognized in %s", pdfPath)
	}

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = filepath.Dir(pdfPath)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	csvPath := filepath.Join(outDir, stem+".csv")
	if err := export.WriteCSV(records, csvPath); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "wrote:", csvPath)

	if cfg.Output.XLSX {
		xlsxPath := filepath.Join(outDir, stem+".xlsx")
		if err := export.WriteXLSX(records, xlsxPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "wrote:", xlsxPath)
	}

	if cfg.Output.YAML {
		yamlPath := filepath.Join(outDir, stem+"-questions.yaml")
		result := types.ParseResult{SourceID: stem, Questions: records}
		if err := export.WriteYAML(result, yamlPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "wrote:", yamlPath)
	}

	export.WriteSummary(os.Stdout, export.Summarize(records))
	return nil
}

func applyExtractFlags(cmd *cobra.Command, cfg *types.PipelineConfig) {
	if cmd.Flags().Changed("backends") {
		cfg.Source.Backends, _ = cmd.Flags().GetStringSlice("backends")
	}
	if cmd.Flags().Changed("ocr-lang") {
		cfg.Source.OCRLanguage, _ = cmd.Flags().GetString("ocr-lang")
	}
	if cmd.Flags().Changed("default-year") {
		cfg.Parser.DefaultYear, _ = cmd.Flags().GetString("default-year")
	}
	if cmd.Flags().Changed("default-answer") {
		cfg.Parser.DefaultAnswer, _ = cmd.Flags().GetString("default-answer")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir, _ = cmd.Flags().GetString("output-dir")
	}
	if xlsx, _ := cmd.Flags().GetBool("xlsx"); xlsx {
		cfg.Output.XLSX = true
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		cfg.Output.YAML = true
	}
}

func init() {
	extractCmd.Flags().StringSlice("backends", nil, "extraction backends in fallback order: native, pdftotext, ocr")
	extractCmd.Flags().String("ocr-lang", "", "tesseract language for the OCR backend (default jpn)")
	extractCmd.Flags().String("default-year", "", "era tag for questions with no year line (default R6)")
	extractCmd.Flags().String("default-answer", "", "answer symbol for questions with no answer line (default ×)")
	extractCmd.Flags().String("output-dir", "", "output directory (default: alongside the input PDF)")
	extractCmd.Flags().Bool("xlsx", false, "also write an Excel workbook")
	extractCmd.Flags().Bool("yaml", false, "also write a YAML record file for bank store")

	rootCmd.AddCommand(extractCmd)
}
