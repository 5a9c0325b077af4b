// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the takken-extractor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/takken-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the takken-extractor CLI.
var rootCmd = &cobra.Command{
	Use:   "takken-extractor",
	Short: "Extract structured exam questions from Takken workbook PDFs",
	Long: `takken-extractor converts 宅建 (real estate license exam) workbook PDFs
into structured question records: hierarchy labels, question number, exam
year, body, explanation, and the 〇/× answer.

Each pipeline stage is a subcommand: extract pulls text from a PDF and
writes CSV/XLSX/YAML records; bank indexes record files into a local
SQLite question bank and serves queries over it.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./takken-extractor.yaml or ~/.config/takken-extractor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("takken-extractor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "takken-extractor"))
		}
	}

	viper.SetEnvPrefix("TAKKEN_EXTRACTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from the config file.
// Flags override individual fields in the subcommands that use them.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	cfg.Source.Backends = viper.GetStringSlice("source.backends")
	cfg.Source.OCRLanguage = viper.GetString("source.ocr_language")
	cfg.Source.MinTextLength = viper.GetInt("source.min_text_length")
	cfg.Parser.DefaultYear = viper.GetString("parser.default_year")
	cfg.Parser.DefaultAnswer = viper.GetString("parser.default_answer")
	cfg.Output.Dir = viper.GetString("output.dir")
	cfg.Bank.BankDir = viper.GetString("bank.bank_dir")
	cfg.Bank.MaxResults = viper.GetInt("bank.max_results")
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
