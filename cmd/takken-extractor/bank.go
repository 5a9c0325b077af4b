// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/takken-extractor/internal/bank"
	"github.com/pdiddy/takken-extractor/pkg/types"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the question bank (store, retrieve, stats)",
	Long: `Bank manages a local SQLite question bank built from extracted record
files. Use subcommands to index records, query them, or view statistics.`,
}

// --- store subcommand ---

var bankStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Ingest question record files into the bank",
	Long: `Store reads *-questions.yaml files from <bank-dir>/records/, ingests
them into a SQLite database with FTS5 indexing, and skips unchanged
files on subsequent runs.`,
	RunE: runBankStore,
}

func runBankStore(cmd *cobra.Command, args []string) error {
	store, err := openBank(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Ingest(context.Background(), os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d record file(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- retrieve subcommand ---

var bankRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the bank with full-text search and filters",
	Long: `Retrieve searches the question bank using FTS5 full-text search over
bodies and explanations, structured filters (major hierarchy, year,
answer), or a combination of both.`,
	RunE: runBankRetrieve,
}

func runBankRetrieve(cmd *cobra.Command, args []string) error {
	opts := bankQueryOpts(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --major, --year, or --answer")
	}

	store, err := openBank(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []bank.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%d. [%s] 問%s (%s) %s\n", i+1, r.Answer, r.Number, r.Year, r.Body)
		if r.Major != "" {
			fmt.Fprintf(os.Stdout, "   %s", r.Major)
			if r.Section != "" {
				fmt.Fprintf(os.Stdout, " / %s", r.Section)
			}
			fmt.Fprintln(os.Stdout)
		}
		if r.Explanation != "" {
			fmt.Fprintf(os.Stdout, "   解説: %s\n", r.Explanation)
		}
		fmt.Fprintf(os.Stdout, "   出典: %s\n", r.DocID)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- stats subcommand ---

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank statistics",
	RunE:  runBankStats,
}

func runBankStats(cmd *cobra.Command, args []string) error {
	store, err := openBank(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("教材数: %d\n", st.Documents)
	fmt.Printf("問題数: %d問\n", st.Questions)
	fmt.Printf("正解問題: %d\n", st.Correct)
	fmt.Printf("不正解問題: %d\n", st.Wrong)

	if len(st.ByMajor) > 0 {
		fmt.Println("\nセクション別問題数:")
		for _, mc := range st.ByMajor {
			label := mc.Major
			if label == "" {
				label = "(未分類)"
			}
			fmt.Printf("  %s: %d問\n", label, mc.Count)
		}
	}
	return nil
}

// --- shared helpers ---

func openBank(cmd *cobra.Command) (*bank.Store, error) {
	cfg := pipelineConfig().Bank
	if cmd.Flags().Changed("bank-dir") {
		cfg.BankDir, _ = cmd.Flags().GetString("bank-dir")
	}
	if cfg.BankDir == "" {
		cfg.BankDir = "bank"
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.MaxResults = maxResults
	}
	return bank.NewStore(cfg)
}

func bankQueryOpts(cmd *cobra.Command, args []string) bank.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	major, _ := cmd.Flags().GetString("major")
	year, _ := cmd.Flags().GetString("year")
	answer, _ := cmd.Flags().GetString("answer")
	limit, _ := cmd.Flags().GetInt("limit")

	if answer == "○" {
		answer = types.AnswerCorrect
	}

	return bank.QueryOptions{
		Query:      queryText,
		Major:      major,
		Year:       year,
		Answer:     answer,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	bankCmd.PersistentFlags().String("bank-dir", "bank", "base directory for the bank (contains records/, index/)")
	bankCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Retrieve flags.
	bankRetrieveCmd.Flags().String("query", "", "full-text search query")
	bankRetrieveCmd.Flags().String("major", "", "filter by top hierarchy label")
	bankRetrieveCmd.Flags().String("year", "", "filter by era tag, e.g. R3 or H25")
	bankRetrieveCmd.Flags().String("answer", "", "filter by answer symbol: 〇 or ×")
	bankRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	bankRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Wire subcommands.
	bankCmd.AddCommand(bankStoreCmd)
	bankCmd.AddCommand(bankRetrieveCmd)
	bankCmd.AddCommand(bankStatsCmd)

	rootCmd.AddCommand(bankCmd)
}
