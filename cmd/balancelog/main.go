package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/fdtools/balancelog/pkg/analyze"
	"github.com/fdtools/balancelog/pkg/audit"
	"github.com/fdtools/balancelog/pkg/config"
	"github.com/fdtools/balancelog/pkg/csv"
	"github.com/fdtools/balancelog/pkg/filter"
	"github.com/fdtools/balancelog/pkg/format"
	"github.com/fdtools/balancelog/pkg/i18n"
	"github.com/fdtools/balancelog/pkg/models"
	"github.com/fdtools/balancelog/pkg/parser"
	"github.com/fdtools/balancelog/pkg/plan"
	"github.com/fdtools/balancelog/pkg/story"
)

var (
	cliFilters rowFilters
	cfgFile    string
	debugMode  bool
)

func newLogger() *log.Logger {
	level := log.InfoLevel
	if debugMode {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "balancelog",
		Level:           level,
	})
}

var rootCmd = &cobra.Command{
	Use:   "balancelog",
	Short: "Balance log analyzer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <log_file>",
	Short: "Parse a balance log and report what was found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		if _, err := config.Build(cfgFile, cmd.Flags()); err != nil {
			return err
		}

		rows, err := loadRows(logger, args[0], cliFilters)
		if err != nil {
			return err
		}
		if debugMode {
			pp.Println(rows)
		}
		if csvOut, _ := cmd.Flags().GetBool("csv"); csvOut {
			os.Stdout.Write(csv.Rows(rows, nil))
			return nil
		}

		fmt.Printf("rows: %d\n", len(rows))
		fmt.Printf("symbols: %d\n", filter.CountSymbols(rows))
		fmt.Println("types:")
		for _, t := range filter.DetectedTypes(rows) {
			fmt.Printf("  %s\n", t)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <log_file>",
	Short: "Aggregate the log by type and asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		if _, err := config.Build(cfgFile, cmd.Flags()); err != nil {
			return err
		}

		rows, err := loadRows(logger, args[0], cliFilters)
		if err != nil {
			return err
		}

		if csvOut, _ := cmd.Flags().GetBool("csv"); csvOut {
			os.Stdout.Write(csv.Summary(analyze.SummaryRows(rows), nil))
			return nil
		}

		for _, row := range analyze.RankedSummaryRows(rows) {
			fmt.Printf("%-32s %-8s in=%s out=%s net=%s\n",
				row.Label, row.Asset,
				format.Trim(row.In), format.Trim(row.Out), format.Signed(row.Net))
		}
		return nil
	},
}

var swapsCmd = &cobra.Command{
	Use:   "swaps <log_file>",
	Short: "Group coin swap and auto-exchange legs into events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		if _, err := config.Build(cfgFile, cmd.Flags()); err != nil {
			return err
		}

		rows, err := loadRows(logger, args[0], cliFilters)
		if err != nil {
			return err
		}

		printSwaps := func(title string, kind analyze.SwapKind) {
			lines := analyze.GroupSwaps(rows, kind)
			if len(lines) == 0 {
				return
			}
			fmt.Println(title)
			for _, l := range lines {
				fmt.Printf("  %s\n", l.Text)
			}
		}
		printSwaps("Coin swaps:", analyze.CoinSwap)
		printSwaps("Auto-exchange:", analyze.AutoExchange)

		orders, payouts := analyze.EventTotals(rows)
		printTotals := func(title string, m models.TotalsMap) {
			if len(m) == 0 {
				return
			}
			fmt.Println(title)
			for _, asset := range analyze.SortedAssets(m) {
				fmt.Printf("  %s %s\n", asset, format.Signed(m[asset].Net))
			}
		}
		printTotals("Event contract orders:", orders)
		printTotals("Event contract payouts:", payouts)
		return nil
	},
}

var (
	auditPlanFile  string
	anchorFlag     string
	auditEndFlag   string
	baselineFile   string
	transferAmount string
	transferAsset  string
	langFlag       string
)

// auditInputs resolves audit parameters from either a plan file or the
// individual flags; flags win over the plan where both are set.
func auditInputs() (audit.Params, i18n.Lang, error) {
	params := audit.Params{}
	lang := i18n.Lang(langFlag)

	if auditPlanFile != "" {
		p, err := plan.Load(auditPlanFile)
		if err != nil {
			return audit.Params{}, "", err
		}
		if debugMode {
			p.Print()
		}
		if params, err = p.Params(); err != nil {
			return audit.Params{}, "", err
		}
		if langFlag == "" && p.Lang != "" {
			lang = i18n.Lang(p.Lang)
		}
	}

	if anchorFlag != "" {
		params.Anchor = parser.ParseUTC(anchorFlag)
		if params.Anchor.IsZero() {
			return audit.Params{}, "", fmt.Errorf("invalid anchor time: %q", anchorFlag)
		}
	}
	if auditEndFlag != "" {
		params.End = parser.ParseUTC(auditEndFlag)
		if params.End.IsZero() {
			return audit.Params{}, "", fmt.Errorf("invalid end time: %q", auditEndFlag)
		}
	}
	if baselineFile != "" {
		data, err := os.ReadFile(baselineFile)
		if err != nil {
			return audit.Params{}, "", err
		}
		baseline, err := audit.ParseBaseline(string(data))
		if err != nil {
			return audit.Params{}, "", err
		}
		params.Baseline = baseline
	}
	if tr := audit.ParseTransfer(transferAmount, transferAsset); tr != nil {
		params.Transfer = tr
	}
	return params, lang, nil
}

var auditCmd = &cobra.Command{
	Use:   "audit <log_file>",
	Short: "Reconcile activity after an anchor against a baseline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		if _, err := config.Build(cfgFile, cmd.Flags()); err != nil {
			return err
		}

		params, _, err := auditInputs()
		if err != nil {
			return err
		}
		if params.Anchor.IsZero() {
			fmt.Println("Set a Start time (UTC+0) to run the audit.")
			return nil
		}

		rows, err := loadRows(logger, args[0], cliFilters)
		if err != nil {
			return err
		}

		report, err := audit.Build(rows, params)
		if err != nil {
			fmt.Printf("Audit failed: %s\n", err)
			return nil
		}
		fmt.Println(report.Text)
		return nil
	},
}

var storyCmd = &cobra.Command{
	Use:   "story <log_file>",
	Short: "Compose a localized narrative of account activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		params, lang, err := auditInputs()
		if err != nil {
			return err
		}
		if lang == "" {
			lang = i18n.Lang(cfg.Lang)
		}

		rows, err := loadRows(logger, args[0], cliFilters)
		if err != nil {
			return err
		}

		opts := story.Options{
			Lang:     lang,
			Start:    params.Anchor,
			Baseline: params.Baseline,
			Transfer: params.Transfer,
			Groups:   story.BuildGroups(analyze.SummaryRows(rows), lang),
		}
		if !params.Anchor.IsZero() {
			report, err := audit.Build(rows, params)
			if err != nil {
				fmt.Printf("Audit failed: %s\n", err)
				return nil
			}
			opts.Final = report.Final
		}

		fmt.Println(story.Compose(opts))
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is balancelog.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Verbose logging and row dumps")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.start, "start", "", "Window start (YYYY-MM-DD HH:MM:SS, UTC)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.end, "end", "", "Window end (YYYY-MM-DD HH:MM:SS, UTC)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.symbol, "symbol", "", "Filter by symbol (case insensitive)")
	rootCmd.PersistentFlags().StringSliceVar(&cliFilters.types, "type", nil, "Keep only these type keys")

	summaryCmd.Flags().Bool("csv", false, "Emit CSV instead of a table")
	parseCmd.Flags().Bool("csv", false, "Emit parsed rows as CSV")

	// Audit inputs, shared by audit and story
	for _, cmd := range []*cobra.Command{auditCmd, storyCmd} {
		cmd.Flags().StringVar(&auditPlanFile, "plan", "", "YAML audit plan file")
		cmd.Flags().StringVar(&anchorFlag, "anchor", "", "Anchor time (YYYY-MM-DD HH:MM:SS, UTC)")
		cmd.Flags().StringVar(&auditEndFlag, "audit-end", "", "Audit end time (defaults to open)")
		cmd.Flags().StringVar(&baselineFile, "baseline", "", "Baseline balances file")
		cmd.Flags().StringVar(&transferAmount, "transfer-amount", "", "Anchor transfer amount")
		cmd.Flags().StringVar(&transferAsset, "transfer-asset", "", "Anchor transfer asset")
		cmd.Flags().StringVar(&langFlag, "lang", "", "Narrative language (en, tr, es, pt, vi, ru, uk, ar, zh, ko)")
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(swapsCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(storyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
