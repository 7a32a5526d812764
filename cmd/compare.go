package cmd

import (
	"context"
	"fmt"

	"trade-ledger/core/ledger"
	"trade-ledger/feature/trades"
	"trade-ledger/feature/trades/extract"

	"github.com/spf13/cobra"
)

var (
	compareReceiver string
	compareRequired string
	compareMarkdown bool
	compareStyle    string
	compareWidth    int
	compareJSON     bool
)

// compareCmd reconciles returned items against required items.
var compareCmd = &cobra.Command{
	Use:   "compare <returned.json>",
	Short: "Compare returned items against required items",
	Long: `Compare the items a player handed back against what they owed.

Required items come from the ledger (--receiver) or from a JSON item file
(--required). The result is logged, printed as JSON, or rendered as a report.

Examples:
  # Compare against the stored items of a receiver
  compare returned.json --receiver 1337

  # Compare two item files and render a report
  compare returned.json --required owed.json --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareReceiver, "receiver", "", "Use the items stored for this receiver as the required list")
	compareCmd.Flags().StringVar(&compareRequired, "required", "", "JSON item file with the required list")
	compareCmd.Flags().BoolVar(&compareMarkdown, "markdown", false, "Render a markdown report in the terminal")
	compareCmd.Flags().StringVar(&compareStyle, "style", "", "Report style (dark, light, notty, ...), default detects the terminal")
	compareCmd.Flags().IntVar(&compareWidth, "width", 80, "Report word wrap width")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print the result as JSON to stdout")
	compareCmd.MarkFlagsMutuallyExclusive("receiver", "required")
	compareCmd.MarkFlagsOneRequired("receiver", "required")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	returned, err := extract.ReadItemsFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read returned items: %w", err)
	}

	var (
		result *ledger.Result
		title  string
	)

	if compareReceiver != "" {
		s, closeStore, err := openStore(ctx, cfg, l)
		if err != nil {
			return err
		}
		defer closeStore()

		title = "Trade reconciliation: " + compareReceiver
		result, err = trades.NewService(s, l).CompareStored(ctx, compareReceiver, returned)
		if err != nil {
			return err
		}
	} else {
		required, err := extract.ReadItemsFile(compareRequired)
		if err != nil {
			return fmt.Errorf("failed to read required items: %w", err)
		}

		result, err = ledger.Reconcile(required, returned)
		if err != nil {
			return err
		}
	}

	switch {
	case compareJSON:
		return writeJSON(cmd, result)
	case compareMarkdown:
		out, err := trades.RenderTerminal(trades.RenderMarkdown(title, result), compareStyle, compareWidth)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	default:
		trades.LogResult(l, result)
		return nil
	}
}
