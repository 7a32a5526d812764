package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"trade-ledger/feature/trades"

	"github.com/spf13/cobra"
)

var yesConfirm bool

// resetCmd discards every recorded trade.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all recorded trades",
	Long: `Discard the whole ledger from the configured backend.

Examples:
  # Interactive confirmation
  reset

  # Non-interactive
  reset --yes`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	s, closeStore, err := openStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer closeStore()

	return trades.NewService(s, l).Reset(ctx)
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
