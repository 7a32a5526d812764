package cmd

import (
	"context"
	"encoding/json"

	"trade-ledger/feature/trades"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	itemsReceiver string
	itemsJSON     bool
)

// itemsCmd shows what has been recorded.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Show recorded items",
	Long: `Show the items recorded for a receiver, or a summary of every receiver
when --receiver is omitted.`,
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemsReceiver, "receiver", "", "Receiver name or id")
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "Print JSON to stdout")

	RootCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	defer l.Sync()

	s, closeStore, err := openStore(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := trades.NewService(s, l)

	if itemsReceiver == "" {
		entries, err := svc.Ledger(ctx)
		if err != nil {
			return err
		}
		if itemsJSON {
			return writeJSON(cmd, entries)
		}
		if len(entries) == 0 {
			l.Info("No trades have been recorded")
		}
		for _, e := range entries {
			l.Info("Receiver", zap.String("receiver", e.Receiver), zap.Int("distinct_items", len(e.Items)))
		}
		return nil
	}

	items, err := svc.Items(ctx, itemsReceiver)
	if err != nil {
		return err
	}
	if itemsJSON {
		return writeJSON(cmd, items)
	}
	for _, line := range trades.ItemLines(items) {
		l.Info("Stored", zap.String("receiver", itemsReceiver), zap.String("item", line))
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
