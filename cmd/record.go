package cmd

import (
	"context"
	"errors"
	"fmt"

	"trade-ledger/core/ledger"
	"trade-ledger/feature/trades"
	"trade-ledger/feature/trades/extract"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	recordReceiver string
	recordSenders  []string
	recordAll      bool
	recordItems    bool
)

// recordCmd merges an exported trade page (or a plain item list) into the ledger.
var recordCmd = &cobra.Command{
	Use:   "record <file>",
	Short: "Record received trade items for a receiver",
	Long: `Record the items a receiver got through trades.

The file is a trade export (.csv or .json rows). Only rows sent to the receiver
by one of the senders are kept, and by default only trades that failed the
suspicious trade check. Use --items to read a JSON array of item records instead.

Examples:
  # Record flagged trades from any sender
  record trades.csv --receiver 1337

  # Record every trade from two senders
  record trades.json --receiver 1337 --sender 42 --sender Mallory --all

  # Record a plain item list
  record items.json --receiver 1337 --items`,
	Args: cobra.ExactArgs(1),
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().StringVar(&recordReceiver, "receiver", "", "Receiver name or id (ledger key)")
	recordCmd.Flags().StringSliceVar(&recordSenders, "sender", nil, "Sender name or id to accept (repeatable, default any)")
	recordCmd.Flags().BoolVar(&recordAll, "all", false, "Include trades that passed the suspicious trade check")
	recordCmd.Flags().BoolVar(&recordItems, "items", false, "Treat the file as a JSON array of item records")
	_ = recordCmd.MarkFlagRequired("receiver")

	RootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
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

	var report *trades.RecordReport
	if recordItems {
		items, readErr := extract.ReadItemsFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read items: %w", readErr)
		}
		report, err = svc.Record(ctx, recordReceiver, items)
	} else {
		rows, readErr := extract.ParseFile(args[0])
		if readErr != nil {
			return fmt.Errorf("failed to read trade export: %w", readErr)
		}
		report, err = svc.RecordRows(ctx, rows, extract.Options{
			Receiver:        recordReceiver,
			Senders:         extract.OneOf(recordSenders...),
			FailedCheckOnly: !recordAll,
		})
	}

	if errors.Is(err, ledger.ErrNothingToRecord) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, line := range trades.ItemLines(report.Items) {
		l.Info("Stored", zap.String("receiver", report.Receiver), zap.String("item", line))
	}
	return nil
}
