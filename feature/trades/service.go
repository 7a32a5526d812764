package trades

import (
	"context"
	"errors"
	"strings"
	"sync"

	"trade-ledger/core/ledger"
	"trade-ledger/core/ledger/store"
	"trade-ledger/feature/trades/extract"

	"go.uber.org/zap"
)

// ErrMissingReceiver is returned when an operation needs a receiver key and got none.
var ErrMissingReceiver = errors.New("receiver is required")

// RecordReport describes the outcome of recording an observation.
type RecordReport struct {
	// Receiver is the ledger key the items were recorded under.
	Receiver string `json:"receiver"`
	// Recorded is the number of records merged.
	Recorded int `json:"recorded"`
	// Items is the receiver's accumulated item list after the merge.
	Items []ledger.ItemRecord `json:"items"`
	// Skipped lists rows that could not be turned into items.
	Skipped []string `json:"skipped,omitempty"`
}

// Service handles trade ledger operations.
type Service struct {
	store  store.Store
	logger *zap.Logger

	// mu serialises load-merge-save cycles so concurrent observations are not lost.
	mu sync.Mutex
}

// NewService creates a new trades service.
func NewService(s store.Store, logger *zap.Logger) *Service {
	return &Service{
		store:  s,
		logger: logger,
	}
}

// Record merges items into the ledger entry of receiver and persists the result.
// An empty batch returns ledger.ErrNothingToRecord and leaves the store untouched.
func (s *Service) Record(ctx context.Context, receiver string, items []ledger.ItemRecord) (*RecordReport, error) {
	receiver = strings.Clone(strings.TrimSpace(receiver))
	if receiver == "" {
		return nil, ErrMissingReceiver
	}

	report := &RecordReport{Receiver: receiver}

	if len(items) == 0 {
		s.logger.Warn("No trades between the sender and receiver", zap.String("receiver", receiver))
		return report, ledger.ErrNothingToRecord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := ledger.ApplyObservation(l, receiver, items)
	if err != nil {
		return report, err
	}

	if err := s.store.Save(ctx, updated); err != nil {
		return nil, err
	}

	report.Recorded = len(items)
	report.Items, _ = updated.Items(receiver)

	s.logger.Info("Trades stored",
		zap.String("receiver", receiver),
		zap.Int("recorded", report.Recorded),
		zap.Int("distinct_items", len(report.Items)),
	)

	return report, nil
}

// RecordRows selects the rows between opts.Receiver and opts.Senders and records their items.
func (s *Service) RecordRows(ctx context.Context, rows []extract.TradeRow, opts extract.Options) (*RecordReport, error) {
	if strings.TrimSpace(opts.Receiver) == "" {
		return nil, ErrMissingReceiver
	}

	items, rowErrs := extract.Select(rows, opts)
	var skipped []string
	for _, err := range rowErrs {
		s.logger.Warn("Skipping trade row", zap.Error(err))
		skipped = append(skipped, err.Error())
	}

	report, err := s.Record(ctx, opts.Receiver, items)
	if report != nil {
		report.Skipped = skipped
	}
	return report, err
}

// Items returns the items stored for receiver.
// ledger.ErrNoSuchRecipient is returned for a receiver that was never recorded.
func (s *Service) Items(ctx context.Context, receiver string) ([]ledger.ItemRecord, error) {
	l, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return l.Items(strings.TrimSpace(receiver))
}

// Ledger returns the whole persisted ledger.
func (s *Service) Ledger(ctx context.Context) (ledger.Ledger, error) {
	return s.store.Load(ctx)
}

// Compare reconciles required items against returned items.
func (s *Service) Compare(ctx context.Context, required, returned []ledger.ItemRecord) (*ledger.Result, error) {
	result, err := ledger.Reconcile(required, returned)
	if err != nil {
		s.logger.Warn("Nothing to compare", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Comparison finished",
		zap.Int("missing", len(result.Missing)),
		zap.Int("partially_missing", len(result.PartiallyMissing)),
		zap.Int("extra", len(result.Extra)),
		zap.Int("missing_quantity", result.MissingQuantity()),
	)
	return result, nil
}

// CompareStored reconciles the items stored for receiver against returned items.
func (s *Service) CompareStored(ctx context.Context, receiver string, returned []ledger.ItemRecord) (*ledger.Result, error) {
	required, err := s.Items(ctx, receiver)
	if err != nil {
		if errors.Is(err, ledger.ErrNoSuchRecipient) {
			s.logger.Warn("There are no items from this receiver in storage", zap.String("receiver", receiver))
		}
		return nil, err
	}
	return s.Compare(ctx, required, returned)
}

// Reset discards all stored ledger state.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.logger.Info("Stored items have been cleared")
	return nil
}
