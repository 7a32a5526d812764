package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a sequence that must be non-empty is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrNothingToRecord signals an observation without items.
	ErrNothingToRecord = fmt.Errorf("%w: no items to record", ErrEmptyInput)

	// ErrNothingRequired signals a reconciliation without required items.
	ErrNothingRequired = fmt.Errorf("%w: required items are empty", ErrEmptyInput)

	// ErrNothingReturned signals a reconciliation without returned items.
	ErrNothingReturned = fmt.Errorf("%w: returned items are empty", ErrEmptyInput)

	// ErrNoSuchRecipient is returned when no items are stored for a receiver.
	ErrNoSuchRecipient = errors.New("no items stored for receiver")
)
