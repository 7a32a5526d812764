package ledger

import "fmt"

// ItemRecord is a single observed item with its quantity.
// Two records describe the same item iff their IDs are equal; Name is display only.
type ItemRecord struct {
	// ID is the stable item identity.
	ID int `json:"id"`

	// Name is the display label of the item.
	Name string `json:"name"`

	// Quantity is the number of units observed.
	Quantity int `json:"quantity"`
}

// String renders the record as "<quantity>x <name> [id: <id>]".
func (r ItemRecord) String() string {
	return FormatItem(r)
}

// FormatItem renders an item as a human readable line.
func FormatItem(r ItemRecord) string {
	return fmt.Sprintf("%dx %s [id: %d]", r.Quantity, r.Name, r.ID)
}

// Entry holds the accumulated items of one receiver.
type Entry struct {
	// Receiver is the opaque key of the trade recipient.
	Receiver string `json:"receiver"`

	// Items is the accumulated item list, unique by ID.
	Items []ItemRecord `json:"items"`
}

// Ledger is the persisted collection of entries, unique by receiver.
type Ledger []Entry

// Items returns a copy of the items stored for receiver.
func (l Ledger) Items(receiver string) ([]ItemRecord, error) {
	idx := l.index(receiver)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchRecipient, receiver)
	}
	return cloneItems(l[idx].Items), nil
}

// Receivers returns the receiver keys in ledger order.
func (l Ledger) Receivers() []string {
	keys := make([]string, 0, len(l))
	for _, e := range l {
		keys = append(keys, e.Receiver)
	}
	return keys
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	out := make(Ledger, len(l))
	for i, e := range l {
		out[i] = Entry{Receiver: e.Receiver, Items: cloneItems(e.Items)}
	}
	return out
}

func (l Ledger) index(receiver string) int {
	for i, e := range l {
		if e.Receiver == receiver {
			return i
		}
	}
	return -1
}

// Result is the outcome of a reconciliation.
// The three sets never share an ID.
type Result struct {
	// Missing holds required items that were not returned at all.
	Missing []ItemRecord `json:"missing"`

	// PartiallyMissing holds required items that were returned in insufficient
	// quantity. Quantity is the amount still outstanding.
	PartiallyMissing []ItemRecord `json:"partially_missing"`

	// Extra holds returned items that were never required.
	Extra []ItemRecord `json:"extra"`
}

// Complete reports whether every required item was returned in full.
func (r *Result) Complete() bool {
	return len(r.Missing) == 0 && len(r.PartiallyMissing) == 0
}

// MissingQuantity is the total number of units still outstanding.
func (r *Result) MissingQuantity() int {
	total := 0
	for _, item := range r.Missing {
		total += item.Quantity
	}
	for _, item := range r.PartiallyMissing {
		total += item.Quantity
	}
	return total
}

func cloneItems(items []ItemRecord) []ItemRecord {
	if items == nil {
		return nil
	}
	out := make([]ItemRecord, len(items))
	copy(out, items)
	return out
}
