package ledger

// remaining tracks a required item while returned records are subtracted from it.
type remaining struct {
	item    ItemRecord
	matched bool
}

// Reconcile diffs the required items against the returned items.
//
// Each returned record is subtracted from the required item with the same ID.
// Remaining quantities may go negative (over-delivery), which is not reported.
// Returned records without a required counterpart are reported as extra.
//
// ErrNothingRequired or ErrNothingReturned is returned when either side is empty,
// so that an empty diff is never mistaken for a perfect match.
func Reconcile(required, returned []ItemRecord) (*Result, error) {
	if len(required) == 0 {
		return nil, ErrNothingRequired
	}
	if len(returned) == 0 {
		return nil, ErrNothingReturned
	}

	pending := make([]remaining, 0, len(required))
	byID := make(map[int]int, len(required))
	for _, item := range required {
		if i, ok := byID[item.ID]; ok {
			pending[i].item.Quantity += item.Quantity
			continue
		}
		byID[item.ID] = len(pending)
		pending = append(pending, remaining{item: item})
	}

	var extra []ItemRecord
	for _, item := range returned {
		if i, ok := byID[item.ID]; ok {
			pending[i].item.Quantity -= item.Quantity
			pending[i].matched = true
			continue
		}
		if item.Quantity > 0 {
			extra = MergeItems(extra, []ItemRecord{item})
		}
	}

	result := &Result{
		Missing:          []ItemRecord{},
		PartiallyMissing: []ItemRecord{},
		Extra:            []ItemRecord{},
	}
	for _, r := range pending {
		if r.item.Quantity <= 0 {
			continue
		}
		if r.matched {
			result.PartiallyMissing = append(result.PartiallyMissing, r.item)
		} else {
			result.Missing = append(result.Missing, r.item)
		}
	}
	result.Extra = append(result.Extra, extra...)

	return result, nil
}
