package ledger

// MergeItems merges incoming records into existing and returns the updated list.
// Quantities of matching IDs are summed and the first-seen name is kept.
// Unseen IDs are appended in the order they are first encountered.
// Neither input is modified.
func MergeItems(existing, incoming []ItemRecord) []ItemRecord {
	if len(incoming) == 0 {
		return existing
	}

	merged := make([]ItemRecord, len(existing), len(existing)+len(incoming))
	copy(merged, existing)

	positions := make(map[int]int, len(merged)+len(incoming))
	for i, item := range merged {
		positions[item.ID] = i
	}

	for _, item := range incoming {
		if i, ok := positions[item.ID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		positions[item.ID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

// ApplyObservation merges items into the entry of receiver and returns the updated ledger.
// A receiver that has not been seen before gets a new entry at the end of the ledger.
// If items is empty the ledger is returned unchanged together with ErrNothingToRecord.
func ApplyObservation(l Ledger, receiver string, items []ItemRecord) (Ledger, error) {
	if len(items) == 0 {
		return l, ErrNothingToRecord
	}

	updated := l.Clone()
	idx := updated.index(receiver)
	if idx == -1 {
		updated = append(updated, Entry{Receiver: receiver})
		idx = len(updated) - 1
	}

	updated[idx].Items = MergeItems(updated[idx].Items, items)
	return updated, nil
}
