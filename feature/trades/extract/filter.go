package extract

import "strings"

// FailedCheckMarker is the text shown in the check column of a trade that failed
// the suspicious trade check.
const FailedCheckMarker = "View problem"

// SenderFilter selects trades by sender. The zero value matches any sender.
type SenderFilter struct {
	senders []string
}

// AnySender matches every sender.
func AnySender() SenderFilter {
	return SenderFilter{}
}

// OneOf matches trades whose sender cell contains any of the given names or ids.
// Blank entries are ignored; OneOf with no usable entries matches any sender.
func OneOf(senders ...string) SenderFilter {
	f := SenderFilter{}
	for _, s := range senders {
		if s = strings.TrimSpace(s); s != "" {
			f.senders = append(f.senders, s)
		}
	}
	return f
}

// IsAny reports whether the filter matches every sender.
func (f SenderFilter) IsAny() bool {
	return len(f.senders) == 0
}

// Senders returns the configured sender names.
func (f SenderFilter) Senders() []string {
	return append([]string(nil), f.senders...)
}

// Matches reports whether the sender cell text passes the filter.
func (f SenderFilter) Matches(senderText string) bool {
	if f.IsAny() {
		return true
	}
	for _, s := range f.senders {
		if strings.Contains(senderText, s) {
			return true
		}
	}
	return false
}

// Options controls which rows Select keeps.
type Options struct {
	// Receiver is matched against the receiver cell. Empty matches every receiver.
	Receiver string
	// Senders filters by sender.
	Senders SenderFilter
	// FailedCheckOnly keeps only trades that failed the suspicious trade check.
	FailedCheckOnly bool
}

// Matches reports whether row passes the options.
func (o Options) Matches(row TradeRow) bool {
	if !strings.Contains(row.Receiver, o.Receiver) {
		return false
	}
	if !o.Senders.Matches(row.Sender) {
		return false
	}
	if o.FailedCheckOnly && !row.FailedCheck() {
		return false
	}
	return true
}
