package trades

import (
	"fmt"
	"strings"

	"trade-ledger/core/ledger"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// ItemLines renders each item as "<quantity>x <name> [id: <id>]".
func ItemLines(items []ledger.ItemRecord) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, ledger.FormatItem(item))
	}
	return lines
}

// LogResult logs the three sets of a reconciliation result.
func LogResult(l *zap.Logger, r *ledger.Result) {
	if len(r.Missing) == 0 {
		l.Info("Player has returned all items")
	} else {
		l.Error("Player has not returned", zap.Strings("items", ItemLines(r.Missing)))
	}

	if len(r.PartiallyMissing) == 0 {
		l.Info("There are no quantities missing")
	} else {
		l.Warn("Player has returned, but the quantity below is still missing",
			zap.Strings("items", ItemLines(r.PartiallyMissing)))
	}

	if len(r.Extra) == 0 {
		l.Warn("Player has not included any additional items")
	} else {
		l.Info("Player has added to the returned list", zap.Strings("items", ItemLines(r.Extra)))
	}
}

// RenderMarkdown renders a reconciliation result as a markdown report.
func RenderMarkdown(title string, r *ledger.Result) string {
	var b strings.Builder

	if title == "" {
		title = "Trade reconciliation"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if r.Complete() {
		b.WriteString("All required items have been returned.\n\n")
	} else {
		fmt.Fprintf(&b, "**%d** unit(s) are still outstanding.\n\n", r.MissingQuantity())
	}

	writeSection(&b, "Not returned", r.Missing)
	writeSection(&b, "Returned, but quantity still missing", r.PartiallyMissing)
	writeSection(&b, "Additional items", r.Extra)

	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []ledger.ItemRecord) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(items) == 0 {
		b.WriteString("_None._\n\n")
		return
	}
	for _, line := range ItemLines(items) {
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")
}

// RenderTerminal renders markdown for a terminal. An empty style picks the
// style from the terminal background.
func RenderTerminal(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	return r.Render(markdown)
}
