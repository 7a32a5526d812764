package trades_test

import (
	"testing"

	"trade-ledger/core/ledger"
	"trade-ledger/feature/trades"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleResult() *ledger.Result {
	return &ledger.Result{
		Missing:          []ledger.ItemRecord{{ID: 2, Name: "Shield", Quantity: 1}},
		PartiallyMissing: []ledger.ItemRecord{{ID: 1, Name: "Sword", Quantity: 3}},
		Extra:            []ledger.ItemRecord{},
	}
}

func TestItemLines(t *testing.T) {
	lines := trades.ItemLines([]ledger.ItemRecord{
		{ID: 1, Name: "Sword", Quantity: 3},
		{ID: 2, Name: "Shield", Quantity: 1},
	})
	assert.Equal(t, []string{"3x Sword [id: 1]", "1x Shield [id: 2]"}, lines)
}

func TestLogResult(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	trades.LogResult(zap.New(core), sampleResult())

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "Player has not returned", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Player has not included any additional items", entries[2].Message)
}

func TestLogResult_Complete(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	trades.LogResult(zap.New(core), &ledger.Result{
		Extra: []ledger.ItemRecord{{ID: 9, Name: "Coin", Quantity: 4}},
	})

	assert.Equal(t, 1, logs.FilterMessage("Player has returned all items").Len())
	assert.Equal(t, 1, logs.FilterMessage("There are no quantities missing").Len())
	assert.Equal(t, 1, logs.FilterMessage("Player has added to the returned list").Len())
}

func TestRenderMarkdown(t *testing.T) {
	md := trades.RenderMarkdown("", sampleResult())

	assert.Contains(t, md, "# Trade reconciliation")
	assert.Contains(t, md, "**4** unit(s) are still outstanding.")
	assert.Contains(t, md, "- 1x Shield [id: 2]")
	assert.Contains(t, md, "- 3x Sword [id: 1]")
	assert.Contains(t, md, "## Additional items\n\n_None._")
}

func TestRenderMarkdown_Complete(t *testing.T) {
	md := trades.RenderMarkdown("Alice", &ledger.Result{})

	assert.Contains(t, md, "# Alice")
	assert.Contains(t, md, "All required items have been returned.")
}

func TestRenderTerminal(t *testing.T) {
	out, err := trades.RenderTerminal(trades.RenderMarkdown("Alice", sampleResult()), "notty", 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Shield")
	assert.Contains(t, out, "Alice")
}
