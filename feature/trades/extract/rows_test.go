package extract

import (
	"path/filepath"
	"strings"
	"testing"

	"trade-ledger/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeRow_Record(t *testing.T) {
	tests := []struct {
		name    string
		row     TradeRow
		want    ledger.ItemRecord
		wantErr bool
	}{
		{
			name: "Explicit ID",
			row:  TradeRow{Item: "Iron Sword", ItemID: 101, Quantity: 3},
			want: ledger.ItemRecord{ID: 101, Name: "Iron Sword", Quantity: 3},
		},
		{
			name: "ID From Markup",
			row:  TradeRow{Item: `<a onclick="retrieveItem(55, 'item')"> Gold   Bar </a>`, Quantity: 1},
			want: ledger.ItemRecord{ID: 55, Name: "Gold Bar", Quantity: 1},
		},
		{
			name: "Quoted ID",
			row:  TradeRow{Item: `<span onclick="retrieveItem('7')">Gem</span>`, Quantity: 2},
			want: ledger.ItemRecord{ID: 7, Name: "Gem", Quantity: 2},
		},
		{
			name:    "No ID",
			row:     TradeRow{Item: "Mystery", Quantity: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.row.Record()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMissingItemID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSV(t *testing.T) {
	rows, err := ParseFile(filepath.Join("testdata", "trades.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Mallory [#42]", rows[0].Sender)
	assert.Equal(t, "Alice [#1337]", rows[0].Receiver)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.True(t, rows[0].FailedCheck())
	assert.False(t, rows[1].FailedCheck())
}

func TestParseCSV_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		rows, err := ParseCSV(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("No Item Column", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("sender,receiver,quantity\na,b,1\n"))
		assert.Error(t, err)
	})

	t.Run("ID Column Only", func(t *testing.T) {
		rows, err := ParseCSV(strings.NewReader("From,To,ID,Qty\na,b,9,4\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, TradeRow{Sender: "a", Receiver: "b", ItemID: 9, Quantity: 4}, rows[0])
	})
}

func TestParseJSON(t *testing.T) {
	rows, err := ParseFile(filepath.Join("testdata", "trades.json"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 101, rows[0].ItemID)

	_, err = ParseJSON(strings.NewReader(`{"rows": 1}`))
	assert.Error(t, err)
}

func TestParseFile_UnsupportedFormat(t *testing.T) {
	_, err := ParseFile(filepath.Join("testdata", "trades.csv") + ".bak")
	assert.Error(t, err)

	_, err = ParseFile(filepath.Join("testdata", "missing.xml"))
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	rows, err := ParseFile(filepath.Join("testdata", "trades.csv"))
	require.NoError(t, err)

	tests := []struct {
		name string
		opts Options
		want []ledger.ItemRecord
	}{
		{
			name: "Failed Check Only",
			opts: Options{Receiver: "1337", FailedCheckOnly: true},
			want: []ledger.ItemRecord{
				{ID: 101, Name: "Iron Sword", Quantity: 3},
				{ID: 103, Name: "Gold Bar", Quantity: 10},
			},
		},
		{
			name: "All Checks",
			opts: Options{Receiver: "Alice"},
			want: []ledger.ItemRecord{
				{ID: 101, Name: "Iron Sword", Quantity: 3},
				{ID: 102, Name: "Wooden Shield", Quantity: 1},
				{ID: 103, Name: "Gold Bar", Quantity: 10},
			},
		},
		{
			name: "Sender Filter",
			opts: Options{Receiver: "Alice", Senders: OneOf("#7", "Nobody")},
			want: []ledger.ItemRecord{
				{ID: 102, Name: "Wooden Shield", Quantity: 1},
			},
		},
		{
			name: "No Match",
			opts: Options{Receiver: "Carol"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, errs := Select(rows, tt.opts)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestSelect_ReportsBadRows(t *testing.T) {
	rows := []TradeRow{
		{Receiver: "Alice", Item: "Mystery", Quantity: 1},
		{Receiver: "Alice", Item: "Gem", ItemID: 7, Quantity: 2},
	}

	items, errs := Select(rows, Options{Receiver: "Alice"})
	assert.Equal(t, []ledger.ItemRecord{{ID: 7, Name: "Gem", Quantity: 2}}, items)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "row 1")
}

func TestReadItems(t *testing.T) {
	items, err := ReadItems(strings.NewReader(`[{"id":1,"name":"Sword","quantity":2}]`))
	require.NoError(t, err)
	assert.Equal(t, []ledger.ItemRecord{{ID: 1, Name: "Sword", Quantity: 2}}, items)

	_, err = ReadItems(strings.NewReader(`nope`))
	assert.Error(t, err)
}
